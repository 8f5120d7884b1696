package main

import (
	"context"
	"fmt"
	"os"

	_ "storefront_payments/docs"
	"storefront_payments/internal/adapter/http/handlers"
	"storefront_payments/internal/adapter/http/routes"
	"storefront_payments/internal/bootstrap"
	"storefront_payments/internal/config"
	"storefront_payments/internal/infrastructure/logging"
	"storefront_payments/internal/infrastructure/metrics"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Payments API
// @version         1.0
// @description     Server-side proxy that creates YooKassa payments for the storefront.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}).
		With().Str("adapter", "api").Logger()
	metrics.MustRegister()

	uc, cleanup, err := bootstrap.PaymentUseCase(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build payment use case")
	}
	defer cleanup()

	if err := routes.Run(cfg.Server.Port, handlers.NewPaymentProxyHandler(uc, logger), logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		cleanup()
		os.Exit(1)
	}
}
