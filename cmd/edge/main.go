package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront_payments/internal/adapter/edge"
	"storefront_payments/internal/bootstrap"
	"storefront_payments/internal/config"
	"storefront_payments/internal/infrastructure/logging"
	"storefront_payments/internal/infrastructure/metrics"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}).
		With().Str("adapter", "edge").Logger()
	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, cleanup, err := bootstrap.PaymentUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build payment use case")
	}
	defer cleanup()

	h := edge.NewHandler(uc, logger)
	srv := edge.NewServer(cfg.Server.EdgePort, edge.NewRouter(h, logger))

	go func() {
		logger.Info().Int("port", cfg.Server.EdgePort).Str("path", edge.PathCreatePayment).Msg("edge listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("edge server failed")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("edge stopped")
}
