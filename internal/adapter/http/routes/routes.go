package routes

import (
	"fmt"
	"io"
	"net/http"
	"time"

	_ "storefront_payments/docs" // swagger document
	"storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/adapter/http/handlers"
	"storefront_payments/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathPayments = "/api/yookassa"
	PathMetrics  = "/metrics"
	PathPing     = "/ping"
)

// NewRouter builds the gin engine for the serverless-style deployment.
func NewRouter(paymentHandler *handlers.PaymentProxyHandler, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(metrics.Handler()))
	router.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	payments := router.Group(PathPayments, CORS())
	payments.Any("", paymentHandler.Handle)

	return router
}

// Run will start the server
func Run(port int, paymentHandler *handlers.PaymentProxyHandler, logger zerolog.Logger) error {
	router := NewRouter(paymentHandler, logger)
	logger.Info().Int("port", port).Msg("api listening")
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func setMiddlewares(router *gin.Engine, logger zerolog.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusOK, response.InternalError())
	}))
}

// CORS answers the storefront's cross-origin calls.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
