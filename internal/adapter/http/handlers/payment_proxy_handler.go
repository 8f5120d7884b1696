package handlers

import (
	"net/http"

	"storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/adapter/proxy"
	"storefront_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PaymentProxyHandler is the serverless-style entry point of the payment proxy.
type PaymentProxyHandler struct {
	usecase usecase.IPaymentUseCase
	logger  zerolog.Logger
}

func NewPaymentProxyHandler(uc usecase.IPaymentUseCase, logger zerolog.Logger) *PaymentProxyHandler {
	return &PaymentProxyHandler{
		usecase: uc,
		logger:  logger.With().Str("component", "payment.handler").Str("adapter", "api").Logger(),
	}
}

// Handle dispatches on method: OPTIONS is a preflight, POST creates, anything else is 405.
func (h *PaymentProxyHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodPost:
		h.CreatePayment(c)
	default:
		appErr := response.MethodNotAllowed()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// CreatePayment creates a payment with the gateway on behalf of the storefront.
//
// @Summary      Create payment
// @Description  Creates a YooKassa payment and returns a redirect URL or an embedded-widget confirmation token. Gateway failures are answered with HTTP 200 and an error envelope.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentCreateRequest  true  "Payment request"
// @Success      200      {object}  response.RedirectPaymentResponse
// @Success      200      {object}  response.EmbeddedPaymentResponse
// @Success      200      {object}  response.PaymentFailureResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      405      {object}  pkg.HTTPError
// @Router       /api/yookassa [post]
func (h *PaymentProxyHandler) CreatePayment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, proxy.MaxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Info().Err(err).Msg("create rejected: unreadable body")
		appErr := response.MalformedBody(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, body := proxy.CreatePayment(c.Request.Context(), h.usecase, raw, h.logger)
	c.JSON(status, body)
}
