package handlers

import (
	"errors"
	"log"
	"net/http"

	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous gateway notifications.
type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleRazorpay verifies the webhook signature against the raw body before
// any state is touched. A bad signature is rejected without mutation.
func (h *WebhookHandler) HandleRazorpay(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unable to read webhook body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.HandleWebhook(c.Request.Context(), body, c.GetHeader("X-Razorpay-Signature")); err != nil {
		log.Printf("[payment][handler] webhook rejected err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Webhook payload could not be parsed", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
