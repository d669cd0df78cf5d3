package handlers

import (
	"errors"
	"log"
	"net/http"

	request "apnaghar/internal/adapter/http/dto/request"
	response "apnaghar/internal/adapter/http/dto/response"
	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payments and refunds.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment opens a gateway order for a booking. A gateway failure still
// yields 201 with the payment in failed status so the client can retry.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreatePayment(c.Request.Context(), CurrentPrincipal(c), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s txn=%s status=%s", payment.ID, payment.TransactionID, payment.Status)
	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// VerifyPayment validates the checkout callback signature and settles the
// payment against the gateway's view of it. The path id must match the
// payment the gateway order resolves to.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	in.PaymentID = c.Param("id")
	payment, err := h.usecase.VerifyPayment(c.Request.Context(), CurrentPrincipal(c), in)
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", payload.GatewayOrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPayments returns the payments attached to a booking.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	list, err := h.usecase.ListByBookingID(c.Request.Context(), CurrentPrincipal(c), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": response.FromPayments(list)})
}

// CreateRefund initiates a full or partial refund against a completed payment.
func (h *PaymentHandler) CreateRefund(c *gin.Context) {
	var payload request.CreateRefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	refund, err := h.usecase.InitiateRefund(c.Request.Context(), CurrentPrincipal(c), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", payload.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund initiated refund_id=%s status=%s", refund.ID, refund.Status)
	c.JSON(http.StatusCreated, response.FromRefund(refund))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Payment signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefundExceedsAvailable):
		return pkg.NewDomainErrorSimple("refund_exceeds_available", "Refund amount exceeds refundable balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundNotAllowed):
		return pkg.NewDomainErrorSimple("REFUND_NOT_ALLOWED", "Payment state does not permit a refund", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidRefundAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway did not respond in time", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
