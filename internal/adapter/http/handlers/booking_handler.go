package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "apnaghar/internal/adapter/http/dto/request"
	response "apnaghar/internal/adapter/http/dto/response"
	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking reserves a property for the authenticated buyer.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), CurrentPrincipal(c), payload.ToInput())
	if err != nil {
		log.Printf("[booking][handler] create failed property_id=%s err=%v", payload.PropertyID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s number=%s", booking.ID, booking.BookingNumber)
	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListBookings returns the caller's own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.ListOwn(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": response.FromBookings(bookings)})
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.patchBookingState(c, h.usecase.ConfirmBooking)
}

func (h *BookingHandler) RequestAgreement(c *gin.Context) {
	h.patchBookingState(c, h.usecase.RequestAgreement)
}

func (h *BookingHandler) SignAgreement(c *gin.Context) {
	h.patchBookingState(c, h.usecase.SignAgreement)
}

func (h *BookingHandler) patchBookingState(c *gin.Context, transition func(ctx context.Context, p entities.Principal, id string) (entities.Booking, error)) {
	booking, err := transition(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// CancelBooking cancels any non-terminal booking with a reason.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var payload request.CancelBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CancelBooking(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), usecase.CancelBookingInput{Reason: payload.Reason})
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s err=%v", c.Param("id"), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyUnavailable):
		return pkg.NewDomainErrorSimple("property_unavailable", "Property is not available for booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateBooking):
		return pkg.NewDomainErrorSimple("duplicate_booking", "An active booking already exists for this property", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotCancellable), errors.Is(err, usecase.ErrInvalidBookingState):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_STATE", "Booking state does not permit this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Terms must be accepted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
