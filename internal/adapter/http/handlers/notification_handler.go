package handlers

import (
	"errors"
	"log"
	"net/http"

	request "apnaghar/internal/adapter/http/dto/request"
	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreferencePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid preference payload", http.StatusBadRequest)

// NotificationHandler exposes the caller's notification inbox and delivery
// preferences.
type NotificationHandler struct {
	usecase usecase.INotifierUseCase
}

func NewNotificationHandler(uc usecase.INotifierUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.usecase.ListNotifications(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	pref, err := h.usecase.GetPreferences(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (h *NotificationHandler) PutPreferences(c *gin.Context) {
	var payload request.PreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreferencePayload.HTTPStatus, errInvalidPreferencePayload.ToHTTPError())
		return
	}

	pref, err := h.usecase.PutPreferences(c.Request.Context(), CurrentPrincipal(c), payload.ToEntity())
	if err != nil {
		log.Printf("[notification][handler] preference update failed err=%v", err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, pref)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidPreferenceInput):
		return pkg.NewDomainErrorSimple("INVALID_PREFERENCES", "Quiet hours must be hours of day", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
