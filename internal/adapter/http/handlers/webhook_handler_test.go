package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"apnaghar/internal/adapter/http/handlers/mocks"
	"apnaghar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleRazorpay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("raw body and signature forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/razorpay", h.HandleRazorpay)

		body := []byte(`{"event":"payment.captured","payload":{}}`)
		uc.EXPECT().HandleWebhook(gomock.Any(), body, "sig-123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", bytes.NewBuffer(body))
		req.Header.Set("X-Razorpay-Signature", "sig-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/razorpay", h.HandleRazorpay)

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", bytes.NewBufferString(`{}`))
		req.Header.Set("X-Razorpay-Signature", "forged")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/razorpay", h.HandleRazorpay)

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrInvalidWebhookPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/razorpay", h.HandleRazorpay)

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
