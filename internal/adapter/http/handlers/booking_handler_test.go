package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apnaghar/internal/adapter/http/handlers/mocks"
	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asBuyer(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Set(principalContextKey, entities.Principal{ID: "buyer-1", Role: entities.RoleBuyer})
		c.Next()
	})
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing property id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"terms_accepted":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("anonymous caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), entities.Principal{}, gomock.Any()).
			Return(entities.Booking{}, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"property_id":"prop-1","terms_accepted":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("property already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Booking{}, usecase.ErrPropertyUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"property_id":"prop-1","terms_accepted":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("terms not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Booking{}, usecase.ErrTermsNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"property_id":"prop-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings", h.CreateBooking)

		now := time.Now().UTC()
		uc.EXPECT().CreateBooking(gomock.Any(), entities.Principal{ID: "buyer-1", Role: entities.RoleBuyer}, usecase.CreateBookingInput{PropertyID: "prop-1", TermsAccepted: true}).
			Return(entities.Booking{
				ID:            "bk-1",
				BookingNumber: "BK-20260829-0A1B2C3D",
				PropertyID:    "prop-1",
				BuyerID:       "buyer-1",
				Status:        entities.BookingStatusPending,
				TokenAmount:   250000,
				TotalAmount:   5000000,
				AmountDue:     5000000,
				CreatedAt:     now,
				UpdatedAt:     now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"property_id":"prop-1","terms_accepted":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["booking_number"] != "BK-20260829-0A1B2C3D" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBookingHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm out of sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings/:id/confirm", h.ConfirmBooking)

		uc.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), "bk-1").
			Return(entities.Booking{}, usecase.ErrInvalidBookingState)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("sign agreement success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings/:id/sign-agreement", h.SignAgreement)

		uc.EXPECT().SignAgreement(gomock.Any(), gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusAgreementSigned}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/sign-agreement", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings/:id/cancel", h.CancelBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/cancel", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings/:id/cancel", h.CancelBooking)

		uc.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), "bk-1", usecase.CancelBookingInput{Reason: "changed plans"}).
			Return(entities.Booking{}, usecase.ErrBookingNotCancellable)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/cancel", bytes.NewBufferString(`{"reason":"changed plans"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		asBuyer(r)
		r.POST("/v1/bookings/:id/cancel", h.CancelBooking)

		uc.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), "bk-1", gomock.Any()).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusCancelled, CancellationReason: "changed plans"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/cancel", bytes.NewBufferString(`{"reason":"changed plans"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	r := gin.New()
	asBuyer(r)
	r.GET("/v1/bookings", h.ListBookings)

	uc.EXPECT().ListOwn(gomock.Any(), entities.Principal{ID: "buyer-1", Role: entities.RoleBuyer}).
		Return([]entities.Booking{{ID: "bk-1"}, {ID: "bk-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Bookings []map[string]interface{} `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(body.Bookings))
	}
}
