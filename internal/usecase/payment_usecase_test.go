package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	"apnaghar/internal/usecase/interfaces"
	mock_interfaces "apnaghar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	payments *mock_interfaces.MockIPaymentRepository
	refunds  *mock_interfaces.MockIRefundRepository
	bookings *mock_interfaces.MockIBookingRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks, *events.Bus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		refunds:  mock_interfaces.NewMockIRefundRepository(ctrl),
		bookings: mock_interfaces.NewMockIBookingRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	bus := events.NewBus()
	uc := NewPaymentUseCase(m.payments, m.refunds, m.bookings, m.gateway, bus)
	return uc, m, bus
}

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("zero amount rejected", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		_, err := uc.CreatePayment(context.Background(), buyer(), CreatePaymentInput{BookingID: "bk-1"})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("foreign booking forbidden", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", BuyerID: "someone-else"}, nil)

		_, err := uc.CreatePayment(context.Background(), buyer(), CreatePaymentInput{BookingID: "bk-1", Amount: 100})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("order created with paise amount and INR default", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", BuyerID: "buyer-1"}, nil)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), int64(25000050), "INR", gomock.Any(), gomock.Any()).
			Return(interfaces.GatewayOrder{ID: "order_abc"}, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !strings.HasPrefix(p.TransactionID, "TXN-") {
					t.Fatalf("unexpected transaction id %q", p.TransactionID)
				}
				if p.GatewayOrderID != "order_abc" || p.Status != entities.PaymentStatusPending {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		payment, err := uc.CreatePayment(context.Background(), buyer(), CreatePaymentInput{BookingID: "bk-1", Amount: 250000.50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Currency != "INR" {
			t.Fatalf("expected INR default, got %s", payment.Currency)
		}
	})

	t.Run("gateway failure persists failed payment without error", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		m.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", BuyerID: "buyer-1"}, nil)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GatewayOrder{}, errors.New("gateway down"))
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		payment, err := uc.CreatePayment(context.Background(), buyer(), CreatePaymentInput{BookingID: "bk-1", Amount: 100})
		if err != nil {
			t.Fatalf("gateway failure must not surface as an error, got %v", err)
		}
		if payment.Status != entities.PaymentStatusFailed || payment.FailureReason != "gateway down" {
			t.Fatalf("unexpected payment: %+v", payment)
		}
		if len(published) != 1 || published[0].Name() != events.NamePaymentFailed {
			t.Fatalf("expected PaymentFailed event, got %v", published)
		}
	})
}

func TestPaymentUseCase_VerifyPayment(t *testing.T) {
	pending := entities.Payment{ID: "pay-1", BuyerID: "buyer-1", BookingID: "bk-1", Amount: 100, Status: entities.PaymentStatusPending, GatewayOrderID: "order_abc"}
	in := VerifyPaymentInput{GatewayOrderID: "order_abc", GatewayPaymentID: "pay_gw", GatewaySignature: "sig"}

	t.Run("bad signature", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().GetByGatewayOrderID(gomock.Any(), "order_abc").Return(pending, nil)
		m.gateway.EXPECT().VerifyPaymentSignature("order_abc", "pay_gw", "sig").Return(false)

		_, err := uc.VerifyPayment(context.Background(), buyer(), in)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("order resolving to a different payment rejected", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().GetByGatewayOrderID(gomock.Any(), "order_abc").Return(pending, nil)

		mismatched := in
		mismatched.PaymentID = "pay-2"
		_, err := uc.VerifyPayment(context.Background(), buyer(), mismatched)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("captured completes and publishes", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		m.payments.EXPECT().GetByGatewayOrderID(gomock.Any(), "order_abc").Return(pending, nil)
		m.gateway.EXPECT().VerifyPaymentSignature("order_abc", "pay_gw", "sig").Return(true)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pending, nil)
		m.gateway.EXPECT().FetchPayment(gomock.Any(), "pay_gw").Return(interfaces.GatewayPayment{ID: "pay_gw", Status: "captured"}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted || p.GatewayPaymentID != "pay_gw" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		payment, err := uc.VerifyPayment(context.Background(), buyer(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", payment.Status)
		}
		if len(published) != 1 || published[0].Name() != events.NamePaymentCompleted {
			t.Fatalf("expected PaymentCompleted, got %v", published)
		}
		if published[0].(events.PaymentCompleted).BookingID != "bk-1" {
			t.Fatalf("expected booking id on event")
		}
	})

	t.Run("stale gateway state does not downgrade", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		completed := pending
		completed.Status = entities.PaymentStatusCompleted
		m.payments.EXPECT().GetByGatewayOrderID(gomock.Any(), "order_abc").Return(completed, nil)
		m.gateway.EXPECT().VerifyPaymentSignature("order_abc", "pay_gw", "sig").Return(true)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(completed, nil)
		m.gateway.EXPECT().FetchPayment(gomock.Any(), "pay_gw").Return(interfaces.GatewayPayment{ID: "pay_gw", Status: "authorized"}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted {
					t.Fatalf("status must not downgrade, got %s", p.Status)
				}
				return p, nil
			},
		)

		if _, err := uc.VerifyPayment(context.Background(), buyer(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(published) != 0 {
			t.Fatalf("ignored transition must not publish, got %v", published)
		}
	})
}

func webhookBody(event, paymentID, orderID, status string) []byte {
	return []byte(`{"event":"` + event + `","payload":{"payment":{"entity":{"id":"` + paymentID + `","order_id":"` + orderID + `","status":"` + status + `"}}}}`)
}

func TestPaymentUseCase_HandleWebhook(t *testing.T) {
	t.Run("bad signature mutates nothing", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		body := webhookBody("payment.captured", "pay_gw", "order_abc", "captured")
		m.gateway.EXPECT().VerifyWebhookSignature(body, "bad").Return(false)

		if err := uc.HandleWebhook(context.Background(), body, "bad"); !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		body := []byte("{not json")
		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("unknown event kind acknowledged", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		body := []byte(`{"event":"order.paid","payload":{}}`)
		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown payment acknowledged", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		body := webhookBody("payment.captured", "pay_gw", "order_abc", "captured")
		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
		m.payments.EXPECT().GetByGatewayPaymentID(gomock.Any(), "pay_gw").Return(entities.Payment{}, nil)
		m.payments.EXPECT().GetByGatewayOrderID(gomock.Any(), "order_abc").Return(entities.Payment{}, nil)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("captured webhook completes payment", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		pending := entities.Payment{ID: "pay-1", BuyerID: "buyer-1", BookingID: "bk-1", Amount: 100, Status: entities.PaymentStatusPending}
		body := webhookBody("payment.captured", "pay_gw", "order_abc", "captured")
		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
		m.payments.EXPECT().GetByGatewayPaymentID(gomock.Any(), "pay_gw").Return(pending, nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pending, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted || p.GatewayPaymentID != "pay_gw" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(published) != 1 || published[0].Name() != events.NamePaymentCompleted {
			t.Fatalf("expected PaymentCompleted, got %v", published)
		}
	})

	t.Run("duplicate captured webhook is a no-op", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		done := entities.Payment{ID: "pay-1", BuyerID: "buyer-1", Amount: 100, Status: entities.PaymentStatusCompleted, GatewayPaymentID: "pay_gw"}
		body := webhookBody("payment.captured", "pay_gw", "order_abc", "captured")
		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
		m.payments.EXPECT().GetByGatewayPaymentID(gomock.Any(), "pay_gw").Return(done, nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(done, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted {
					t.Fatalf("replay must not change status, got %s", p.Status)
				}
				return p, nil
			},
		)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(published) != 0 {
			t.Fatalf("replay must not publish, got %v", published)
		}
	})

	t.Run("refund processed webhook folds aggregates", func(t *testing.T) {
		uc, m, bus := newPaymentUseCaseForTest(t)
		var published []events.Event
		bus.SubscribeAll(func(_ context.Context, e events.Event) { published = append(published, e) })

		body := []byte(`{"event":"refund.processed","payload":{"refund":{"entity":{"id":"rfnd_gw","payment_id":"pay_gw","amount":5000,"status":"processed"}}}}`)
		refund := entities.Refund{ID: "ref-1", RefundID: "REF-X", PaymentID: "pay-1", Amount: 50, Status: entities.RefundStatusPending}
		payment := entities.Payment{ID: "pay-1", BuyerID: "buyer-1", Amount: 100, Status: entities.PaymentStatusCompleted, GatewayPaymentID: "pay_gw"}

		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
		m.refunds.EXPECT().GetByGatewayRefundID(gomock.Any(), "rfnd_gw").Return(refund, nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil).Times(2)
		m.refunds.EXPECT().GetByID(gomock.Any(), "ref-1").Return(refund, nil)
		m.refunds.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				if r.Status != entities.RefundStatusProcessed {
					t.Fatalf("expected processed refund, got %s", r.Status)
				}
				return r, nil
			},
		)
		m.refunds.EXPECT().ListByPaymentID(gomock.Any(), "pay-1").Return([]entities.Refund{
			{ID: "ref-1", Amount: 50, Status: entities.RefundStatusProcessed},
		}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.RefundAmount != 50 || p.Status != entities.PaymentStatusPartiallyRefunded {
					t.Fatalf("unexpected aggregates: %+v", p)
				}
				return p, nil
			},
		)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(published) != 1 || published[0].Name() != events.NameRefundProcessed {
			t.Fatalf("expected RefundProcessed, got %v", published)
		}
	})

	t.Run("duplicate refund webhook is a no-op", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		body := []byte(`{"event":"refund.processed","payload":{"refund":{"entity":{"id":"rfnd_gw","payment_id":"pay_gw","amount":5000,"status":"processed"}}}}`)
		refund := entities.Refund{ID: "ref-1", PaymentID: "pay-1", Amount: 50, Status: entities.RefundStatusProcessed}
		payment := entities.Payment{ID: "pay-1", Amount: 100, Status: entities.PaymentStatusPartiallyRefunded}

		m.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
		m.refunds.EXPECT().GetByGatewayRefundID(gomock.Any(), "rfnd_gw").Return(refund, nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)
		m.refunds.EXPECT().GetByID(gomock.Any(), "ref-1").Return(refund, nil)

		if err := uc.HandleWebhook(context.Background(), body, "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_InitiateRefund(t *testing.T) {
	completed := entities.Payment{ID: "pay-1", BuyerID: "buyer-1", Amount: 100, Status: entities.PaymentStatusCompleted, GatewayPaymentID: "pay_gw"}

	t.Run("pending payment not refundable", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		pending := completed
		pending.Status = entities.PaymentStatusPending
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pending, nil).Times(2)

		_, err := uc.InitiateRefund(context.Background(), buyer(), InitiateRefundInput{PaymentID: "pay-1", Amount: 10})
		if !errors.Is(err, ErrRefundNotAllowed) {
			t.Fatalf("expected ErrRefundNotAllowed, got %v", err)
		}
	})

	t.Run("refund exceeding remainder rejected", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		partial := completed
		partial.Status = entities.PaymentStatusPartiallyRefunded
		partial.RefundAmount = 80
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(partial, nil).Times(2)

		_, err := uc.InitiateRefund(context.Background(), buyer(), InitiateRefundInput{PaymentID: "pay-1", Amount: 30})
		if !errors.Is(err, ErrRefundExceedsAvailable) {
			t.Fatalf("expected ErrRefundExceedsAvailable, got %v", err)
		}
	})

	t.Run("zero amount defaults to full remainder", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(completed, nil).Times(2)
		m.refunds.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Refund{})).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				if r.Amount != 100 || !strings.HasPrefix(r.RefundID, "REF-") {
					t.Fatalf("unexpected refund: %+v", r)
				}
				return r, nil
			},
		)
		m.gateway.EXPECT().CreateRefund(gomock.Any(), "pay_gw", int64(10000), gomock.Any()).
			Return(interfaces.GatewayRefund{ID: "rfnd_gw", Status: "created"}, nil)
		m.refunds.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				if r.GatewayRefundID != "rfnd_gw" || r.Status != entities.RefundStatusPending {
					t.Fatalf("unexpected refund: %+v", r)
				}
				return r, nil
			},
		)

		refund, err := uc.InitiateRefund(context.Background(), buyer(), InitiateRefundInput{PaymentID: "pay-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refund.Amount != 100 {
			t.Fatalf("expected full remainder, got %.2f", refund.Amount)
		}
	})

	t.Run("gateway refund failure marks refund failed", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(completed, nil).Times(2)
		m.refunds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) { return r, nil },
		)
		m.gateway.EXPECT().CreateRefund(gomock.Any(), "pay_gw", gomock.Any(), gomock.Any()).
			Return(interfaces.GatewayRefund{}, errors.New("gateway down"))
		m.refunds.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				if r.Status != entities.RefundStatusFailed {
					t.Fatalf("expected failed refund, got %s", r.Status)
				}
				return r, nil
			},
		)

		if _, err := uc.InitiateRefund(context.Background(), buyer(), InitiateRefundInput{PaymentID: "pay-1", Amount: 10}); err == nil {
			t.Fatalf("expected gateway error")
		}
	})
}

func TestPaymentUseCase_HandleBookingStateChanged(t *testing.T) {
	t.Run("cancellation auto-refunds the remainder", func(t *testing.T) {
		uc, m, _ := newPaymentUseCaseForTest(t)
		completed := entities.Payment{ID: "pay-1", BookingID: "bk-1", Amount: 100, Status: entities.PaymentStatusCompleted, GatewayPaymentID: "pay_gw"}

		m.payments.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return([]entities.Payment{
			completed,
			{ID: "pay-2", BookingID: "bk-1", Amount: 50, Status: entities.PaymentStatusFailed},
		}, nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(completed, nil)
		m.refunds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				if r.Amount != 100 || r.Reason != "booking cancelled" {
					t.Fatalf("unexpected refund: %+v", r)
				}
				return r, nil
			},
		)
		m.gateway.EXPECT().CreateRefund(gomock.Any(), "pay_gw", int64(10000), gomock.Any()).
			Return(interfaces.GatewayRefund{ID: "rfnd_gw", Status: "created"}, nil)
		m.refunds.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Refund) (entities.Refund, error) { return r, nil },
		)

		uc.HandleBookingStateChanged(context.Background(), events.BookingStateChanged{
			Booking: entities.Booking{ID: "bk-1"},
			Old:     entities.BookingStatusTokenPaid,
			New:     entities.BookingStatusCancelled,
		})
	})

	t.Run("non-cancellation ignored", func(t *testing.T) {
		uc, _, _ := newPaymentUseCaseForTest(t)
		uc.HandleBookingStateChanged(context.Background(), events.BookingStateChanged{
			Booking: entities.Booking{ID: "bk-1"},
			New:     entities.BookingStatusConfirmed,
		})
	})
}
