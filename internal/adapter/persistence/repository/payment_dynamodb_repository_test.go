package repository

import (
	"testing"
	"time"

	"apnaghar/internal/domain/entities"
)

func TestPaymentItemRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	payment := entities.Payment{
		ID:               "pay-1",
		TransactionID:    "TXN-20260829-0A1B2C3D",
		BookingID:        "bk-1",
		BuyerID:          "buyer-1",
		Amount:           250000.50,
		Currency:         "INR",
		PaymentMethod:    "upi",
		PaymentType:      "token",
		Status:           entities.PaymentStatusCompleted,
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_gw_abc",
		GatewaySignature: "sig",
		RefundAmount:     100,
		FailureReason:    "",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	got := fromPaymentItem(toPaymentItem(payment))

	if got.PaymentType != "token" {
		t.Fatalf("payment_type lost in round trip: got %q", got.PaymentType)
	}
	if got.PaymentMethod != "upi" || got.TransactionID != payment.TransactionID {
		t.Fatalf("unexpected payment: %+v", got)
	}
	if got.Amount != payment.Amount || got.RefundAmount != payment.RefundAmount {
		t.Fatalf("amounts lost in round trip: %+v", got)
	}
	if got.Status != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if !got.CreatedAt.Equal(payment.CreatedAt) || !got.UpdatedAt.Equal(payment.UpdatedAt) {
		t.Fatalf("timestamps lost in round trip: %+v", got)
	}
}
