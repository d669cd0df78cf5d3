package response

import (
	"time"

	"apnaghar/internal/domain/entities"
)

type PaymentResponse struct {
	ID               string    `json:"id"`
	TransactionID    string    `json:"transaction_id"`
	BookingID        string    `json:"booking_id,omitempty"`
	BuyerID          string    `json:"buyer_id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentType      string    `json:"payment_type,omitempty"`
	Status           string    `json:"status"`
	GatewayOrderID   string    `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	RefundAmount     float64   `json:"refund_amount"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		TransactionID:    p.TransactionID,
		BookingID:        p.BookingID,
		BuyerID:          p.BuyerID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		PaymentMethod:    p.PaymentMethod,
		PaymentType:      p.PaymentType,
		Status:           string(p.Status),
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		RefundAmount:     p.RefundAmount,
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type RefundResponse struct {
	ID              string    `json:"id"`
	RefundID        string    `json:"refund_id"`
	PaymentID       string    `json:"payment_id"`
	Amount          float64   `json:"amount"`
	Reason          string    `json:"reason,omitempty"`
	Status          string    `json:"status"`
	GatewayRefundID string    `json:"gateway_refund_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromRefund(r entities.Refund) RefundResponse {
	return RefundResponse{
		ID:              r.ID,
		RefundID:        r.RefundID,
		PaymentID:       r.PaymentID,
		Amount:          r.Amount,
		Reason:          r.Reason,
		Status:          string(r.Status),
		GatewayRefundID: r.GatewayRefundID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
