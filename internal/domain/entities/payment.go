package entities

import "time"

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusProcessing        PaymentStatus = "processing"
	PaymentStatusCompleted         PaymentStatus = "completed"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// paymentStatusRank orders statuses along the monotone transition chain.
// A payment never moves to a lower rank; refund statuses only follow
// completed.
var paymentStatusRank = map[PaymentStatus]int{
	PaymentStatusPending:           0,
	PaymentStatusProcessing:        1,
	PaymentStatusCompleted:         2,
	PaymentStatusFailed:            2,
	PaymentStatusCancelled:         2,
	PaymentStatusPartiallyRefunded: 3,
	PaymentStatusRefunded:          4,
}

// CanTransition reports whether moving from s to next preserves
// monotonicity. failed/cancelled are terminal; refund statuses are reachable
// only from completed or partially_refunded.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded:
		return false
	}
	switch next {
	case PaymentStatusRefunded, PaymentStatusPartiallyRefunded:
		return s == PaymentStatusCompleted || s == PaymentStatusPartiallyRefunded
	}
	return paymentStatusRank[next] > paymentStatusRank[s]
}

// Payment is one collection attempt against the gateway, optionally tied to
// a Booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//   - GSI2 (gateway_order_id-index): gateway_order_id
//   - GSI3 (gateway_payment_id-index): gateway_payment_id
//
// RefundAmount is recomputed from processed refund rows; refund_amount never
// exceeds Amount.
type Payment struct {
	ID               string        `json:"id"`
	TransactionID    string        `json:"transaction_id"`
	BookingID        string        `json:"booking_id,omitempty"`
	BuyerID          string        `json:"buyer_id"`
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	PaymentMethod    string        `json:"payment_method"`
	PaymentType      string        `json:"payment_type,omitempty"`
	Status           PaymentStatus `json:"status"`
	GatewayOrderID   string        `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	GatewaySignature string        `json:"-"`
	RefundAmount     float64       `json:"refund_amount"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
