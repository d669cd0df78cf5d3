package entities

import "time"

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusFailed    RefundStatus = "failed"
	RefundStatusReversed  RefundStatus = "reversed"
)

// Refund is one refund attempt against a Payment. The sum of processed
// refund amounts for a payment equals that payment's RefundAmount.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
//   - GSI2 (gateway_refund_id-index): gateway_refund_id
type Refund struct {
	ID              string       `json:"id"`
	RefundID        string       `json:"refund_id"`
	PaymentID       string       `json:"payment_id"`
	Amount          float64      `json:"amount"`
	Reason          string       `json:"reason,omitempty"`
	Status          RefundStatus `json:"status"`
	GatewayRefundID string       `json:"gateway_refund_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
