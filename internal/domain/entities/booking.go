package entities

import "time"

type BookingStatus string

const (
	BookingStatusPending           BookingStatus = "pending"
	BookingStatusTokenPaid         BookingStatus = "token_paid"
	BookingStatusConfirmed         BookingStatus = "confirmed"
	BookingStatusPaymentInProgress BookingStatus = "payment_in_progress"
	BookingStatusAgreementPending  BookingStatus = "agreement_pending"
	BookingStatusAgreementSigned   BookingStatus = "agreement_signed"
	BookingStatusCompleted         BookingStatus = "completed"
	BookingStatusCancelled         BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are defined for s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsActive reports whether a booking in this status still reserves its
// property. Any non-terminal status is active.
func (s BookingStatus) IsActive() bool { return !s.IsTerminal() }

// Booking is a buyer's reservation of a Property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (property_id-index): property_id
//   - GSI2 (buyer_id-index): buyer_id
//
// AmountPaid and AmountDue are recomputed from completed payment rows inside
// every settlement; the persisted values are caches. AmountDue is always
// TotalAmount - AmountPaid, never a free variable.
type Booking struct {
	ID                      string        `json:"id"`
	BookingNumber           string        `json:"booking_number"`
	PropertyID              string        `json:"property_id"`
	ProjectID               string        `json:"project_id"`
	BuyerID                 string        `json:"buyer_id"`
	PropertyPrice           float64       `json:"property_price"`
	TotalAmount             float64       `json:"total_amount"`
	TokenAmount             float64       `json:"token_amount"`
	AmountPaid              float64       `json:"amount_paid"`
	AmountDue               float64       `json:"amount_due"`
	Status                  BookingStatus `json:"status"`
	PaymentMethod           string        `json:"payment_method,omitempty"`
	TermsAccepted           bool          `json:"terms_accepted"`
	TokenPaymentDate        *time.Time    `json:"token_payment_date,omitempty"`
	CompletionDate          *time.Time    `json:"completion_date,omitempty"`
	CancellationReason      string        `json:"cancellation_reason,omitempty"`
	CancellationInitiatedBy string        `json:"cancellation_initiated_by,omitempty"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}
