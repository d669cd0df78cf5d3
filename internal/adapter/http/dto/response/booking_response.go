package response

import (
	"time"

	"apnaghar/internal/domain/entities"
)

type BookingResponse struct {
	ID                      string     `json:"id"`
	BookingNumber           string     `json:"booking_number"`
	PropertyID              string     `json:"property_id"`
	ProjectID               string     `json:"project_id"`
	BuyerID                 string     `json:"buyer_id"`
	PropertyPrice           float64    `json:"property_price"`
	TotalAmount             float64    `json:"total_amount"`
	TokenAmount             float64    `json:"token_amount"`
	AmountPaid              float64    `json:"amount_paid"`
	AmountDue               float64    `json:"amount_due"`
	Status                  string     `json:"status"`
	PaymentMethod           string     `json:"payment_method,omitempty"`
	TokenPaymentDate        *time.Time `json:"token_payment_date,omitempty"`
	CompletionDate          *time.Time `json:"completion_date,omitempty"`
	CancellationReason      string     `json:"cancellation_reason,omitempty"`
	CancellationInitiatedBy string     `json:"cancellation_initiated_by,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                      b.ID,
		BookingNumber:           b.BookingNumber,
		PropertyID:              b.PropertyID,
		ProjectID:               b.ProjectID,
		BuyerID:                 b.BuyerID,
		PropertyPrice:           b.PropertyPrice,
		TotalAmount:             b.TotalAmount,
		TokenAmount:             b.TokenAmount,
		AmountPaid:              b.AmountPaid,
		AmountDue:               b.AmountDue,
		Status:                  string(b.Status),
		PaymentMethod:           b.PaymentMethod,
		TokenPaymentDate:        b.TokenPaymentDate,
		CompletionDate:          b.CompletionDate,
		CancellationReason:      b.CancellationReason,
		CancellationInitiatedBy: b.CancellationInitiatedBy,
		CreatedAt:               b.CreatedAt,
		UpdatedAt:               b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
