package request

import "apnaghar/internal/usecase"

type CreateBookingRequest struct {
	PropertyID    string  `json:"property_id" binding:"required"`
	TokenAmount   float64 `json:"token_amount"`
	PaymentMethod string  `json:"payment_method"`
	TermsAccepted bool    `json:"terms_accepted"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		PropertyID:    r.PropertyID,
		TokenAmount:   r.TokenAmount,
		PaymentMethod: r.PaymentMethod,
		TermsAccepted: r.TermsAccepted,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
