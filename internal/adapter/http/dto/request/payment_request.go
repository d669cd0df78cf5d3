package request

import "apnaghar/internal/usecase"

type CreatePaymentRequest struct {
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	PaymentType   string  `json:"payment_type"`
}

func (r CreatePaymentRequest) ToInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		BookingID:     r.BookingID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		PaymentType:   r.PaymentType,
	}
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string `json:"gateway_signature" binding:"required"`
}

func (r VerifyPaymentRequest) ToInput() usecase.VerifyPaymentInput {
	return usecase.VerifyPaymentInput{
		GatewayOrderID:   r.GatewayOrderID,
		GatewayPaymentID: r.GatewayPaymentID,
		GatewaySignature: r.GatewaySignature,
	}
}

type CreateRefundRequest struct {
	PaymentID string  `json:"payment_id" binding:"required"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
}

func (r CreateRefundRequest) ToInput() usecase.InitiateRefundInput {
	return usecase.InitiateRefundInput{
		PaymentID: r.PaymentID,
		Amount:    r.Amount,
		Reason:    r.Reason,
	}
}
