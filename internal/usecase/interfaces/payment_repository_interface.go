package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Gateway lookups exist because webhooks identify payments by gateway ids,
// not ours. GetBy* return a zero Payment and nil error when nothing matches.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByGatewayOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	GetByGatewayPaymentID(ctx context.Context, paymentID string) (entities.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
}

// IRefundRepository abstracts DynamoDB persistence for Refund.
type IRefundRepository interface {
	Create(ctx context.Context, r entities.Refund) (entities.Refund, error)
	GetByID(ctx context.Context, id string) (entities.Refund, error)
	GetByGatewayRefundID(ctx context.Context, gatewayRefundID string) (entities.Refund, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Refund, error)
	Update(ctx context.Context, r entities.Refund) (entities.Refund, error)
}
