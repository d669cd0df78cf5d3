package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
// Update replaces the full item and requires it to exist.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Booking, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
}
