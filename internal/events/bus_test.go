package events

import (
	"context"
	"testing"

	"apnaghar/internal/domain/entities"
)

func TestBus_Publish(t *testing.T) {
	t.Run("delivers to name subscribers then catch-all", func(t *testing.T) {
		bus := NewBus()
		var order []string
		bus.Subscribe(NameBookingCreated, func(_ context.Context, e Event) {
			order = append(order, "named:"+e.AggregateID())
		})
		bus.SubscribeAll(func(_ context.Context, e Event) {
			order = append(order, "all:"+e.AggregateID())
		})

		bus.Publish(context.Background(), BookingCreated{Booking: entities.Booking{ID: "bk-1"}})

		if len(order) != 2 || order[0] != "named:bk-1" || order[1] != "all:bk-1" {
			t.Fatalf("unexpected delivery order %v", order)
		}
	})

	t.Run("name subscribers only see their event", func(t *testing.T) {
		bus := NewBus()
		var got int
		bus.Subscribe(NamePaymentCompleted, func(_ context.Context, _ Event) { got++ })

		bus.Publish(context.Background(), BookingCreated{Booking: entities.Booking{ID: "bk-1"}})
		bus.Publish(context.Background(), PaymentCompleted{Payment: entities.Payment{ID: "pay-1"}})

		if got != 1 {
			t.Fatalf("expected 1 delivery, got %d", got)
		}
	})

	t.Run("panicking subscriber does not fail the publisher", func(t *testing.T) {
		bus := NewBus()
		var delivered bool
		bus.Subscribe(NameBookingCreated, func(_ context.Context, _ Event) { panic("boom") })
		bus.Subscribe(NameBookingCreated, func(_ context.Context, _ Event) { delivered = true })

		bus.Publish(context.Background(), BookingCreated{Booking: entities.Booking{ID: "bk-1"}})

		if !delivered {
			t.Fatalf("expected delivery after panic recovery")
		}
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		bus := NewBus()
		bus.Publish(context.Background(), PaymentFailed{Payment: entities.Payment{ID: "pay-1"}})
	})
}
