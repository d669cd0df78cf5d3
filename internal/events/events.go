package events

import "apnaghar/internal/domain/entities"

// Event names carried by the bus.
const (
	NameBookingCreated           = "booking.created"
	NameBookingStateChanged      = "booking.state_changed"
	NamePaymentCompleted         = "payment.completed"
	NamePaymentFailed            = "payment.failed"
	NameRefundProcessed          = "refund.processed"
	NameEvidenceAttached         = "evidence.attached"
	NameConstructionUpdatePosted = "construction_update.posted"
)

// Event is one fact published on the in-process bus. AggregateID identifies
// the aggregate instance (booking, payment, entity) the fact belongs to;
// events sharing an AggregateID are delivered in emission order.
type Event interface {
	Name() string
	AggregateID() string
}

type BookingCreated struct {
	Booking entities.Booking
}

func (e BookingCreated) Name() string        { return NameBookingCreated }
func (e BookingCreated) AggregateID() string { return e.Booking.ID }

type BookingStateChanged struct {
	Booking entities.Booking
	Old     entities.BookingStatus
	New     entities.BookingStatus
}

func (e BookingStateChanged) Name() string        { return NameBookingStateChanged }
func (e BookingStateChanged) AggregateID() string { return e.Booking.ID }

type PaymentCompleted struct {
	Payment   entities.Payment
	BookingID string
}

func (e PaymentCompleted) Name() string        { return NamePaymentCompleted }
func (e PaymentCompleted) AggregateID() string { return e.Payment.ID }

type PaymentFailed struct {
	Payment entities.Payment
	Reason  string
}

func (e PaymentFailed) Name() string        { return NamePaymentFailed }
func (e PaymentFailed) AggregateID() string { return e.Payment.ID }

type RefundProcessed struct {
	Refund  entities.Refund
	Payment entities.Payment
}

func (e RefundProcessed) Name() string        { return NameRefundProcessed }
func (e RefundProcessed) AggregateID() string { return e.Payment.ID }

type EvidenceAttached struct {
	Kind      string // "milestone" or "property"
	ProjectID string
	EntityID  string
	OwnerID   string // unit owner for property evidence, empty otherwise
	SHA256s   []string
	URLs      []string
}

func (e EvidenceAttached) Name() string        { return NameEvidenceAttached }
func (e EvidenceAttached) AggregateID() string { return e.EntityID }

type ConstructionUpdatePosted struct {
	Update entities.ConstructionUpdate
}

func (e ConstructionUpdatePosted) Name() string        { return NameConstructionUpdatePosted }
func (e ConstructionUpdatePosted) AggregateID() string { return e.Update.ID }
