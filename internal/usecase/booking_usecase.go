package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	"apnaghar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrTermsNotAccepted      = errors.New("terms not accepted")
	ErrInvalidBookingInput   = errors.New("invalid booking input")
	ErrPropertyUnavailable   = errors.New("property unavailable")
	ErrDuplicateBooking      = errors.New("duplicate booking")
	ErrBookingNotCancellable = errors.New("booking not cancellable")
	ErrInvalidBookingState   = errors.New("invalid booking state for transition")
)

// defaultTokenFraction is applied when the buyer does not name a token
// amount: 5% of the property price.
const defaultTokenFraction = 0.05

// PropertyStatusMutator is the booking engine's view of the catalog store.
// The booking engine is the sole writer of property status; the catalog
// maintains the derived unit counters underneath.
type PropertyStatusMutator interface {
	MutatePropertyStatus(ctx context.Context, propertyID string, from, to entities.PropertyStatus, buyerID string) (entities.Property, error)
}

type CreateBookingInput struct {
	PropertyID    string
	TokenAmount   float64
	PaymentMethod string
	TermsAccepted bool
}

type CancelBookingInput struct {
	Reason string
}

// IBookingUseCase drives the booking lifecycle state machine. Settlement is
// event-driven: HandlePaymentCompleted is subscribed on the bus and folds
// completed payment rows into the booking's money aggregates.
type IBookingUseCase interface {
	CreateBooking(ctx context.Context, p entities.Principal, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, p entities.Principal, id string) (entities.Booking, error)
	ListOwn(ctx context.Context, p entities.Principal) ([]entities.Booking, error)
	ConfirmBooking(ctx context.Context, p entities.Principal, id string) (entities.Booking, error)
	RequestAgreement(ctx context.Context, p entities.Principal, id string) (entities.Booking, error)
	SignAgreement(ctx context.Context, p entities.Principal, id string) (entities.Booking, error)
	CancelBooking(ctx context.Context, p entities.Principal, id string, in CancelBookingInput) (entities.Booking, error)
	HandlePaymentCompleted(ctx context.Context, ev events.Event)
}

type BookingUseCase struct {
	bookings   interfaces.IBookingRepository
	properties interfaces.IPropertyRepository
	payments   interfaces.IPaymentRepository
	catalog    PropertyStatusMutator
	bus        *events.Bus
	locks      *keyedMutex
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(bookings interfaces.IBookingRepository, properties interfaces.IPropertyRepository, payments interfaces.IPaymentRepository, catalog PropertyStatusMutator, bus *events.Bus) *BookingUseCase {
	return &BookingUseCase{
		bookings:   bookings,
		properties: properties,
		payments:   payments,
		catalog:    catalog,
		bus:        bus,
		locks:      newKeyedMutex(),
	}
}

// CreateBooking reserves a property for a buyer. The available→booked swap is
// a conditional update in the catalog: of two concurrent creates against the
// same unit exactly one wins, the loser sees property_unavailable.
func (u *BookingUseCase) CreateBooking(ctx context.Context, p entities.Principal, in CreateBookingInput) (entities.Booking, error) {
	if p.IsAnonymous() {
		return entities.Booking{}, ErrUnauthorized
	}
	if p.Role != entities.RoleBuyer {
		return entities.Booking{}, ErrForbidden
	}
	if !in.TermsAccepted {
		return entities.Booking{}, ErrTermsNotAccepted
	}
	if in.TokenAmount < 0 {
		return entities.Booking{}, ErrInvalidBookingInput
	}

	propertyID := strings.TrimSpace(in.PropertyID)
	property, err := u.properties.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Booking{}, err
	}
	if property.ID == "" {
		return entities.Booking{}, ErrPropertyNotFound
	}
	if property.Status != entities.PropertyStatusAvailable {
		return entities.Booking{}, ErrPropertyUnavailable
	}

	existing, err := u.bookings.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return entities.Booking{}, err
	}
	for _, b := range existing {
		if b.BuyerID == p.ID && b.Status.IsActive() {
			return entities.Booking{}, ErrDuplicateBooking
		}
	}

	reserved, err := u.catalog.MutatePropertyStatus(ctx, propertyID, entities.PropertyStatusAvailable, entities.PropertyStatusBooked, p.ID)
	if err != nil {
		return entities.Booking{}, err
	}
	if reserved.ID == "" {
		// Lost the check-and-reserve race.
		return entities.Booking{}, ErrPropertyUnavailable
	}

	now := time.Now().UTC()
	tokenAmount := in.TokenAmount
	if tokenAmount == 0 {
		tokenAmount = property.Price * defaultTokenFraction
	}

	booking := entities.Booking{
		ID:            uuid.NewString(),
		BookingNumber: formattedID("BK", now),
		PropertyID:    propertyID,
		ProjectID:     property.ProjectID,
		BuyerID:       p.ID,
		PropertyPrice: property.Price,
		TotalAmount:   property.Price,
		TokenAmount:   tokenAmount,
		AmountPaid:    0,
		AmountDue:     property.Price,
		Status:        entities.BookingStatusPending,
		PaymentMethod: in.PaymentMethod,
		TermsAccepted: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.bookings.Create(ctx, booking)
	if err != nil {
		log.Printf("[booking][usecase] create failed property_id=%s buyer_id=%s err=%v", propertyID, p.ID, err)
		// Hand the unit back; the reservation is ours to undo.
		if _, relErr := u.catalog.MutatePropertyStatus(ctx, propertyID, entities.PropertyStatusBooked, entities.PropertyStatusAvailable, ""); relErr != nil {
			log.Printf("[booking][usecase] property release after failed create failed property_id=%s err=%v", propertyID, relErr)
		}
		return entities.Booking{}, err
	}

	log.Printf("[booking][usecase] booking created booking_id=%s number=%s property_id=%s buyer_id=%s token=%.2f", created.ID, created.BookingNumber, propertyID, p.ID, tokenAmount)
	u.bus.Publish(ctx, events.BookingCreated{Booking: created})
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, p entities.Principal, id string) (entities.Booking, error) {
	if p.IsAnonymous() {
		return entities.Booking{}, ErrUnauthorized
	}

	booking, err := u.bookings.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if p.Role != entities.RoleStaff && booking.BuyerID != p.ID {
		return entities.Booking{}, ErrForbidden
	}
	return booking, nil
}

func (u *BookingUseCase) ListOwn(ctx context.Context, p entities.Principal) ([]entities.Booking, error) {
	if p.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	return u.bookings.ListByBuyerID(ctx, p.ID)
}

// ConfirmBooking is the builder acknowledging the token payment:
// token_paid → confirmed.
func (u *BookingUseCase) ConfirmBooking(ctx context.Context, p entities.Principal, id string) (entities.Booking, error) {
	if err := requireRoleOneOf(p, entities.RoleBuilder, entities.RoleStaff); err != nil {
		return entities.Booking{}, err
	}
	return u.transition(ctx, id, entities.BookingStatusTokenPaid, entities.BookingStatusConfirmed)
}

// RequestAgreement moves confirmed → agreement_pending.
func (u *BookingUseCase) RequestAgreement(ctx context.Context, p entities.Principal, id string) (entities.Booking, error) {
	if err := requireRoleOneOf(p, entities.RoleBuilder, entities.RoleStaff); err != nil {
		return entities.Booking{}, err
	}
	return u.transition(ctx, id, entities.BookingStatusConfirmed, entities.BookingStatusAgreementPending)
}

// SignAgreement moves agreement_pending → agreement_signed; only the buyer
// on the booking may sign.
func (u *BookingUseCase) SignAgreement(ctx context.Context, p entities.Principal, id string) (entities.Booking, error) {
	if p.IsAnonymous() {
		return entities.Booking{}, ErrUnauthorized
	}

	unlock := u.locks.Lock(bookingLockKey(id))
	defer unlock()

	booking, err := u.bookings.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if p.Role != entities.RoleStaff && booking.BuyerID != p.ID {
		return entities.Booking{}, ErrForbidden
	}
	if booking.Status != entities.BookingStatusAgreementPending {
		return entities.Booking{}, ErrInvalidBookingState
	}

	old := booking.Status
	booking.Status = entities.BookingStatusAgreementSigned
	updated, err := u.bookings.Update(ctx, booking)
	if err != nil {
		return entities.Booking{}, err
	}

	log.Printf("[booking][usecase] state changed booking_id=%s old=%s new=%s", updated.ID, old, updated.Status)
	u.bus.Publish(ctx, events.BookingStateChanged{Booking: updated, Old: old, New: updated.Status})
	return updated, nil
}

func (u *BookingUseCase) transition(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error) {
	unlock := u.locks.Lock(bookingLockKey(id))
	defer unlock()

	booking, err := u.bookings.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if booking.Status != from {
		return entities.Booking{}, ErrInvalidBookingState
	}

	booking.Status = to
	updated, err := u.bookings.Update(ctx, booking)
	if err != nil {
		return entities.Booking{}, err
	}

	log.Printf("[booking][usecase] state changed booking_id=%s old=%s new=%s", updated.ID, from, to)
	u.bus.Publish(ctx, events.BookingStateChanged{Booking: updated, Old: from, New: to})
	return updated, nil
}

// CancelBooking moves any non-terminal booking to cancelled. The property is
// released to available only when no other active booking holds it. When
// completed payments exist the payment orchestrator reacts to the emitted
// BookingStateChanged and auto-refunds amount_paid.
func (u *BookingUseCase) CancelBooking(ctx context.Context, p entities.Principal, id string, in CancelBookingInput) (entities.Booking, error) {
	if p.IsAnonymous() {
		return entities.Booking{}, ErrUnauthorized
	}

	unlock := u.locks.Lock(bookingLockKey(id))
	defer unlock()

	booking, err := u.bookings.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if p.Role != entities.RoleStaff && booking.BuyerID != p.ID {
		return entities.Booking{}, ErrForbidden
	}
	if booking.Status.IsTerminal() {
		return entities.Booking{}, ErrBookingNotCancellable
	}

	old := booking.Status
	booking.Status = entities.BookingStatusCancelled
	booking.CancellationReason = in.Reason
	booking.CancellationInitiatedBy = p.ID

	updated, err := u.bookings.Update(ctx, booking)
	if err != nil {
		return entities.Booking{}, err
	}

	u.releaseProperty(ctx, updated)

	log.Printf("[booking][usecase] booking cancelled booking_id=%s old=%s reason=%q initiated_by=%s", updated.ID, old, in.Reason, p.ID)
	u.bus.Publish(ctx, events.BookingStateChanged{Booking: updated, Old: old, New: entities.BookingStatusCancelled})
	return updated, nil
}

// releaseProperty returns the unit to available iff no other active booking
// references it.
func (u *BookingUseCase) releaseProperty(ctx context.Context, cancelled entities.Booking) {
	siblings, err := u.bookings.ListByPropertyID(ctx, cancelled.PropertyID)
	if err != nil {
		log.Printf("[booking][usecase] sibling booking list failed property_id=%s err=%v", cancelled.PropertyID, err)
		return
	}
	for _, b := range siblings {
		if b.ID != cancelled.ID && b.Status.IsActive() {
			return
		}
	}
	if _, err := u.catalog.MutatePropertyStatus(ctx, cancelled.PropertyID, entities.PropertyStatusBooked, entities.PropertyStatusAvailable, ""); err != nil {
		log.Printf("[booking][usecase] property release failed property_id=%s err=%v", cancelled.PropertyID, err)
	}
}

// HandlePaymentCompleted is the settlement reducer, subscribed on the bus.
// It is idempotent by construction: amount_paid is recomputed as the sum of
// completed payment rows, so replaying an already-accounted payment changes
// nothing.
func (u *BookingUseCase) HandlePaymentCompleted(ctx context.Context, ev events.Event) {
	completed, ok := ev.(events.PaymentCompleted)
	if !ok || completed.BookingID == "" {
		return
	}
	bookingID := completed.BookingID

	unlock := u.locks.Lock(bookingLockKey(bookingID))
	defer unlock()

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[booking][reducer] booking load failed booking_id=%s err=%v", bookingID, err)
		return
	}
	if booking.ID == "" {
		log.Printf("[booking][reducer] booking not found booking_id=%s", bookingID)
		return
	}

	payments, err := u.payments.ListByBookingID(ctx, bookingID)
	if err != nil {
		log.Printf("[booking][reducer] payment list failed booking_id=%s err=%v", bookingID, err)
		return
	}

	amountPaid := 0.0
	for _, pay := range payments {
		if pay.Status == entities.PaymentStatusCompleted {
			amountPaid += pay.Amount
		}
	}

	old := booking.Status
	now := time.Now().UTC()
	booking.AmountPaid = amountPaid
	booking.AmountDue = booking.TotalAmount - amountPaid

	// State advance rules, first match wins.
	switch {
	case booking.Status == entities.BookingStatusPending && amountPaid >= booking.TokenAmount:
		booking.Status = entities.BookingStatusTokenPaid
		booking.TokenPaymentDate = &now
	case amountPaid >= booking.TotalAmount && booking.Status != entities.BookingStatusCompleted && !booking.Status.IsTerminal():
		booking.Status = entities.BookingStatusCompleted
		booking.CompletionDate = &now
	case amountPaid > 0 && booking.Status == entities.BookingStatusConfirmed:
		booking.Status = entities.BookingStatusPaymentInProgress
	}

	updated, err := u.bookings.Update(ctx, booking)
	if err != nil {
		log.Printf("[booking][reducer] booking persist failed booking_id=%s err=%v", bookingID, err)
		return
	}

	if updated.Status == entities.BookingStatusCompleted && old != entities.BookingStatusCompleted {
		if _, err := u.catalog.MutatePropertyStatus(ctx, updated.PropertyID, entities.PropertyStatusBooked, entities.PropertyStatusSold, updated.BuyerID); err != nil {
			log.Printf("[booking][reducer] property sold transition failed property_id=%s err=%v", updated.PropertyID, err)
		}
	}

	log.Printf("[booking][reducer] settled booking_id=%s amount_paid=%.2f amount_due=%.2f old=%s new=%s", updated.ID, updated.AmountPaid, updated.AmountDue, old, updated.Status)
	if updated.Status != old {
		u.bus.Publish(ctx, events.BookingStateChanged{Booking: updated, Old: old, New: updated.Status})
	}
}

func bookingLockKey(id string) string { return "booking:" + id }

func requireRoleOneOf(p entities.Principal, roles ...entities.Role) error {
	if p.IsAnonymous() {
		return ErrUnauthorized
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
