package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	"apnaghar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentInput     = errors.New("invalid payment input")
	ErrInvalidSignature        = errors.New("invalid payment signature")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
	ErrRefundNotAllowed        = errors.New("refund not allowed for payment state")
	ErrInvalidRefundAmount     = errors.New("invalid refund amount")
	ErrRefundExceedsAvailable  = errors.New("refund exceeds available amount")
)

// ErrGatewayUnavailable is the gateway port's deadline sentinel, re-exported
// so callers map it without reaching below the usecase layer.
var ErrGatewayUnavailable = interfaces.ErrGatewayUnavailable

const defaultCurrency = "INR"

type CreatePaymentInput struct {
	BookingID     string
	Amount        float64
	Currency      string
	PaymentMethod string
	PaymentType   string
}

type VerifyPaymentInput struct {
	PaymentID        string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

type InitiateRefundInput struct {
	PaymentID string
	Amount    float64
	Reason    string
}

// IPaymentUseCase orchestrates gateway orders, signature verification,
// webhook ingestion, and the refund lifecycle. Payment status transitions are
// monotone and serialized per payment; the orchestrator never downgrades.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, p entities.Principal, in CreatePaymentInput) (entities.Payment, error)
	VerifyPayment(ctx context.Context, p entities.Principal, in VerifyPaymentInput) (entities.Payment, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	InitiateRefund(ctx context.Context, p entities.Principal, in InitiateRefundInput) (entities.Refund, error)
	GetByID(ctx context.Context, p entities.Principal, id string) (entities.Payment, error)
	ListByBookingID(ctx context.Context, p entities.Principal, bookingID string) ([]entities.Payment, error)
	HandleBookingStateChanged(ctx context.Context, ev events.Event)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	refunds  interfaces.IRefundRepository
	bookings interfaces.IBookingRepository
	gateway  interfaces.IPaymentGateway
	bus      *events.Bus
	locks    *keyedMutex
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(payments interfaces.IPaymentRepository, refunds interfaces.IRefundRepository, bookings interfaces.IBookingRepository, gateway interfaces.IPaymentGateway, bus *events.Bus) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		refunds:  refunds,
		bookings: bookings,
		gateway:  gateway,
		bus:      bus,
		locks:    newKeyedMutex(),
	}
}

// CreatePayment creates a payment row and a gateway order for it. Gateway
// failure is not an HTTP failure: the payment is persisted as failed with
// failure_reason and returned to the caller, who creates a new Payment to
// retry.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, p entities.Principal, in CreatePaymentInput) (entities.Payment, error) {
	if p.IsAnonymous() {
		return entities.Payment{}, ErrUnauthorized
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	bookingID := strings.TrimSpace(in.BookingID)
	if bookingID != "" {
		booking, err := u.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return entities.Payment{}, err
		}
		if booking.ID == "" {
			return entities.Payment{}, ErrBookingNotFound
		}
		if p.Role != entities.RoleStaff && booking.BuyerID != p.ID {
			return entities.Payment{}, ErrForbidden
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = "razorpay"
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:            uuid.NewString(),
		TransactionID: formattedID("TXN", now),
		BookingID:     bookingID,
		BuyerID:       p.ID,
		Amount:        in.Amount,
		Currency:      currency,
		PaymentMethod: method,
		PaymentType:   in.PaymentType,
		Status:        entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	log.Printf("[payment][usecase] creating gateway order transaction_id=%s booking_id=%s amount=%.2f %s", payment.TransactionID, bookingID, in.Amount, currency)
	order, err := u.gateway.CreateOrder(ctx, toMinorUnits(in.Amount), currency, payment.TransactionID, map[string]interface{}{
		"booking_id": bookingID,
		"buyer_id":   p.ID,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway order failed transaction_id=%s err=%v", payment.TransactionID, err)
		payment.Status = entities.PaymentStatusFailed
		payment.FailureReason = err.Error()
	} else {
		payment.GatewayOrderID = order.ID
	}

	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] payment persist failed transaction_id=%s err=%v", payment.TransactionID, err)
		return entities.Payment{}, err
	}

	if created.Status == entities.PaymentStatusFailed {
		u.bus.Publish(ctx, events.PaymentFailed{Payment: created, Reason: created.FailureReason})
	}
	log.Printf("[payment][usecase] payment created payment_id=%s transaction_id=%s status=%s gateway_order_id=%s", created.ID, created.TransactionID, created.Status, created.GatewayOrderID)
	return created, nil
}

// VerifyPayment is the client-side verification path: the frontend returns
// from checkout with (order_id, payment_id, signature). The HMAC is checked
// first; only then is the gateway consulted for the authoritative state.
func (u *PaymentUseCase) VerifyPayment(ctx context.Context, p entities.Principal, in VerifyPaymentInput) (entities.Payment, error) {
	if p.IsAnonymous() {
		return entities.Payment{}, ErrUnauthorized
	}
	orderID := strings.TrimSpace(in.GatewayOrderID)
	gatewayPaymentID := strings.TrimSpace(in.GatewayPaymentID)
	if orderID == "" || gatewayPaymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	payment, err := u.payments.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	// The order must belong to the payment addressed by the request path.
	if pathID := strings.TrimSpace(in.PaymentID); pathID != "" && pathID != payment.ID {
		log.Printf("[payment][usecase] verify path mismatch path_id=%s payment_id=%s gateway_order_id=%s", pathID, payment.ID, orderID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Role != entities.RoleStaff && payment.BuyerID != p.ID {
		return entities.Payment{}, ErrForbidden
	}

	if !u.gateway.VerifyPaymentSignature(orderID, gatewayPaymentID, in.GatewaySignature) {
		log.Printf("[payment][usecase] signature mismatch payment_id=%s gateway_order_id=%s", payment.ID, orderID)
		return entities.Payment{}, ErrInvalidSignature
	}

	unlock := u.locks.Lock(paymentLockKey(payment.ID))
	defer unlock()

	// Re-read under the lock: a webhook may have advanced the state.
	payment, err = u.payments.GetByID(ctx, payment.ID)
	if err != nil {
		return entities.Payment{}, err
	}

	gp, err := u.gateway.FetchPayment(ctx, gatewayPaymentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway fetch failed payment_id=%s gateway_payment_id=%s err=%v", payment.ID, gatewayPaymentID, err)
		return entities.Payment{}, err
	}

	payment.GatewayPaymentID = gp.ID
	payment.GatewaySignature = in.GatewaySignature
	return u.applyGatewayState(ctx, payment, gp.Status, gp.ErrorDescription)
}

// applyGatewayState maps a gateway payment status onto ours and persists the
// transition when it is monotone. Unknown gateway states leave the payment
// unchanged. Caller holds the payment lock.
func (u *PaymentUseCase) applyGatewayState(ctx context.Context, payment entities.Payment, gatewayStatus, failureReason string) (entities.Payment, error) {
	var next entities.PaymentStatus
	switch gatewayStatus {
	case "captured":
		next = entities.PaymentStatusCompleted
	case "authorized":
		next = entities.PaymentStatusProcessing
	case "failed":
		next = entities.PaymentStatusFailed
	default:
		updated, err := u.payments.Update(ctx, payment)
		if err != nil {
			return entities.Payment{}, err
		}
		log.Printf("[payment][usecase] gateway state %q leaves payment unchanged payment_id=%s status=%s", gatewayStatus, payment.ID, payment.Status)
		return updated, nil
	}

	if !payment.Status.CanTransition(next) {
		// Monotonicity: stale or duplicate gateway states are ignored.
		updated, err := u.payments.Update(ctx, payment)
		if err != nil {
			return entities.Payment{}, err
		}
		log.Printf("[payment][usecase] transition %s->%s ignored payment_id=%s", payment.Status, next, payment.ID)
		return updated, nil
	}

	payment.Status = next
	if next == entities.PaymentStatusFailed && failureReason != "" {
		payment.FailureReason = failureReason
	}
	updated, err := u.payments.Update(ctx, payment)
	if err != nil {
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] payment state changed payment_id=%s new=%s booking_id=%s", updated.ID, next, updated.BookingID)
	switch next {
	case entities.PaymentStatusCompleted:
		u.bus.Publish(ctx, events.PaymentCompleted{Payment: updated, BookingID: updated.BookingID})
	case entities.PaymentStatusFailed:
		u.bus.Publish(ctx, events.PaymentFailed{Payment: updated, Reason: updated.FailureReason})
	}
	return updated, nil
}

// webhookEnvelope is the gateway's webhook body shape.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				Status           string `json:"status"`
				Amount           int64  `json:"amount"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
		Refund struct {
			Entity struct {
				ID        string `json:"id"`
				PaymentID string `json:"payment_id"`
				Amount    int64  `json:"amount"`
				Status    string `json:"status"`
			} `json:"entity"`
		} `json:"refund"`
	} `json:"payload"`
}

// HandleWebhook ingests a signed gateway webhook. Signature failures return
// ErrInvalidWebhookSignature with no state mutation. Recognized event kinds
// mutate idempotently; unknown kinds and unknown payments are acknowledged
// without effect (nil error → 2xx).
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !u.gateway.VerifyWebhookSignature(body, signature) {
		log.Printf("[payment][webhook] signature verification failed body_len=%d", len(body))
		return ErrInvalidWebhookSignature
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.Printf("[payment][webhook] payload unmarshal failed err=%v", err)
		return ErrInvalidWebhookPayload
	}

	log.Printf("[payment][webhook] received event=%s", env.Event)
	switch env.Event {
	case "payment.captured", "payment.authorized", "payment.failed":
		return u.handlePaymentWebhook(ctx, env)
	case "refund.created", "refund.processed":
		return u.handleRefundWebhook(ctx, env)
	default:
		log.Printf("[payment][webhook] unrecognized event kind %q acknowledged", env.Event)
		return nil
	}
}

func (u *PaymentUseCase) handlePaymentWebhook(ctx context.Context, env webhookEnvelope) error {
	ent := env.Payload.Payment.Entity
	if ent.ID == "" {
		return ErrInvalidWebhookPayload
	}

	payment, err := u.payments.GetByGatewayPaymentID(ctx, ent.ID)
	if err != nil {
		return err
	}
	if payment.ID == "" && ent.OrderID != "" {
		// First webhook for this payment arrives before client verify; the
		// order id is the only correlation we hold.
		payment, err = u.payments.GetByGatewayOrderID(ctx, ent.OrderID)
		if err != nil {
			return err
		}
	}
	if payment.ID == "" {
		log.Printf("[payment][webhook] no matching payment gateway_payment_id=%s order_id=%s", ent.ID, ent.OrderID)
		return nil
	}

	unlock := u.locks.Lock(paymentLockKey(payment.ID))
	defer unlock()

	payment, err = u.payments.GetByID(ctx, payment.ID)
	if err != nil {
		return err
	}
	if payment.GatewayPaymentID == "" {
		payment.GatewayPaymentID = ent.ID
	}

	gatewayStatus := ent.Status
	if gatewayStatus == "" {
		switch env.Event {
		case "payment.captured":
			gatewayStatus = "captured"
		case "payment.authorized":
			gatewayStatus = "authorized"
		case "payment.failed":
			gatewayStatus = "failed"
		}
	}

	_, err = u.applyGatewayState(ctx, payment, gatewayStatus, ent.ErrorDescription)
	return err
}

func (u *PaymentUseCase) handleRefundWebhook(ctx context.Context, env webhookEnvelope) error {
	ent := env.Payload.Refund.Entity
	if ent.ID == "" {
		return ErrInvalidWebhookPayload
	}

	refund, err := u.refunds.GetByGatewayRefundID(ctx, ent.ID)
	if err != nil {
		return err
	}
	if refund.ID == "" {
		log.Printf("[payment][webhook] no matching refund gateway_refund_id=%s", ent.ID)
		return nil
	}

	payment, err := u.payments.GetByID(ctx, refund.PaymentID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		log.Printf("[payment][webhook] refund %s references missing payment %s", refund.ID, refund.PaymentID)
		return nil
	}

	unlock := u.locks.Lock(paymentLockKey(payment.ID))
	defer unlock()

	refund, err = u.refunds.GetByID(ctx, refund.ID)
	if err != nil {
		return err
	}
	if refund.Status == entities.RefundStatusProcessed {
		// Duplicate delivery; aggregates already reflect this refund.
		return nil
	}

	refund.Status = entities.RefundStatusProcessed
	refund, err = u.refunds.Update(ctx, refund)
	if err != nil {
		return err
	}

	return u.recomputeRefundAggregates(ctx, refund)
}

// recomputeRefundAggregates folds processed refund rows into the payment's
// refund_amount and status. Caller holds the payment lock.
func (u *PaymentUseCase) recomputeRefundAggregates(ctx context.Context, refund entities.Refund) error {
	payment, err := u.payments.GetByID(ctx, refund.PaymentID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		return nil
	}

	all, err := u.refunds.ListByPaymentID(ctx, payment.ID)
	if err != nil {
		return err
	}
	refunded := 0.0
	for _, r := range all {
		if r.Status == entities.RefundStatusProcessed {
			refunded += r.Amount
		}
	}

	payment.RefundAmount = refunded
	var next entities.PaymentStatus
	switch {
	case refunded >= payment.Amount:
		next = entities.PaymentStatusRefunded
	case refunded > 0:
		next = entities.PaymentStatusPartiallyRefunded
	}
	if next != "" && payment.Status.CanTransition(next) {
		payment.Status = next
	}

	updated, err := u.payments.Update(ctx, payment)
	if err != nil {
		return err
	}

	log.Printf("[payment][usecase] refund settled refund_id=%s payment_id=%s refund_amount=%.2f status=%s", refund.RefundID, updated.ID, updated.RefundAmount, updated.Status)
	u.bus.Publish(ctx, events.RefundProcessed{Refund: refund, Payment: updated})
	return nil
}

// InitiateRefund creates and executes a refund against a completed payment.
// Amount defaults to the unrefunded remainder.
func (u *PaymentUseCase) InitiateRefund(ctx context.Context, p entities.Principal, in InitiateRefundInput) (entities.Refund, error) {
	if p.IsAnonymous() {
		return entities.Refund{}, ErrUnauthorized
	}

	payment, err := u.payments.GetByID(ctx, strings.TrimSpace(in.PaymentID))
	if err != nil {
		return entities.Refund{}, err
	}
	if payment.ID == "" {
		return entities.Refund{}, ErrPaymentNotFound
	}
	if p.Role != entities.RoleStaff && payment.BuyerID != p.ID {
		return entities.Refund{}, ErrForbidden
	}

	unlock := u.locks.Lock(paymentLockKey(payment.ID))
	defer unlock()

	return u.refundLocked(ctx, payment.ID, in.Amount, in.Reason)
}

// refundLocked performs the refund flow; the caller holds the payment lock.
func (u *PaymentUseCase) refundLocked(ctx context.Context, paymentID string, amount float64, reason string) (entities.Refund, error) {
	payment, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Refund{}, err
	}
	if payment.Status != entities.PaymentStatusCompleted && payment.Status != entities.PaymentStatusPartiallyRefunded {
		return entities.Refund{}, ErrRefundNotAllowed
	}

	available := payment.Amount - payment.RefundAmount
	if amount == 0 {
		amount = available
	}
	if amount < 0 {
		return entities.Refund{}, ErrInvalidRefundAmount
	}
	if amount > available {
		return entities.Refund{}, ErrRefundExceedsAvailable
	}

	now := time.Now().UTC()
	refund := entities.Refund{
		ID:        uuid.NewString(),
		RefundID:  formattedID("REF", now),
		PaymentID: payment.ID,
		Amount:    amount,
		Reason:    reason,
		Status:    entities.RefundStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	refund, err = u.refunds.Create(ctx, refund)
	if err != nil {
		return entities.Refund{}, err
	}

	log.Printf("[payment][usecase] refund initiated refund_id=%s payment_id=%s amount=%.2f", refund.RefundID, payment.ID, amount)
	gr, err := u.gateway.CreateRefund(ctx, payment.GatewayPaymentID, toMinorUnits(amount), map[string]interface{}{
		"refund_id": refund.RefundID,
		"reason":    reason,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway refund failed refund_id=%s err=%v", refund.RefundID, err)
		refund.Status = entities.RefundStatusFailed
		if _, uErr := u.refunds.Update(ctx, refund); uErr != nil {
			log.Printf("[payment][usecase] refund failure persist failed refund_id=%s err=%v", refund.RefundID, uErr)
		}
		return entities.Refund{}, err
	}

	refund.GatewayRefundID = gr.ID
	if gr.Status == "processed" {
		refund.Status = entities.RefundStatusProcessed
	}
	refund, err = u.refunds.Update(ctx, refund)
	if err != nil {
		return entities.Refund{}, err
	}

	if refund.Status == entities.RefundStatusProcessed {
		if err := u.recomputeRefundAggregates(ctx, refund); err != nil {
			return entities.Refund{}, err
		}
	}
	return refund, nil
}

// GetByID returns a payment, reconciling stale "processing" rows against the
// gateway on demand.
func (u *PaymentUseCase) GetByID(ctx context.Context, p entities.Principal, id string) (entities.Payment, error) {
	if p.IsAnonymous() {
		return entities.Payment{}, ErrUnauthorized
	}

	payment, err := u.payments.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Role != entities.RoleStaff && payment.BuyerID != p.ID {
		return entities.Payment{}, ErrForbidden
	}

	if payment.Status == entities.PaymentStatusProcessing && payment.GatewayPaymentID != "" {
		unlock := u.locks.Lock(paymentLockKey(payment.ID))
		defer unlock()

		payment, err = u.payments.GetByID(ctx, payment.ID)
		if err != nil {
			return entities.Payment{}, err
		}
		gp, fetchErr := u.gateway.FetchPayment(ctx, payment.GatewayPaymentID)
		if fetchErr != nil {
			log.Printf("[payment][usecase] reconciliation fetch failed payment_id=%s err=%v", payment.ID, fetchErr)
			return payment, nil
		}
		return u.applyGatewayState(ctx, payment, gp.Status, gp.ErrorDescription)
	}
	return payment, nil
}

func (u *PaymentUseCase) ListByBookingID(ctx context.Context, p entities.Principal, bookingID string) ([]entities.Payment, error) {
	if p.IsAnonymous() {
		return nil, ErrUnauthorized
	}

	booking, err := u.bookings.GetByID(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		return nil, err
	}
	if booking.ID == "" {
		return nil, ErrBookingNotFound
	}
	if p.Role != entities.RoleStaff && booking.BuyerID != p.ID {
		return nil, ErrForbidden
	}
	return u.payments.ListByBookingID(ctx, booking.ID)
}

// HandleBookingStateChanged auto-refunds completed payments when a booking is
// cancelled. Subscribed on the bus; failures are logged, the cancellation
// itself already committed.
func (u *PaymentUseCase) HandleBookingStateChanged(ctx context.Context, ev events.Event) {
	changed, ok := ev.(events.BookingStateChanged)
	if !ok || changed.New != entities.BookingStatusCancelled {
		return
	}

	payments, err := u.payments.ListByBookingID(ctx, changed.Booking.ID)
	if err != nil {
		log.Printf("[payment][refund] payment list failed booking_id=%s err=%v", changed.Booking.ID, err)
		return
	}

	for _, payment := range payments {
		if payment.Status != entities.PaymentStatusCompleted && payment.Status != entities.PaymentStatusPartiallyRefunded {
			continue
		}
		if payment.Amount-payment.RefundAmount <= 0 {
			continue
		}

		unlock := u.locks.Lock(paymentLockKey(payment.ID))
		_, err := u.refundLocked(ctx, payment.ID, 0, "booking cancelled")
		unlock()
		if err != nil {
			log.Printf("[payment][refund] auto-refund failed booking_id=%s payment_id=%s err=%v", changed.Booking.ID, payment.ID, err)
		}
	}
}

func paymentLockKey(id string) string { return "payment:" + id }

// toMinorUnits converts rupees to paise for the gateway boundary.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
