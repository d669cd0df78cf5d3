package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/events"
	"apnaghar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPreferenceInput = errors.New("invalid preference input")

// INotifierUseCase is the user-facing side of the notification fabric:
// the event subscriber plus inbox and preference access.
type INotifierUseCase interface {
	Handle(ctx context.Context, ev events.Event)
	ListNotifications(ctx context.Context, p entities.Principal) ([]entities.Notification, error)
	GetPreferences(ctx context.Context, p entities.Principal) (entities.NotificationPreference, error)
	PutPreferences(ctx context.Context, p entities.Principal, pref entities.NotificationPreference) (entities.NotificationPreference, error)
}

// Notifier is the bus subscriber that fans events out to users. Per-user
// preferences gate channel selection and quiet hours; delivery itself is
// attempt-once with the outcome recorded on the Notification row.
type Notifier struct {
	notifications interfaces.INotificationRepository
	preferences   interfaces.IPreferenceRepository
	channel       interfaces.INotificationChannel
}

var _ INotifierUseCase = (*Notifier)(nil)

func NewNotifier(notifications interfaces.INotificationRepository, preferences interfaces.IPreferenceRepository, channel interfaces.INotificationChannel) *Notifier {
	return &Notifier{notifications: notifications, preferences: preferences, channel: channel}
}

// ListNotifications returns the caller's inbox.
func (n *Notifier) ListNotifications(ctx context.Context, p entities.Principal) ([]entities.Notification, error) {
	if p.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	return n.notifications.ListByUserID(ctx, p.ID)
}

// GetPreferences returns the caller's stored preferences, or the default set
// when none are stored.
func (n *Notifier) GetPreferences(ctx context.Context, p entities.Principal) (entities.NotificationPreference, error) {
	if p.IsAnonymous() {
		return entities.NotificationPreference{}, ErrUnauthorized
	}
	pref, err := n.preferences.GetByUserID(ctx, p.ID)
	if err != nil {
		return entities.NotificationPreference{}, err
	}
	if pref.UserID == "" {
		pref = entities.DefaultNotificationPreference(p.ID)
	}
	return pref, nil
}

// PutPreferences replaces the caller's preferences. Quiet hours are hours of
// day; Start == End disables the window.
func (n *Notifier) PutPreferences(ctx context.Context, p entities.Principal, pref entities.NotificationPreference) (entities.NotificationPreference, error) {
	if p.IsAnonymous() {
		return entities.NotificationPreference{}, ErrUnauthorized
	}
	if pref.QuietHoursStart < 0 || pref.QuietHoursStart > 23 || pref.QuietHoursEnd < 0 || pref.QuietHoursEnd > 23 {
		return entities.NotificationPreference{}, ErrInvalidPreferenceInput
	}
	pref.UserID = p.ID
	return n.preferences.Put(ctx, pref)
}

// Handle is subscribed to every event name the bus carries. Events without a
// clear recipient are ignored.
func (n *Notifier) Handle(ctx context.Context, ev events.Event) {
	userID, title, message := describeEvent(ev)
	if userID == "" {
		return
	}

	pref, err := n.preferences.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("[notifier] preference lookup failed user_id=%s err=%v", userID, err)
		return
	}
	if pref.UserID == "" {
		pref = entities.DefaultNotificationPreference(userID)
	}
	if !pref.TypeEnabled(ev.Name()) {
		log.Printf("[notifier] type disabled user_id=%s type=%s", userID, ev.Name())
		return
	}

	now := time.Now().UTC()
	notification := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      ev.Name(),
		Title:     title,
		Message:   message,
		CreatedAt: now,
	}

	if pref.InQuietHours(now.Hour()) {
		log.Printf("[notifier] quiet hours, delivery suppressed user_id=%s type=%s", userID, ev.Name())
	} else {
		for _, ch := range pref.EnabledChannels() {
			attempt := entities.ChannelAttempt{Channel: ch, AttemptedAt: time.Now().UTC()}
			if err := n.channel.Dispatch(ctx, ch, notification); err != nil {
				attempt.Error = err.Error()
				log.Printf("[notifier] dispatch failed user_id=%s channel=%s err=%v", userID, ch, err)
			} else {
				attempt.Delivered = true
			}
			notification.Attempts = append(notification.Attempts, attempt)
		}
	}

	if _, err := n.notifications.Create(ctx, notification); err != nil {
		log.Printf("[notifier] notification persist failed user_id=%s type=%s err=%v", userID, ev.Name(), err)
	}
}

// describeEvent picks the recipient and the user-facing text for an event.
// An empty user id means nobody to notify.
func describeEvent(ev events.Event) (userID, title, message string) {
	switch e := ev.(type) {
	case events.BookingCreated:
		return e.Booking.BuyerID, "Booking created",
			fmt.Sprintf("Your booking %s is confirmed as created. Token amount due: %.2f.", e.Booking.BookingNumber, e.Booking.TokenAmount)
	case events.BookingStateChanged:
		return e.Booking.BuyerID, "Booking updated",
			fmt.Sprintf("Booking %s moved from %s to %s.", e.Booking.BookingNumber, e.Old, e.New)
	case events.PaymentCompleted:
		return e.Payment.BuyerID, "Payment received",
			fmt.Sprintf("Payment %s of %.2f %s completed.", e.Payment.TransactionID, e.Payment.Amount, e.Payment.Currency)
	case events.PaymentFailed:
		return e.Payment.BuyerID, "Payment failed",
			fmt.Sprintf("Payment %s failed: %s.", e.Payment.TransactionID, e.Reason)
	case events.RefundProcessed:
		return e.Payment.BuyerID, "Refund processed",
			fmt.Sprintf("Refund %s of %.2f processed for payment %s.", e.Refund.RefundID, e.Refund.Amount, e.Payment.TransactionID)
	case events.EvidenceAttached:
		// Milestone evidence is project-wide news, not addressed to anyone;
		// unit evidence goes to the unit's owner.
		if e.OwnerID == "" {
			return "", "", ""
		}
		return e.OwnerID, "New update on your unit",
			fmt.Sprintf("%d new file(s) of construction evidence were added to your unit.", len(e.SHA256s))
	default:
		return "", "", ""
	}
}
