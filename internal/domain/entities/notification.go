package entities

import "time"

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

// ChannelAttempt records a single delivery attempt. Delivery is
// attempt-once: the outcome is recorded, never retried by the dispatcher.
type ChannelAttempt struct {
	Channel     string    `json:"channel"`
	Delivered   bool      `json:"delivered"`
	Error       string    `json:"error,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// Notification is the materialized result of an event fanned out to a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Attempts  []ChannelAttempt `json:"attempts,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationPreference controls fan-out for one user. Quiet hours are
// local hours [Start, End); a window wrapping midnight is allowed.
//
// Storage model (DynamoDB):
//   - PK: user_id
type NotificationPreference struct {
	UserID          string   `json:"user_id"`
	EmailEnabled    bool     `json:"email_enabled"`
	SMSEnabled      bool     `json:"sms_enabled"`
	PushEnabled     bool     `json:"push_enabled"`
	QuietHoursStart int      `json:"quiet_hours_start"`
	QuietHoursEnd   int      `json:"quiet_hours_end"`
	DisabledTypes   []string `json:"disabled_types,omitempty"`
}

// DefaultNotificationPreference is applied when a user has no stored row:
// all channels on, no quiet hours.
func DefaultNotificationPreference(userID string) NotificationPreference {
	return NotificationPreference{
		UserID:       userID,
		EmailEnabled: true,
		SMSEnabled:   true,
		PushEnabled:  true,
	}
}

func (p NotificationPreference) TypeEnabled(t string) bool {
	for _, d := range p.DisabledTypes {
		if d == t {
			return false
		}
	}
	return true
}

// InQuietHours reports whether h (hour of day) falls inside the quiet
// window. Start == End means no quiet hours.
func (p NotificationPreference) InQuietHours(h int) bool {
	if p.QuietHoursStart == p.QuietHoursEnd {
		return false
	}
	if p.QuietHoursStart < p.QuietHoursEnd {
		return h >= p.QuietHoursStart && h < p.QuietHoursEnd
	}
	return h >= p.QuietHoursStart || h < p.QuietHoursEnd
}

func (p NotificationPreference) EnabledChannels() []string {
	var out []string
	if p.EmailEnabled {
		out = append(out, ChannelEmail)
	}
	if p.SMSEnabled {
		out = append(out, ChannelSMS)
	}
	if p.PushEnabled {
		out = append(out, ChannelPush)
	}
	return out
}
