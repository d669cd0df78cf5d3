package notify

import (
	"context"
	"log"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"
)

// LogChannel is the default notification channel: it logs the dispatch and
// reports success. Real email/SMS/push providers plug in behind the same
// interface.
type LogChannel struct{}

var _ interfaces.INotificationChannel = (*LogChannel)(nil)

func NewLogChannel() *LogChannel { return &LogChannel{} }

func (c *LogChannel) Dispatch(_ context.Context, channel string, n entities.Notification) error {
	log.Printf("[notify][channel] dispatch channel=%s user_id=%s type=%s title=%q", channel, n.UserID, n.Type, n.Title)
	return nil
}
