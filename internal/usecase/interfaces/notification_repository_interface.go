package interfaces

import (
	"context"

	"apnaghar/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
}

// IPreferenceRepository resolves per-user notification preferences.
// GetByUserID returns a zero-value preference (UserID empty) when the user
// has no stored row.
type IPreferenceRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.NotificationPreference, error)
	Put(ctx context.Context, p entities.NotificationPreference) (entities.NotificationPreference, error)
}

// INotificationChannel delivers one notification over one channel.
// Attempt-once: the dispatcher records the outcome and moves on.
type INotificationChannel interface {
	Dispatch(ctx context.Context, channel string, n entities.Notification) error
}

// IUpdateRepository abstracts DynamoDB persistence for ConstructionUpdate.
type IUpdateRepository interface {
	Create(ctx context.Context, u entities.ConstructionUpdate) (entities.ConstructionUpdate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ConstructionUpdate, error)
}
