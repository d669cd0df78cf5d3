package repository

import (
	"context"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	defaultPreferencesTableName   = "notification_preferences"
	notificationsUserIndex        = "user_id-index"
)

type channelAttemptItem struct {
	Channel     string `dynamodbav:"channel"`
	Delivered   bool   `dynamodbav:"delivered"`
	Error       string `dynamodbav:"error,omitempty"`
	AttemptedAt string `dynamodbav:"attempted_at"`
}

type notificationItem struct {
	ID        string               `dynamodbav:"id"`
	UserID    string               `dynamodbav:"user_id"`
	Type      string               `dynamodbav:"type"`
	Title     string               `dynamodbav:"title"`
	Message   string               `dynamodbav:"message"`
	Attempts  []channelAttemptItem `dynamodbav:"attempts,omitempty"`
	CreatedAt string               `dynamodbav:"created_at"`
}

type preferenceItem struct {
	UserID          string   `dynamodbav:"user_id"`
	EmailEnabled    bool     `dynamodbav:"email_enabled"`
	SMSEnabled      bool     `dynamodbav:"sms_enabled"`
	PushEnabled     bool     `dynamodbav:"push_enabled"`
	QuietHoursStart int      `dynamodbav:"quiet_hours_start"`
	QuietHoursEnd   int      `dynamodbav:"quiet_hours_end"`
	DisabledTypes   []string `dynamodbav:"disabled_types,omitempty"`
}

// NotificationDynamoRepository persists Notification rows and per-user
// preferences in DynamoDB.
//
// Table requirements:
//   - notifications: PK id, GSI user_id-index (PK: user_id)
//   - notification_preferences: PK user_id
type NotificationDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	prefsTableName string
}

var (
	_ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)
	_ interfaces.IPreferenceRepository   = (*NotificationDynamoRepository)(nil)
)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
		prefsTableName: getenvDefault("NOTIFICATION_PREFERENCES_TABLE", defaultPreferencesTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func (r *NotificationDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.NotificationPreference, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.prefsTableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NotificationPreference{}, err
	}
	if len(out.Item) == 0 {
		return entities.NotificationPreference{}, nil
	}

	var it preferenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NotificationPreference{}, err
	}
	return fromPreferenceItem(it), nil
}

func (r *NotificationDynamoRepository) Put(ctx context.Context, p entities.NotificationPreference) (entities.NotificationPreference, error) {
	av, err := attributevalue.MarshalMap(toPreferenceItem(p))
	if err != nil {
		return entities.NotificationPreference{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.prefsTableName),
		Item:      av,
	})
	if err != nil {
		return entities.NotificationPreference{}, err
	}
	return p, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	attempts := make([]channelAttemptItem, 0, len(n.Attempts))
	for _, a := range n.Attempts {
		attempts = append(attempts, channelAttemptItem{
			Channel:     a.Channel,
			Delivered:   a.Delivered,
			Error:       a.Error,
			AttemptedAt: timeToString(a.AttemptedAt),
		})
	}
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Attempts:  attempts,
		CreatedAt: timeToString(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	attempts := make([]entities.ChannelAttempt, 0, len(it.Attempts))
	for _, a := range it.Attempts {
		attempts = append(attempts, entities.ChannelAttempt{
			Channel:     a.Channel,
			Delivered:   a.Delivered,
			Error:       a.Error,
			AttemptedAt: stringToTime(a.AttemptedAt),
		})
	}
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      it.Type,
		Title:     it.Title,
		Message:   it.Message,
		Attempts:  attempts,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}

func toPreferenceItem(p entities.NotificationPreference) preferenceItem {
	return preferenceItem{
		UserID:          p.UserID,
		EmailEnabled:    p.EmailEnabled,
		SMSEnabled:      p.SMSEnabled,
		PushEnabled:     p.PushEnabled,
		QuietHoursStart: p.QuietHoursStart,
		QuietHoursEnd:   p.QuietHoursEnd,
		DisabledTypes:   p.DisabledTypes,
	}
}

func fromPreferenceItem(it preferenceItem) entities.NotificationPreference {
	return entities.NotificationPreference{
		UserID:          it.UserID,
		EmailEnabled:    it.EmailEnabled,
		SMSEnabled:      it.SMSEnabled,
		PushEnabled:     it.PushEnabled,
		QuietHoursStart: it.QuietHoursStart,
		QuietHoursEnd:   it.QuietHoursEnd,
		DisabledTypes:   it.DisabledTypes,
	}
}
