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
	defaultBookingsTableName = "bookings"
	bookingsPropertyIndex    = "property_id-index"
	bookingsBuyerIndex       = "buyer_id-index"
)

type bookingItem struct {
	ID                      string `dynamodbav:"id"`
	BookingNumber           string `dynamodbav:"booking_number"`
	PropertyID              string `dynamodbav:"property_id"`
	ProjectID               string `dynamodbav:"project_id"`
	BuyerID                 string `dynamodbav:"buyer_id"`
	PropertyPrice           string `dynamodbav:"property_price"`
	TotalAmount             string `dynamodbav:"total_amount"`
	TokenAmount             string `dynamodbav:"token_amount"`
	AmountPaid              string `dynamodbav:"amount_paid"`
	AmountDue               string `dynamodbav:"amount_due"`
	Status                  string `dynamodbav:"status"`
	PaymentMethod           string `dynamodbav:"payment_method,omitempty"`
	TermsAccepted           bool   `dynamodbav:"terms_accepted"`
	TokenPaymentDate        string `dynamodbav:"token_payment_date,omitempty"`
	CompletionDate          string `dynamodbav:"completion_date,omitempty"`
	CancellationReason      string `dynamodbav:"cancellation_reason,omitempty"`
	CancellationInitiatedBy string `dynamodbav:"cancellation_initiated_by,omitempty"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: property_id-index (PK: property_id)
//   - GSI: buyer_id-index (PK: buyer_id)
//
// Update replaces the full item; callers serialize per-booking writes with
// the booking engine's keyed lock.
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsPropertyIndex, "property_id", propertyID)
}

func (r *BookingDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsBuyerIndex, "buyer_id", buyerID)
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(attr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                      b.ID,
		BookingNumber:           b.BookingNumber,
		PropertyID:              b.PropertyID,
		ProjectID:               b.ProjectID,
		BuyerID:                 b.BuyerID,
		PropertyPrice:           floatToString(b.PropertyPrice),
		TotalAmount:             floatToString(b.TotalAmount),
		TokenAmount:             floatToString(b.TokenAmount),
		AmountPaid:              floatToString(b.AmountPaid),
		AmountDue:               floatToString(b.AmountDue),
		Status:                  string(b.Status),
		PaymentMethod:           b.PaymentMethod,
		TermsAccepted:           b.TermsAccepted,
		TokenPaymentDate:        timePtrToString(b.TokenPaymentDate),
		CompletionDate:          timePtrToString(b.CompletionDate),
		CancellationReason:      b.CancellationReason,
		CancellationInitiatedBy: b.CancellationInitiatedBy,
		CreatedAt:               timeToString(b.CreatedAt),
		UpdatedAt:               timeToString(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                      it.ID,
		BookingNumber:           it.BookingNumber,
		PropertyID:              it.PropertyID,
		ProjectID:               it.ProjectID,
		BuyerID:                 it.BuyerID,
		PropertyPrice:           stringToFloat(it.PropertyPrice),
		TotalAmount:             stringToFloat(it.TotalAmount),
		TokenAmount:             stringToFloat(it.TokenAmount),
		AmountPaid:              stringToFloat(it.AmountPaid),
		AmountDue:               stringToFloat(it.AmountDue),
		Status:                  entities.BookingStatus(it.Status),
		PaymentMethod:           it.PaymentMethod,
		TermsAccepted:           it.TermsAccepted,
		TokenPaymentDate:        stringToTimePtr(it.TokenPaymentDate),
		CompletionDate:          stringToTimePtr(it.CompletionDate),
		CancellationReason:      it.CancellationReason,
		CancellationInitiatedBy: it.CancellationInitiatedBy,
		CreatedAt:               stringToTime(it.CreatedAt),
		UpdatedAt:               stringToTime(it.UpdatedAt),
	}
}
