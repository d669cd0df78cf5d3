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
	defaultPaymentsTableName    = "payments"
	paymentsBookingIndex        = "booking_id-index"
	paymentsGatewayOrderIndex   = "gateway_order_id-index"
	paymentsGatewayPaymentIndex = "gateway_payment_id-index"
)

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	TransactionID    string `dynamodbav:"transaction_id"`
	BookingID        string `dynamodbav:"booking_id"`
	BuyerID          string `dynamodbav:"buyer_id"`
	Amount           string `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	PaymentMethod    string `dynamodbav:"payment_method,omitempty"`
	PaymentType      string `dynamodbav:"payment_type,omitempty"`
	Status           string `dynamodbav:"status"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id,omitempty"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	GatewaySignature string `dynamodbav:"gateway_signature,omitempty"`
	RefundAmount     string `dynamodbav:"refund_amount"`
	FailureReason    string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//   - GSI: gateway_order_id-index (PK: gateway_order_id)
//   - GSI: gateway_payment_id-index (PK: gateway_payment_id)
//
// The gateway indexes back webhook idempotency lookups: a captured event is
// resolved to an existing payment by gateway ids before any mutation.
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByGatewayOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	return r.getByIndex(ctx, paymentsGatewayOrderIndex, "gateway_order_id", orderID)
}

func (r *PaymentDynamoRepository) GetByGatewayPaymentID(ctx context.Context, paymentID string) (entities.Payment, error) {
	return r.getByIndex(ctx, paymentsGatewayPaymentIndex, "gateway_payment_id", paymentID)
}

func (r *PaymentDynamoRepository) getByIndex(ctx context.Context, index, attr, value string) (entities.Payment, error) {
	if value == "" {
		return entities.Payment{}, nil
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(attr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	p.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		TransactionID:    p.TransactionID,
		BookingID:        p.BookingID,
		BuyerID:          p.BuyerID,
		Amount:           floatToString(p.Amount),
		Currency:         p.Currency,
		PaymentMethod:    p.PaymentMethod,
		PaymentType:      p.PaymentType,
		Status:           string(p.Status),
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		GatewaySignature: p.GatewaySignature,
		RefundAmount:     floatToString(p.RefundAmount),
		FailureReason:    p.FailureReason,
		CreatedAt:        timeToString(p.CreatedAt),
		UpdatedAt:        timeToString(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:               it.ID,
		TransactionID:    it.TransactionID,
		BookingID:        it.BookingID,
		BuyerID:          it.BuyerID,
		Amount:           stringToFloat(it.Amount),
		Currency:         it.Currency,
		PaymentMethod:    it.PaymentMethod,
		PaymentType:      it.PaymentType,
		Status:           entities.PaymentStatus(it.Status),
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		GatewaySignature: it.GatewaySignature,
		RefundAmount:     stringToFloat(it.RefundAmount),
		FailureReason:    it.FailureReason,
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
