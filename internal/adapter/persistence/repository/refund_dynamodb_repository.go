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
	defaultRefundsTableName   = "refunds"
	refundsPaymentIndex       = "payment_id-index"
	refundsGatewayRefundIndex = "gateway_refund_id-index"
)

type refundItem struct {
	ID              string `dynamodbav:"id"`
	RefundID        string `dynamodbav:"refund_id"`
	PaymentID       string `dynamodbav:"payment_id"`
	Amount          string `dynamodbav:"amount"`
	Reason          string `dynamodbav:"reason,omitempty"`
	Status          string `dynamodbav:"status"`
	GatewayRefundID string `dynamodbav:"gateway_refund_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// RefundDynamoRepository persists Refund entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
//   - GSI: gateway_refund_id-index (PK: gateway_refund_id)
type RefundDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRefundRepository = (*RefundDynamoRepository)(nil)

func NewRefundDynamoRepository(ddb *dynamodb.Client) *RefundDynamoRepository {
	return &RefundDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REFUNDS_TABLE", defaultRefundsTableName),
	}
}

func (r *RefundDynamoRepository) Create(ctx context.Context, rf entities.Refund) (entities.Refund, error) {
	av, err := attributevalue.MarshalMap(toRefundItem(rf))
	if err != nil {
		return entities.Refund{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Refund{}, err
	}
	return rf, nil
}

func (r *RefundDynamoRepository) GetByID(ctx context.Context, id string) (entities.Refund, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Refund{}, err
	}
	if len(out.Item) == 0 {
		return entities.Refund{}, nil
	}

	var it refundItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Refund{}, err
	}
	return fromRefundItem(it), nil
}

func (r *RefundDynamoRepository) GetByGatewayRefundID(ctx context.Context, gatewayRefundID string) (entities.Refund, error) {
	if gatewayRefundID == "" {
		return entities.Refund{}, nil
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(refundsGatewayRefundIndex),
		KeyConditionExpression: aws.String("gateway_refund_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: gatewayRefundID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Refund{}, err
	}
	if len(out.Items) == 0 {
		return entities.Refund{}, nil
	}

	var it refundItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Refund{}, err
	}
	return fromRefundItem(it), nil
}

func (r *RefundDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Refund, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(refundsPaymentIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Refund, 0, len(out.Items))
	for _, raw := range out.Items {
		var it refundItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRefundItem(it))
	}
	return items, nil
}

func (r *RefundDynamoRepository) Update(ctx context.Context, rf entities.Refund) (entities.Refund, error) {
	rf.UpdatedAt = nowUTC()
	av, err := attributevalue.MarshalMap(toRefundItem(rf))
	if err != nil {
		return entities.Refund{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Refund{}, err
	}
	return rf, nil
}

func toRefundItem(rf entities.Refund) refundItem {
	return refundItem{
		ID:              rf.ID,
		RefundID:        rf.RefundID,
		PaymentID:       rf.PaymentID,
		Amount:          floatToString(rf.Amount),
		Reason:          rf.Reason,
		Status:          string(rf.Status),
		GatewayRefundID: rf.GatewayRefundID,
		CreatedAt:       timeToString(rf.CreatedAt),
		UpdatedAt:       timeToString(rf.UpdatedAt),
	}
}

func fromRefundItem(it refundItem) entities.Refund {
	return entities.Refund{
		ID:              it.ID,
		RefundID:        it.RefundID,
		PaymentID:       it.PaymentID,
		Amount:          stringToFloat(it.Amount),
		Reason:          it.Reason,
		Status:          entities.RefundStatus(it.Status),
		GatewayRefundID: it.GatewayRefundID,
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
}
