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
	defaultPrincipalsTableName = "principals"
	principalsTokenIndex       = "token-index"
)

type principalItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Role      string `dynamodbav:"role"`
	Token     string `dynamodbav:"token"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PrincipalDynamoRepository persists Principal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: token-index (PK: token)
type PrincipalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrincipalRepository = (*PrincipalDynamoRepository)(nil)

func NewPrincipalDynamoRepository(ddb *dynamodb.Client) *PrincipalDynamoRepository {
	return &PrincipalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRINCIPALS_TABLE", defaultPrincipalsTableName),
	}
}

func (r *PrincipalDynamoRepository) Create(ctx context.Context, p entities.Principal) (entities.Principal, error) {
	av, err := attributevalue.MarshalMap(toPrincipalItem(p))
	if err != nil {
		return entities.Principal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Principal{}, err
	}
	return p, nil
}

func (r *PrincipalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Principal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Principal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Principal{}, nil
	}

	var it principalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Principal{}, err
	}
	return fromPrincipalItem(it), nil
}

func (r *PrincipalDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Principal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(principalsTokenIndex),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Principal{}, err
	}
	if len(out.Items) == 0 {
		return entities.Principal{}, nil
	}

	var it principalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Principal{}, err
	}
	return fromPrincipalItem(it), nil
}

func toPrincipalItem(p entities.Principal) principalItem {
	return principalItem{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      string(p.Role),
		Token:     p.Token,
		CreatedAt: timeToString(p.CreatedAt),
	}
}

func fromPrincipalItem(it principalItem) entities.Principal {
	return entities.Principal{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Role:      entities.Role(it.Role),
		Token:     it.Token,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
