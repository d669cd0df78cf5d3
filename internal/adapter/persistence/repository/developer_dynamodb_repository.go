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
	defaultDevelopersTableName = "developers"
	developersPrincipalIndex   = "principal_id-index"
)

type developerItem struct {
	ID                 string  `dynamodbav:"id"`
	PrincipalID        string  `dynamodbav:"principal_id"`
	CompanyName        string  `dynamodbav:"company_name"`
	RegistrationNumber string  `dynamodbav:"registration_number"`
	Verified           bool    `dynamodbav:"verified"`
	VerificationScore  float64 `dynamodbav:"verification_score"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// DeveloperDynamoRepository persists Developer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: principal_id-index (PK: principal_id)
//
// The principal_id GSI enforces the at-most-one-profile rule at the usecase
// level: creation checks the index before writing.
type DeveloperDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeveloperRepository = (*DeveloperDynamoRepository)(nil)

func NewDeveloperDynamoRepository(ddb *dynamodb.Client) *DeveloperDynamoRepository {
	return &DeveloperDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVELOPERS_TABLE", defaultDevelopersTableName),
	}
}

func (r *DeveloperDynamoRepository) Create(ctx context.Context, d entities.Developer) (entities.Developer, error) {
	av, err := attributevalue.MarshalMap(toDeveloperItem(d))
	if err != nil {
		return entities.Developer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Developer{}, err
	}
	return d, nil
}

func (r *DeveloperDynamoRepository) GetByID(ctx context.Context, id string) (entities.Developer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Developer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Developer{}, nil
	}

	var it developerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Developer{}, err
	}
	return fromDeveloperItem(it), nil
}

func (r *DeveloperDynamoRepository) GetByPrincipalID(ctx context.Context, principalID string) (entities.Developer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(developersPrincipalIndex),
		KeyConditionExpression: aws.String("principal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: principalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Developer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Developer{}, nil
	}

	var it developerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Developer{}, err
	}
	return fromDeveloperItem(it), nil
}

func toDeveloperItem(d entities.Developer) developerItem {
	return developerItem{
		ID:                 d.ID,
		PrincipalID:        d.PrincipalID,
		CompanyName:        d.CompanyName,
		RegistrationNumber: d.RegistrationNumber,
		Verified:           d.Verified,
		VerificationScore:  d.VerificationScore,
		CreatedAt:          timeToString(d.CreatedAt),
		UpdatedAt:          timeToString(d.UpdatedAt),
	}
}

func fromDeveloperItem(it developerItem) entities.Developer {
	return entities.Developer{
		ID:                 it.ID,
		PrincipalID:        it.PrincipalID,
		CompanyName:        it.CompanyName,
		RegistrationNumber: it.RegistrationNumber,
		Verified:           it.Verified,
		VerificationScore:  it.VerificationScore,
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
