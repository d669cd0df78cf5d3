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
	defaultUpdatesTableName = "construction_updates"
	updatesProjectIndex     = "project_id-index"
)

type updateItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	MilestoneID string `dynamodbav:"milestone_id,omitempty"`
	PropertyID  string `dynamodbav:"property_id,omitempty"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	MediaCount  int    `dynamodbav:"media_count"`
	OwnerOnly   bool   `dynamodbav:"owner_only"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// UpdateDynamoRepository persists ConstructionUpdate feed rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type UpdateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUpdateRepository = (*UpdateDynamoRepository)(nil)

func NewUpdateDynamoRepository(ddb *dynamodb.Client) *UpdateDynamoRepository {
	return &UpdateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONSTRUCTION_UPDATES_TABLE", defaultUpdatesTableName),
	}
}

func (r *UpdateDynamoRepository) Create(ctx context.Context, u entities.ConstructionUpdate) (entities.ConstructionUpdate, error) {
	av, err := attributevalue.MarshalMap(toUpdateItem(u))
	if err != nil {
		return entities.ConstructionUpdate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ConstructionUpdate{}, err
	}
	return u, nil
}

func (r *UpdateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ConstructionUpdate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(updatesProjectIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ConstructionUpdate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it updateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUpdateItem(it))
	}
	return items, nil
}

func toUpdateItem(u entities.ConstructionUpdate) updateItem {
	return updateItem{
		ID:          u.ID,
		ProjectID:   u.ProjectID,
		MilestoneID: u.MilestoneID,
		PropertyID:  u.PropertyID,
		Title:       u.Title,
		Description: u.Description,
		MediaCount:  u.MediaCount,
		OwnerOnly:   u.OwnerOnly,
		CreatedAt:   timeToString(u.CreatedAt),
	}
}

func fromUpdateItem(it updateItem) entities.ConstructionUpdate {
	return entities.ConstructionUpdate{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		MilestoneID: it.MilestoneID,
		PropertyID:  it.PropertyID,
		Title:       it.Title,
		Description: it.Description,
		MediaCount:  it.MediaCount,
		OwnerOnly:   it.OwnerOnly,
		CreatedAt:   stringToTime(it.CreatedAt),
	}
}
