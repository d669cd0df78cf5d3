package repository

import (
	"context"
	"errors"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMilestonesTableName = "milestones"
	milestonesProjectIndex     = "project_id-index"
)

type milestoneItem struct {
	ID                 string      `dynamodbav:"id"`
	ProjectID          string      `dynamodbav:"project_id"`
	Name               string      `dynamodbav:"name"`
	Description        string      `dynamodbav:"description,omitempty"`
	PhaseNumber        int         `dynamodbav:"phase_number"`
	Status             string      `dynamodbav:"status"`
	ProgressPercentage float64     `dynamodbav:"progress_percentage"`
	Photos             []mediaItem `dynamodbav:"photos,omitempty"`
	Videos             []mediaItem `dynamodbav:"videos,omitempty"`
	QRCodeData         string      `dynamodbav:"qr_code_data"`
	QRCodeSecret       string      `dynamodbav:"qr_code_secret"`
	CreatedAt          string      `dynamodbav:"created_at"`
	UpdatedAt          string      `dynamodbav:"updated_at"`
}

// MilestoneDynamoRepository persists Milestone entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

func (r *MilestoneDynamoRepository) Create(ctx context.Context, m entities.Milestone) (entities.Milestone, error) {
	av, err := attributevalue.MarshalMap(toMilestoneItem(m))
	if err != nil {
		return entities.Milestone{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Milestone{}, err
	}
	return m, nil
}

func (r *MilestoneDynamoRepository) GetByID(ctx context.Context, id string) (entities.Milestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Milestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.Milestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(milestonesProjectIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Milestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestoneItem(it))
	}
	return items, nil
}

func (r *MilestoneDynamoRepository) UpdateProgress(ctx context.Context, id string, status entities.MilestoneStatus, progress float64) (entities.Milestone, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #progress = :progress, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#progress":   "progress_percentage",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":progress":   &types.AttributeValueMemberN{Value: floatToString(progress)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Milestone{}, nil
		}
		return entities.Milestone{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Milestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) AppendMedia(ctx context.Context, id string, photos, videos []entities.MediaEntry) (entities.Milestone, error) {
	expr, names, values, err := buildAppendMediaUpdate("photos", "videos", photos, videos)
	if err != nil {
		return entities.Milestone{}, err
	}
	if expr == "" {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Milestone{}, nil
		}
		return entities.Milestone{}, err
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func toMilestoneItem(m entities.Milestone) milestoneItem {
	return milestoneItem{
		ID:                 m.ID,
		ProjectID:          m.ProjectID,
		Name:               m.Name,
		Description:        m.Description,
		PhaseNumber:        m.PhaseNumber,
		Status:             string(m.Status),
		ProgressPercentage: m.ProgressPercentage,
		Photos:             toMediaItems(m.Photos),
		Videos:             toMediaItems(m.Videos),
		QRCodeData:         m.QRCodeData,
		QRCodeSecret:       m.QRCodeSecret,
		CreatedAt:          timeToString(m.CreatedAt),
		UpdatedAt:          timeToString(m.UpdatedAt),
	}
}

func fromMilestoneItem(it milestoneItem) entities.Milestone {
	return entities.Milestone{
		ID:                 it.ID,
		ProjectID:          it.ProjectID,
		Name:               it.Name,
		Description:        it.Description,
		PhaseNumber:        it.PhaseNumber,
		Status:             entities.MilestoneStatus(it.Status),
		ProgressPercentage: it.ProgressPercentage,
		Photos:             fromMediaItems(it.Photos),
		Videos:             fromMediaItems(it.Videos),
		QRCodeData:         it.QRCodeData,
		QRCodeSecret:       it.QRCodeSecret,
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
