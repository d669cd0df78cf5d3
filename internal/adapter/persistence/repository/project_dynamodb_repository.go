package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID                 string   `dynamodbav:"id"`
	DeveloperID        string   `dynamodbav:"developer_id"`
	DeveloperVerified  bool     `dynamodbav:"developer_verified"`
	Name               string   `dynamodbav:"name"`
	Description        string   `dynamodbav:"description,omitempty"`
	ProjectType        string   `dynamodbav:"project_type"`
	City               string   `dynamodbav:"city"`
	Locality           string   `dynamodbav:"locality,omitempty"`
	Status             string   `dynamodbav:"status"`
	StartingPrice      string   `dynamodbav:"starting_price"`
	PropertyTypes      []string `dynamodbav:"property_types,omitempty"`
	ExpectedCompletion string   `dynamodbav:"expected_completion,omitempty"`
	VerificationScore  float64  `dynamodbav:"verification_score"`
	TotalUnits         int      `dynamodbav:"total_units"`
	AvailableUnits     int      `dynamodbav:"available_units"`
	ViewsCount         int64    `dynamodbav:"views_count"`
	AvgRating          *float64 `dynamodbav:"avg_rating,omitempty"`
	ReviewCount        int      `dynamodbav:"review_count"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List runs a filtered scan covering the equality facets; ordering,
// pagination, and min/max price comparisons happen in the catalog usecase.
// Prices are stored as number strings, matching the other monetary fields.
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context, filter interfaces.ProjectFilter) ([]entities.Project, error) {
	var (
		exprs  []string
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
	)

	addEq := func(attr, placeholder, value string) {
		exprs = append(exprs, fmt.Sprintf("#%s = :%s", placeholder, placeholder))
		names["#"+placeholder] = attr
		values[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
	}

	if filter.Status != "" {
		addEq("status", "status", string(filter.Status))
	}
	if filter.ProjectType != "" {
		addEq("project_type", "ptype", filter.ProjectType)
	}
	if filter.City != "" {
		addEq("city", "city", filter.City)
	}
	if filter.DeveloperID != "" {
		addEq("developer_id", "dev", filter.DeveloperID)
	}
	if filter.Verified != nil {
		exprs = append(exprs, "#verified = :verified")
		names["#verified"] = "developer_verified"
		values[":verified"] = &types.AttributeValueMemberBOOL{Value: *filter.Verified}
	}
	if len(filter.PropertyTypes) > 0 {
		var ors []string
		for i, pt := range filter.PropertyTypes {
			ph := fmt.Sprintf(":pt%d", i)
			ors = append(ors, fmt.Sprintf("contains(#ptypes, %s)", ph))
			values[ph] = &types.AttributeValueMemberS{Value: pt}
		}
		names["#ptypes"] = "property_types"
		exprs = append(exprs, "("+strings.Join(ors, " OR ")+")")
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeValues = values
		if len(names) > 0 {
			input.ExpressionAttributeNames = names
		}
	}

	var projects []entities.Project
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p := fromProjectItem(it)
			// Price range comparison stays here so the stored string
			// representation is never compared lexicographically.
			if filter.MinPrice != nil && p.StartingPrice < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && p.StartingPrice > *filter.MaxPrice {
				continue
			}
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #views :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#views": "views_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func (r *ProjectDynamoRepository) SetUnitCounts(ctx context.Context, id string, total, available int) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #total = :total, #available = :available, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#total":      "total_units",
			"#available":  "available_units",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", total)},
			":available":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", available)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                p.ID,
		DeveloperID:       p.DeveloperID,
		DeveloperVerified: p.DeveloperVerified,
		Name:              p.Name,
		Description:       p.Description,
		ProjectType:       p.ProjectType,
		City:              p.City,
		Locality:          p.Locality,
		Status:            string(p.Status),
		StartingPrice:     floatToString(p.StartingPrice),
		PropertyTypes:     p.PropertyTypes,
		VerificationScore: p.VerificationScore,
		TotalUnits:        p.TotalUnits,
		AvailableUnits:    p.AvailableUnits,
		ViewsCount:        p.ViewsCount,
		AvgRating:         p.AvgRating,
		ReviewCount:       p.ReviewCount,
		CreatedAt:         timeToString(p.CreatedAt),
		UpdatedAt:         timeToString(p.UpdatedAt),
	}
	if !p.ExpectedCompletion.IsZero() {
		it.ExpectedCompletion = timeToString(p.ExpectedCompletion)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                 it.ID,
		DeveloperID:        it.DeveloperID,
		DeveloperVerified:  it.DeveloperVerified,
		Name:               it.Name,
		Description:        it.Description,
		ProjectType:        it.ProjectType,
		City:               it.City,
		Locality:           it.Locality,
		Status:             entities.ProjectStatus(it.Status),
		StartingPrice:      stringToFloat(it.StartingPrice),
		PropertyTypes:      it.PropertyTypes,
		ExpectedCompletion: stringToTime(it.ExpectedCompletion),
		VerificationScore:  it.VerificationScore,
		TotalUnits:         it.TotalUnits,
		AvailableUnits:     it.AvailableUnits,
		ViewsCount:         it.ViewsCount,
		AvgRating:          it.AvgRating,
		ReviewCount:        it.ReviewCount,
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
