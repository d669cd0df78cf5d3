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
	defaultPropertiesTableName = "properties"
	propertiesProjectIndex     = "project_id-index"
)

type propertyItem struct {
	ID           string      `dynamodbav:"id"`
	ProjectID    string      `dynamodbav:"project_id"`
	UnitNumber   string      `dynamodbav:"unit_number"`
	Floor        int         `dynamodbav:"floor"`
	PropertyType string      `dynamodbav:"property_type"`
	Price        string      `dynamodbav:"price"`
	Status       string      `dynamodbav:"status"`
	BuyerID      string      `dynamodbav:"buyer_id,omitempty"`
	UnitPhotos   []mediaItem `dynamodbav:"unit_photos,omitempty"`
	UnitVideos   []mediaItem `dynamodbav:"unit_videos,omitempty"`
	QRCodeData   string      `dynamodbav:"qr_code_data"`
	QRCodeSecret string      `dynamodbav:"qr_code_secret"`
	CreatedAt    string      `dynamodbav:"created_at"`
	UpdatedAt    string      `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// TransitionStatus is the check-and-reserve primitive: the status swap is
// conditional on the current value, so two concurrent reservations of the
// same unit resolve to exactly one winner inside DynamoDB.
type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Property{}, err
	}
	if len(out.Item) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Property, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(propertiesProjectIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Property, 0, len(out.Items))
	for _, raw := range out.Items {
		var it propertyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPropertyItem(it))
	}
	return items, nil
}

func (r *PropertyDynamoRepository) CountByProjectAndStatus(ctx context.Context, projectID string, status entities.PropertyStatus) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(propertiesProjectIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":    &types.AttributeValueMemberS{Value: projectID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *PropertyDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PropertyStatus, buyerID string) (entities.Property, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
	}
	if buyerID != "" {
		expr += ", #buyer_id = :buyer_id"
		names["#buyer_id"] = "buyer_id"
		values[":buyer_id"] = &types.AttributeValueMemberS{Value: buyerID}
	} else if to == entities.PropertyStatusAvailable {
		expr += " REMOVE #buyer_id"
		names["#buyer_id"] = "buyer_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) AppendMedia(ctx context.Context, id string, photos, videos []entities.MediaEntry) (entities.Property, error) {
	expr, names, values, err := buildAppendMediaUpdate("unit_photos", "unit_videos", photos, videos)
	if err != nil {
		return entities.Property{}, err
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
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

// buildAppendMediaUpdate produces a list_append update for the photo/video
// attributes, initializing absent lists. Shared by property and milestone
// repositories.
func buildAppendMediaUpdate(photosAttr, videosAttr string, photos, videos []entities.MediaEntry) (string, map[string]string, map[string]types.AttributeValue, error) {
	var (
		sets   []string
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
	)

	if len(photos) > 0 {
		av, err := attributevalue.MarshalList(toMediaItems(photos))
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "#photos = list_append(if_not_exists(#photos, :empty), :photos)")
		names["#photos"] = photosAttr
		values[":photos"] = &types.AttributeValueMemberL{Value: av}
	}
	if len(videos) > 0 {
		av, err := attributevalue.MarshalList(toMediaItems(videos))
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "#videos = list_append(if_not_exists(#videos, :empty), :videos)")
		names["#videos"] = videosAttr
		values[":videos"] = &types.AttributeValueMemberL{Value: av}
	}
	if len(sets) == 0 {
		return "", nil, nil, nil
	}

	values[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	names["#updated_at"] = "updated_at"
	values[":updated_at"] = &types.AttributeValueMemberS{Value: timeToString(nowUTC())}
	sets = append(sets, "#updated_at = :updated_at")

	expr := "SET " + sets[0]
	for _, s := range sets[1:] {
		expr += ", " + s
	}
	return expr, names, values, nil
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		UnitNumber:   p.UnitNumber,
		Floor:        p.Floor,
		PropertyType: p.PropertyType,
		Price:        floatToString(p.Price),
		Status:       string(p.Status),
		BuyerID:      p.BuyerID,
		UnitPhotos:   toMediaItems(p.UnitPhotos),
		UnitVideos:   toMediaItems(p.UnitVideos),
		QRCodeData:   p.QRCodeData,
		QRCodeSecret: p.QRCodeSecret,
		CreatedAt:    timeToString(p.CreatedAt),
		UpdatedAt:    timeToString(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		UnitNumber:   it.UnitNumber,
		Floor:        it.Floor,
		PropertyType: it.PropertyType,
		Price:        stringToFloat(it.Price),
		Status:       entities.PropertyStatus(it.Status),
		BuyerID:      it.BuyerID,
		UnitPhotos:   fromMediaItems(it.UnitPhotos),
		UnitVideos:   fromMediaItems(it.UnitVideos),
		QRCodeData:   it.QRCodeData,
		QRCodeSecret: it.QRCodeSecret,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
