package repository

import (
	"context"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProgrammeEventsTableName = "programme_events"
	eventsProjectIDIndex            = "project_id-index"
)

type programmeEventItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	Title     string `dynamodbav:"title"`
	Date      string `dynamodbav:"date"`
	Color     string `dynamodbav:"color,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProgrammeEventDynamoRepository persists ProgrammeEvent entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ProgrammeEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgrammeEventRepository = (*ProgrammeEventDynamoRepository)(nil)

func NewProgrammeEventDynamoRepository(ddb *dynamodb.Client) *ProgrammeEventDynamoRepository {
	return &ProgrammeEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRAMME_EVENTS_TABLE", defaultProgrammeEventsTableName),
	}
}

func (r *ProgrammeEventDynamoRepository) Create(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error) {
	av, err := attributevalue.MarshalMap(toProgrammeEventItem(e))
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}
	return e, nil
}

func (r *ProgrammeEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProgrammeEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProgrammeEvent{}, nil
	}

	var it programmeEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProgrammeEvent{}, err
	}
	return fromProgrammeEventItem(it), nil
}

func (r *ProgrammeEventDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgrammeEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(eventsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	}

	var events []entities.ProgrammeEvent
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it programmeEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, fromProgrammeEventItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return events, nil
}

func (r *ProgrammeEventDynamoRepository) Update(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error) {
	av, err := attributevalue.MarshalMap(toProgrammeEventItem(e))
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return entities.ProgrammeEvent{}, nil
		}
		return entities.ProgrammeEvent{}, err
	}
	return e, nil
}

func (r *ProgrammeEventDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProgrammeEventDynamoRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	events, err := r.ListByProjectID(ctx, projectID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return batchDeleteByKey(ctx, r.ddb, r.tableName, "id", ids)
}

func toProgrammeEventItem(e entities.ProgrammeEvent) programmeEventItem {
	return programmeEventItem{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Date:      e.Date.UTC().Format(time.RFC3339Nano),
		Color:     e.Color,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProgrammeEventItem(it programmeEventItem) entities.ProgrammeEvent {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProgrammeEvent{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		Title:     it.Title,
		Date:      date,
		Color:     it.Color,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
