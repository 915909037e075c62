package repository

import (
	"context"
	"strconv"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesProjectIDIndex   = "project_id-index"
)

type lineItemItem struct {
	Category    string `dynamodbav:"category"`
	Description string `dynamodbav:"description,omitempty"`
	Cost        string `dynamodbav:"cost"`
}

type quoteItem struct {
	ID                       string         `dynamodbav:"id"`
	ProjectID                string         `dynamodbav:"project_id"`
	SurveyorID               string         `dynamodbav:"surveyor_id,omitempty"`
	Discipline               string         `dynamodbav:"discipline"`
	Organisation             string         `dynamodbav:"organisation"`
	ContactName              string         `dynamodbav:"contact_name,omitempty"`
	ContactEmail             string         `dynamodbav:"contact_email,omitempty"`
	ContactPhone             string         `dynamodbav:"contact_phone,omitempty"`
	LineItems                []lineItemItem `dynamodbav:"line_items,omitempty"`
	Total                    string         `dynamodbav:"total"`
	InstructionStatus        string         `dynamodbav:"instruction_status"`
	PartiallyInstructedTotal string         `dynamodbav:"partially_instructed_total,omitempty"`
	CreatedAt                string         `dynamodbav:"created_at"`
	UpdatedAt                string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	}

	var quotes []entities.Quote
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DeleteByProjectID removes every quote of a project. Quote-keyed children
// (instruction logs, feedback) must already be gone: once the quotes are
// deleted their id set is unrecoverable.
func (r *QuoteDynamoRepository) DeleteByProjectID(ctx context.Context, projectID string) error {
	quotes, err := r.ListByProjectID(ctx, projectID)
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		return nil
	}

	ids := make([]string, len(quotes))
	for i, q := range quotes {
		ids[i] = q.ID
	}
	return batchDeleteByKey(ctx, r.ddb, r.tableName, "id", ids)
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]lineItemItem, len(q.LineItems))
	for i, li := range q.LineItems {
		items[i] = lineItemItem{
			Category:    li.Category,
			Description: li.Description,
			Cost:        floatToString(li.Cost),
		}
	}

	partial := ""
	if q.PartiallyInstructedTotal != nil {
		partial = floatToString(*q.PartiallyInstructedTotal)
	}

	return quoteItem{
		ID:                       q.ID,
		ProjectID:                q.ProjectID,
		SurveyorID:               q.SurveyorID,
		Discipline:               q.Discipline,
		Organisation:             q.Organisation,
		ContactName:              q.ContactName,
		ContactEmail:             q.ContactEmail,
		ContactPhone:             q.ContactPhone,
		LineItems:                items,
		Total:                    floatToString(q.Total),
		InstructionStatus:        string(q.InstructionStatus),
		PartiallyInstructedTotal: partial,
		CreatedAt:                q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.LineItem, len(it.LineItems))
	for i, li := range it.LineItems {
		cost, _ := strconv.ParseFloat(li.Cost, 64)
		items[i] = entities.LineItem{
			Category:    li.Category,
			Description: li.Description,
			Cost:        cost,
		}
	}

	var partial *float64
	if it.PartiallyInstructedTotal != "" {
		if v, err := strconv.ParseFloat(it.PartiallyInstructedTotal, 64); err == nil {
			partial = &v
		}
	}

	total, _ := strconv.ParseFloat(it.Total, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:                       it.ID,
		ProjectID:                it.ProjectID,
		SurveyorID:               it.SurveyorID,
		Discipline:               it.Discipline,
		Organisation:             it.Organisation,
		ContactName:              it.ContactName,
		ContactEmail:             it.ContactEmail,
		ContactPhone:             it.ContactPhone,
		LineItems:                items,
		Total:                    total,
		InstructionStatus:        entities.InstructionStatus(it.InstructionStatus),
		PartiallyInstructedTotal: partial,
		CreatedAt:                createdAt,
		UpdatedAt:                updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
