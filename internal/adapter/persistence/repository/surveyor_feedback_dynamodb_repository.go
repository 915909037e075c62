package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/google/uuid"
)

const defaultSurveyorFeedbackTableName = "surveyor_feedback"

type surveyorFeedbackItem struct {
	QuoteID       string `dynamodbav:"quote_id"`
	ID            string `dynamodbav:"id"`
	ProjectID     string `dynamodbav:"project_id"`
	Quality       *int   `dynamodbav:"quality,omitempty"`
	Timeliness    *int   `dynamodbav:"timeliness,omitempty"`
	Communication *int   `dynamodbav:"communication,omitempty"`
	Value         *int   `dynamodbav:"value,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SurveyorFeedbackDynamoRepository persists SurveyorFeedback entities in
// DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// Same single-UpdateItem upsert as the instruction log repository.

type SurveyorFeedbackDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISurveyorFeedbackRepository = (*SurveyorFeedbackDynamoRepository)(nil)

func NewSurveyorFeedbackDynamoRepository(ddb *dynamodb.Client) *SurveyorFeedbackDynamoRepository {
	return &SurveyorFeedbackDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SURVEYOR_FEEDBACK_TABLE", defaultSurveyorFeedbackTableName),
	}
}

func (r *SurveyorFeedbackDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.SurveyorFeedback, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SurveyorFeedback{}, err
	}
	if len(out.Item) == 0 {
		return entities.SurveyorFeedback{}, nil
	}

	var it surveyorFeedbackItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SurveyorFeedback{}, err
	}
	return fromSurveyorFeedbackItem(it), nil
}

func (r *SurveyorFeedbackDynamoRepository) Upsert(ctx context.Context, f entities.SurveyorFeedback) (entities.SurveyorFeedback, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	set := []string{
		"#id = if_not_exists(#id, :new_id)",
		"#project_id = :project_id",
		"#notes = :notes",
		"#created_at = if_not_exists(#created_at, :now)",
		"#updated_at = :now",
	}
	names := map[string]string{
		"#id":            "id",
		"#project_id":    "project_id",
		"#notes":         "notes",
		"#created_at":    "created_at",
		"#updated_at":    "updated_at",
		"#quality":       "quality",
		"#timeliness":    "timeliness",
		"#communication": "communication",
		"#value":         "value",
	}
	values := map[string]types.AttributeValue{
		":new_id":     &types.AttributeValueMemberS{Value: uuid.NewString()},
		":project_id": &types.AttributeValueMemberS{Value: f.ProjectID},
		":notes":      &types.AttributeValueMemberS{Value: f.Notes},
		":now":        &types.AttributeValueMemberS{Value: now},
	}

	var remove []string
	ratings := []struct {
		name  string
		value *int
	}{
		{"quality", f.Quality},
		{"timeliness", f.Timeliness},
		{"communication", f.Communication},
		{"value", f.Value},
	}
	for _, rt := range ratings {
		if rt.value != nil {
			set = append(set, "#"+rt.name+" = :"+rt.name)
			values[":"+rt.name] = &types.AttributeValueMemberN{Value: strconv.Itoa(*rt.value)}
		} else {
			remove = append(remove, "#"+rt.name)
		}
	}

	expr := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: f.QuoteID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.SurveyorFeedback{}, err
	}

	var it surveyorFeedbackItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SurveyorFeedback{}, err
	}
	return fromSurveyorFeedbackItem(it), nil
}

func (r *SurveyorFeedbackDynamoRepository) DeleteByQuoteIDs(ctx context.Context, quoteIDs []string) error {
	return batchDeleteByKey(ctx, r.ddb, r.tableName, "quote_id", quoteIDs)
}

func fromSurveyorFeedbackItem(it surveyorFeedbackItem) entities.SurveyorFeedback {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SurveyorFeedback{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		ProjectID:     it.ProjectID,
		Quality:       it.Quality,
		Timeliness:    it.Timeliness,
		Communication: it.Communication,
		Value:         it.Value,
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
