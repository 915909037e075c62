package repository

import (
	"context"
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

const defaultInstructionLogsTableName = "instruction_logs"

type uploadedWorkItem struct {
	Filename    string `dynamodbav:"filename"`
	Title       string `dynamodbav:"title,omitempty"`
	Version     string `dynamodbav:"version,omitempty"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
	Description string `dynamodbav:"description,omitempty"`
}

type dateMarkerItem struct {
	Title string `dynamodbav:"title"`
	Date  string `dynamodbav:"date"`
}

type instructionLogItem struct {
	QuoteID         string             `dynamodbav:"quote_id"`
	ID              string             `dynamodbav:"id"`
	ProjectID       string             `dynamodbav:"project_id"`
	WorkStatus      string             `dynamodbav:"work_status"`
	SiteVisitDate   string             `dynamodbav:"site_visit_date,omitempty"`
	ReportDraftDate string             `dynamodbav:"report_draft_date,omitempty"`
	Notes           string             `dynamodbav:"notes,omitempty"`
	UploadedWorks   []uploadedWorkItem `dynamodbav:"uploaded_works,omitempty"`
	DateMarkers     []dateMarkerItem   `dynamodbav:"date_markers,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// InstructionLogDynamoRepository persists InstructionLog entities in
// DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// The quote id as PK guarantees at most one log per quote; Upsert is one
// UpdateItem call, so two racing upserts serialize in the store and the
// logically last write wins. id and created_at survive via if_not_exists.

type InstructionLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstructionLogRepository = (*InstructionLogDynamoRepository)(nil)

func NewInstructionLogDynamoRepository(ddb *dynamodb.Client) *InstructionLogDynamoRepository {
	return &InstructionLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTRUCTION_LOGS_TABLE", defaultInstructionLogsTableName),
	}
}

func (r *InstructionLogDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.InstructionLog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InstructionLog{}, err
	}
	if len(out.Item) == 0 {
		return entities.InstructionLog{}, nil
	}

	var it instructionLogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InstructionLog{}, err
	}
	return fromInstructionLogItem(it), nil
}

// ListByQuoteIDs is the "quote_id in list" predicate used by the summary
// pipeline, implemented as BatchGetItem over the PK in chunks of 100.
func (r *InstructionLogDynamoRepository) ListByQuoteIDs(ctx context.Context, quoteIDs []string) ([]entities.InstructionLog, error) {
	var logs []entities.InstructionLog
	for _, chunk := range chunkStrings(quoteIDs, 100) {
		keys := make([]map[string]types.AttributeValue, len(chunk))
		for i, id := range chunk {
			keys[i] = map[string]types.AttributeValue{
				"quote_id": &types.AttributeValueMemberS{Value: id},
			}
		}

		pending := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}
		for len(pending[r.tableName].Keys) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it instructionLogItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				logs = append(logs, fromInstructionLogItem(it))
			}
			pending = out.UnprocessedKeys
		}
	}
	return logs, nil
}

func (r *InstructionLogDynamoRepository) Upsert(ctx context.Context, l entities.InstructionLog) (entities.InstructionLog, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	set := []string{
		"#id = if_not_exists(#id, :new_id)",
		"#project_id = :project_id",
		"#work_status = :work_status",
		"#notes = :notes",
		"#uploaded_works = :uploaded_works",
		"#date_markers = :date_markers",
		"#created_at = if_not_exists(#created_at, :now)",
		"#updated_at = :now",
	}
	names := map[string]string{
		"#id":                "id",
		"#project_id":        "project_id",
		"#work_status":       "work_status",
		"#notes":             "notes",
		"#uploaded_works":    "uploaded_works",
		"#date_markers":      "date_markers",
		"#created_at":        "created_at",
		"#updated_at":        "updated_at",
		"#site_visit_date":   "site_visit_date",
		"#report_draft_date": "report_draft_date",
	}

	works, err := attributevalue.Marshal(toUploadedWorkItems(l.UploadedWorks))
	if err != nil {
		return entities.InstructionLog{}, err
	}
	markers, err := attributevalue.Marshal(toDateMarkerItems(l.DateMarkers))
	if err != nil {
		return entities.InstructionLog{}, err
	}

	values := map[string]types.AttributeValue{
		":new_id":         &types.AttributeValueMemberS{Value: uuid.NewString()},
		":project_id":     &types.AttributeValueMemberS{Value: l.ProjectID},
		":work_status":    &types.AttributeValueMemberS{Value: string(l.WorkStatus)},
		":notes":          &types.AttributeValueMemberS{Value: l.Notes},
		":uploaded_works": works,
		":date_markers":   markers,
		":now":            &types.AttributeValueMemberS{Value: now},
	}

	var remove []string
	if l.SiteVisitDate != nil {
		set = append(set, "#site_visit_date = :site_visit_date")
		values[":site_visit_date"] = &types.AttributeValueMemberS{Value: l.SiteVisitDate.UTC().Format(time.RFC3339Nano)}
	} else {
		remove = append(remove, "#site_visit_date")
	}
	if l.ReportDraftDate != nil {
		set = append(set, "#report_draft_date = :report_draft_date")
		values[":report_draft_date"] = &types.AttributeValueMemberS{Value: l.ReportDraftDate.UTC().Format(time.RFC3339Nano)}
	} else {
		remove = append(remove, "#report_draft_date")
	}

	expr := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: l.QuoteID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.InstructionLog{}, err
	}

	var it instructionLogItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InstructionLog{}, err
	}
	return fromInstructionLogItem(it), nil
}

func (r *InstructionLogDynamoRepository) DeleteByQuoteIDs(ctx context.Context, quoteIDs []string) error {
	return batchDeleteByKey(ctx, r.ddb, r.tableName, "quote_id", quoteIDs)
}

func toUploadedWorkItems(works []entities.UploadedWork) []uploadedWorkItem {
	items := make([]uploadedWorkItem, len(works))
	for i, w := range works {
		items[i] = uploadedWorkItem{
			Filename:    w.Filename,
			Title:       w.Title,
			Version:     w.Version,
			UploadedAt:  w.UploadedAt.UTC().Format(time.RFC3339Nano),
			Description: w.Description,
		}
	}
	return items
}

func toDateMarkerItems(markers []entities.DateMarker) []dateMarkerItem {
	items := make([]dateMarkerItem, len(markers))
	for i, m := range markers {
		items[i] = dateMarkerItem{
			Title: m.Title,
			Date:  m.Date.UTC().Format(time.RFC3339Nano),
		}
	}
	return items
}

func fromInstructionLogItem(it instructionLogItem) entities.InstructionLog {
	works := make([]entities.UploadedWork, len(it.UploadedWorks))
	for i, w := range it.UploadedWorks {
		uploadedAt, _ := time.Parse(time.RFC3339Nano, w.UploadedAt)
		works[i] = entities.UploadedWork{
			Filename:    w.Filename,
			Title:       w.Title,
			Version:     w.Version,
			UploadedAt:  uploadedAt,
			Description: w.Description,
		}
	}
	markers := make([]entities.DateMarker, len(it.DateMarkers))
	for i, m := range it.DateMarkers {
		date, _ := time.Parse(time.RFC3339Nano, m.Date)
		markers[i] = entities.DateMarker{Title: m.Title, Date: date}
	}

	l := entities.InstructionLog{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		ProjectID:     it.ProjectID,
		WorkStatus:    entities.WorkStatus(it.WorkStatus),
		Notes:         it.Notes,
		UploadedWorks: works,
		DateMarkers:   markers,
	}
	if it.SiteVisitDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.SiteVisitDate); err == nil {
			l.SiteVisitDate = &t
		}
	}
	if it.ReportDraftDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ReportDraftDate); err == nil {
			l.ReportDraftDate = &t
		}
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	l.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return l
}
