package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	ClientID      string   `dynamodbav:"client_id,omitempty"`
	Description   string   `dynamodbav:"description,omitempty"`
	SiteAddress   string   `dynamodbav:"site_address,omitempty"`
	SurveyorIDs   []string `dynamodbav:"surveyor_ids,omitempty"`
	ClientUserIDs []string `dynamodbav:"client_user_ids,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

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
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
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

// List scans with a filter expression built from the authorization filter.
// Projects are small-cardinality administrative records; a filtered scan is
// the document-store equivalent of the source system's collection query.
func (r *ProjectDynamoRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	// A zero filter means "all projects": plain unfiltered scan.
	if !filter.IsZero() {
		var exprs []string
		names := map[string]string{}
		values := map[string]types.AttributeValue{}
		if filter.SurveyorID != "" {
			exprs = append(exprs, "contains(#surveyor_ids, :sid)")
			names["#surveyor_ids"] = "surveyor_ids"
			values[":sid"] = &types.AttributeValueMemberS{Value: filter.SurveyorID}
		}
		if filter.ClientUserID != "" {
			exprs = append(exprs, "contains(#client_user_ids, :cid)")
			names["#client_user_ids"] = "client_user_ids"
			values[":cid"] = &types.AttributeValueMemberS{Value: filter.ClientUserID}
		}
		if len(filter.IDs) > 0 {
			placeholders := make([]string, len(filter.IDs))
			for i, id := range filter.IDs {
				ph := fmt.Sprintf(":id%d", i)
				placeholders[i] = ph
				values[ph] = &types.AttributeValueMemberS{Value: id}
			}
			exprs = append(exprs, "#id IN ("+strings.Join(placeholders, ", ")+")")
			names["#id"] = "id"
		}
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var projects []entities.Project
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromProjectItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		Name:          p.Name,
		ClientID:      p.ClientID,
		Description:   p.Description,
		SiteAddress:   p.SiteAddress,
		SurveyorIDs:   p.SurveyorIDs,
		ClientUserIDs: p.ClientUserIDs,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Project{
		ID:            it.ID,
		Name:          it.Name,
		ClientID:      it.ClientID,
		Description:   it.Description,
		SiteAddress:   it.SiteAddress,
		SurveyorIDs:   it.SurveyorIDs,
		ClientUserIDs: it.ClientUserIDs,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
