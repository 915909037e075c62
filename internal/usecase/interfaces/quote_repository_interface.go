package interfaces

import (
	"context"

	"surveyhub/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The summary pipeline must be able to:
//   - list every quote of a project (GSI on project_id)
//   - delete a project's quotes wholesale on cascade delete

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	DeleteByProjectID(ctx context.Context, projectID string) error
}
