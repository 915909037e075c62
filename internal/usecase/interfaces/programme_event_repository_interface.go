package interfaces

import (
	"context"

	"surveyhub/internal/domain/entities"
)

// IProgrammeEventRepository abstracts DynamoDB persistence for
// ProgrammeEvent.

type IProgrammeEventRepository interface {
	Create(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error)
	GetByID(ctx context.Context, id string) (entities.ProgrammeEvent, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgrammeEvent, error)
	Update(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error)
	Delete(ctx context.Context, id string) error
	DeleteByProjectID(ctx context.Context, projectID string) error
}
