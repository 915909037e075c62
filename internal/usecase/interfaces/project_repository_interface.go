package interfaces

import (
	"context"

	"surveyhub/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// List applies the filter in the store where it can and returns matches in
// no particular order; callers impose ordering.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
