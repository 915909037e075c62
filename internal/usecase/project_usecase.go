package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// IProjectUseCase exposes administrator project operations.
//
// Delete cascades to every child collection: quotes, instruction logs,
// programme events and surveyor feedback. The logs and feedback are keyed
// by quote id, so they are removed via the deleted quotes' id set.

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo         interfaces.IProjectRepository
	quoteRepo    interfaces.IQuoteRepository
	logRepo      interfaces.IInstructionLogRepository
	eventRepo    interfaces.IProgrammeEventRepository
	feedbackRepo interfaces.ISurveyorFeedbackRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	quoteRepo interfaces.IQuoteRepository,
	logRepo interfaces.IInstructionLogRepository,
	eventRepo interfaces.IProgrammeEventRepository,
	feedbackRepo interfaces.ISurveyorFeedbackRepository,
) *ProjectUseCase {
	return &ProjectUseCase{
		repo:         repo,
		quoteRepo:    quoteRepo,
		logRepo:      logRepo,
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	if err := validateProjectFilter(filter); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}

func (u *ProjectUseCase) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if _, err := uuid.Parse(p.ID); err != nil {
		return entities.Project{}, ErrInvalidProjectID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProjectNotFound
	}

	// Children first, parent last, so a failed cascade leaves the project
	// visible and the delete retryable. Quote-keyed children go before the
	// quotes themselves: their ids are only reachable through the quotes,
	// so deleting the quotes first would strand logs and feedback if a
	// later step failed and the delete were retried.
	quotes, err := u.quoteRepo.ListByProjectID(ctx, id)
	if err != nil {
		return err
	}
	quoteIDs := make([]string, len(quotes))
	for i, q := range quotes {
		quoteIDs[i] = q.ID
	}
	if len(quoteIDs) > 0 {
		if err := u.logRepo.DeleteByQuoteIDs(ctx, quoteIDs); err != nil {
			return err
		}
		if err := u.feedbackRepo.DeleteByQuoteIDs(ctx, quoteIDs); err != nil {
			return err
		}
	}
	if err := u.quoteRepo.DeleteByProjectID(ctx, id); err != nil {
		return err
	}
	if err := u.eventRepo.DeleteByProjectID(ctx, id); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[project][usecase] deleted project %s with %d quotes cascaded", id, len(quoteIDs))
	return nil
}
