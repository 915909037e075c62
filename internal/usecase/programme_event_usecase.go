package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProgrammeEventNotFound = errors.New("programme event not found")
	ErrInvalidEventID         = errors.New("invalid programme event id")
	ErrInvalidEventProjectID  = errors.New("invalid programme event project id")
	ErrInvalidEventTitle      = errors.New("invalid programme event title")
	ErrInvalidEventDate       = errors.New("invalid programme event date")
)

type IProgrammeEventUseCase interface {
	Create(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgrammeEvent, error)
	Update(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error)
	Delete(ctx context.Context, id string) error
}

type ProgrammeEventUseCase struct {
	repo        interfaces.IProgrammeEventRepository
	projectRepo interfaces.IProjectRepository
}

var _ IProgrammeEventUseCase = (*ProgrammeEventUseCase)(nil)

func NewProgrammeEventUseCase(repo interfaces.IProgrammeEventRepository, projectRepo interfaces.IProjectRepository) *ProgrammeEventUseCase {
	return &ProgrammeEventUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *ProgrammeEventUseCase) Create(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error) {
	e.ProjectID = strings.TrimSpace(e.ProjectID)
	if _, err := uuid.Parse(e.ProjectID); err != nil {
		return entities.ProgrammeEvent{}, ErrInvalidEventProjectID
	}
	if err := validateProgrammeEvent(&e); err != nil {
		return entities.ProgrammeEvent{}, err
	}

	p, err := u.projectRepo.GetByID(ctx, e.ProjectID)
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}
	if p.ID == "" {
		return entities.ProgrammeEvent{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *ProgrammeEventUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgrammeEvent, error) {
	projectID = strings.TrimSpace(projectID)
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, ErrInvalidEventProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *ProgrammeEventUseCase) Update(ctx context.Context, e entities.ProgrammeEvent) (entities.ProgrammeEvent, error) {
	e.ID = strings.TrimSpace(e.ID)
	if _, err := uuid.Parse(e.ID); err != nil {
		return entities.ProgrammeEvent{}, ErrInvalidEventID
	}
	if err := validateProgrammeEvent(&e); err != nil {
		return entities.ProgrammeEvent{}, err
	}

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}
	if existing.ID == "" {
		return entities.ProgrammeEvent{}, ErrProgrammeEventNotFound
	}

	// The event never moves between projects.
	e.ProjectID = existing.ProjectID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.ProgrammeEvent{}, err
	}
	if updated.ID == "" {
		return entities.ProgrammeEvent{}, ErrProgrammeEventNotFound
	}
	return updated, nil
}

func (u *ProgrammeEventUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidEventID
	}
	return u.repo.Delete(ctx, id)
}

func validateProgrammeEvent(e *entities.ProgrammeEvent) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrInvalidEventTitle
	}
	if e.Date.IsZero() {
		return ErrInvalidEventDate
	}
	return nil
}
