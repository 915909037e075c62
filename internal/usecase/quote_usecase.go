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
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuoteProjectID   = errors.New("invalid quote project id")
	ErrInvalidDiscipline       = errors.New("invalid discipline")
	ErrInvalidOrganisation     = errors.New("invalid organisation")
	ErrInvalidLineItemCost     = errors.New("line item cost must be non-negative")
	ErrInvalidInstructionState = errors.New("invalid instruction status")
	ErrPartialTotalRequired    = errors.New("partially_instructed_total required for partially-instructed quotes")
	ErrPartialTotalForbidden   = errors.New("partially_instructed_total only allowed on partially-instructed quotes")
	ErrInvalidPartialTotal     = errors.New("partially_instructed_total must be non-negative")
)

// IQuoteUseCase exposes quote submission and instruction operations.
//
// Every write path re-derives Total from the line items and enforces the
// partial-total iff partially-instructed invariant, so no document can be
// persisted violating either.

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	SetInstructionStatus(ctx context.Context, id string, status entities.InstructionStatus, partialTotal *float64) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	projectRepo interfaces.IProjectRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, projectRepo interfaces.IProjectRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ProjectID = strings.TrimSpace(q.ProjectID)
	if _, err := uuid.Parse(q.ProjectID); err != nil {
		return entities.Quote{}, ErrInvalidQuoteProjectID
	}
	if err := validateQuote(&q); err != nil {
		return entities.Quote{}, err
	}

	// A quote never exists without a backing project.
	p, err := u.projectRepo.GetByID(ctx, q.ProjectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if p.ID == "" {
		return entities.Quote{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, ErrInvalidQuoteProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *QuoteUseCase) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if _, err := uuid.Parse(q.ID); err != nil {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	existing, err := u.repo.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	// Ownership and submitter are immutable.
	q.ProjectID = existing.ProjectID
	q.SurveyorID = existing.SurveyorID
	q.CreatedAt = existing.CreatedAt
	if err := validateQuote(&q); err != nil {
		return entities.Quote{}, err
	}

	q.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, q)
}

// SetInstructionStatus transitions a quote's instruction status. The
// partial total must accompany a transition into partially-instructed and
// is cleared on any transition away from it.
func (u *QuoteUseCase) SetInstructionStatus(ctx context.Context, id string, status entities.InstructionStatus, partialTotal *float64) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidInstructionState
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q.InstructionStatus = status
	if status == entities.InstructionStatusPartiallyInstructed {
		q.PartiallyInstructedTotal = partialTotal
	} else {
		q.PartiallyInstructedTotal = nil
	}
	if err := validateQuote(&q); err != nil {
		return entities.Quote{}, err
	}

	q.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, q)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidQuoteID
	}
	return u.repo.Delete(ctx, id)
}

// validateQuote normalizes and checks a quote before persisting. It
// recomputes Total, so the stored total always equals the line-item sum.
func validateQuote(q *entities.Quote) error {
	q.Discipline = strings.TrimSpace(q.Discipline)
	if q.Discipline == "" {
		return ErrInvalidDiscipline
	}
	q.Organisation = strings.TrimSpace(q.Organisation)
	if q.Organisation == "" {
		return ErrInvalidOrganisation
	}
	for _, li := range q.LineItems {
		if li.Cost < 0 {
			return ErrInvalidLineItemCost
		}
	}
	if q.InstructionStatus == "" {
		q.InstructionStatus = entities.InstructionStatusPending
	}
	if !q.InstructionStatus.Valid() {
		return ErrInvalidInstructionState
	}

	if q.InstructionStatus == entities.InstructionStatusPartiallyInstructed {
		if q.PartiallyInstructedTotal == nil {
			return ErrPartialTotalRequired
		}
		if *q.PartiallyInstructedTotal < 0 {
			return ErrInvalidPartialTotal
		}
	} else if q.PartiallyInstructedTotal != nil {
		return ErrPartialTotalForbidden
	}

	q.RecomputeTotal()
	return nil
}
