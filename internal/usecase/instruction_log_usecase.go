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
	ErrInstructionLogNotFound = errors.New("instruction log not found")
	ErrInvalidLogQuoteID      = errors.New("invalid instruction log quote id")
	ErrInvalidWorkStatus      = errors.New("invalid work status")
	ErrQuoteNotInstructed     = errors.New("quote is not instructed")
)

// IInstructionLogUseCase exposes survey progress tracking.
//
// The log is created lazily on first write once its quote is instructed;
// the write itself is an atomic store-level upsert keyed on quote id, so
// concurrent writers cannot produce duplicate documents.

type IInstructionLogUseCase interface {
	Upsert(ctx context.Context, l entities.InstructionLog) (entities.InstructionLog, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.InstructionLog, error)
}

type InstructionLogUseCase struct {
	repo      interfaces.IInstructionLogRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IInstructionLogUseCase = (*InstructionLogUseCase)(nil)

func NewInstructionLogUseCase(repo interfaces.IInstructionLogRepository, quoteRepo interfaces.IQuoteRepository) *InstructionLogUseCase {
	return &InstructionLogUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *InstructionLogUseCase) Upsert(ctx context.Context, l entities.InstructionLog) (entities.InstructionLog, error) {
	l.QuoteID = strings.TrimSpace(l.QuoteID)
	if _, err := uuid.Parse(l.QuoteID); err != nil {
		return entities.InstructionLog{}, ErrInvalidLogQuoteID
	}
	if l.WorkStatus == "" {
		l.WorkStatus = entities.WorkStatusNotStarted
	}
	if !l.WorkStatus.Valid() {
		return entities.InstructionLog{}, ErrInvalidWorkStatus
	}

	q, err := u.quoteRepo.GetByID(ctx, l.QuoteID)
	if err != nil {
		return entities.InstructionLog{}, err
	}
	if q.ID == "" {
		return entities.InstructionLog{}, ErrQuoteNotFound
	}
	if !q.InstructionStatus.Instructed() {
		return entities.InstructionLog{}, ErrQuoteNotInstructed
	}

	l.ProjectID = q.ProjectID
	l.UpdatedAt = time.Now().UTC()
	return u.repo.Upsert(ctx, l)
}

func (u *InstructionLogUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.InstructionLog, error) {
	quoteID = strings.TrimSpace(quoteID)
	if _, err := uuid.Parse(quoteID); err != nil {
		return entities.InstructionLog{}, ErrInvalidLogQuoteID
	}

	l, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.InstructionLog{}, err
	}
	if l.QuoteID == "" {
		return entities.InstructionLog{}, ErrInstructionLogNotFound
	}
	return l, nil
}
