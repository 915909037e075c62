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
	ErrFeedbackNotFound       = errors.New("surveyor feedback not found")
	ErrInvalidFeedbackQuoteID = errors.New("invalid feedback quote id")
	ErrInvalidRating          = errors.New("ratings must be between 1 and 5")
)

// ISurveyorFeedbackUseCase exposes the per-quote feedback record. Same 1:1
// upsert discipline as the instruction log.

type ISurveyorFeedbackUseCase interface {
	Upsert(ctx context.Context, f entities.SurveyorFeedback) (entities.SurveyorFeedback, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.SurveyorFeedback, error)
}

type SurveyorFeedbackUseCase struct {
	repo      interfaces.ISurveyorFeedbackRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ ISurveyorFeedbackUseCase = (*SurveyorFeedbackUseCase)(nil)

func NewSurveyorFeedbackUseCase(repo interfaces.ISurveyorFeedbackRepository, quoteRepo interfaces.IQuoteRepository) *SurveyorFeedbackUseCase {
	return &SurveyorFeedbackUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *SurveyorFeedbackUseCase) Upsert(ctx context.Context, f entities.SurveyorFeedback) (entities.SurveyorFeedback, error) {
	f.QuoteID = strings.TrimSpace(f.QuoteID)
	if _, err := uuid.Parse(f.QuoteID); err != nil {
		return entities.SurveyorFeedback{}, ErrInvalidFeedbackQuoteID
	}
	for _, r := range []*int{f.Quality, f.Timeliness, f.Communication, f.Value} {
		if r != nil && (*r < 1 || *r > 5) {
			return entities.SurveyorFeedback{}, ErrInvalidRating
		}
	}

	q, err := u.quoteRepo.GetByID(ctx, f.QuoteID)
	if err != nil {
		return entities.SurveyorFeedback{}, err
	}
	if q.ID == "" {
		return entities.SurveyorFeedback{}, ErrQuoteNotFound
	}

	f.ProjectID = q.ProjectID
	f.UpdatedAt = time.Now().UTC()
	return u.repo.Upsert(ctx, f)
}

func (u *SurveyorFeedbackUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.SurveyorFeedback, error) {
	quoteID = strings.TrimSpace(quoteID)
	if _, err := uuid.Parse(quoteID); err != nil {
		return entities.SurveyorFeedback{}, ErrInvalidFeedbackQuoteID
	}

	f, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.SurveyorFeedback{}, err
	}
	if f.QuoteID == "" {
		return entities.SurveyorFeedback{}, ErrFeedbackNotFound
	}
	return f, nil
}
