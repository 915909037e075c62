package usecase

import (
	"context"
	"errors"
	"testing"

	"surveyhub/internal/domain/entities"
	mock_interfaces "surveyhub/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestInstructionLogUseCase_Upsert(t *testing.T) {
	ctx := context.Background()

	newUC := func(ctrl *gomock.Controller) (*InstructionLogUseCase, *mock_interfaces.MockIInstructionLogRepository, *mock_interfaces.MockIQuoteRepository) {
		repo := mock_interfaces.NewMockIInstructionLogRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		return NewInstructionLogUseCase(repo, quoteRepo), repo, quoteRepo
	}

	t.Run("invalid quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newUC(ctrl)

		_, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: "nope"})
		if !errors.Is(err, ErrInvalidLogQuoteID) {
			t.Fatalf("expected ErrInvalidLogQuoteID, got %v", err)
		}
	})

	t.Run("invalid work status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newUC(ctrl)

		_, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: uuid.NewString(), WorkStatus: "done"})
		if !errors.Is(err, ErrInvalidWorkStatus) {
			t.Fatalf("expected ErrInvalidWorkStatus, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quoteRepo := newUC(ctrl)

		quoteID := uuid.NewString()
		quoteRepo.EXPECT().GetByID(ctx, quoteID).Return(entities.Quote{}, nil)

		_, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: quoteID})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not instructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quoteRepo := newUC(ctrl)

		quoteID := uuid.NewString()
		quoteRepo.EXPECT().GetByID(ctx, quoteID).
			Return(entities.Quote{ID: quoteID, InstructionStatus: entities.InstructionStatusPending}, nil)

		_, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: quoteID})
		if !errors.Is(err, ErrQuoteNotInstructed) {
			t.Fatalf("expected ErrQuoteNotInstructed, got %v", err)
		}
	})

	t.Run("defaults work status and inherits project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, quoteRepo := newUC(ctrl)

		quoteID := uuid.NewString()
		projectID := uuid.NewString()
		quoteRepo.EXPECT().GetByID(ctx, quoteID).Return(entities.Quote{
			ID:                quoteID,
			ProjectID:         projectID,
			InstructionStatus: entities.InstructionStatusInstructed,
		}, nil)

		var persisted entities.InstructionLog
		repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.InstructionLog) (entities.InstructionLog, error) {
				persisted = l
				return l, nil
			})

		if _, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: quoteID, Notes: "kickoff booked"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.WorkStatus != entities.WorkStatusNotStarted {
			t.Fatalf("expected default not-started, got %s", persisted.WorkStatus)
		}
		if persisted.ProjectID != projectID {
			t.Fatalf("expected project id inherited from quote, got %q", persisted.ProjectID)
		}
	})

	t.Run("partially instructed quote accepts a log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, quoteRepo := newUC(ctrl)

		quoteID := uuid.NewString()
		partial := 200.0
		quoteRepo.EXPECT().GetByID(ctx, quoteID).Return(entities.Quote{
			ID:                       quoteID,
			InstructionStatus:        entities.InstructionStatusPartiallyInstructed,
			PartiallyInstructedTotal: &partial,
		}, nil)
		repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.InstructionLog) (entities.InstructionLog, error) {
				return l, nil
			})

		if _, err := uc.Upsert(ctx, entities.InstructionLog{QuoteID: quoteID, WorkStatus: entities.WorkStatusInProgress}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInstructionLogUseCase_GetByQuoteID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstructionLogRepository(ctrl)
		uc := NewInstructionLogUseCase(repo, mock_interfaces.NewMockIQuoteRepository(ctrl))

		quoteID := uuid.NewString()
		repo.EXPECT().GetByQuoteID(ctx, quoteID).Return(entities.InstructionLog{}, nil)

		_, err := uc.GetByQuoteID(ctx, quoteID)
		if !errors.Is(err, ErrInstructionLogNotFound) {
			t.Fatalf("expected ErrInstructionLogNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstructionLogRepository(ctrl)
		uc := NewInstructionLogUseCase(repo, mock_interfaces.NewMockIQuoteRepository(ctrl))

		quoteID := uuid.NewString()
		repo.EXPECT().GetByQuoteID(ctx, quoteID).
			Return(entities.InstructionLog{QuoteID: quoteID, WorkStatus: entities.WorkStatusInProgress}, nil)

		l, err := uc.GetByQuoteID(ctx, quoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.WorkStatus != entities.WorkStatusInProgress {
			t.Fatalf("unexpected log: %+v", l)
		}
	})
}
