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

type projectMocks struct {
	repo         *mock_interfaces.MockIProjectRepository
	quoteRepo    *mock_interfaces.MockIQuoteRepository
	logRepo      *mock_interfaces.MockIInstructionLogRepository
	eventRepo    *mock_interfaces.MockIProgrammeEventRepository
	feedbackRepo *mock_interfaces.MockISurveyorFeedbackRepository
}

func newProjectUseCase(ctrl *gomock.Controller) (*ProjectUseCase, projectMocks) {
	m := projectMocks{
		repo:         mock_interfaces.NewMockIProjectRepository(ctrl),
		quoteRepo:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		logRepo:      mock_interfaces.NewMockIInstructionLogRepository(ctrl),
		eventRepo:    mock_interfaces.NewMockIProgrammeEventRepository(ctrl),
		feedbackRepo: mock_interfaces.NewMockISurveyorFeedbackRepository(ctrl),
	}
	return NewProjectUseCase(m.repo, m.quoteRepo, m.logRepo, m.eventRepo, m.feedbackRepo), m
}

func TestProjectUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newProjectUseCase(ctrl)

		_, err := uc.Create(ctx, entities.Project{Name: "   "})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		var persisted entities.Project
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				persisted = p
				return p, nil
			})

		if _, err := uc.Create(ctx, entities.Project{Name: "Riverside Depot"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(persisted.ID); err != nil {
			t.Fatalf("expected uuid id, got %q", persisted.ID)
		}
		if persisted.CreatedAt.IsZero() || !persisted.CreatedAt.Equal(persisted.UpdatedAt) {
			t.Fatalf("expected matching timestamps, got %+v", persisted)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newProjectUseCase(ctrl)

		if err := uc.Delete(ctx, "nope"); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		id := uuid.NewString()
		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{}, nil)

		if err := uc.Delete(ctx, id); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("cascades logs and feedback before quotes, then events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		id := uuid.NewString()
		quotes := []entities.Quote{{ID: uuid.NewString()}, {ID: uuid.NewString()}}
		quoteIDs := []string{quotes[0].ID, quotes[1].ID}

		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{ID: id}, nil)
		gomock.InOrder(
			m.quoteRepo.EXPECT().ListByProjectID(ctx, id).Return(quotes, nil),
			m.logRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(nil),
			m.feedbackRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(nil),
			m.quoteRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil),
			m.eventRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil),
			m.repo.EXPECT().Delete(ctx, id).Return(nil),
		)

		if err := uc.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skips per-quote cascades when project has no quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		id := uuid.NewString()
		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{ID: id}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, id).Return(nil, nil)
		m.quoteRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil)
		m.eventRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil)
		m.repo.EXPECT().Delete(ctx, id).Return(nil)

		if err := uc.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("project survives when a child delete fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		id := uuid.NewString()
		quotes := []entities.Quote{{ID: uuid.NewString()}}
		quoteIDs := []string{quotes[0].ID}
		storeErr := errors.New("batch write failed")

		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{ID: id}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, id).Return(quotes, nil)
		m.logRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(storeErr)
		// No quote or project delete: the cascade stops on first failure.

		if err := uc.Delete(ctx, id); !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("retry after a failed log delete still reaches the logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		id := uuid.NewString()
		quotes := []entities.Quote{{ID: uuid.NewString()}}
		quoteIDs := []string{quotes[0].ID}
		storeErr := errors.New("batch write failed")

		// First attempt fails deleting the logs. The quotes must survive it,
		// otherwise the log ids would be unrecoverable on retry.
		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{ID: id}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, id).Return(quotes, nil)
		m.logRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(storeErr)

		if err := uc.Delete(ctx, id); !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}

		// The retry sees the same quotes and completes the full cascade.
		m.repo.EXPECT().GetByID(ctx, id).Return(entities.Project{ID: id}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, id).Return(quotes, nil)
		m.logRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(nil)
		m.feedbackRepo.EXPECT().DeleteByQuoteIDs(ctx, quoteIDs).Return(nil)
		m.quoteRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil)
		m.eventRepo.EXPECT().DeleteByProjectID(ctx, id).Return(nil)
		m.repo.EXPECT().Delete(ctx, id).Return(nil)

		if err := uc.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
	})
}

func TestProjectUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid filter id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newProjectUseCase(ctrl)

		_, err := uc.List(ctx, entities.ProjectFilter{ClientUserID: "not-a-uuid"})
		if !errors.Is(err, ErrInvalidProjectFilter) {
			t.Fatalf("expected ErrInvalidProjectFilter, got %v", err)
		}
	})

	t.Run("passes filter to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProjectUseCase(ctrl)

		filter := entities.ProjectFilter{SurveyorID: uuid.NewString()}
		m.repo.EXPECT().List(ctx, filter).Return([]entities.Project{{ID: uuid.NewString()}}, nil)

		projects, err := uc.List(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("expected 1 project, got %d", len(projects))
		}
	})
}
