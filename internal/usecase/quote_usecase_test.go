package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"surveyhub/internal/domain/entities"
	mock_interfaces "surveyhub/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuoteUseCase(mock_interfaces.NewMockIQuoteRepository(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl))

		_, err := uc.Create(ctx, entities.Quote{ProjectID: "not-a-uuid", Discipline: "Topo", Organisation: "Acme"})
		if !errors.Is(err, ErrInvalidQuoteProjectID) {
			t.Fatalf("expected ErrInvalidQuoteProjectID, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewQuoteUseCase(repo, projectRepo)

		projectID := uuid.NewString()
		projectRepo.EXPECT().GetByID(ctx, projectID).Return(entities.Project{}, nil)

		_, err := uc.Create(ctx, entities.Quote{ProjectID: projectID, Discipline: "Topo", Organisation: "Acme"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("empty discipline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuoteUseCase(mock_interfaces.NewMockIQuoteRepository(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl))

		_, err := uc.Create(ctx, entities.Quote{ProjectID: uuid.NewString(), Discipline: "   ", Organisation: "Acme"})
		if !errors.Is(err, ErrInvalidDiscipline) {
			t.Fatalf("expected ErrInvalidDiscipline, got %v", err)
		}
	})

	t.Run("negative line item cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuoteUseCase(mock_interfaces.NewMockIQuoteRepository(ctrl), mock_interfaces.NewMockIProjectRepository(ctrl))

		q := entities.Quote{
			ProjectID:    uuid.NewString(),
			Discipline:   "Topo",
			Organisation: "Acme",
			LineItems:    []entities.LineItem{{Category: "Survey", Cost: -1}},
		}
		_, err := uc.Create(ctx, q)
		if !errors.Is(err, ErrInvalidLineItemCost) {
			t.Fatalf("expected ErrInvalidLineItemCost, got %v", err)
		}
	})

	t.Run("total is rederived from line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewQuoteUseCase(repo, projectRepo)

		projectID := uuid.NewString()
		projectRepo.EXPECT().GetByID(ctx, projectID).Return(entities.Project{ID: projectID}, nil)

		var persisted entities.Quote
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				persisted = q
				return q, nil
			})

		q := entities.Quote{
			ProjectID:    projectID,
			Discipline:   "Topo",
			Organisation: "Acme",
			Total:        999999, // client-supplied total is ignored
			LineItems: []entities.LineItem{
				{Category: "Survey", Cost: 300},
				{Category: "Report", Cost: 150.5},
			},
		}
		if _, err := uc.Create(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.Total != 450.5 {
			t.Fatalf("expected total 450.5, got %v", persisted.Total)
		}
		if persisted.InstructionStatus != entities.InstructionStatusPending {
			t.Fatalf("expected pending status, got %s", persisted.InstructionStatus)
		}
		if persisted.ID == "" || persisted.CreatedAt.IsZero() {
			t.Fatalf("expected id and created_at to be set")
		}
	})

	t.Run("total always equals line item sum", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 100; i++ {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
			uc := NewQuoteUseCase(repo, projectRepo)

			projectID := uuid.NewString()
			projectRepo.EXPECT().GetByID(ctx, projectID).Return(entities.Project{ID: projectID}, nil)

			items := make([]entities.LineItem, rng.Intn(6))
			want := 0.0
			for j := range items {
				items[j] = entities.LineItem{Category: "c", Cost: float64(rng.Intn(10000)) / 100}
				want += items[j].Cost
			}

			var persisted entities.Quote
			repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) {
					persisted = q
					return q, nil
				})

			q := entities.Quote{ProjectID: projectID, Discipline: "Topo", Organisation: "Acme", LineItems: items}
			if _, err := uc.Create(ctx, q); err != nil {
				t.Fatalf("iteration %d: unexpected error: %v", i, err)
			}
			if persisted.Total != want {
				t.Fatalf("iteration %d: expected total %v, got %v", i, want, persisted.Total)
			}
			ctrl.Finish()
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ownership fields are immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, mock_interfaces.NewMockIProjectRepository(ctrl))

		id := uuid.NewString()
		existing := entities.Quote{
			ID:                id,
			ProjectID:         uuid.NewString(),
			SurveyorID:        uuid.NewString(),
			Discipline:        "Topo",
			Organisation:      "Acme",
			InstructionStatus: entities.InstructionStatusPending,
		}
		repo.EXPECT().GetByID(ctx, id).Return(existing, nil)

		var persisted entities.Quote
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				persisted = q
				return q, nil
			})

		update := entities.Quote{
			ID:                id,
			ProjectID:         uuid.NewString(), // attacker-controlled, must be ignored
			SurveyorID:        uuid.NewString(),
			Discipline:        "Ecology",
			Organisation:      "Acme",
			InstructionStatus: entities.InstructionStatusPending,
		}
		if _, err := uc.Update(ctx, update); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.ProjectID != existing.ProjectID || persisted.SurveyorID != existing.SurveyorID {
			t.Fatalf("ownership fields changed: %+v", persisted)
		}
		if persisted.Discipline != "Ecology" {
			t.Fatalf("expected discipline updated, got %s", persisted.Discipline)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, mock_interfaces.NewMockIProjectRepository(ctrl))

		id := uuid.NewString()
		repo.EXPECT().GetByID(ctx, id).Return(entities.Quote{}, nil)

		_, err := uc.Update(ctx, entities.Quote{ID: id, Discipline: "Topo", Organisation: "Acme"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_SetInstructionStatus(t *testing.T) {
	ctx := context.Background()

	newUC := func(ctrl *gomock.Controller) (*QuoteUseCase, *mock_interfaces.MockIQuoteRepository) {
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		return NewQuoteUseCase(repo, mock_interfaces.NewMockIProjectRepository(ctrl)), repo
	}

	baseQuote := func(id string) entities.Quote {
		return entities.Quote{
			ID:                id,
			ProjectID:         uuid.NewString(),
			Discipline:        "Topo",
			Organisation:      "Acme",
			LineItems:         []entities.LineItem{{Category: "Survey", Cost: 500}},
			Total:             500,
			InstructionStatus: entities.InstructionStatusPending,
		}
	}

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newUC(ctrl)

		_, err := uc.SetInstructionStatus(ctx, uuid.NewString(), "approved", nil)
		if !errors.Is(err, ErrInvalidInstructionState) {
			t.Fatalf("expected ErrInvalidInstructionState, got %v", err)
		}
	})

	t.Run("partially instructed requires partial total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		id := uuid.NewString()
		repo.EXPECT().GetByID(ctx, id).Return(baseQuote(id), nil)

		_, err := uc.SetInstructionStatus(ctx, id, entities.InstructionStatusPartiallyInstructed, nil)
		if !errors.Is(err, ErrPartialTotalRequired) {
			t.Fatalf("expected ErrPartialTotalRequired, got %v", err)
		}
	})

	t.Run("negative partial total rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		id := uuid.NewString()
		repo.EXPECT().GetByID(ctx, id).Return(baseQuote(id), nil)

		_, err := uc.SetInstructionStatus(ctx, id, entities.InstructionStatusPartiallyInstructed, ptrF(-5))
		if !errors.Is(err, ErrInvalidPartialTotal) {
			t.Fatalf("expected ErrInvalidPartialTotal, got %v", err)
		}
	})

	t.Run("partial total stored on transition in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		id := uuid.NewString()
		repo.EXPECT().GetByID(ctx, id).Return(baseQuote(id), nil)

		var persisted entities.Quote
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				persisted = q
				return q, nil
			})

		if _, err := uc.SetInstructionStatus(ctx, id, entities.InstructionStatusPartiallyInstructed, ptrF(200)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.PartiallyInstructedTotal == nil || *persisted.PartiallyInstructedTotal != 200 {
			t.Fatalf("expected partial total 200, got %+v", persisted.PartiallyInstructedTotal)
		}
	})

	t.Run("partial total cleared on transition out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		id := uuid.NewString()
		q := baseQuote(id)
		q.InstructionStatus = entities.InstructionStatusPartiallyInstructed
		q.PartiallyInstructedTotal = ptrF(200)
		repo.EXPECT().GetByID(ctx, id).Return(q, nil)

		var persisted entities.Quote
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				persisted = q
				return q, nil
			})

		if _, err := uc.SetInstructionStatus(ctx, id, entities.InstructionStatusInstructed, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.PartiallyInstructedTotal != nil {
			t.Fatalf("expected partial total cleared, got %v", *persisted.PartiallyInstructedTotal)
		}
	})
}
