package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"surveyhub/internal/domain/entities"
	mock_interfaces "surveyhub/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type summaryMocks struct {
	projectRepo *mock_interfaces.MockIProjectRepository
	clientRepo  *mock_interfaces.MockIClientRepository
	quoteRepo   *mock_interfaces.MockIQuoteRepository
	logRepo     *mock_interfaces.MockIInstructionLogRepository
	eventRepo   *mock_interfaces.MockIProgrammeEventRepository
}

func newSummaryUseCase(ctrl *gomock.Controller) (*SummaryUseCase, summaryMocks) {
	m := summaryMocks{
		projectRepo: mock_interfaces.NewMockIProjectRepository(ctrl),
		clientRepo:  mock_interfaces.NewMockIClientRepository(ctrl),
		quoteRepo:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		logRepo:     mock_interfaces.NewMockIInstructionLogRepository(ctrl),
		eventRepo:   mock_interfaces.NewMockIProgrammeEventRepository(ctrl),
	}
	return NewSummaryUseCase(m.projectRepo, m.clientRepo, m.quoteRepo, m.logRepo, m.eventRepo), m
}

func TestSummaryUseCase_SummarizeProject(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and spend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		projectID := uuid.NewString()
		clientID := uuid.NewString()
		project := entities.Project{ID: projectID, Name: "Riverside Depot", ClientID: clientID}

		completedQuote := entities.Quote{
			ID:                uuid.NewString(),
			Organisation:      "Acme Surveys",
			Discipline:        "Topographical",
			Total:             500,
			InstructionStatus: entities.InstructionStatusInstructed,
		}
		partialQuote := entities.Quote{
			ID:                       uuid.NewString(),
			Organisation:             "Geo Ltd",
			Discipline:               "Ecology",
			Total:                    900,
			InstructionStatus:        entities.InstructionStatusPartiallyInstructed,
			PartiallyInstructedTotal: ptrF(200),
		}
		pendingQuote := entities.Quote{
			ID:                uuid.NewString(),
			Organisation:      "Never Engaged",
			Total:             1000,
			InstructionStatus: entities.InstructionStatusPending,
		}

		m.projectRepo.EXPECT().GetByID(ctx, projectID).Return(project, nil)
		m.clientRepo.EXPECT().GetByID(ctx, clientID).Return(entities.Client{ID: clientID, Name: "Harbour Estates"}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, projectID).
			Return([]entities.Quote{completedQuote, partialQuote, pendingQuote}, nil)
		m.logRepo.EXPECT().ListByQuoteIDs(ctx, gomock.Any()).Return([]entities.InstructionLog{
			{QuoteID: completedQuote.ID, WorkStatus: entities.WorkStatusCompleted},
			// partialQuote has no log: outstanding, not-started
		}, nil)
		m.eventRepo.EXPECT().ListByProjectID(ctx, projectID).Return([]entities.ProgrammeEvent{}, nil)

		s, err := uc.SummarizeProject(ctx, projectID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ClientName != "Harbour Estates" {
			t.Fatalf("expected client name resolved, got %q", s.ClientName)
		}
		if s.InstructedCount != 2 {
			t.Fatalf("expected 2 engaged organisations, got %d", s.InstructedCount)
		}
		if s.CompletedCount != 1 {
			t.Fatalf("expected 1 completed, got %d", s.CompletedCount)
		}
		if s.OutstandingCount != 1 || len(s.OutstandingSurveys) != 1 {
			t.Fatalf("expected 1 outstanding, got %d (%d rows)", s.OutstandingCount, len(s.OutstandingSurveys))
		}
		if s.OutstandingSurveys[0].QuoteID != partialQuote.ID {
			t.Fatalf("unexpected outstanding quote: %+v", s.OutstandingSurveys[0])
		}
		if s.OutstandingSurveys[0].WorkStatus != entities.WorkStatusNotStarted {
			t.Fatalf("expected not-started for logless quote, got %s", s.OutstandingSurveys[0].WorkStatus)
		}
		if s.InstructedSpend != 700 {
			t.Fatalf("expected spend 700, got %v", s.InstructedSpend)
		}
	})

	t.Run("dangling client reference resolves to empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		projectID := uuid.NewString()
		clientID := uuid.NewString()
		m.projectRepo.EXPECT().GetByID(ctx, projectID).Return(entities.Project{ID: projectID, ClientID: clientID}, nil)
		m.clientRepo.EXPECT().GetByID(ctx, clientID).Return(entities.Client{}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, projectID).Return(nil, nil)
		m.eventRepo.EXPECT().ListByProjectID(ctx, projectID).Return(nil, nil)

		s, err := uc.SummarizeProject(ctx, projectID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ClientName != "" {
			t.Fatalf("expected empty client name, got %q", s.ClientName)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		projectID := uuid.NewString()
		m.projectRepo.EXPECT().GetByID(ctx, projectID).Return(entities.Project{}, nil)

		_, err := uc.SummarizeProject(ctx, projectID)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("invalid project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSummaryUseCase(ctrl)

		_, err := uc.SummarizeProject(ctx, "not-a-uuid")
		if !errors.Is(err, ErrInvalidProjectFilter) {
			t.Fatalf("expected ErrInvalidProjectFilter, got %v", err)
		}
	})

	t.Run("summaries are recomputed on every call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		projectID := uuid.NewString()
		project := entities.Project{ID: projectID, Name: "Riverside Depot"}
		quote := entities.Quote{
			ID:                uuid.NewString(),
			Organisation:      "Acme Surveys",
			Total:             500,
			InstructionStatus: entities.InstructionStatusInstructed,
		}

		m.projectRepo.EXPECT().GetByID(ctx, projectID).Return(project, nil).Times(2)
		m.quoteRepo.EXPECT().ListByProjectID(ctx, projectID).Return([]entities.Quote{quote}, nil).Times(2)
		m.logRepo.EXPECT().ListByQuoteIDs(ctx, gomock.Any()).Return(nil, nil).Times(2)
		m.eventRepo.EXPECT().ListByProjectID(ctx, projectID).Return(nil, nil).Times(2)

		first, err := uc.SummarizeProject(ctx, projectID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.SummarizeProject(ctx, projectID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.InstructedSpend != second.InstructedSpend || first.OutstandingCount != second.OutstandingCount {
			t.Fatalf("expected identical summaries, got %+v vs %+v", first, second)
		}
	})
}

func TestSummaryUseCase_SummarizeProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid filter rejected before any query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSummaryUseCase(ctrl)

		_, err := uc.SummarizeProjects(ctx, entities.ProjectFilter{SurveyorID: "bogus"})
		if !errors.Is(err, ErrInvalidProjectFilter) {
			t.Fatalf("expected ErrInvalidProjectFilter, got %v", err)
		}
	})

	t.Run("ordered most recent first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		now := time.Now().UTC()
		older := entities.Project{ID: uuid.NewString(), Name: "Older", CreatedAt: now.Add(-time.Hour)}
		newer := entities.Project{ID: uuid.NewString(), Name: "Newer", CreatedAt: now}

		// Store returns in no particular order.
		m.projectRepo.EXPECT().List(ctx, entities.ProjectFilter{}).
			Return([]entities.Project{older, newer}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		m.eventRepo.EXPECT().ListByProjectID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		summaries, err := uc.SummarizeProjects(ctx, entities.ProjectFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].ProjectID != newer.ID || summaries[1].ProjectID != older.ID {
			t.Fatalf("expected newest first, got %s then %s", summaries[0].Name, summaries[1].Name)
		}
	})

	t.Run("one failing project fails the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		now := time.Now().UTC()
		good := entities.Project{ID: uuid.NewString(), CreatedAt: now}
		bad := entities.Project{ID: uuid.NewString(), CreatedAt: now.Add(-time.Minute)}
		storeErr := errors.New("provisioned throughput exceeded")

		m.projectRepo.EXPECT().List(ctx, entities.ProjectFilter{}).
			Return([]entities.Project{good, bad}, nil)
		m.quoteRepo.EXPECT().ListByProjectID(gomock.Any(), good.ID).Return(nil, nil).AnyTimes()
		m.eventRepo.EXPECT().ListByProjectID(gomock.Any(), good.ID).Return(nil, nil).AnyTimes()
		m.quoteRepo.EXPECT().ListByProjectID(gomock.Any(), bad.ID).Return(nil, storeErr)

		summaries, err := uc.SummarizeProjects(ctx, entities.ProjectFilter{})
		if !errors.Is(err, ErrSummaryFailed) {
			t.Fatalf("expected ErrSummaryFailed, got %v", err)
		}
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
		if summaries != nil {
			t.Fatalf("expected no partial result, got %d summaries", len(summaries))
		}
	})

	t.Run("empty store yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSummaryUseCase(ctrl)

		m.projectRepo.EXPECT().List(ctx, entities.ProjectFilter{}).Return(nil, nil)

		summaries, err := uc.SummarizeProjects(ctx, entities.ProjectFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summaries) != 0 {
			t.Fatalf("expected empty list, got %d", len(summaries))
		}
	})
}
