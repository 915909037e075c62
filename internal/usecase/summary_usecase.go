package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidProjectFilter = errors.New("invalid project filter")
	ErrSummaryFailed        = errors.New("project summary aggregation failed")
)

// maxConcurrentProjects bounds the per-project fan-out of one summary
// request.
const maxConcurrentProjects = 8

// ProjectSummary is the per-project aggregate produced by the reporting
// pipeline. Counts cover only instructed or partially-instructed quotes.
type ProjectSummary struct {
	ProjectID          string
	Name               string
	ClientName         string
	Description        string
	SiteAddress        string
	InstructedCount    int // distinct organisations engaged
	CompletedCount     int
	OutstandingCount   int
	OutstandingSurveys []OutstandingSurvey
	InstructedSpend    float64
	ProgrammeEvents    []entities.ProgrammeEvent
	CreatedAt          time.Time
}

// ISummaryUseCase exposes the reporting aggregation over projects.
//
// Summaries are recomputed from current store state on every call; there is
// no cache to invalidate. The result is either a full, consistent list or
// an error, never a partial one.

type ISummaryUseCase interface {
	SummarizeProjects(ctx context.Context, filter entities.ProjectFilter) ([]ProjectSummary, error)
	SummarizeProject(ctx context.Context, projectID string) (ProjectSummary, error)
}

type SummaryUseCase struct {
	projectRepo interfaces.IProjectRepository
	clientRepo  interfaces.IClientRepository
	quoteRepo   interfaces.IQuoteRepository
	logRepo     interfaces.IInstructionLogRepository
	eventRepo   interfaces.IProgrammeEventRepository
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(
	projectRepo interfaces.IProjectRepository,
	clientRepo interfaces.IClientRepository,
	quoteRepo interfaces.IQuoteRepository,
	logRepo interfaces.IInstructionLogRepository,
	eventRepo interfaces.IProgrammeEventRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		quoteRepo:   quoteRepo,
		logRepo:     logRepo,
		eventRepo:   eventRepo,
	}
}

// SummarizeProjects produces one summary per project matching the filter,
// ordered by creation time descending. Projects are summarized
// concurrently; any store failure fails the whole batch.
func (u *SummaryUseCase) SummarizeProjects(ctx context.Context, filter entities.ProjectFilter) ([]ProjectSummary, error) {
	if err := validateProjectFilter(filter); err != nil {
		return nil, err
	}

	projects, err := u.projectRepo.List(ctx, filter)
	if err != nil {
		log.Printf("[summary][usecase] listing projects failed err=%v", err)
		return nil, errors.Join(ErrSummaryFailed, err)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	summaries := make([]ProjectSummary, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProjects)
	for i, p := range projects {
		g.Go(func() error {
			s, err := u.summarizeOne(gctx, p)
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[summary][usecase] aggregation failed err=%v", err)
		return nil, errors.Join(ErrSummaryFailed, err)
	}
	return summaries, nil
}

func (u *SummaryUseCase) SummarizeProject(ctx context.Context, projectID string) (ProjectSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if _, err := uuid.Parse(projectID); err != nil {
		return ProjectSummary{}, ErrInvalidProjectFilter
	}

	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return ProjectSummary{}, errors.Join(ErrSummaryFailed, err)
	}
	if p.ID == "" {
		return ProjectSummary{}, ErrProjectNotFound
	}

	s, err := u.summarizeOne(ctx, p)
	if err != nil {
		return ProjectSummary{}, errors.Join(ErrSummaryFailed, err)
	}
	return s, nil
}

// summarizeOne runs the join-then-fold for a single project. The quote and
// log fetches have a true data dependency and are sequenced; everything is
// joined before the fold so the result is deterministic.
func (u *SummaryUseCase) summarizeOne(ctx context.Context, p entities.Project) (ProjectSummary, error) {
	clientName := ""
	if p.ClientID != "" {
		c, err := u.clientRepo.GetByID(ctx, p.ClientID)
		if err != nil {
			return ProjectSummary{}, err
		}
		// Dangling reference: left-join semantics, empty name.
		clientName = c.Name
	}

	quotes, err := u.quoteRepo.ListByProjectID(ctx, p.ID)
	if err != nil {
		return ProjectSummary{}, err
	}

	instructed := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.InstructionStatus.Instructed() {
			instructed = append(instructed, q)
		}
	}

	logsByQuote := map[string]entities.InstructionLog{}
	if len(instructed) > 0 {
		ids := make([]string, len(instructed))
		for i, q := range instructed {
			ids[i] = q.ID
		}
		logs, err := u.logRepo.ListByQuoteIDs(ctx, ids)
		if err != nil {
			return ProjectSummary{}, err
		}
		for _, l := range logs {
			logsByQuote[l.QuoteID] = l
		}
	}

	completed := 0
	outstanding := make([]OutstandingSurvey, 0, len(instructed))
	for _, q := range instructed {
		var l *entities.InstructionLog
		if found, ok := logsByQuote[q.ID]; ok {
			l = &found
		}
		switch class, detail := ClassifySurvey(q, l); class {
		case SurveyCompleted:
			completed++
		case SurveyOutstanding:
			outstanding = append(outstanding, detail)
		}
	}

	events, err := u.eventRepo.ListByProjectID(ctx, p.ID)
	if err != nil {
		return ProjectSummary{}, err
	}

	return ProjectSummary{
		ProjectID:          p.ID,
		Name:               p.Name,
		ClientName:         clientName,
		Description:        p.Description,
		SiteAddress:        p.SiteAddress,
		InstructedCount:    DistinctOrganisationCount(instructed),
		CompletedCount:     completed,
		OutstandingCount:   len(outstanding),
		OutstandingSurveys: outstanding,
		InstructedSpend:    InstructedSpend(instructed),
		ProgrammeEvents:    events,
		CreatedAt:          p.CreatedAt,
	}, nil
}

// validateProjectFilter rejects malformed ids before any query runs.
func validateProjectFilter(filter entities.ProjectFilter) error {
	ids := make([]string, 0, len(filter.IDs)+2)
	if filter.SurveyorID != "" {
		ids = append(ids, filter.SurveyorID)
	}
	if filter.ClientUserID != "" {
		ids = append(ids, filter.ClientUserID)
	}
	ids = append(ids, filter.IDs...)
	for _, id := range ids {
		if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
			return ErrInvalidProjectFilter
		}
	}
	return nil
}
