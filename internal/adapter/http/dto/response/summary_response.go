package response

import (
	"time"

	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase"
)

// ProjectSummaryResponse is the reporting API surface. It is built
// field-by-field as an allow-list: nothing from the internal join (raw
// quote or log documents) can reach callers unless named here.

type OutstandingSurveyResponse struct {
	QuoteID      string `json:"quote_id"`
	Discipline   string `json:"discipline"`
	Organisation string `json:"organisation"`
	ContactName  string `json:"contact_name"`
	WorkStatus   string `json:"work_status"`
}

type ProgrammeEventResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Color string    `json:"color"`
}

type ProjectSummaryResponse struct {
	ProjectID          string                      `json:"project_id"`
	Name               string                      `json:"name"`
	ClientName         string                      `json:"client_name"`
	Description        string                      `json:"description"`
	SiteAddress        string                      `json:"site_address"`
	InstructedCount    int                         `json:"instructed_count"`
	CompletedCount     int                         `json:"completed_count"`
	OutstandingCount   int                         `json:"outstanding_count"`
	OutstandingSurveys []OutstandingSurveyResponse `json:"outstanding_surveys"`
	InstructedSpend    float64                     `json:"instructed_spend"`
	ProgrammeEvents    []ProgrammeEventResponse    `json:"programme_events"`
	CreatedAt          time.Time                   `json:"created_at"`
}

func FromProjectSummary(s usecase.ProjectSummary) ProjectSummaryResponse {
	outstanding := make([]OutstandingSurveyResponse, len(s.OutstandingSurveys))
	for i, o := range s.OutstandingSurveys {
		outstanding[i] = OutstandingSurveyResponse{
			QuoteID:      o.QuoteID,
			Discipline:   o.Discipline,
			Organisation: o.Organisation,
			ContactName:  o.ContactName,
			WorkStatus:   string(o.WorkStatus),
		}
	}
	return ProjectSummaryResponse{
		ProjectID:          s.ProjectID,
		Name:               s.Name,
		ClientName:         s.ClientName,
		Description:        s.Description,
		SiteAddress:        s.SiteAddress,
		InstructedCount:    s.InstructedCount,
		CompletedCount:     s.CompletedCount,
		OutstandingCount:   s.OutstandingCount,
		OutstandingSurveys: outstanding,
		InstructedSpend:    s.InstructedSpend,
		ProgrammeEvents:    fromProgrammeEvents(s.ProgrammeEvents),
		CreatedAt:          s.CreatedAt,
	}
}

func FromProjectSummaries(summaries []usecase.ProjectSummary) []ProjectSummaryResponse {
	out := make([]ProjectSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = FromProjectSummary(s)
	}
	return out
}

func fromProgrammeEvents(events []entities.ProgrammeEvent) []ProgrammeEventResponse {
	out := make([]ProgrammeEventResponse, len(events))
	for i, e := range events {
		out[i] = ProgrammeEventResponse{
			ID:    e.ID,
			Title: e.Title,
			Date:  e.Date,
			Color: e.Color,
		}
	}
	return out
}
