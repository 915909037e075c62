package response

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type UploadedWorkResponse struct {
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Description string    `json:"description"`
}

type DateMarkerResponse struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type InstructionLogResponse struct {
	ID              string                 `json:"id"`
	QuoteID         string                 `json:"quote_id"`
	ProjectID       string                 `json:"project_id"`
	WorkStatus      string                 `json:"work_status"`
	SiteVisitDate   *time.Time             `json:"site_visit_date,omitempty"`
	ReportDraftDate *time.Time             `json:"report_draft_date,omitempty"`
	Notes           string                 `json:"notes"`
	UploadedWorks   []UploadedWorkResponse `json:"uploaded_works"`
	DateMarkers     []DateMarkerResponse   `json:"date_markers"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromInstructionLog(l entities.InstructionLog) InstructionLogResponse {
	works := make([]UploadedWorkResponse, len(l.UploadedWorks))
	for i, w := range l.UploadedWorks {
		works[i] = UploadedWorkResponse{
			Filename:    w.Filename,
			Title:       w.Title,
			Version:     w.Version,
			UploadedAt:  w.UploadedAt,
			Description: w.Description,
		}
	}
	markers := make([]DateMarkerResponse, len(l.DateMarkers))
	for i, m := range l.DateMarkers {
		markers[i] = DateMarkerResponse{Title: m.Title, Date: m.Date}
	}
	return InstructionLogResponse{
		ID:              l.ID,
		QuoteID:         l.QuoteID,
		ProjectID:       l.ProjectID,
		WorkStatus:      string(l.WorkStatus),
		SiteVisitDate:   l.SiteVisitDate,
		ReportDraftDate: l.ReportDraftDate,
		Notes:           l.Notes,
		UploadedWorks:   works,
		DateMarkers:     markers,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
