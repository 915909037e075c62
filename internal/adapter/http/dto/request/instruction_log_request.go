package request

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type UploadedWorkRequest struct {
	Filename    string    `json:"filename" binding:"required"`
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Description string    `json:"description"`
}

type DateMarkerRequest struct {
	Title string    `json:"title" binding:"required"`
	Date  time.Time `json:"date" binding:"required"`
}

// InstructionLogUpsertRequest is the full desired state of a quote's
// instruction log; the store upsert applies it atomically.
type InstructionLogUpsertRequest struct {
	WorkStatus      string                `json:"work_status"`
	SiteVisitDate   *time.Time            `json:"site_visit_date"`
	ReportDraftDate *time.Time            `json:"report_draft_date"`
	Notes           string                `json:"notes"`
	UploadedWorks   []UploadedWorkRequest `json:"uploaded_works"`
	DateMarkers     []DateMarkerRequest   `json:"date_markers"`
}

func (r InstructionLogUpsertRequest) ToEntity(quoteID string) entities.InstructionLog {
	works := make([]entities.UploadedWork, len(r.UploadedWorks))
	for i, w := range r.UploadedWorks {
		works[i] = entities.UploadedWork{
			Filename:    w.Filename,
			Title:       w.Title,
			Version:     w.Version,
			UploadedAt:  w.UploadedAt,
			Description: w.Description,
		}
	}
	markers := make([]entities.DateMarker, len(r.DateMarkers))
	for i, m := range r.DateMarkers {
		markers[i] = entities.DateMarker{Title: m.Title, Date: m.Date}
	}
	return entities.InstructionLog{
		QuoteID:         quoteID,
		WorkStatus:      entities.WorkStatus(r.WorkStatus),
		SiteVisitDate:   r.SiteVisitDate,
		ReportDraftDate: r.ReportDraftDate,
		Notes:           r.Notes,
		UploadedWorks:   works,
		DateMarkers:     markers,
	}
}
