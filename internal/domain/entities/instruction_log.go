package entities

import "time"

// WorkStatus tracks the delivery progress of an instructed survey.

type WorkStatus string

const (
	WorkStatusNotStarted      WorkStatus = "not-started"
	WorkStatusInProgress      WorkStatus = "in-progress"
	WorkStatusCompleted       WorkStatus = "completed"
	WorkStatusTRPReviewing    WorkStatus = "trp-reviewing"
	WorkStatusClientReviewing WorkStatus = "client-reviewing"
)

func (s WorkStatus) Valid() bool {
	switch s {
	case WorkStatusNotStarted, WorkStatusInProgress, WorkStatusCompleted,
		WorkStatusTRPReviewing, WorkStatusClientReviewing:
		return true
	}
	return false
}

// UploadedWork is one deliverable attached to an instruction log.
type UploadedWork struct {
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Description string    `json:"description"`
}

// DateMarker is a free-form dated milestone on an instruction log.
type DateMarker struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// InstructionLog is the operational tracking record for an instructed
// quote's survey work. At most one exists per quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//
// Using the quote id as PK guarantees the 1:1 cardinality and makes the
// lazy upsert a single atomic UpdateItem: two racing writers serialize in
// the store and the last write wins.
type InstructionLog struct {
	ID              string         `json:"id"`
	QuoteID         string         `json:"quote_id"`
	ProjectID       string         `json:"project_id"`
	WorkStatus      WorkStatus     `json:"work_status"`
	SiteVisitDate   *time.Time     `json:"site_visit_date,omitempty"`
	ReportDraftDate *time.Time     `json:"report_draft_date,omitempty"`
	Notes           string         `json:"notes"`
	UploadedWorks   []UploadedWork `json:"uploaded_works"`
	DateMarkers     []DateMarker   `json:"date_markers"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
