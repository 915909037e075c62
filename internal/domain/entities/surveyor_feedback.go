package entities

import "time"

// SurveyorFeedback is the client-side rating of an instructed survey.
// At most one exists per quote; ratings are 1..5 when present.
//
// Storage model (DynamoDB):
//   - PK: quote_id (same 1:1 trick as InstructionLog)
type SurveyorFeedback struct {
	ID            string    `json:"id"`
	QuoteID       string    `json:"quote_id"`
	ProjectID     string    `json:"project_id"`
	Quality       *int      `json:"quality,omitempty"`
	Timeliness    *int      `json:"timeliness,omitempty"`
	Communication *int      `json:"communication,omitempty"`
	Value         *int      `json:"value,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
