package response

import (
	"time"

	"surveyhub/internal/domain/entities"
)

// ProgrammeEventFullResponse is the standalone programme-event resource;
// the trimmed ProgrammeEventResponse in summary_response.go is what
// summaries embed.
type ProgrammeEventFullResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProgrammeEvent(e entities.ProgrammeEvent) ProgrammeEventFullResponse {
	return ProgrammeEventFullResponse{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Date:      e.Date,
		Color:     e.Color,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromProgrammeEventList(events []entities.ProgrammeEvent) []ProgrammeEventFullResponse {
	out := make([]ProgrammeEventFullResponse, len(events))
	for i, e := range events {
		out[i] = FromProgrammeEvent(e)
	}
	return out
}
