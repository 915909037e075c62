package response

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type SurveyorFeedbackResponse struct {
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

func FromSurveyorFeedback(f entities.SurveyorFeedback) SurveyorFeedbackResponse {
	return SurveyorFeedbackResponse{
		ID:            f.ID,
		QuoteID:       f.QuoteID,
		ProjectID:     f.ProjectID,
		Quality:       f.Quality,
		Timeliness:    f.Timeliness,
		Communication: f.Communication,
		Value:         f.Value,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
