package request

import "surveyhub/internal/domain/entities"

type SurveyorFeedbackRequest struct {
	Quality       *int   `json:"quality"`
	Timeliness    *int   `json:"timeliness"`
	Communication *int   `json:"communication"`
	Value         *int   `json:"value"`
	Notes         string `json:"notes"`
}

func (r SurveyorFeedbackRequest) ToEntity(quoteID string) entities.SurveyorFeedback {
	return entities.SurveyorFeedback{
		QuoteID:       quoteID,
		Quality:       r.Quality,
		Timeliness:    r.Timeliness,
		Communication: r.Communication,
		Value:         r.Value,
		Notes:         r.Notes,
	}
}
