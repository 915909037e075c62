package interfaces

import (
	"context"

	"surveyhub/internal/domain/entities"
)

// ISurveyorFeedbackRepository abstracts DynamoDB persistence for
// SurveyorFeedback. Same PK=quote_id upsert contract as the instruction
// log repository.

type ISurveyorFeedbackRepository interface {
	GetByQuoteID(ctx context.Context, quoteID string) (entities.SurveyorFeedback, error)
	Upsert(ctx context.Context, f entities.SurveyorFeedback) (entities.SurveyorFeedback, error)
	DeleteByQuoteIDs(ctx context.Context, quoteIDs []string) error
}
