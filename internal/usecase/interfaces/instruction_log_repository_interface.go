package interfaces

import (
	"context"

	"surveyhub/internal/domain/entities"
)

// IInstructionLogRepository abstracts DynamoDB persistence for
// InstructionLog. The table PK is quote_id, so Upsert is a single atomic
// UpdateItem (find-or-create-then-update, never read-then-write).

type IInstructionLogRepository interface {
	GetByQuoteID(ctx context.Context, quoteID string) (entities.InstructionLog, error)
	ListByQuoteIDs(ctx context.Context, quoteIDs []string) ([]entities.InstructionLog, error)
	Upsert(ctx context.Context, l entities.InstructionLog) (entities.InstructionLog, error)
	DeleteByQuoteIDs(ctx context.Context, quoteIDs []string) error
}
