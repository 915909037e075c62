package request

import (
	"surveyhub/internal/domain/entities"
)

type LineItemRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// QuoteCreateRequest is the surveyor-facing quote submission payload. The
// server derives the total from the line items; a client-supplied total is
// deliberately not accepted.
type QuoteCreateRequest struct {
	ProjectID    string            `json:"project_id" binding:"required"`
	Discipline   string            `json:"discipline" binding:"required"`
	Organisation string            `json:"organisation" binding:"required"`
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	LineItems    []LineItemRequest `json:"line_items"`
}

func (r QuoteCreateRequest) ToEntity(surveyorID string) entities.Quote {
	return entities.Quote{
		ProjectID:         r.ProjectID,
		SurveyorID:        surveyorID,
		Discipline:        r.Discipline,
		Organisation:      r.Organisation,
		ContactName:       r.ContactName,
		ContactEmail:      r.ContactEmail,
		ContactPhone:      r.ContactPhone,
		LineItems:         toLineItems(r.LineItems),
		InstructionStatus: entities.InstructionStatusPending,
	}
}

type QuoteUpdateRequest struct {
	Discipline   string            `json:"discipline" binding:"required"`
	Organisation string            `json:"organisation" binding:"required"`
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	LineItems    []LineItemRequest `json:"line_items"`
}

func (r QuoteUpdateRequest) Apply(q entities.Quote) entities.Quote {
	q.Discipline = r.Discipline
	q.Organisation = r.Organisation
	q.ContactName = r.ContactName
	q.ContactEmail = r.ContactEmail
	q.ContactPhone = r.ContactPhone
	q.LineItems = toLineItems(r.LineItems)
	return q
}

// InstructionRequest transitions a quote's instruction status.
// PartiallyInstructedTotal must accompany the partially-instructed status
// and no other.
type InstructionRequest struct {
	Status                   string   `json:"status" binding:"required"`
	PartiallyInstructedTotal *float64 `json:"partially_instructed_total"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, li := range items {
		out[i] = entities.LineItem{
			Category:    li.Category,
			Description: li.Description,
			Cost:        li.Cost,
		}
	}
	return out
}
