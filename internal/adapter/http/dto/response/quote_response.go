package response

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type LineItemResponse struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type QuoteResponse struct {
	ID                       string             `json:"id"`
	ProjectID                string             `json:"project_id"`
	SurveyorID               string             `json:"surveyor_id"`
	Discipline               string             `json:"discipline"`
	Organisation             string             `json:"organisation"`
	ContactName              string             `json:"contact_name"`
	ContactEmail             string             `json:"contact_email"`
	ContactPhone             string             `json:"contact_phone"`
	LineItems                []LineItemResponse `json:"line_items"`
	Total                    float64            `json:"total"`
	InstructionStatus        string             `json:"instruction_status"`
	PartiallyInstructedTotal *float64           `json:"partially_instructed_total,omitempty"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, len(q.LineItems))
	for i, li := range q.LineItems {
		items[i] = LineItemResponse{
			Category:    li.Category,
			Description: li.Description,
			Cost:        li.Cost,
		}
	}
	return QuoteResponse{
		ID:                       q.ID,
		ProjectID:                q.ProjectID,
		SurveyorID:               q.SurveyorID,
		Discipline:               q.Discipline,
		Organisation:             q.Organisation,
		ContactName:              q.ContactName,
		ContactEmail:             q.ContactEmail,
		ContactPhone:             q.ContactPhone,
		LineItems:                items,
		Total:                    q.Total,
		InstructionStatus:        string(q.InstructionStatus),
		PartiallyInstructedTotal: q.PartiallyInstructedTotal,
		CreatedAt:                q.CreatedAt,
		UpdatedAt:                q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}
