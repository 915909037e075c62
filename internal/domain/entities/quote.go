package entities

import "time"

// InstructionStatus is the commercial state of a quote.

type InstructionStatus string

const (
	InstructionStatusPending             InstructionStatus = "pending"
	InstructionStatusWillNotBeInstructed InstructionStatus = "will-not-be-instructed"
	InstructionStatusPartiallyInstructed InstructionStatus = "partially-instructed"
	InstructionStatusInstructed          InstructionStatus = "instructed"
)

// Instructed reports whether the quote participates in instructed counts
// and spend (fully or partially instructed).
func (s InstructionStatus) Instructed() bool {
	return s == InstructionStatusInstructed || s == InstructionStatusPartiallyInstructed
}

func (s InstructionStatus) Valid() bool {
	switch s {
	case InstructionStatusPending, InstructionStatusWillNotBeInstructed,
		InstructionStatusPartiallyInstructed, InstructionStatusInstructed:
		return true
	}
	return false
}

// LineItem is one priced row of a quote. Cost is non-negative.
type LineItem struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// Quote is a priced proposal from a surveying organisation for one
// discipline of work on a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Invariants enforced before every persist:
//   - Total == sum of LineItems costs
//   - PartiallyInstructedTotal is set iff InstructionStatus is
//     partially-instructed
type Quote struct {
	ID                       string            `json:"id"`
	ProjectID                string            `json:"project_id"`
	SurveyorID               string            `json:"surveyor_id"`
	Discipline               string            `json:"discipline"`
	Organisation             string            `json:"organisation"`
	ContactName              string            `json:"contact_name"`
	ContactEmail             string            `json:"contact_email"`
	ContactPhone             string            `json:"contact_phone"`
	LineItems                []LineItem        `json:"line_items"`
	Total                    float64           `json:"total"`
	InstructionStatus        InstructionStatus `json:"instruction_status"`
	PartiallyInstructedTotal *float64          `json:"partially_instructed_total,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
}

// RecomputeTotal rederives Total from the line items.
func (q *Quote) RecomputeTotal() {
	sum := 0.0
	for _, li := range q.LineItems {
		sum += li.Cost
	}
	q.Total = sum
}
