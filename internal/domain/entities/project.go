package entities

import "time"

// Project is a land-survey project coordinated between an administrator,
// the surveyors quoting for work and the client organisation paying for it.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SurveyorIDs and ClientUserIDs are the authorization lists used to scope
// which projects a caller may see; ClientID references the Client record
// whose display name appears on summaries.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ClientID      string    `json:"client_id"`
	Description   string    `json:"description"`
	SiteAddress   string    `json:"site_address"`
	SurveyorIDs   []string  `json:"surveyor_ids"`
	ClientUserIDs []string  `json:"client_user_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectFilter narrows which projects an operation touches. Zero value
// means "all projects". SurveyorID/ClientUserID match against the project's
// authorization lists; IDs restricts to an explicit id set.
type ProjectFilter struct {
	SurveyorID   string
	ClientUserID string
	IDs          []string
}

func (f ProjectFilter) IsZero() bool {
	return f.SurveyorID == "" && f.ClientUserID == "" && len(f.IDs) == 0
}
