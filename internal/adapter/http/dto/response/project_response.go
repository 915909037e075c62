package response

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type ProjectResponse struct {
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

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		ClientID:      p.ClientID,
		Description:   p.Description,
		SiteAddress:   p.SiteAddress,
		SurveyorIDs:   p.SurveyorIDs,
		ClientUserIDs: p.ClientUserIDs,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromProject(p)
	}
	return out
}
