package request

import (
	"surveyhub/internal/domain/entities"
)

type ProjectCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	ClientID      string   `json:"client_id"`
	Description   string   `json:"description"`
	SiteAddress   string   `json:"site_address"`
	SurveyorIDs   []string `json:"surveyor_ids"`
	ClientUserIDs []string `json:"client_user_ids"`
}

func (r ProjectCreateRequest) ToEntity() entities.Project {
	return entities.Project{
		Name:          r.Name,
		ClientID:      r.ClientID,
		Description:   r.Description,
		SiteAddress:   r.SiteAddress,
		SurveyorIDs:   r.SurveyorIDs,
		ClientUserIDs: r.ClientUserIDs,
	}
}

type ProjectUpdateRequest struct {
	Name          string   `json:"name" binding:"required"`
	ClientID      string   `json:"client_id"`
	Description   string   `json:"description"`
	SiteAddress   string   `json:"site_address"`
	SurveyorIDs   []string `json:"surveyor_ids"`
	ClientUserIDs []string `json:"client_user_ids"`
}

func (r ProjectUpdateRequest) ToEntity(id string) entities.Project {
	return entities.Project{
		ID:            id,
		Name:          r.Name,
		ClientID:      r.ClientID,
		Description:   r.Description,
		SiteAddress:   r.SiteAddress,
		SurveyorIDs:   r.SurveyorIDs,
		ClientUserIDs: r.ClientUserIDs,
	}
}
