package request

import "surveyhub/internal/domain/entities"

type ClientRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email"`
}

func (r ClientRequest) ToEntity(id string) entities.Client {
	return entities.Client{
		ID:           id,
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
	}
}
