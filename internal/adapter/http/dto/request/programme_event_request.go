package request

import (
	"time"

	"surveyhub/internal/domain/entities"
)

type ProgrammeEventRequest struct {
	Title string    `json:"title" binding:"required"`
	Date  time.Time `json:"date" binding:"required"`
	Color string    `json:"color"`
}

func (r ProgrammeEventRequest) ToEntity(id, projectID string) entities.ProgrammeEvent {
	return entities.ProgrammeEvent{
		ID:        id,
		ProjectID: projectID,
		Title:     r.Title,
		Date:      r.Date,
		Color:     r.Color,
	}
}
