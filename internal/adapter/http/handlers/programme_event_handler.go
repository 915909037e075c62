package handlers

import (
	"errors"
	"net/http"

	"surveyhub/internal/adapter/http/dto/request"
	"surveyhub/internal/adapter/http/dto/response"
	"surveyhub/internal/usecase"
	"surveyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_PROGRAMME_EVENT_INPUT", "Invalid programme event payload", http.StatusBadRequest)

type ProgrammeEventHandler struct {
	usecase usecase.IProgrammeEventUseCase
}

func NewProgrammeEventHandler(uc usecase.IProgrammeEventUseCase) *ProgrammeEventHandler {
	return &ProgrammeEventHandler{usecase: uc}
}

func (h *ProgrammeEventHandler) CreateProgrammeEvent(c *gin.Context) {
	var payload request.ProgrammeEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.Create(c.Request.Context(), payload.ToEntity("", c.Param("project_id")))
	if err != nil {
		appErr := mapProgrammeEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProgrammeEvent(event))
}

func (h *ProgrammeEventHandler) ListProgrammeEvents(c *gin.Context) {
	events, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProgrammeEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProgrammeEventList(events))
}

func (h *ProgrammeEventHandler) UpdateProgrammeEvent(c *gin.Context) {
	var payload request.ProgrammeEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("event_id"), ""))
	if err != nil {
		appErr := mapProgrammeEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProgrammeEvent(event))
}

func (h *ProgrammeEventHandler) DeleteProgrammeEvent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("event_id")); err != nil {
		appErr := mapProgrammeEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapProgrammeEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID),
		errors.Is(err, usecase.ErrInvalidEventProjectID),
		errors.Is(err, usecase.ErrInvalidEventTitle),
		errors.Is(err, usecase.ErrInvalidEventDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProgrammeEventNotFound):
		return pkg.NewDomainErrorSimple("PROGRAMME_EVENT_NOT_FOUND", "Programme event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
