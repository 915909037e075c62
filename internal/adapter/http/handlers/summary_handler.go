package handlers

import (
	"errors"
	"net/http"

	"surveyhub/internal/adapter/http/dto/response"
	"surveyhub/internal/adapter/http/middleware"
	"surveyhub/internal/usecase"
	"surveyhub/pkg"

	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes the project reporting aggregation. The caller's
// identity scopes which projects are summarized; the pipeline itself is
// role-agnostic.

type SummaryHandler struct {
	usecase usecase.ISummaryUseCase
}

func NewSummaryHandler(uc usecase.ISummaryUseCase) *SummaryHandler {
	return &SummaryHandler{usecase: uc}
}

// ListSummaries godoc
// @Summary      Summarize visible projects
// @Description  Per-project instructed/completed/outstanding counts and spend, most recent project first.
// @Tags         summaries
// @Produce      json
// @Success      200 {array} response.ProjectSummaryResponse
// @Router       /summaries [get]
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	id, ok := middleware.CallerFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summaries, err := h.usecase.SummarizeProjects(c.Request.Context(), id.ProjectFilter())
	if err != nil {
		appErr := mapSummaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSummaries(summaries))
}

// GetSummary godoc
// @Summary      Summarize one project
// @Tags         summaries
// @Produce      json
// @Param        project_id path string true "Project id"
// @Success      200 {object} response.ProjectSummaryResponse
// @Router       /summaries/{project_id} [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.SummarizeProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapSummaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSummary(summary))
}

func mapSummaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("SUMMARY_FAILED", "Project summary aggregation failed", err, http.StatusInternalServerError)
	}
}
