package handlers

import (
	"errors"
	"net/http"

	"surveyhub/internal/adapter/http/dto/request"
	"surveyhub/internal/adapter/http/dto/response"
	"surveyhub/internal/adapter/http/middleware"
	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase"
	"surveyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Submit a quote for a project
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Success      201 {object} response.QuoteResponse
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	surveyorID := ""
	if id, ok := middleware.CallerFrom(c); ok {
		surveyorID = id.UserID
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(surveyorID))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotesByProject(c *gin.Context) {
	quotes, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.Apply(quote))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// InstructQuote godoc
// @Summary      Transition a quote's instruction status
// @Description  partially_instructed_total is required when the new status is partially-instructed and forbidden otherwise.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote_id path string true "Quote id"
// @Success      200 {object} response.QuoteResponse
// @Router       /quotes/{quote_id}/instruction [patch]
func (h *QuoteHandler) InstructQuote(c *gin.Context) {
	var payload request.InstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetInstructionStatus(
		c.Request.Context(),
		c.Param("quote_id"),
		entities.InstructionStatus(payload.Status),
		payload.PartiallyInstructedTotal,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("quote_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuoteProjectID),
		errors.Is(err, usecase.ErrInvalidDiscipline),
		errors.Is(err, usecase.ErrInvalidOrganisation),
		errors.Is(err, usecase.ErrInvalidLineItemCost),
		errors.Is(err, usecase.ErrInvalidInstructionState),
		errors.Is(err, usecase.ErrInvalidPartialTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartialTotalRequired):
		return pkg.NewDomainErrorSimple("PARTIAL_TOTAL_REQUIRED", "partially_instructed_total is required for partially-instructed quotes", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPartialTotalForbidden):
		return pkg.NewDomainErrorSimple("PARTIAL_TOTAL_FORBIDDEN", "partially_instructed_total is only allowed on partially-instructed quotes", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
