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

var errInvalidFeedbackPayload = pkg.NewDomainErrorSimple("INVALID_FEEDBACK_INPUT", "Invalid feedback payload", http.StatusBadRequest)

type SurveyorFeedbackHandler struct {
	usecase usecase.ISurveyorFeedbackUseCase
}

func NewSurveyorFeedbackHandler(uc usecase.ISurveyorFeedbackUseCase) *SurveyorFeedbackHandler {
	return &SurveyorFeedbackHandler{usecase: uc}
}

func (h *SurveyorFeedbackHandler) UpsertFeedback(c *gin.Context) {
	var payload request.SurveyorFeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFeedbackPayload.HTTPStatus, errInvalidFeedbackPayload.ToHTTPError())
		return
	}

	feedback, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity(c.Param("quote_id")))
	if err != nil {
		appErr := mapFeedbackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyorFeedback(feedback))
}

func (h *SurveyorFeedbackHandler) GetFeedback(c *gin.Context) {
	feedback, err := h.usecase.GetByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapFeedbackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyorFeedback(feedback))
}

func mapFeedbackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFeedbackQuoteID), errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFeedbackNotFound):
		return pkg.NewDomainErrorSimple("FEEDBACK_NOT_FOUND", "Surveyor feedback not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
