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

var errInvalidLogPayload = pkg.NewDomainErrorSimple("INVALID_INSTRUCTION_LOG_INPUT", "Invalid instruction log payload", http.StatusBadRequest)

type InstructionLogHandler struct {
	usecase usecase.IInstructionLogUseCase
}

func NewInstructionLogHandler(uc usecase.IInstructionLogUseCase) *InstructionLogHandler {
	return &InstructionLogHandler{usecase: uc}
}

// UpsertInstructionLog godoc
// @Summary      Create or replace the instruction log of a quote
// @Description  The log is created lazily on first write; the quote must be instructed.
// @Tags         instruction-logs
// @Accept       json
// @Produce      json
// @Param        quote_id path string true "Quote id"
// @Success      200 {object} response.InstructionLogResponse
// @Router       /quotes/{quote_id}/instruction-log [put]
func (h *InstructionLogHandler) UpsertInstructionLog(c *gin.Context) {
	var payload request.InstructionLogUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLogPayload.HTTPStatus, errInvalidLogPayload.ToHTTPError())
		return
	}

	logEntry, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity(c.Param("quote_id")))
	if err != nil {
		appErr := mapInstructionLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstructionLog(logEntry))
}

func (h *InstructionLogHandler) GetInstructionLog(c *gin.Context) {
	logEntry, err := h.usecase.GetByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapInstructionLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstructionLog(logEntry))
}

func mapInstructionLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogQuoteID), errors.Is(err, usecase.ErrInvalidWorkStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotInstructed):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_INSTRUCTED", "Quote is not instructed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstructionLogNotFound):
		return pkg.NewDomainErrorSimple("INSTRUCTION_LOG_NOT_FOUND", "Instruction log not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
