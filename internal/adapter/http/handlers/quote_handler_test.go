package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"surveyhub/internal/adapter/http/handlers/mocks"
	"surveyhub/internal/adapter/http/middleware"
	"surveyhub/internal/domain/entities"
	"surveyhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/quotes", middleware.RequireIdentity())
	g.POST("", middleware.RequireRole(middleware.RoleSurveyor, middleware.RoleAdmin), h.CreateQuote)
	g.GET("/:quote_id", h.GetQuote)
	g.PATCH("/:quote_id/instruction", middleware.RequireRole(middleware.RoleClient, middleware.RoleAdmin), h.InstructQuote)
	return r
}

func asSurveyor(req *http.Request, surveyorID string) {
	req.Header.Set(middleware.HeaderUserID, surveyorID)
	req.Header.Set(middleware.HeaderUserRole, string(middleware.RoleSurveyor))
}

func asClient(req *http.Request) {
	req.Header.Set(middleware.HeaderUserID, uuid.NewString())
	req.Header.Set(middleware.HeaderUserRole, string(middleware.RoleClient))
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		asSurveyor(req, uuid.NewString())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client role forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("surveyor identity becomes the submitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		surveyorID := uuid.NewString()
		projectID := uuid.NewString()

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, q entities.Quote) (entities.Quote, error) {
				if q.SurveyorID != surveyorID {
					t.Fatalf("expected surveyor %s, got %s", surveyorID, q.SurveyorID)
				}
				q.ID = uuid.NewString()
				return q, nil
			})

		payload := fmt.Sprintf(`{
			"project_id": %q,
			"discipline": "Topographical",
			"organisation": "Acme Surveys",
			"line_items": [{"category": "Survey", "cost": 500}]
		}`, projectID)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		asSurveyor(req, surveyorID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, usecase.ErrProjectNotFound)

		payload := fmt.Sprintf(`{"project_id": %q, "discipline": "Topo", "organisation": "Acme"}`, uuid.NewString())
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		asSurveyor(req, uuid.NewString())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_InstructQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial total required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		quoteID := uuid.NewString()
		uc.EXPECT().
			SetInstructionStatus(gomock.Any(), quoteID, entities.InstructionStatusPartiallyInstructed, nil).
			Return(entities.Quote{}, usecase.ErrPartialTotalRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/"+quoteID+"/instruction",
			bytes.NewBufferString(`{"status": "partially-instructed"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("partial total forbidden on full instruction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		quoteID := uuid.NewString()
		uc.EXPECT().
			SetInstructionStatus(gomock.Any(), quoteID, entities.InstructionStatusInstructed, gomock.Any()).
			Return(entities.Quote{}, usecase.ErrPartialTotalForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/"+quoteID+"/instruction",
			bytes.NewBufferString(`{"status": "instructed", "partially_instructed_total": 200}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("partially instructed with total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		quoteID := uuid.NewString()
		partial := 200.0
		uc.EXPECT().
			SetInstructionStatus(gomock.Any(), quoteID, entities.InstructionStatusPartiallyInstructed, gomock.Any()).
			DoAndReturn(func(_ any, id string, status entities.InstructionStatus, pt *float64) (entities.Quote, error) {
				if pt == nil || *pt != partial {
					t.Fatalf("expected partial total %v, got %v", partial, pt)
				}
				return entities.Quote{
					ID:                       id,
					InstructionStatus:        status,
					PartiallyInstructedTotal: pt,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/"+quoteID+"/instruction",
			bytes.NewBufferString(`{"status": "partially-instructed", "partially_instructed_total": 200}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["instruction_status"] != "partially-instructed" {
			t.Fatalf("unexpected status: %v", body["instruction_status"])
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		quoteID := uuid.NewString()
		uc.EXPECT().
			SetInstructionStatus(gomock.Any(), quoteID, gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/"+quoteID+"/instruction",
			bytes.NewBufferString(`{"status": "instructed"}`))
		req.Header.Set("Content-Type", "application/json")
		asClient(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
