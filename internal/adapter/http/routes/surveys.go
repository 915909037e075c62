package routes

import (
	"surveyhub/internal/adapter/http/handlers"
	"surveyhub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathQuotes    = "/quotes"
	PathClients   = "/clients"
	PathSummaries = "/summaries"
)

type surveyHandlers struct {
	project  *handlers.ProjectHandler
	client   *handlers.ClientHandler
	quote    *handlers.QuoteHandler
	log      *handlers.InstructionLogHandler
	event    *handlers.ProgrammeEventHandler
	feedback *handlers.SurveyorFeedbackHandler
	summary  *handlers.SummaryHandler
}

func addSurveyRoutes(rg *gin.RouterGroup, h surveyHandlers) {
	projects := rg.Group(PathProjects, middleware.RequireIdentity())
	{
		projects.POST("", middleware.RequireRole(middleware.RoleAdmin), h.project.CreateProject)
		projects.GET("", h.project.ListProjects)
		projects.GET("/:project_id", h.project.GetProject)
		projects.PUT("/:project_id", middleware.RequireRole(middleware.RoleAdmin), h.project.UpdateProject)
		projects.DELETE("/:project_id", middleware.RequireRole(middleware.RoleAdmin), h.project.DeleteProject)

		projects.GET("/:project_id/quotes", h.quote.ListQuotesByProject)

		projects.POST("/:project_id/events", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSurveyor), h.event.CreateProgrammeEvent)
		projects.GET("/:project_id/events", h.event.ListProgrammeEvents)
	}

	events := rg.Group("/events", middleware.RequireIdentity())
	{
		events.PUT("/:event_id", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSurveyor), h.event.UpdateProgrammeEvent)
		events.DELETE("/:event_id", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSurveyor), h.event.DeleteProgrammeEvent)
	}

	quotes := rg.Group(PathQuotes, middleware.RequireIdentity())
	{
		quotes.POST("", middleware.RequireRole(middleware.RoleSurveyor, middleware.RoleAdmin), h.quote.CreateQuote)
		quotes.GET("/:quote_id", h.quote.GetQuote)
		quotes.PUT("/:quote_id", middleware.RequireRole(middleware.RoleSurveyor, middleware.RoleAdmin), h.quote.UpdateQuote)
		quotes.PATCH("/:quote_id/instruction", middleware.RequireRole(middleware.RoleClient, middleware.RoleAdmin), h.quote.InstructQuote)
		quotes.DELETE("/:quote_id", middleware.RequireRole(middleware.RoleAdmin), h.quote.DeleteQuote)

		quotes.PUT("/:quote_id/instruction-log", middleware.RequireRole(middleware.RoleSurveyor, middleware.RoleAdmin), h.log.UpsertInstructionLog)
		quotes.GET("/:quote_id/instruction-log", h.log.GetInstructionLog)

		quotes.PUT("/:quote_id/feedback", middleware.RequireRole(middleware.RoleClient, middleware.RoleAdmin), h.feedback.UpsertFeedback)
		quotes.GET("/:quote_id/feedback", h.feedback.GetFeedback)
	}

	clients := rg.Group(PathClients, middleware.RequireIdentity())
	{
		clients.POST("", middleware.RequireRole(middleware.RoleAdmin), h.client.CreateClient)
		clients.GET("", h.client.ListClients)
		clients.GET("/:client_id", h.client.GetClient)
		clients.PUT("/:client_id", middleware.RequireRole(middleware.RoleAdmin), h.client.UpdateClient)
		clients.DELETE("/:client_id", middleware.RequireRole(middleware.RoleAdmin), h.client.DeleteClient)
	}

	summaries := rg.Group(PathSummaries, middleware.RequireIdentity())
	{
		summaries.GET("", h.summary.ListSummaries)
		summaries.GET("/:project_id", h.summary.GetSummary)
	}
}
