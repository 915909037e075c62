package routes

import (
	"log"
	"strconv"

	_ "surveyhub/docs" // This will be auto-generated
	"surveyhub/internal/adapter/http/handlers"
	repository2 "surveyhub/internal/adapter/persistence/repository"
	"surveyhub/internal/infrastructure/config"
	"surveyhub/internal/infrastructure/database"
	"surveyhub/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	logRepo := repository2.NewInstructionLogDynamoRepository(ddb)
	eventRepo := repository2.NewProgrammeEventDynamoRepository(ddb)
	feedbackRepo := repository2.NewSurveyorFeedbackDynamoRepository(ddb)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo, logRepo, eventRepo, feedbackRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, projectRepo)
	logUseCase := usecase.NewInstructionLogUseCase(logRepo, quoteRepo)
	eventUseCase := usecase.NewProgrammeEventUseCase(eventRepo, projectRepo)
	feedbackUseCase := usecase.NewSurveyorFeedbackUseCase(feedbackRepo, quoteRepo)
	summaryUseCase := usecase.NewSummaryUseCase(projectRepo, clientRepo, quoteRepo, logRepo, eventRepo)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	logHandler := handlers.NewInstructionLogHandler(logUseCase)
	eventHandler := handlers.NewProgrammeEventHandler(eventUseCase)
	feedbackHandler := handlers.NewSurveyorFeedbackHandler(feedbackUseCase)
	summaryHandler := handlers.NewSummaryHandler(summaryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSurveyRoutes(v1, surveyHandlers{
		project:  projectHandler,
		client:   clientHandler,
		quote:    quoteHandler,
		log:      logHandler,
		event:    eventHandler,
		feedback: feedbackHandler,
		summary:  summaryHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
