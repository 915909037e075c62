package main

import (
	_ "surveyhub/docs"
	"surveyhub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SurveyHub API
// @version         1.0
// @description     Land-survey project management and reporting (projects, quotes, instruction logs, summaries) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id

// @securityDefinitions.apikey UserRole
// @in header
// @name X-User-Role

func main() {
	routes.Run()
}
