package main

import (
	"log"

	_ "crm_imobiliario/docs"
	"crm_imobiliario/internal/adapter/http/routes"
	"crm_imobiliario/internal/infrastructure/config"
	"crm_imobiliario/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           CRM Imobiliário API
// @version         1.0
// @description     Lead store and kanban board for the real-estate CRM, plus contract templates.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Configuration loaded", zap.String("app_env", cfg.AppEnv))
	routes.Run(cfg, appLogger)
}
