package main

import (
	"context"
	"log"

	_ "maintenance_contracts/docs"
	"maintenance_contracts/internal/adapter/http/routes"
	"maintenance_contracts/internal/infrastructure/config"
	"maintenance_contracts/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Maintenance Contracts API
// @version         1.0
// @description     Maintenance contracts, billing schedules and payments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if err := routes.Run(context.Background(), cfg, appLog); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
