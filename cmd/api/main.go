package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/api/handlers"
	"github.com/linskybing/workflow-go/internal/api/middleware"
	"github.com/linskybing/workflow-go/internal/api/routes"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/config"
	"github.com/linskybing/workflow-go/internal/config/db"
	"github.com/linskybing/workflow-go/internal/cron"
	"github.com/linskybing/workflow-go/internal/migrations"
	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/linskybing/workflow-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := storage.NewMinioStore(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, store)

	// Purge long-deleted form documents in the background
	cron.StartPurgeTask(context.Background(), services.Form, config.FormPurgeRetention, config.FormPurgeInterval)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, map[string]handlers.Pinger{
		"database": db.Ping,
		"storage":  store.Ping,
	})

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
