package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/api/middleware"
	"github.com/haiminh-dev/ihk-case-api/internal/api/routes"
	"github.com/haiminh-dev/ihk-case-api/internal/config"
	"github.com/haiminh-dev/ihk-case-api/internal/config/db"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/document"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&casefile.Case{},
		&document.CaseDocument{},
		&document.CustomDocument{},
		&profile.VisaProfile{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
