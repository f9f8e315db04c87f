package main

import (
	"fmt"
	"log"
	"net/http"

	"agrismart/internal/config"
	"agrismart/internal/handlers"
	"agrismart/internal/middleware"
	"agrismart/internal/services"
	"agrismart/pkg/logger"
	"agrismart/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Initialize the dispatch core
	smsService := services.NewSMSService(cfg.SMS, appLogger)
	alertService := services.NewAlertService(smsService)

	// Initialize handlers
	smsHandler := handlers.NewSMSHandler(smsService, alertService)

	// Initialize Gin router
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupSMSRoutes(v1, smsHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
