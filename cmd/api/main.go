package main

import (
	"fmt"
	"log"
	"os"

	"compound-calc/internal/api/handlers"
	"compound-calc/internal/api/middleware"
	"compound-calc/internal/config"
	"compound-calc/internal/history"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}

	// Environment overrides the config file for the port, so container
	// deployments don't need a config file at all.
	port := os.Getenv("API_PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open history store: %v", err)
	}
	log.Printf("History backend: %s", cfg.History.Backend)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	calculateHandler := handlers.NewCalculateHandler(store, cfg.Limits.ToLimits())
	historyHandler := handlers.NewHistoryHandler(store)
	frequencyHandler := handlers.NewFrequencyHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.Calculate)
		api.POST("/calculate/chart", calculateHandler.Chart)

		api.GET("/history", historyHandler.List)
		api.DELETE("/history/:id", historyHandler.Delete)
		api.DELETE("/history", historyHandler.Clear)

		api.GET("/frequencies", frequencyHandler.ListFrequencies)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildStore(cfg *config.Config) (history.Store, error) {
	switch cfg.History.Backend {
	case "memory":
		return history.NewMemoryStore(), nil
	case "sqlite":
		return history.OpenSQLite(cfg.History.Path)
	default:
		return history.NewFileStore(cfg.History.Path), nil
	}
}
