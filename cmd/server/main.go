// @title           Realty Admin Backend API
// @version         1.0.0
// @description     Backend API for the real-estate project admin dashboard. Handles project CRUD, multipart image submissions with local or Supabase storage, and a Redis-backed listing cache.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"log"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"realty-admin-backend/docs"
	"realty-admin-backend/internal/cache"
	"realty-admin-backend/internal/config"
	"realty-admin-backend/internal/database"
	"realty-admin-backend/internal/handlers"
	"realty-admin-backend/internal/services"
	"realty-admin-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Database client
	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	// Storage backend
	var uploader storage.Uploader
	switch cfg.StorageBackend {
	case config.StorageBackendSupabase:
		uploader, err = storage.NewSupabaseUploader(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize supabase storage: %v", err)
		}
		log.Printf("Using supabase storage backend (bucket %s)", cfg.SupabaseStorageBucket)
	default:
		uploader = storage.NewLocalUploader(cfg.PublicDir)
		log.Printf("Using local storage backend (%s)", cfg.PublicDir)
	}

	// Listing cache (optional)
	var listCache *cache.ListingCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		listCache = cache.NewListingCache(redisClient)
		log.Printf("Listing cache enabled (%s)", cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR not set, listing cache disabled")
	}

	projectService := services.NewProjectService(dbClient, uploader, listCache, cfg.PublicDir)
	projectsHandler := handlers.NewProjectsHandler(projectService)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// Locally-stored uploads are served straight from disk
	if cfg.StorageBackend == config.StorageBackendLocal {
		router.Static("/"+storage.Namespace, filepath.Join(cfg.PublicDir, storage.Namespace))
	}

	// API routes
	api := router.Group("/api/v1")

	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PUT("/projects/:project_id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
