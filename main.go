package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promotions-backend/config"
	"promotions-backend/database"
	"promotions-backend/docs"
	"promotions-backend/middleware"
	"promotions-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           Promotions REST API Service
// @version         1.0.0
// @description     This is a Promotions service for managing promotional campaigns.
// @BasePath        /api
func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Maintenance subcommands share the connection and exit early.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "create-db":
			if err := database.Recreate(db); err != nil {
				log.Fatal("Failed to recreate database:", err)
			}
			log.Println("Database recreated")
			return
		case "load-data":
			if err := database.Migrate(db); err != nil {
				log.Fatal("Failed to run migrations:", err)
			}
			if _, err := database.LoadSampleData(db); err != nil {
				log.Fatal("Failed to load sample data:", err)
			}
			return
		default:
			log.Fatalf("Unknown command %q (expected create-db or load-data)", os.Args[1])
		}
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	docs.SwaggerInfo.BasePath = "/api"

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.RequestID())
	limiter := middleware.NewRateLimiter(300, time.Minute)
	r.Use(limiter.Middleware())

	// CORS configuration - filter out empty strings from AllowOrigins
	origins := []string{os.Getenv("FRONTEND_URL"), os.Getenv("ADMIN_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		log.Println("WARNING: No CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server with graceful shutdown
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		} else {
			log.Println("Database connection closed")
		}
	}

	log.Println("Server exited gracefully")
}
