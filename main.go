package main

import (
	"log"
	"time"

	"intellinote-be/internal/cache"
	"intellinote-be/internal/config"
	"intellinote-be/internal/controllers"
	"intellinote-be/internal/database"
	"intellinote-be/internal/gemini"
	"intellinote-be/internal/jwt"
	"intellinote-be/internal/middleware"
	"intellinote-be/internal/repository"
	"intellinote-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize the Gemini client once at startup; it is passed explicitly,
	// never held as a package-level singleton
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	noteService := service.NewNoteService(noteRepo, cacheClient)
	aiService := service.NewAIService(geminiClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	noteController := controllers.NewNoteController(noteService)
	aiController := controllers.NewAIController(aiService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with general rate limiting
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Note routes - require JWT authentication
		notes := api.Group("/notes")
		notes.Use(middleware.AuthMiddleware(jwtService))
		{
			notes.POST("", noteController.CreateNote)
			notes.GET("", noteController.GetNotes)
			notes.POST("/improve", aiController.ImproveNote)
			notes.GET("/:id", noteController.GetNote)
			notes.PUT("/:id", noteController.UpdateNote)
			notes.DELETE("/:id", noteController.DeleteNote)
		}
	}

	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
