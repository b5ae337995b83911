// main.go
package main

import (
	"log"
	"os"
	"time"
	"volo/database"
	"volo/handlers"
	"volo/handlers/admin"
	"volo/middleware"
	"volo/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	database.InitDB()

	services.InitCleanupService()
	defer func() {
		if cleanup := services.GetCleanupService(); cleanup != nil {
			cleanup.Stop()
		}
	}()

	app := NewApp()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// NewApp builds the Fiber application with all middleware and routes.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)

	// Public content
	api.Get("/languages", handlers.GetLanguages)
	api.Get("/languages/:code", handlers.GetLanguage)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)
	userGroup.Put("/me/language", handlers.SetUserLanguage)
	userGroup.Delete("/me", handlers.DeleteAccount)
	userGroup.Get("/search", handlers.SearchUsers)

	// Lesson routes
	api.Get("/lessons/:id", middleware.AuthMiddleware, handlers.GetLesson)

	// Daily challenge routes
	challengeGroup := api.Group("/challenges")
	challengeGroup.Use(middleware.AuthMiddleware)
	challengeGroup.Get("/daily", handlers.GetDailyChallenges)
	challengeGroup.Post("/:id/claim", handlers.ClaimChallenge)

	// Social routes
	socialGroup := api.Group("/social")
	socialGroup.Use(middleware.AuthMiddleware)
	socialGroup.Get("/feed", handlers.GetFeed)

	friendGroup := api.Group("/friends")
	friendGroup.Use(middleware.AuthMiddleware)
	friendGroup.Get("/", handlers.GetFriends)
	friendGroup.Post("/requests", handlers.SendFriendRequest)
	friendGroup.Patch("/requests/:id", handlers.RespondFriendRequest)

	// Leaderboard
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Spaced repetition: the reminder job calls this without a session,
	// identifying the user by query parameter instead
	api.Get("/srs/due", middleware.OptionalAuth, handlers.GetDueFlashcards)

	// Settings and onboarding
	api.Get("/settings", middleware.AuthMiddleware, handlers.GetSettings)
	api.Put("/settings", middleware.AuthMiddleware, handlers.SaveSettings)
	api.Get("/onboarding/status", middleware.AuthMiddleware, handlers.GetOnboardingStatus)

	// Notifications (not backed by an entity yet)
	api.Post("/notifications/read", middleware.AuthMiddleware, handlers.MarkNotificationsRead)

	// Live activity feed
	app.Get("/ws/feed", handlers.FeedUpgrade, websocket.New(handlers.LiveFeed))

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware, middleware.RequireAdmin)
	adminGroup.Get("/content", admin.GetContentTree)
	adminGroup.Post("/languages", admin.CreateLanguage)
	adminGroup.Put("/languages/:id", admin.UpdateLanguage)
	adminGroup.Delete("/languages/:id", admin.DeleteLanguage)
	adminGroup.Post("/content/units", admin.CreateUnit)
	adminGroup.Put("/content/units/:id", admin.UpdateUnit)
	adminGroup.Delete("/content/units/:id", admin.DeleteUnit)
	adminGroup.Post("/content/lessons", admin.CreateLesson)
	adminGroup.Put("/content/lessons/:id", admin.UpdateLesson)
	adminGroup.Delete("/content/lessons/:id", admin.DeleteLesson)
	adminGroup.Post("/content/exercises", admin.CreateExercise)
	adminGroup.Put("/content/exercises/:id", admin.UpdateExercise)
	adminGroup.Delete("/content/exercises/:id", admin.DeleteExercise)
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id", admin.UpdateUser)
	adminGroup.Delete("/users/:id", admin.DeleteUser)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	return app
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
