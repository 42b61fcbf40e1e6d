// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"herodle/database"
	"herodle/handlers"
	"herodle/middleware"
	"herodle/services"
	"herodle/store"
	"herodle/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Load the character catalog
	if err := services.LoadCharacters(); err != nil {
		log.Fatalf("FATAL: failed to load character catalog: %v", err)
	}

	// Pick the collection backend. Memory is the default: collections live
	// for the process lifetime.
	var repo store.CollectionRepository
	if utils.Getenv("COLLECTION_BACKEND", "memory") == "postgres" {
		database.InitDB()
		repo = store.NewGormCollectionStore(database.GetDB())
		log.Println("📦 Collection backend: postgres")
	} else {
		repo = store.NewMemoryCollectionStore()
		log.Println("📦 Collection backend: memory")
	}

	services.InitRewardService(repo, services.NewMLServiceClient())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := utils.Getenv("CORS_ORIGINS", "http://localhost:3000")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")
	api.Use(middleware.CollectionKeyMiddleware)

	// Guest identity
	api.Post("/auth/guest", handlers.GuestLogin)

	// Character catalog routes
	api.Get("/characters", handlers.GetCharacters)
	api.Get("/characters/daily", handlers.GetDailyCharacter)
	api.Get("/characters/:id", handlers.GetCharacter)

	// Reward routes
	rewardGroup := api.Group("/rewards")
	rewardGroup.Use(middleware.FiberAwardRateLimitMiddleware())
	rewardGroup.Post("/award", handlers.AwardCard)

	// Collection and achievement routes
	api.Get("/collection", handlers.GetCollection)
	api.Get("/achievements", handlers.GetAchievements)

	// Live reward feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/rewards", websocket.New(handlers.RewardsFeed))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := utils.Getenv("PORT", "3000")

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", utils.Getenv("APP_ENV", "development"))
	log.Printf("🃏 Characters in catalog: %d", services.CharacterCount())
	log.Printf("🤖 ML service: %s", utils.Getenv("ML_SERVICE_URL", "http://localhost:5001"))
	log.Printf("🌐 Live feed available at ws://localhost:%s/ws/rewards", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("WARNING: JWT_SECRET not set, guest tokens use an insecure default secret")
	} else if len(jwtSecret) < 32 {
		log.Println("WARNING: JWT_SECRET should be at least 32 characters long")
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
