package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"logic-looper-backend/internal/config"
	"logic-looper-backend/internal/handlers"
	"logic-looper-backend/internal/middleware"
	"logic-looper-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisService.Close()

	jwtService := services.NewJWTService(cfg)

	wsHandler := handlers.NewWebSocketHandler(redisService)

	authHandler := handlers.NewAuthHandler(redisService, jwtService)
	userHandler := handlers.NewUserHandler(redisService)
	puzzleHandler := handlers.NewPuzzleHandler()
	scoreHandler := handlers.NewScoreHandler(redisService, wsHandler)
	leaderboardHandler := handlers.NewLeaderboardHandler(redisService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		if err := redisService.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// The puzzle itself is deterministic and public.
	puzzles := router.Group("/api/puzzle")
	{
		puzzles.GET("/today", puzzleHandler.GetDaily)
		puzzles.GET("/hint", puzzleHandler.GetHint)
		puzzles.POST("/validate", puzzleHandler.Validate)
	}

	router.GET("/api/leaderboard", leaderboardHandler.Get)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/users/me", userHandler.GetCurrentUser)

		protected.GET("/ws", wsHandler.HandleWebSocket)

		scores := protected.Group("/scores")
		scores.Use(middleware.RateLimitMiddleware(redisService))
		{
			scores.POST("/sync", scoreHandler.Sync)
			scores.GET("", scoreHandler.List)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
