package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/ai"
	"github.com/Shivaganesh9/DailyReflectAI/internal/config"
	"github.com/Shivaganesh9/DailyReflectAI/internal/db"
	firebaseutil "github.com/Shivaganesh9/DailyReflectAI/internal/firebase"
	"github.com/Shivaganesh9/DailyReflectAI/internal/handlers"
	"github.com/Shivaganesh9/DailyReflectAI/internal/middleware"
	"github.com/Shivaganesh9/DailyReflectAI/internal/scheduler"
	"github.com/Shivaganesh9/DailyReflectAI/internal/stats"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage/memory"
	storagepg "github.com/Shivaganesh9/DailyReflectAI/internal/storage/postgres"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize Firebase; without it all requests are rejected as
	// unauthenticated, so this is fatal outside of local development.
	var firebaseApp *firebase.App
	if cfg.FirebaseProjectID != "" {
		firebaseApp, err = firebaseutil.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		if err != nil {
			logger.Fatalw("failed to initialize Firebase", "error", err)
		}
	} else {
		logger.Warn("FIREBASE_PROJECT_ID not set, authentication is disabled")
	}

	// Initialize persistence. Without DATABASE_URL the server runs on the
	// in-memory store, which is enough for local development.
	var (
		entryStore  storage.EntryStore
		moodStore   storage.MoodLogStore
		promptStore storage.PromptStore
	)
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.InitPostgres()
		if err != nil {
			logger.Fatalw("failed to initialize PostgreSQL", "error", err)
		}
		defer pool.Close()
		entryStore = storagepg.NewEntryStore(pool)
		moodStore = storagepg.NewMoodLogStore(pool)
		promptStore = storagepg.NewPromptStore(pool)
		logger.Info("using PostgreSQL storage")
	} else {
		store := memory.NewStore()
		entryStore = store
		moodStore = store
		promptStore = store
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Initialize Redis; caching is optional
	var redisClient *redis.Client
	if client, err := db.InitRedis(); err != nil {
		logger.Warnw("Redis unavailable, caching disabled", "error", err)
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	// Initialize the AI client; insight generation is optional
	var aiClient *ai.Client
	if cfg.OpenAIAPIKey != "" {
		aiClient = ai.NewClient(cfg.OpenAIAPIKey)
		if cfg.OpenAIBaseURL != "" {
			aiClient.SetBaseURL(cfg.OpenAIBaseURL)
		}
		if cfg.OpenAIModel != "" {
			aiClient.SetModel(cfg.OpenAIModel)
		}
	} else {
		logger.Warn("OPENAI_API_KEY not set, AI insights disabled")
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// CORS for the web and mobile clients
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	statsService := stats.NewService(entryStore)
	entryHandler := handlers.NewEntryHandler(entryStore, moodStore, redisClient, aiClient, cfg.AIInsightTimeout, logger)
	statsHandler := handlers.NewStatsHandler(statsService, redisClient, logger)
	moodHandler := handlers.NewMoodHandler(moodStore, redisClient, logger)
	aiHandler := handlers.NewAIHandler(entryStore, promptStore, aiClient, redisClient, cfg.AIInsightTimeout, logger)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir, cfg.MaxUploadBytes, logger)

	// Define routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(firebaseApp, redisClient))
	{
		api.GET("/dashboard/stats", statsHandler.DashboardStats)

		api.GET("/entries", entryHandler.ListEntries)
		api.POST("/entries", entryHandler.CreateEntry)
		api.GET("/entries/:id", entryHandler.GetEntry)
		api.PUT("/entries/:id", entryHandler.UpdateEntry)
		api.DELETE("/entries/:id", entryHandler.DeleteEntry)
		api.POST("/entries/search", entryHandler.SearchEntries)
		api.GET("/entries/calendar/:year/:month", entryHandler.CalendarEntries)

		api.GET("/moods", moodHandler.ListMoodLogs)
		api.POST("/moods", moodHandler.CreateMoodLog)

		api.POST("/ai/analyze", aiHandler.AnalyzeSentiment)
		api.GET("/ai/weekly-insights", aiHandler.WeeklyInsights)
		api.GET("/ai/writing-prompt", aiHandler.WritingPrompt)

		api.POST("/uploads", uploadHandler.UploadAttachments)
		api.GET("/export/:format", entryHandler.ExportEntries)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Serve uploaded attachment files
	router.Static("/uploads", cfg.UploadDir)

	// Pre-generate the daily writing prompt
	promptScheduler := scheduler.NewPromptScheduler(promptStore, aiClient, logger)
	if err := promptScheduler.Start(); err != nil {
		logger.Fatalw("failed to start prompt scheduler", "error", err)
	}
	defer promptScheduler.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
