package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/carriescott/trivia-api/internal/database"
	"github.com/carriescott/trivia-api/internal/event"
	"github.com/carriescott/trivia-api/internal/handler"
	"github.com/carriescott/trivia-api/internal/repository/postgres"
	"github.com/carriescott/trivia-api/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	//nolint:errcheck
	godotenv.Load()

	// Initialize database connection
	pool, err := database.ConnectPostgres(database.NewPostgresConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Initialize Redis client
	redisClient, err := database.ConnectRedis(database.NewRedisConfig())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	categoryRepo := postgres.NewCategoryRepository(pool)
	questionRepo := postgres.NewQuestionRepository(pool)

	// Initialize event fanout
	broadcaster := event.NewBroadcaster(redisClient)
	hub := event.NewHub()
	go hub.Run()

	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	go broadcaster.Relay(relayCtx, hub)

	// Initialize services
	questionService := service.NewQuestionService(questionRepo, categoryRepo, broadcaster)
	quizService := service.NewQuizService(questionRepo, categoryRepo)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryRepo, questionService)
	questionHandler := handler.NewQuestionHandler(questionService, categoryRepo)
	quizHandler := handler.NewQuizHandler(quizService)
	wsHandler := handler.NewWebSocketHandler(hub)

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Routes
	e.GET("/categories", categoryHandler.ListCategories)
	e.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)
	e.GET("/questions", questionHandler.ListQuestions)
	e.POST("/questions", questionHandler.CreateQuestion)
	e.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	e.POST("/questions/search", questionHandler.SearchQuestions)
	e.POST("/quizzes", quizHandler.NextQuestion)

	// Event feed
	e.GET("/ws", wsHandler.HandleWebSocket)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unreachable"})
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "redis unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Start server
	addr := ":" + port()
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
