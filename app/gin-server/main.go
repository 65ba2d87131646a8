package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/docchat/config"
	"github.com/yoockh/docchat/internal/api/handlers"
	"github.com/yoockh/docchat/internal/api/middleware"
	"github.com/yoockh/docchat/internal/api/routes"
	"github.com/yoockh/docchat/internal/corpus"
	"github.com/yoockh/docchat/internal/logger"
	"github.com/yoockh/docchat/internal/providers/llm"
	"github.com/yoockh/docchat/internal/repositories/sqlstore"
	"github.com/yoockh/docchat/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	if err := config.InitDatabase(); err != nil {
		log.Fatalf("database init error: %v", err)
	}
	log.Info("database connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("redis init error: %v", err)
	}
	if config.RedisClient != nil {
		log.Info("redis connected, rate limiter enabled")
	}

	docsPath := os.Getenv("DOCS_PATH")
	if docsPath == "" {
		docsPath = "docs.json"
	}
	corp, err := corpus.Load(docsPath)
	if err != nil {
		log.Fatalf("corpus load error: %v", err)
	}

	location := os.Getenv("VERTEX_LOCATION")
	if location == "" {
		location = "us-central1"
	}
	ctx := context.Background()
	provider, err := llm.NewVertexGemini(ctx,
		os.Getenv("GOOGLE_CLOUD_PROJECT"),
		location,
		os.Getenv("GEMINI_MODEL"),
		corp.SystemInstruction(),
	)
	if err != nil {
		log.Fatalf("vertex init error: %v", err)
	}
	defer provider.Close()

	sessions := sqlstore.NewSessionRepo(config.DB)
	messages := sqlstore.NewMessageRepo(config.DB)
	chat := handlers.NewChatHandler(services.NewChatService(sessions, messages, provider))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())
	routes.RegisterRoutes(r, routes.Deps{
		Chat:  chat,
		Redis: config.RedisClient,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
