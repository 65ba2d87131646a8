package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/yoockh/docchat/internal/api/handlers"
	"github.com/yoockh/docchat/internal/api/middleware"
	"github.com/yoockh/docchat/web"
)

type Deps struct {
	Chat  *handlers.ChatHandler
	Redis *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(d.Redis, 100, 15*time.Minute))

	api.POST("/chat", d.Chat.Chat)
	api.GET("/conversations/:session_id", d.Chat.ListBySession)
	api.GET("/sessions", d.Chat.ListSessions)

	// Embedded browser client at /.
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(web.Static()))))
}
