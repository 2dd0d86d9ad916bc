package http

import (
	"github.com/gin-gonic/gin"

	"kuma-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. Only /query is rate limited.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/query", mw.RateLimit(), h.Query)

	r.GET("/memory", h.Memory)
	r.POST("/memory/clear", h.ClearMemory)

	r.GET("/tasks", h.Tasks)

	r.GET("/conversation", h.Conversation)
	r.POST("/conversation/clear", h.ClearConversation)
}
