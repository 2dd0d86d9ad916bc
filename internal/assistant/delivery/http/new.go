package http

import (
	"github.com/gin-gonic/gin"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	Memory(c *gin.Context)
	ClearMemory(c *gin.Context)
	Tasks(c *gin.Context)
	Conversation(c *gin.Context)
	ClearConversation(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
