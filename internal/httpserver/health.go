package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuma-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootMessage   = "Kuma backend is running"
	HealthVersion = "1.0.0"
	ServiceName   = "kuma-assistant"
)

// rootCheck godoc
// @Summary Liveness string
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Kuma backend is running"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"message":     RootMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}
