package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kuma-assistant/pkg/response"
)

var errBadQueryBody = errors.New(`request body must be JSON with a "text" field`)

// mapError writes the response for a failed state view. Store failures are internal errors.
func (h *handler) mapError(c *gin.Context, err error) {
	response.InternalError(c, err)
}
