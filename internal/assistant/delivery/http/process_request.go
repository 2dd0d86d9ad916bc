package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds the query body and attaches the session and client identity.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = sessionID(c)
	req.ClientIP = c.ClientIP()
	return req, nil
}

// sessionID reads the session selector from the header, then the query string.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader(HeaderSessionID); id != "" {
		return id
	}
	return c.Query("session")
}
