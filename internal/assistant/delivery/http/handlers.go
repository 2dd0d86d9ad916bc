package http

import (
	"github.com/gin-gonic/gin"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the assistant
// @Description Resolves one utterance locally or through the remote model. Recoverable failures come back as a 200 reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string   false "Conversation session (default session when omitted)"
// @Param       body         body   queryReq true  "Utterance"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Query: bind: %v", err)
		response.Error(c, errBadQueryBody, nil)
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		h.mapError(c, err)
		return
	}

	c.Header(HeaderResolution, string(output.Resolution))
	if output.Provider != "" {
		c.Header(HeaderProvider, output.Provider)
	}
	response.JSON(c, h.newQueryResp(output))
}

// Memory godoc
// @Summary     List persistent memory
// @Description Returns every stored memory entry, oldest first.
// @Tags        Memory
// @Produce     json
// @Success     200 {object} memoryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /memory [GET]
func (h *handler) Memory(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.Memory(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Memory: %v", err)
		h.mapError(c, err)
		return
	}

	response.JSON(c, h.newMemoryResp(entries))
}

// ClearMemory godoc
// @Summary     Clear persistent memory
// @Tags        Memory
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /memory/clear [POST]
func (h *handler) ClearMemory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearMemory(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearMemory: %v", err)
		h.mapError(c, err)
		return
	}

	response.JSON(c, newClearResp(assistant.MessageMemoryClear))
}

// Tasks godoc
// @Summary     List tasks
// @Description Returns the to-do list, oldest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} tasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Tasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Tasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.JSON(c, h.newTasksResp(tasks))
}

// Conversation godoc
// @Summary     Show the session conversation
// @Tags        Conversation
// @Produce     json
// @Param       X-Session-ID header string false "Conversation session"
// @Success     200 {object} conversationResp
// @Router      /conversation [GET]
func (h *handler) Conversation(c *gin.Context) {
	turns := h.uc.Conversation(c.Request.Context(), sessionID(c))
	response.JSON(c, h.newConversationResp(turns))
}

// ClearConversation godoc
// @Summary     Clear the session conversation
// @Description Empties the session buffer. Persistent memory is kept.
// @Tags        Conversation
// @Produce     json
// @Param       X-Session-ID header string false "Conversation session"
// @Success     200 {object} clearResp
// @Router      /conversation/clear [POST]
func (h *handler) ClearConversation(c *gin.Context) {
	h.uc.ClearConversation(c.Request.Context(), sessionID(c))
	response.JSON(c, newClearResp(assistant.MessageSessionClear))
}
