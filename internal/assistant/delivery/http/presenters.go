package http

import (
	"kuma-assistant/internal/assistant"
	"kuma-assistant/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	Text        *string `json:"text" binding:"required"`
	ForceRemote bool    `json:"force_remote"`

	SessionID string `json:"-"`
	ClientIP  string `json:"-"`
}

func (r queryReq) toInput() assistant.QueryInput {
	return assistant.QueryInput{
		Text:        *r.Text,
		SessionID:   r.SessionID,
		ClientIP:    r.ClientIP,
		ForceRemote: r.ForceRemote,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Reply string `json:"reply"`
}

func (h *handler) newQueryResp(out assistant.QueryOutput) queryResp {
	return queryResp{Reply: out.Reply}
}

type memoryResp struct {
	Memory []model.MemoryEntry `json:"memory"`
}

func (h *handler) newMemoryResp(entries []model.MemoryEntry) memoryResp {
	if entries == nil {
		entries = []model.MemoryEntry{}
	}
	return memoryResp{Memory: entries}
}

type tasksResp struct {
	Tasks []model.TaskEntry `json:"tasks"`
}

func (h *handler) newTasksResp(tasks []model.TaskEntry) tasksResp {
	if tasks == nil {
		tasks = []model.TaskEntry{}
	}
	return tasksResp{Tasks: tasks}
}

type conversationResp struct {
	Conversation []model.ConversationTurn `json:"conversation"`
}

func (h *handler) newConversationResp(turns []model.ConversationTurn) conversationResp {
	if turns == nil {
		turns = []model.ConversationTurn{}
	}
	return conversationResp{Conversation: turns}
}

type clearResp struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func newClearResp(message string) clearResp {
	return clearResp{OK: true, Message: message}
}
