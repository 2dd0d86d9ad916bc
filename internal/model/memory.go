package model

import "time"

// TimestampLayout is the ISO-8601 layout used for every persisted timestamp.
const TimestampLayout = time.RFC3339

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MemoryEntry is one persisted long-term memory item.
type MemoryEntry struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// TaskEntry is one persisted to-do item.
type TaskEntry struct {
	Task      string `json:"task"`
	Timestamp string `json:"timestamp"`
}

// ConversationTurn is one message held in a session buffer. Never persisted.
type ConversationTurn struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Timestamp formats t with TimestampLayout at seconds precision.
func Timestamp(t time.Time) string {
	return t.Truncate(time.Second).Format(TimestampLayout)
}

// NewMemoryEntry stamps text with t.
func NewMemoryEntry(text string, t time.Time) MemoryEntry {
	return MemoryEntry{Text: text, Timestamp: Timestamp(t)}
}

// NewTaskEntry stamps task with t.
func NewTaskEntry(task string, t time.Time) TaskEntry {
	return TaskEntry{Task: task, Timestamp: Timestamp(t)}
}
