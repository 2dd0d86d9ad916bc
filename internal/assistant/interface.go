package assistant

import (
	"context"

	"kuma-assistant/internal/model"
	"kuma-assistant/pkg/llmprovider"
)

// UseCase is the single entry point for inbound utterances and the state views around them.
type UseCase interface {
	// Query resolves one utterance locally or remotely. Failures are folded into the reply.
	Query(ctx context.Context, input QueryInput) (QueryOutput, error)

	// Memory returns the persistent memory log in insertion order.
	Memory(ctx context.Context) ([]model.MemoryEntry, error)
	// ClearMemory empties the persistent memory log.
	ClearMemory(ctx context.Context) error

	// Tasks returns the to-do list in insertion order.
	Tasks(ctx context.Context) ([]model.TaskEntry, error)

	// Conversation returns a copy of the session's turn buffer.
	Conversation(ctx context.Context, sessionID string) []model.ConversationTurn
	// ClearConversation empties the session's turn buffer. Persistent memory is untouched.
	ClearConversation(ctx context.Context, sessionID string)
}

// Completer is the remote chat-completion capability.
// Every failure is reported as an error; *llmprovider.ProviderError carries the detail.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
