package llmprovider

import "context"

// Provider defines the interface for remote chat-completion providers.
type Provider interface {
	// Complete sends a chat-completion request and returns the reply.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Request represents a normalized chat-completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents one conversation message.
type Message struct {
	Role    Role
	Content string
}

// Response represents a normalized chat-completion response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
