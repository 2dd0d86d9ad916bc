package kumaclient

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyReply = errors.New("backend returned no reply")

// StatusError is returned for any non-200 backend response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error %d", e.StatusCode)
	}
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	SessionID  string
	HTTPClient *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Answer is the backend's reply to one query.
type Answer struct {
	Reply      string `json:"reply"`
	Resolution string `json:"-"`
	Provider   string `json:"-"`
}

type MemoryEntry struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type TaskEntry struct {
	Task      string `json:"task"`
	Timestamp string `json:"timestamp"`
}

type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type queryRequest struct {
	Text        string `json:"text"`
	ForceRemote bool   `json:"force_remote,omitempty"`
}

type memoryResponse struct {
	Memory []MemoryEntry `json:"memory"`
}

type tasksResponse struct {
	Tasks []TaskEntry `json:"tasks"`
}

type conversationResponse struct {
	Conversation []Turn `json:"conversation"`
}

type clearResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
}
