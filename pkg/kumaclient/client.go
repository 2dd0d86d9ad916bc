package kumaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the Kuma backend over HTTP.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

// New creates a backend client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		sessionID:  cfg.SessionID,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Query sends one utterance and returns the reply.
func (c *Client) Query(ctx context.Context, text string, forceRemote bool) (Answer, error) {
	var ans Answer
	header, err := c.do(ctx, http.MethodPost, "/query", queryRequest{Text: text, ForceRemote: forceRemote}, &ans)
	if err != nil {
		return Answer{}, err
	}
	if ans.Reply == "" {
		return Answer{}, ErrEmptyReply
	}
	ans.Resolution = header.Get(headerResolution)
	ans.Provider = header.Get(headerProvider)
	return ans, nil
}

// ReadScreen forwards captured screen text as a query.
func (c *Client) ReadScreen(ctx context.Context, text string) (Answer, error) {
	return c.Query(ctx, ScreenReadPrefix+text, false)
}

func (c *Client) Memory(ctx context.Context) ([]MemoryEntry, error) {
	var out memoryResponse
	if _, err := c.do(ctx, http.MethodGet, "/memory", nil, &out); err != nil {
		return nil, err
	}
	return out.Memory, nil
}

func (c *Client) ClearMemory(ctx context.Context) (string, error) {
	return c.clear(ctx, "/memory/clear")
}

func (c *Client) Tasks(ctx context.Context) ([]TaskEntry, error) {
	var out tasksResponse
	if _, err := c.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) Conversation(ctx context.Context) ([]Turn, error) {
	var out conversationResponse
	if _, err := c.do(ctx, http.MethodGet, "/conversation", nil, &out); err != nil {
		return nil, err
	}
	return out.Conversation, nil
}

func (c *Client) ClearConversation(ctx context.Context) (string, error) {
	return c.clear(ctx, "/conversation/clear")
}

func (c *Client) clear(ctx context.Context, path string) (string, error) {
	var out clearResponse
	if _, err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (http.Header, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set(headerSessionID, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return resp.Header, nil
}
