package kumaclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL + "/", SessionID: "kitchen"})
	require.NoError(t, err)
	return c
}

func TestQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "kitchen", r.Header.Get(headerSessionID))

		var req queryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tell me a joke", req.Text)
		assert.True(t, req.ForceRemote)

		w.Header().Set(headerResolution, "REMOTE_RESOLVED")
		w.Header().Set(headerProvider, "gemini")
		_, _ = w.Write([]byte(`{"reply":"Why did the gopher cross the road?"}`))
	})

	ans, err := c.Query(context.Background(), "tell me a joke", true)

	require.NoError(t, err)
	assert.Equal(t, Answer{
		Reply:      "Why did the gopher cross the road?",
		Resolution: "REMOTE_RESOLVED",
		Provider:   "gemini",
	}, ans)
}

func TestReadScreen(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Screen read:\nInvoice #42", req.Text)
		assert.False(t, req.ForceRemote)
		_, _ = w.Write([]byte(`{"reply":"That looks like an invoice."}`))
	})

	ans, err := c.ReadScreen(context.Background(), "Invoice #42")
	require.NoError(t, err)
	assert.Equal(t, "That looks like an invoice.", ans.Reply)
}

func TestQuery_EmptyReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Query(context.Background(), "hi", false)
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestQuery_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error_code":429,"message":"rate limit exceeded"}`))
	})

	_, err := c.Query(context.Background(), "hi", false)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, "server error 429: rate limit exceeded", se.Error())
}

func TestQuery_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Query(context.Background(), "hi", false)
	assert.ErrorContains(t, err, "connection error")
}

func TestStateViews(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /memory":
			_, _ = w.Write([]byte(`{"memory":[{"text":"my cat is tom","timestamp":"2024-05-01T15:04:00Z"}]}`))
		case "GET /tasks":
			_, _ = w.Write([]byte(`{"tasks":[{"task":"buy milk","timestamp":"2024-05-01T15:04:00Z"}]}`))
		case "GET /conversation":
			_, _ = w.Write([]byte(`{"conversation":[{"role":"user","content":"hi","timestamp":"2024-05-01T15:04:00Z"}]}`))
		case "POST /memory/clear":
			_, _ = w.Write([]byte(`{"ok":true,"message":"Memory cleared."}`))
		case "POST /conversation/clear":
			_, _ = w.Write([]byte(`{"ok":true,"message":"Conversation cleared."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	mem, err := c.Memory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []MemoryEntry{{Text: "my cat is tom", Timestamp: "2024-05-01T15:04:00Z"}}, mem)

	tasks, err := c.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", tasks[0].Task)

	turns, err := c.Conversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, Turn{Role: "user", Content: "hi", Timestamp: "2024-05-01T15:04:00Z"}, turns[0])

	msg, err := c.ClearMemory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Memory cleared.", msg)

	msg, err = c.ClearConversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Conversation cleared.", msg)
}
