package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuma-assistant/internal/assistant"
	assistantHTTP "kuma-assistant/internal/assistant/delivery/http"
	"kuma-assistant/internal/middleware"
	"kuma-assistant/internal/model"
	"kuma-assistant/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	queryIn  assistant.QueryInput
	queryOut assistant.QueryOutput
	queryErr error

	memory    []model.MemoryEntry
	memoryErr error
	cleared   bool
	tasks     []model.TaskEntry

	conversations map[string][]model.ConversationTurn
	resetSession  string
}

func (m *mockUseCase) Query(ctx context.Context, in assistant.QueryInput) (assistant.QueryOutput, error) {
	m.queryIn = in
	return m.queryOut, m.queryErr
}

func (m *mockUseCase) Memory(ctx context.Context) ([]model.MemoryEntry, error) {
	return m.memory, m.memoryErr
}

func (m *mockUseCase) ClearMemory(ctx context.Context) error {
	m.cleared = true
	return m.memoryErr
}

func (m *mockUseCase) Tasks(ctx context.Context) ([]model.TaskEntry, error) {
	return m.tasks, nil
}

func (m *mockUseCase) Conversation(ctx context.Context, sessionID string) []model.ConversationTurn {
	return m.conversations[sessionID]
}

func (m *mockUseCase) ClearConversation(ctx context.Context, sessionID string) {
	m.resetSession = sessionID
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newEngine(uc assistant.UseCase, cfg middleware.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	r := gin.New()
	assistantHTTP.RegisterRoutes(r, assistantHTTP.New(l, uc), middleware.New(l, cfg))
	return r
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestQuery_ReturnsReply(t *testing.T) {
	uc := &mockUseCase{queryOut: assistant.QueryOutput{
		Reply:      "It's 3:04 PM.",
		Resolution: assistant.ResolutionLocal,
	}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodPost, "/query", `{"text":"what time is it"}`, map[string]string{
		assistantHTTP.HeaderSessionID: "kitchen",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"reply": "It's 3:04 PM."}, decode(t, w))
	assert.Equal(t, string(assistant.ResolutionLocal), w.Header().Get(assistantHTTP.HeaderResolution))
	assert.Empty(t, w.Header().Get(assistantHTTP.HeaderProvider))

	assert.Equal(t, "what time is it", uc.queryIn.Text)
	assert.Equal(t, "kitchen", uc.queryIn.SessionID)
	assert.False(t, uc.queryIn.ForceRemote)
	assert.NotEmpty(t, uc.queryIn.ClientIP)
}

func TestQuery_ForceRemoteAndProviderHeader(t *testing.T) {
	uc := &mockUseCase{queryOut: assistant.QueryOutput{
		Reply:      "Hello!",
		Resolution: assistant.ResolutionRemote,
		Provider:   "gemini",
	}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodPost, "/query?session=office", `{"text":"hi","force_remote":true}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gemini", w.Header().Get(assistantHTTP.HeaderProvider))
	assert.True(t, uc.queryIn.ForceRemote)
	assert.Equal(t, "office", uc.queryIn.SessionID)
}

func TestQuery_EmptyTextIsNotABadRequest(t *testing.T) {
	uc := &mockUseCase{queryOut: assistant.QueryOutput{
		Reply:      assistant.ReplyEmptyInput,
		Resolution: assistant.ResolutionEmptyInput,
	}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodPost, "/query", `{"text":""}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assistant.ReplyEmptyInput, decode(t, w)["reply"])
}

func TestQuery_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `text=hello`},
		{"missing text", `{"force_remote":true}`},
		{"wrong type", `{"text":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			r := newEngine(uc, middleware.Config{})

			w := do(r, http.MethodPost, "/query", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, uc.queryIn.Text)
		})
	}
}

func TestQuery_RateLimited(t *testing.T) {
	uc := &mockUseCase{queryOut: assistant.QueryOutput{Reply: "ok"}}
	r := newEngine(uc, middleware.Config{RateLimitPerMin: 1, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/query", `{"text":"a"}`, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/query", `{"text":"b"}`, nil).Code)

	// state views are not limited
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/memory", "", nil).Code)
}

func TestMemory(t *testing.T) {
	uc := &mockUseCase{memory: []model.MemoryEntry{
		{Text: "my cat is called tom", Timestamp: "2024-05-01T15:04:00Z"},
	}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodGet, "/memory", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"memory":[{"text":"my cat is called tom","timestamp":"2024-05-01T15:04:00Z"}]}`, w.Body.String())
}

func TestMemory_EmptyIsAnArray(t *testing.T) {
	r := newEngine(&mockUseCase{}, middleware.Config{})

	w := do(r, http.MethodGet, "/memory", "", nil)
	assert.JSONEq(t, `{"memory":[]}`, w.Body.String())

	w = do(r, http.MethodGet, "/tasks", "", nil)
	assert.JSONEq(t, `{"tasks":[]}`, w.Body.String())

	w = do(r, http.MethodGet, "/conversation", "", nil)
	assert.JSONEq(t, `{"conversation":[]}`, w.Body.String())
}

func TestMemory_StoreFailure(t *testing.T) {
	r := newEngine(&mockUseCase{memoryErr: errors.New("permission denied")}, middleware.Config{})

	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/memory", "", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodPost, "/memory/clear", "", nil).Code)
}

func TestClearMemory(t *testing.T) {
	uc := &mockUseCase{}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodPost, "/memory/clear", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.cleared)
	assert.JSONEq(t, `{"ok":true,"message":"Memory cleared."}`, w.Body.String())
}

func TestTasks(t *testing.T) {
	uc := &mockUseCase{tasks: []model.TaskEntry{{Task: "buy milk", Timestamp: "2024-05-01T15:04:00Z"}}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodGet, "/tasks", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tasks":[{"task":"buy milk","timestamp":"2024-05-01T15:04:00Z"}]}`, w.Body.String())
}

func TestConversation(t *testing.T) {
	uc := &mockUseCase{conversations: map[string][]model.ConversationTurn{
		"kitchen": {
			{Role: model.RoleUser, Content: "hi", Timestamp: "2024-05-01T15:04:00Z"},
			{Role: model.RoleAssistant, Content: "Hello!", Timestamp: "2024-05-01T15:04:00Z"},
		},
	}}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodGet, "/conversation", "", map[string]string{assistantHTTP.HeaderSessionID: "kitchen"})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["conversation"], 2)
}

func TestClearConversation(t *testing.T) {
	uc := &mockUseCase{}
	r := newEngine(uc, middleware.Config{})

	w := do(r, http.MethodPost, "/conversation/clear", "", map[string]string{assistantHTTP.HeaderSessionID: "office"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "office", uc.resetSession)
	assert.False(t, uc.cleared)
	assert.JSONEq(t, `{"ok":true,"message":"Conversation cleared."}`, w.Body.String())
}
