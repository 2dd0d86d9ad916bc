package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/internal/intent"
	intentUC "kuma-assistant/internal/intent/usecase"
	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/internal/memory/repository/file"
	"kuma-assistant/internal/model"
	"kuma-assistant/internal/session"
	"kuma-assistant/pkg/datemath"
	"kuma-assistant/pkg/launcher"
	"kuma-assistant/pkg/llmprovider"
	"kuma-assistant/pkg/log"
	"kuma-assistant/pkg/weather"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)

type mockCompleter struct {
	reply    string
	err      error
	requests []*llmprovider.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.reply, ProviderName: "mock", ModelName: "mock-1"}, nil
}

type recordSink struct{ got []string }

func (r *recordSink) Present(ctx context.Context, text string) { r.got = append(r.got, text) }

type offlineWeather struct{}

func (offlineWeather) Locate(ctx context.Context, ip string) (weather.Location, error) {
	return weather.Location{}, weather.ErrLookupFailed
}

func (offlineWeather) Conditions(ctx context.Context, city string) (string, error) {
	return "", weather.ErrLookupFailed
}

type failingTaskRepo struct{ repository.TaskRepository }

func (failingTaskRepo) Append(ctx context.Context, entries ...model.TaskEntry) error {
	return errors.New("disk full")
}

type failingMemoryRepo struct{ repository.MemoryRepository }

func (failingMemoryRepo) Append(ctx context.Context, entries ...model.MemoryEntry) error {
	return errors.New("read-only file system")
}

type fixture struct {
	uc        assistant.UseCase
	memRepo   repository.MemoryRepository
	completer *mockCompleter
	sink      *recordSink
}

type fixtureOpt struct {
	wrapMemory func(repository.MemoryRepository) repository.MemoryRepository
	wrapTasks  func(repository.TaskRepository) repository.TaskRepository
	noRemote   bool
}

func newFixture(t *testing.T, opts ...func(*fixtureOpt)) *fixture {
	t.Helper()
	var fo fixtureOpt
	for _, o := range opts {
		o(&fo)
	}

	l := log.NewNop()
	dir := t.TempDir()

	memRepo, err := file.NewMemory(repository.MemoryOptions{Path: filepath.Join(dir, "memory.json")}, l)
	require.NoError(t, err)
	taskRepo, err := file.NewTask(repository.TaskOptions{Path: filepath.Join(dir, "tasks.json")}, l)
	require.NoError(t, err)

	var mem repository.MemoryRepository = memRepo
	var tasks repository.TaskRepository = taskRepo
	if fo.wrapMemory != nil {
		mem = fo.wrapMemory(mem)
	}
	if fo.wrapTasks != nil {
		tasks = fo.wrapTasks(tasks)
	}

	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	now := func() time.Time { return fixedNow }
	router := intentUC.New(l, mem, tasks, offlineWeather{}, launcher.NewNoop(l), dm, intentUC.Options{
		Now:  now,
		Pick: func(n int) int { return 0 },
	})

	f := &fixture{
		memRepo:   mem,
		completer: &mockCompleter{reply: "Gravity pulls things together."},
		sink:      &recordSink{},
	}

	var completer assistant.Completer = f.completer
	if fo.noRemote {
		completer = nil
	}

	f.uc = New(l, router, completer, mem, tasks, session.NewRegistry(session.Options{}), f.sink, Options{Now: now})
	return f
}

func (f *fixture) query(t *testing.T, in assistant.QueryInput) assistant.QueryOutput {
	t.Helper()
	out, err := f.uc.Query(context.Background(), in)
	require.NoError(t, err)
	return out
}

func (f *fixture) memory(t *testing.T) []model.MemoryEntry {
	t.Helper()
	entries, err := f.uc.Memory(context.Background())
	require.NoError(t, err)
	return entries
}

func TestQuery_EmptyInputIsIdempotent(t *testing.T) {
	f := newFixture(t)

	for _, text := range []string{"", " ", "\t\n  "} {
		out := f.query(t, assistant.QueryInput{Text: text})

		assert.Equal(t, assistant.ReplyEmptyInput, out.Reply)
		assert.Equal(t, assistant.ResolutionEmptyInput, out.Resolution)
	}

	assert.Empty(t, f.memory(t))
	assert.Empty(t, f.uc.Conversation(context.Background(), ""))
	assert.Empty(t, f.sink.got)
	assert.Empty(t, f.completer.requests)
}

func TestQuery_LocalResolved(t *testing.T) {
	f := newFixture(t)

	out := f.query(t, assistant.QueryInput{Text: "  What time is it?  "})

	assert.Equal(t, assistant.ResolutionLocal, out.Resolution)
	assert.Equal(t, intent.NameTime, out.Intent)
	assert.Equal(t, "It's 3:04 PM.", out.Reply)
	assert.Empty(t, f.completer.requests)
	assert.Equal(t, []string{"It's 3:04 PM."}, f.sink.got)

	mem := f.memory(t)
	require.Len(t, mem, 2)
	assert.Equal(t, "What time is it?", mem[0].Text)
	assert.Equal(t, "It's 3:04 PM.", mem[1].Text)

	turns := f.uc.Conversation(context.Background(), "")
	require.Len(t, turns, 2)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, model.RoleAssistant, turns[1].Role)
}

func TestQuery_RemoteResolvedAssemblesContext(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		f.query(t, assistant.QueryInput{Text: fmt.Sprintf("remember fact %d", i)})
	}
	f.uc.ClearConversation(ctx, "")
	f.query(t, assistant.QueryInput{Text: "what time is it"})

	out := f.query(t, assistant.QueryInput{Text: "explain gravity"})

	assert.Equal(t, assistant.ResolutionRemote, out.Resolution)
	assert.Equal(t, "Gravity pulls things together.", out.Reply)
	assert.Equal(t, "mock", out.Provider)

	require.Len(t, f.completer.requests, 1)
	req := f.completer.requests[0]

	assert.True(t, strings.HasPrefix(req.System, assistant.DefaultPersona))
	wantBlock := assistant.MemoryBlockHeader +
		"\n- fact 7\n- remember fact 7\n- Okay, I'll remember that: fact 7" +
		"\n- what time is it\n- It's 3:04 PM."
	assert.True(t, strings.HasSuffix(req.System, wantBlock), req.System)

	require.Len(t, req.Messages, 3)
	assert.Equal(t, llmprovider.Message{Role: llmprovider.RoleUser, Content: "what time is it"}, req.Messages[0])
	assert.Equal(t, llmprovider.Message{Role: llmprovider.RoleAssistant, Content: "It's 3:04 PM."}, req.Messages[1])
	assert.Equal(t, llmprovider.Message{Role: llmprovider.RoleUser, Content: "explain gravity"}, req.Messages[2])

	turns := f.uc.Conversation(ctx, "")
	require.Len(t, turns, 4)
	assert.Equal(t, "Gravity pulls things together.", turns[3].Content)
}

func TestQuery_SessionBound(t *testing.T) {
	f := newFixture(t)

	for i := 1; i <= 10; i++ {
		f.completer.reply = fmt.Sprintf("answer %d", i)
		f.query(t, assistant.QueryInput{Text: fmt.Sprintf("question %d", i)})
	}

	turns := f.uc.Conversation(context.Background(), "")
	require.Len(t, turns, session.DefaultMaxHistory)
	for i, turn := range turns {
		n := 5 + i/2
		if i%2 == 0 {
			assert.Equal(t, fmt.Sprintf("question %d", n), turn.Content)
		} else {
			assert.Equal(t, fmt.Sprintf("answer %d", n), turn.Content)
		}
	}
}

func TestQuery_FallbackChain(t *testing.T) {
	f := newFixture(t)
	f.completer.err = &llmprovider.ProviderError{Provider: "mock", Err: llmprovider.ErrAllProvidersFailed}

	out := f.query(t, assistant.QueryInput{Text: "tell me a joke", ForceRemote: true})

	assert.Equal(t, assistant.ResolutionFallback, out.Resolution)
	assert.Equal(t, intent.NameJoke, out.Intent)
	assert.Equal(t, intent.Jokes[0], out.Reply)
	assert.Len(t, f.completer.requests, 1)
	assert.Len(t, f.memory(t), 2)
	assert.Len(t, f.uc.Conversation(context.Background(), ""), 2)
}

func TestQuery_EmptyCompletionFallsBack(t *testing.T) {
	f := newFixture(t)
	f.completer.reply = "   "

	out := f.query(t, assistant.QueryInput{Text: "tell me a joke", ForceRemote: true})
	assert.Equal(t, assistant.ResolutionFallback, out.Resolution)
}

func TestQuery_ErrorSurfaced(t *testing.T) {
	f := newFixture(t)
	f.completer.err = &llmprovider.ProviderError{Provider: "openai", Err: errors.New("connection refused")}

	out := f.query(t, assistant.QueryInput{Text: "explain gravity"})

	assert.Equal(t, assistant.ResolutionError, out.Resolution)
	assert.Equal(t, "Sorry, something went wrong: provider openai: connection refused", out.Reply)
	assert.Empty(t, f.memory(t))
	assert.Empty(t, f.uc.Conversation(context.Background(), ""))
	assert.Empty(t, f.sink.got)
}

func TestQuery_NoCompleterConfigured(t *testing.T) {
	f := newFixture(t, func(o *fixtureOpt) { o.noRemote = true })

	out := f.query(t, assistant.QueryInput{Text: "explain gravity"})
	assert.Equal(t, assistant.ResolutionError, out.Resolution)
	assert.Contains(t, out.Reply, assistant.ErrNoCompleter.Error())

	out = f.query(t, assistant.QueryInput{Text: "tell me a joke"})
	assert.Equal(t, assistant.ResolutionLocal, out.Resolution)
}

func TestQuery_RouterStoreFailureIsSurfaced(t *testing.T) {
	f := newFixture(t, func(o *fixtureOpt) {
		o.wrapTasks = func(r repository.TaskRepository) repository.TaskRepository { return failingTaskRepo{r} }
	})

	out := f.query(t, assistant.QueryInput{Text: "add task buy milk"})

	assert.Equal(t, assistant.ResolutionError, out.Resolution)
	assert.Equal(t, intent.NameTaskWrite, out.Intent)
	assert.Contains(t, out.Reply, "disk full")
	assert.Empty(t, f.completer.requests)
}

func TestQuery_PersistenceFailureStillReplies(t *testing.T) {
	f := newFixture(t, func(o *fixtureOpt) {
		o.wrapMemory = func(r repository.MemoryRepository) repository.MemoryRepository { return failingMemoryRepo{r} }
	})

	out := f.query(t, assistant.QueryInput{Text: "what time is it"})

	assert.Equal(t, assistant.ResolutionLocal, out.Resolution)
	assert.Equal(t, "It's 3:04 PM.", out.Reply)
	assert.Len(t, f.uc.Conversation(context.Background(), ""), 2)
}

func TestQuery_MemoryBound(t *testing.T) {
	f := newFixture(t)

	var written []string
	for i := 1; i <= 60; i++ {
		utterance := fmt.Sprintf("remember fact %d", i)
		out := f.query(t, assistant.QueryInput{Text: utterance})
		require.Equal(t, intent.NameMemoryWrite, out.Intent)

		written = append(written, fmt.Sprintf("fact %d", i), utterance, out.Reply)
	}

	mem := f.memory(t)
	require.Len(t, mem, repository.DefaultMaxMemoryItems)

	want := written[len(written)-repository.DefaultMaxMemoryItems:]
	for i, e := range mem {
		assert.Equal(t, want[i], e.Text)
	}
}

func TestQuery_SessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.query(t, assistant.QueryInput{Text: "what time is it", SessionID: "kitchen"})
	f.query(t, assistant.QueryInput{Text: "tell me a joke", SessionID: "office"})
	f.query(t, assistant.QueryInput{Text: "tell me a joke", SessionID: "office"})

	assert.Len(t, f.uc.Conversation(ctx, "kitchen"), 2)
	assert.Len(t, f.uc.Conversation(ctx, "office"), 4)
	assert.Empty(t, f.uc.Conversation(ctx, ""))
}

func TestClearConversation_LeavesMemoryIntact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.query(t, assistant.QueryInput{Text: "remember my name is Kai"})
	f.query(t, assistant.QueryInput{Text: "explain gravity"})
	before := f.memory(t)
	require.Len(t, before, 5)

	f.uc.ClearConversation(ctx, "")

	assert.Empty(t, f.uc.Conversation(ctx, ""))
	assert.Equal(t, before, f.memory(t))
}

func TestClearMemoryAndTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.query(t, assistant.QueryInput{Text: "add task water the plants"})
	f.query(t, assistant.QueryInput{Text: "remind me to go to the store"})

	tasks, err := f.uc.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "water the plants", tasks[0].Task)
	assert.Equal(t, "the store", tasks[1].Task)

	require.NoError(t, f.uc.ClearMemory(ctx))
	assert.Empty(t, f.memory(t))
	assert.Len(t, f.uc.Conversation(ctx, ""), 4)
}
