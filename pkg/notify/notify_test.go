package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockLogger struct {
	mu    sync.Mutex
	infos []string
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if s, ok := arg[0].(string); ok {
			m.infos = append(m.infos, s)
		}
	}
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockSender struct {
	mu     sync.Mutex
	chatID int64
	texts  []string
	err    error
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatID = chatID
	m.texts = append(m.texts, text)
	return m.err
}

type recordSink struct{ got []string }

func (r *recordSink) Present(ctx context.Context, text string) { r.got = append(r.got, text) }

func TestLogSink(t *testing.T) {
	l := &mockLogger{}
	NewLogSink(l).Present(context.Background(), "Hello!")
	assert.Equal(t, []string{"Hello!"}, l.infos)
}

func TestTelegramSink(t *testing.T) {
	sender := &mockSender{}
	l := &mockLogger{}
	s := NewTelegramSink(sender, 99, l)

	ctx, cancel := context.WithCancel(context.Background())
	s.Present(ctx, "one")
	cancel()
	s.Present(ctx, "two")
	s.Wait()

	assert.Equal(t, int64(99), sender.chatID)
	assert.ElementsMatch(t, []string{"one", "two"}, sender.texts)
	assert.Zero(t, l.warns)
}

func TestTelegramSink_FailureIsLogged(t *testing.T) {
	sender := &mockSender{err: errors.New("chat not found")}
	l := &mockLogger{}
	s := NewTelegramSink(sender, 1, l)

	s.Present(context.Background(), "hi")
	s.Wait()

	assert.Equal(t, 1, l.warns)
}

func TestMulti(t *testing.T) {
	a, b := &recordSink{}, &recordSink{}
	Multi{a, nil, b}.Present(context.Background(), "reply")

	assert.Equal(t, []string{"reply"}, a.got)
	assert.Equal(t, []string{"reply"}, b.got)
}
