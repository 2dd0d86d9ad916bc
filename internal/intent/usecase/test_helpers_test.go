package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/model"
	"kuma-assistant/pkg/datemath"
	"kuma-assistant/pkg/launcher"
	"kuma-assistant/pkg/log"
	"kuma-assistant/pkg/weather"
)

var errStore = errors.New("disk full")

// fixedNow is Wednesday, May 1 2024, 15:04 UTC.
var fixedNow = time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)

type mockMemoryRepo struct {
	mu      sync.Mutex
	entries []model.MemoryEntry
	err     error
}

func (m *mockMemoryRepo) Load(ctx context.Context) ([]model.MemoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.MemoryEntry{}, m.entries...), m.err
}

func (m *mockMemoryRepo) Save(ctx context.Context, entries []model.MemoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append([]model.MemoryEntry{}, entries...)
	return nil
}

func (m *mockMemoryRepo) Append(ctx context.Context, entries ...model.MemoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockMemoryRepo) Recent(ctx context.Context, n int) ([]model.MemoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if n > 0 && len(m.entries) > n {
		return append([]model.MemoryEntry{}, m.entries[len(m.entries)-n:]...), nil
	}
	return append([]model.MemoryEntry{}, m.entries...), nil
}

func (m *mockMemoryRepo) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return m.err
}

type mockTaskRepo struct {
	tasks []model.TaskEntry
	err   error
}

func (m *mockTaskRepo) Load(ctx context.Context) ([]model.TaskEntry, error) { return m.tasks, m.err }

func (m *mockTaskRepo) Save(ctx context.Context, entries []model.TaskEntry) error {
	m.tasks = entries
	return m.err
}

func (m *mockTaskRepo) Append(ctx context.Context, entries ...model.TaskEntry) error {
	if m.err != nil {
		return m.err
	}
	m.tasks = append(m.tasks, entries...)
	return nil
}

func (m *mockTaskRepo) Recent(ctx context.Context, n int) ([]model.TaskEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if n > 0 && len(m.tasks) > n {
		return m.tasks[len(m.tasks)-n:], nil
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) Clear(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.tasks = nil
	return nil
}

type mockWeather struct {
	city      string
	locErr    error
	cond      string
	condErr   error
	gotIP     string
	gotLookup string
}

func (m *mockWeather) Locate(ctx context.Context, ipHint string) (weather.Location, error) {
	m.gotIP = ipHint
	return weather.Location{City: m.city}, m.locErr
}

func (m *mockWeather) Conditions(ctx context.Context, city string) (string, error) {
	m.gotLookup = city
	return m.cond, m.condErr
}

type launched struct {
	kind   launcher.Kind
	target string
}

type mockLauncher struct{ calls []launched }

func (m *mockLauncher) OpenApp(ctx context.Context, name string) {
	m.calls = append(m.calls, launched{launcher.KindApp, name})
}

func (m *mockLauncher) OpenFolder(ctx context.Context, path string) {
	m.calls = append(m.calls, launched{launcher.KindFolder, path})
}

func (m *mockLauncher) OpenURL(ctx context.Context, url string) {
	m.calls = append(m.calls, launched{launcher.KindURL, url})
}

type fixture struct {
	router   intent.Router
	memory   *mockMemoryRepo
	tasks    *mockTaskRepo
	weather  *mockWeather
	launcher *mockLauncher
}

func newFixture(opts ...func(*Options)) *fixture {
	f := &fixture{
		memory:   &mockMemoryRepo{},
		tasks:    &mockTaskRepo{},
		weather:  &mockWeather{city: "Hanoi", cond: "Sunny +31°C"},
		launcher: &mockLauncher{},
	}

	dm, _ := datemath.NewParser("UTC")
	opt := Options{
		Now:  func() time.Time { return fixedNow },
		Pick: func(n int) int { return 0 },
	}
	for _, o := range opts {
		o(&opt)
	}

	f.router = New(log.NewNop(), f.memory, f.tasks, f.weather, f.launcher, dm, opt)
	return f
}
