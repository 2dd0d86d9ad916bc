package session

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultID names the session used when a request does not select one.
const DefaultID = "default"

// Options configures a Registry.
type Options struct {
	MaxHistory  int           // turns kept per session
	MaxSessions int           // live sessions kept before LRU eviction
	TTL         time.Duration // idle lifetime; > 0 starts the LRU janitor goroutine for the process lifetime
}

// Registry owns one Buffer per session id.
type Registry struct {
	mu         sync.Mutex
	sessions   *expirable.LRU[string, *Buffer]
	maxHistory int
}

// NewRegistry builds a Registry from opt, filling zero values with defaults.
func NewRegistry(opt Options) *Registry {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = 256
	}
	if opt.MaxHistory <= 0 {
		opt.MaxHistory = DefaultMaxHistory
	}
	return &Registry{
		sessions:   expirable.NewLRU[string, *Buffer](opt.MaxSessions, nil, opt.TTL),
		maxHistory: opt.MaxHistory,
	}
}

// Get returns the buffer for id, creating it on first use.
// Every Get refreshes the session's idle timer.
func (r *Registry) Get(id string) *Buffer {
	id = normalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if buf, ok := r.sessions.Get(id); ok {
		r.sessions.Add(id, buf)
		return buf
	}
	buf := NewBuffer(r.maxHistory)
	r.sessions.Add(id, buf)
	return buf
}

// Reset empties the buffer for id without dropping the session.
func (r *Registry) Reset(id string) {
	r.Get(id).Reset()
}

// Delete drops the session entirely.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions.Remove(normalizeID(id))
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultID
	}
	return id
}
