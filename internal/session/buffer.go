package session

import (
	"sync"
	"time"

	"kuma-assistant/internal/model"
)

// DefaultMaxHistory bounds a buffer when no explicit limit is given.
const DefaultMaxHistory = 12

// Buffer is the bounded, in-process window of one live conversation.
// Appends evict the oldest turns once the limit is reached.
type Buffer struct {
	mu    sync.Mutex
	turns []model.ConversationTurn
	max   int
	now   func() time.Time
}

// NewBuffer returns an empty buffer holding at most max turns.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &Buffer{max: max, now: time.Now}
}

// Append records a turn stamped with the current time, then trims to the limit.
func (b *Buffer) Append(role model.Role, content string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.turns = append(b.turns, model.ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: model.Timestamp(b.now()),
	})
	if over := len(b.turns) - b.max; over > 0 {
		b.turns = append(b.turns[:0:0], b.turns[over:]...)
	}
}

// Snapshot returns a copy of the turns in chronological order.
func (b *Buffer) Snapshot() []model.ConversationTurn {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.ConversationTurn, len(b.turns))
	copy(out, b.turns)
	return out
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.turns = nil
}

// Len reports the number of buffered turns.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.turns)
}
