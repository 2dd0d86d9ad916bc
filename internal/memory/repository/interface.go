package repository

import (
	"context"

	"kuma-assistant/internal/model"
)

// MemoryRepository is the persistent long-term memory log.
// Save truncates to the configured maximum, keeping the most recent entries.
type MemoryRepository interface {
	Load(ctx context.Context) ([]model.MemoryEntry, error)
	Save(ctx context.Context, entries []model.MemoryEntry) error
	Append(ctx context.Context, entries ...model.MemoryEntry) error
	Recent(ctx context.Context, n int) ([]model.MemoryEntry, error)
	Clear(ctx context.Context) error
}

// TaskRepository is the persistent to-do list. It is never truncated.
type TaskRepository interface {
	Load(ctx context.Context) ([]model.TaskEntry, error)
	Save(ctx context.Context, entries []model.TaskEntry) error
	Append(ctx context.Context, entries ...model.TaskEntry) error
	Recent(ctx context.Context, n int) ([]model.TaskEntry, error)
	Clear(ctx context.Context) error
}
