package file

import (
	"context"

	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/internal/model"
	pkgLog "kuma-assistant/pkg/log"
)

type memoryRepo struct {
	doc      *document[model.MemoryEntry]
	maxItems int
}

var _ repository.MemoryRepository = (*memoryRepo)(nil)

// NewMemory returns a file-backed MemoryRepository.
func NewMemory(opt repository.MemoryOptions, l pkgLog.Logger) (*memoryRepo, error) {
	doc, err := newDocument[model.MemoryEntry](opt.Path, l)
	if err != nil {
		return nil, err
	}
	if opt.MaxItems <= 0 {
		opt.MaxItems = repository.DefaultMaxMemoryItems
	}
	return &memoryRepo{doc: doc, maxItems: opt.MaxItems}, nil
}

func (r *memoryRepo) Load(ctx context.Context) ([]model.MemoryEntry, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.read(ctx), nil
}

func (r *memoryRepo) Save(ctx context.Context, entries []model.MemoryEntry) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.save(entries)
}

func (r *memoryRepo) Append(ctx context.Context, entries ...model.MemoryEntry) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	current := r.doc.read(ctx)
	return r.save(append(current, entries...))
}

func (r *memoryRepo) Recent(ctx context.Context, n int) ([]model.MemoryEntry, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return tail(r.doc.read(ctx), n), nil
}

func (r *memoryRepo) Clear(ctx context.Context) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.write(nil)
}

// save keeps only the newest maxItems entries. Caller must hold the lock.
func (r *memoryRepo) save(entries []model.MemoryEntry) error {
	return r.doc.write(tail(entries, r.maxItems))
}
