package file

import (
	"context"

	"kuma-assistant/internal/memory/repository"
	"kuma-assistant/internal/model"
	pkgLog "kuma-assistant/pkg/log"
)

type taskRepo struct {
	doc *document[model.TaskEntry]
}

var _ repository.TaskRepository = (*taskRepo)(nil)

// NewTask returns a file-backed TaskRepository.
func NewTask(opt repository.TaskOptions, l pkgLog.Logger) (*taskRepo, error) {
	doc, err := newDocument[model.TaskEntry](opt.Path, l)
	if err != nil {
		return nil, err
	}
	return &taskRepo{doc: doc}, nil
}

func (r *taskRepo) Load(ctx context.Context) ([]model.TaskEntry, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.read(ctx), nil
}

func (r *taskRepo) Save(ctx context.Context, entries []model.TaskEntry) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.write(entries)
}

func (r *taskRepo) Append(ctx context.Context, entries ...model.TaskEntry) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	current := r.doc.read(ctx)
	return r.doc.write(append(current, entries...))
}

func (r *taskRepo) Recent(ctx context.Context, n int) ([]model.TaskEntry, error) {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return tail(r.doc.read(ctx), n), nil
}

func (r *taskRepo) Clear(ctx context.Context) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()
	return r.doc.write(nil)
}
