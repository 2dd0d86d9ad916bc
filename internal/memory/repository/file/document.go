package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"kuma-assistant/internal/memory/repository"
	pkgLog "kuma-assistant/pkg/log"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// document owns one JSON file holding an ordered list of T.
// All access goes through mu, so read-modify-write cycles never interleave.
type document[T any] struct {
	path string
	mu   sync.Mutex
	l    pkgLog.Logger
}

func newDocument[T any](path string, l pkgLog.Logger) (*document[T], error) {
	if path == "" {
		return nil, repository.ErrEmptyPath
	}
	return &document[T]{path: path, l: l}, nil
}

// read returns the stored entries. A missing or corrupted document reads as empty.
// Caller must hold d.mu.
func (d *document[T]) read(ctx context.Context) []T {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.l.Warnf(ctx, "store %s: read failed, treating as empty: %v", d.path, err)
		}
		return []T{}
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		d.l.Warnf(ctx, "store %s: parse failed, treating as empty: %v", d.path, err)
		return []T{}
	}
	if entries == nil {
		entries = []T{}
	}
	return entries
}

// write replaces the document through a temp file and rename.
// Caller must hold d.mu.
func (d *document[T]) write(entries []T) error {
	if entries == nil {
		entries = []T{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", repository.ErrFailedToWrite, d.path, err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", repository.ErrFailedToWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", repository.ErrFailedToWrite, err)
	}

	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write temp file: %v", repository.ErrFailedToWrite, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: chmod temp file: %v", repository.ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", repository.ErrFailedToWrite, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", repository.ErrFailedToWrite, d.path, err)
	}

	cleanup = false
	return nil
}

// tail returns a copy of the last n entries, or all of them when n <= 0 or n >= len.
func tail[T any](entries []T, n int) []T {
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]T, len(entries))
	copy(out, entries)
	return out
}
