// Package store provides the string-valued key-value medium that every
// identity namespace and the session record are persisted to.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or was
// removed.
var ErrNotFound = errors.New("store: key not found")

// Medium is a synchronous key-value store holding string values. It is the
// only persistence contract the rest of academia depends on.
type Medium interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Keys(ctx context.Context) []string
}

// Watcher is implemented by media that can report writes made by other
// processes. Events carry the key that changed.
type Watcher interface {
	Watch(ctx context.Context, keys ...string) (<-chan Event, error)
}

// Event is emitted by Watcher.Watch when a watched key changes on disk.
type Event struct {
	Key string
}

// Config supplies the location of the on-disk medium.
type Config interface {
	BasePath() string
}

// MemoryPath selects the in-memory medium instead of a directory.
const MemoryPath = ":memory:"

// Load creates the Medium described by cfg: a diskv directory, or an
// in-memory map when the base path is MemoryPath.
func Load(cfg Config) (Medium, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	switch basePath {
	case "":
		return nil, errors.New("store: base path unknown")
	case MemoryPath:
		return NewMemory(), nil
	}
	return NewDisk(basePath), nil
}
