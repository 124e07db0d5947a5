// Package app holds the per-identity store shared by the CLI, the TUI and the
// MCP server. Every screen goes through it to read and mutate AppData.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/logging"
	"tableflip.dev/academia/pkg/store"
)

// ErrNotLoaded is returned by mutations made before the aggregate for the
// current identity has been loaded. Nothing is written in that case.
var ErrNotLoaded = errors.New("app: data not loaded")

const (
	keyPrefix = "app-data-"
	guestKey  = keyPrefix + "guest"
)

// KeyFor returns the medium key holding id's aggregate.
func KeyFor(id *identity.Identity) string {
	if id == nil || id.UID == "" {
		return guestKey
	}
	return keyPrefix + id.UID
}

// Store keeps exactly one AppData aggregate in memory, selected by the
// current identity, and writes the whole aggregate back on every mutation.
type Store struct {
	Medium store.Medium
	Logger *zap.Logger

	mu       sync.Mutex
	loaded   bool
	degraded bool
	identity *identity.Identity
	key      string
	data     appdata.AppData
}

// New returns a Store over m. No aggregate is active until SetIdentity runs.
func New(m store.Medium, logger *zap.Logger) *Store {
	return &Store{
		Medium: m,
		Logger: logging.OrNop(logger),
		key:    guestKey,
		data:   appdata.Default(),
	}
}

// SetIdentity discards the in-memory aggregate and loads the one stored for
// id. It never fails: unreadable or unparseable records fall back to
// defaults. Calling it with the identity that is already loaded is a no-op.
func (s *Store) SetIdentity(id *identity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && identity.Same(s.identity, id) {
		return
	}
	s.loaded = false
	s.identity = id
	s.key = KeyFor(id)
	s.data, s.degraded = s.load(s.key)
	s.loaded = true
}

// Reload re-reads the current identity's aggregate from the medium.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.degraded = s.load(s.key)
	s.loaded = true
}

func (s *Store) load(key string) (appdata.AppData, bool) {
	log := s.log().With(zap.String("key", key))
	if s.Medium == nil {
		log.Warn("no storage medium configured, keeping data in memory")
		return appdata.Default(), true
	}
	raw, err := s.Medium.Get(key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("no stored data, starting from defaults")
			return appdata.Default(), false
		}
		log.Warn("reading stored data failed, keeping data in memory", zap.Error(err))
		return appdata.Default(), true
	}
	d, skipped, err := appdata.Decode([]byte(raw))
	if err != nil {
		log.Warn("stored data is unparseable, starting from defaults", zap.Error(err))
		return d, false
	}
	if len(skipped) > 0 {
		log.Warn("stored fields were partly unreadable, keeping them as stored until changed", zap.Strings("fields", skipped))
	}
	log.Debug("loaded stored data")
	return d, false
}

// save writes the full aggregate. s.mu must be held.
func (s *Store) save() {
	if s.degraded || s.Medium == nil {
		return
	}
	raw, err := appdata.Encode(s.data)
	if err != nil {
		s.log().Error("encoding data failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.Medium.Set(s.key, string(raw)); err != nil {
		s.log().Error("saving data failed, continuing in memory only", zap.String("key", s.key), zap.Error(err))
		s.degraded = true
	}
}

// mutate applies fn to a copy of the aggregate, swaps it in and saves.
func (s *Store) mutate(fn func(d *appdata.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.data = next
	s.save()
	return nil
}

// Replace swaps in a whole aggregate for the current identity, as an import
// would.
func (s *Store) Replace(d appdata.AppData) error {
	return s.mutate(func(cur *appdata.AppData) error {
		*cur = d.Clone()
		return nil
	})
}

// SetField replaces one top-level field from its JSON encoding using the
// same default-filling rules as a load.
func (s *Store) SetField(name string, raw []byte) error {
	return s.mutate(func(d *appdata.AppData) error {
		return appdata.DecodeField(d, name, raw)
	})
}

// Snapshot returns a deep copy of the active aggregate.
func (s *Store) Snapshot() appdata.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Key returns the medium key of the active aggregate.
func (s *Store) Key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

// Identity returns the identity whose aggregate is active; nil is guest.
func (s *Store) Identity() *identity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Loaded reports whether the aggregate for the current identity is loaded.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Degraded reports whether writes have stopped after a storage failure.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Follow loads the aggregate for every identity change p reports, starting
// with the initial resolution. Each change is forwarded on the returned
// channel after its load completed.
func (s *Store) Follow(ctx context.Context, p identity.Provider) (<-chan identity.Change, error) {
	changes, err := p.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: follow identity: %w", err)
	}
	out := make(chan identity.Change, 1)
	go func() {
		defer close(out)
		for c := range changes {
			s.log().Info("identity changed", zap.Stringer("identity", c.Current), zap.Bool("initial", c.Initial))
			s.SetIdentity(c.Current)
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *Store) log() *zap.Logger {
	return logging.OrNop(s.Logger)
}
