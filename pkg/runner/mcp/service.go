// Package mcp provides the Model Context Protocol server integration for
// academia.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/embed"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/runner/appearance"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/theme"
)

// Service coordinates the store-backed operations exposed by the MCP
// server. Every call acts on whichever identity is active when it runs.
type Service struct {
	Store    *app.Store
	Screens  *screens.Screens
	Identity identity.Provider
}

// ErrNotConfigured is returned when the service was built without a store.
var ErrNotConfigured = errors.New("mcp: store is not configured")

// NewService builds a service over s and its screens.
func NewService(s *app.Store, sc *screens.Screens, p identity.Provider) *Service {
	return &Service{Store: s, Screens: sc, Identity: p}
}

func (s *Service) ready() error {
	if s == nil || s.Store == nil || s.Screens == nil {
		return ErrNotConfigured
	}
	return nil
}

// WhoAmI describes the active identity and namespace.
type WhoAmI struct {
	Guest    bool   `json:"guest"`
	Email    string `json:"email,omitempty"`
	UID      string `json:"uid,omitempty"`
	Key      string `json:"key"`
	Degraded bool   `json:"degraded"`
}

// WhoAmI reports the active identity.
func (s *Service) WhoAmI() (WhoAmI, error) {
	if err := s.ready(); err != nil {
		return WhoAmI{}, err
	}
	id := s.Store.Identity()
	out := WhoAmI{Guest: id == nil, Key: s.Store.Key(), Degraded: s.Store.Degraded()}
	if id != nil {
		out.Email, out.UID = id.Email, id.UID
	}
	return out, nil
}

// Login signs in and switches the store to the new namespace.
func (s *Service) Login(ctx context.Context, email, password string) (WhoAmI, error) {
	if err := s.ready(); err != nil {
		return WhoAmI{}, err
	}
	if s.Identity == nil {
		return WhoAmI{}, errors.New("mcp: identity provider is not configured")
	}
	id, err := s.Identity.Login(ctx, email, password)
	if err != nil {
		return WhoAmI{}, err
	}
	s.Store.SetIdentity(id)
	return s.WhoAmI()
}

// Logout signs out and switches the store to the guest namespace.
func (s *Service) Logout(ctx context.Context) (WhoAmI, error) {
	if err := s.ready(); err != nil {
		return WhoAmI{}, err
	}
	if s.Identity == nil {
		return WhoAmI{}, errors.New("mcp: identity provider is not configured")
	}
	if err := s.Identity.Logout(ctx); err != nil {
		return WhoAmI{}, err
	}
	s.Store.SetIdentity(nil)
	return s.WhoAmI()
}

// Data returns the whole aggregate, or one top-level field of it, as JSON.
func (s *Service) Data(field string) (json.RawMessage, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	raw, err := appdata.Encode(s.Store.Snapshot())
	if err != nil {
		return nil, err
	}
	if field == "" {
		return raw, nil
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, err
	}
	v, ok := top[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", appdata.ErrUnknownField, field)
	}
	return v, nil
}

// SetField replaces one top-level field from JSON and returns its new value.
func (s *Service) SetField(field string, raw json.RawMessage) (json.RawMessage, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.Store.SetField(field, raw); err != nil {
		return nil, err
	}
	return s.Data(field)
}

// Summary returns the dashboard snapshot.
func (s *Service) Summary() (screens.Summary, error) {
	if err := s.ready(); err != nil {
		return screens.Summary{}, err
	}
	return s.Screens.Dashboard.Summary(), nil
}

// List returns every item of kind.
func (s *Service) List(kind string) (any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := items.Parse(kind)
	if err != nil {
		return nil, err
	}
	return items.List(s.Screens, k)
}

// Add creates an item of kind.
func (s *Service) Add(kind string, f items.Fields) (any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := items.Parse(kind)
	if err != nil {
		return nil, err
	}
	created, err := items.Add(s.Screens, k, f)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return s.MusicState(), nil
	}
	return created, nil
}

// Complete marks item id of kind done and returns the updated list.
func (s *Service) Complete(kind, id string, d items.Done) (any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := items.Parse(kind)
	if err != nil {
		return nil, err
	}
	if err := items.Complete(s.Screens, k, id, d); err != nil {
		return nil, err
	}
	return items.List(s.Screens, k)
}

// Delete removes item id of kind and returns the remaining list.
func (s *Service) Delete(kind, id string) (any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := items.Parse(kind)
	if err != nil {
		return nil, err
	}
	if err := items.Delete(s.Screens, k, id); err != nil {
		return nil, err
	}
	return items.List(s.Screens, k)
}

// EditWriting replaces a piece's title and body.
func (s *Service) EditWriting(id, title, content string) (appdata.Writing, error) {
	if err := s.ready(); err != nil {
		return appdata.Writing{}, err
	}
	full, err := items.Resolve(s.Screens, items.Writing, id)
	if err != nil {
		return appdata.Writing{}, err
	}
	if err := s.Screens.Writing.Edit(full, title, content); err != nil {
		return appdata.Writing{}, err
	}
	return s.Screens.Writing.Find(full)
}

// UpdateMe sets one reflection section.
func (s *Service) UpdateMe(field, value string) (appdata.MeData, error) {
	if err := s.ready(); err != nil {
		return appdata.MeData{}, err
	}
	if err := s.Screens.Me.SetField(field, value); err != nil {
		return appdata.MeData{}, err
	}
	return s.Screens.Me.Get(), nil
}

// SetLabel renames one heading.
func (s *Service) SetLabel(key, value string) (appdata.EditableContent, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.Screens.Labels.Set(key, value); err != nil {
		return nil, err
	}
	return s.Store.EditableContent().Get(), nil
}

// ThemeState is the effective look.
type ThemeState struct {
	Theme   appdata.Theme     `json:"theme"`
	Name    string            `json:"name"`
	Palette map[string]string `json:"palette"`
	CSS     string            `json:"css"`
}

// Theme reports the active theme with its resolved palette.
func (s *Service) Theme() (ThemeState, error) {
	if err := s.ready(); err != nil {
		return ThemeState{}, err
	}
	doc := appearance.Document(s.Store)
	id := s.Store.Theme().Get()
	return ThemeState{Theme: id, Name: theme.Names[id], Palette: doc.Resolved(), CSS: doc.CSS()}, nil
}

// SetTheme selects a theme id.
func (s *Service) SetTheme(id string) (ThemeState, error) {
	if err := s.ready(); err != nil {
		return ThemeState{}, err
	}
	t := appdata.Theme(id)
	if !t.Valid() {
		return ThemeState{}, fmt.Errorf("%w: %q", appearance.ErrUnknownTheme, id)
	}
	if err := s.Store.Theme().Set(t); err != nil {
		return ThemeState{}, err
	}
	return s.Theme()
}

// SetColor changes one custom palette variable.
func (s *Service) SetColor(name, value string) (ThemeState, error) {
	if err := s.ready(); err != nil {
		return ThemeState{}, err
	}
	if err := appearance.SetColors(s.Store, appearance.Color{Name: name, Value: value}); err != nil {
		return ThemeState{}, err
	}
	return s.Theme()
}

// Music is the player state.
type Music struct {
	Current  string                 `json:"current"`
	Embed    string                 `json:"embed,omitempty"`
	Playlist []appdata.PlaylistItem `json:"playlist"`
}

// MusicState reports what is loaded and the playlist.
func (s *Service) MusicState() Music {
	m := s.Screens.Music
	current := m.Current.Get()
	url, _ := embed.Music(current)
	return Music{Current: current, Embed: url, Playlist: m.Playlist.Get()}
}

// LoadMusic puts link in the player.
func (s *Service) LoadMusic(link string) (Music, error) {
	if err := s.ready(); err != nil {
		return Music{}, err
	}
	if err := s.Screens.Music.Load(link); err != nil {
		return Music{}, err
	}
	return s.MusicState(), nil
}

// PlayMusic loads playlist item id.
func (s *Service) PlayMusic(id string) (Music, error) {
	if err := s.ready(); err != nil {
		return Music{}, err
	}
	full, err := items.Resolve(s.Screens, items.Track, id)
	if err != nil {
		return Music{}, err
	}
	if err := s.Screens.Music.Play(full); err != nil {
		return Music{}, err
	}
	return s.MusicState(), nil
}

// Learn runs a search, or the current events digest when topic is empty
// and currentEvents is set.
func (s *Service) Learn(ctx context.Context, topic string, currentEvents bool) (*learn.Result, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var st screens.LearnState
	if currentEvents {
		st = s.Screens.Learn.CurrentEvents(ctx)
	} else {
		st = s.Screens.Learn.Search(ctx, topic)
	}
	if st.Err != nil {
		return nil, st.Err
	}
	return st.Result, nil
}
