// Package screens implements what each dashboard screen can do. A screen is
// handed only the typed slices it owns, never the whole store, so every
// persisted change still goes through one full-aggregate write.
package screens

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/learn"
)

var (
	// ErrNotFound is returned when an id matches no item.
	ErrNotFound = errors.New("screens: item not found")
	// ErrEmpty is returned when required text is blank.
	ErrEmpty = errors.New("screens: text is required")
	// ErrInvalid is returned for values outside a field's domain.
	ErrInvalid = errors.New("screens: invalid value")
)

// DateLayout is how calendar dates are stored.
const DateLayout = "2006-01-02"

// Clock returns the current time. Screens take one so tests can pin it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func newID() string { return uuid.NewString() }

func required(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

func parseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalid, s)
	}
	return t.Format(DateLayout), nil
}

// remove deletes the item whose id matches, failing when none does.
func remove[T any](items []T, id func(T) string, want string) ([]T, error) {
	i := slices.IndexFunc(items, func(v T) bool { return id(v) == want })
	if i < 0 {
		return items, fmt.Errorf("%w: %q", ErrNotFound, want)
	}
	return slices.Delete(items, i, i+1), nil
}

// edit applies fn to the item whose id matches.
func edit[T any](items []T, id func(T) string, want string, fn func(*T) error) ([]T, error) {
	i := slices.IndexFunc(items, func(v T) bool { return id(v) == want })
	if i < 0 {
		return items, fmt.Errorf("%w: %q", ErrNotFound, want)
	}
	if err := fn(&items[i]); err != nil {
		return items, err
	}
	return items, nil
}

// Screens bundles every screen wired to one store.
type Screens struct {
	Dashboard *Dashboard
	Study     *Study
	Writing   *Writing
	Books     *Books
	Learn     *Learn
	Pomodoro  *Pomodoro
	Journal   *Journal
	Me        *Me
	Music     *Music
	Labels    *Labels
}

// New wires every screen to s. q may be nil when Learn is unavailable.
func New(s *app.Store, q learn.Querier, clock Clock) *Screens {
	labels := &Labels{Content: s.EditableContent()}
	study := &Study{
		Todos:  s.Todos(),
		Goals:  s.Goals(),
		Exams:  s.Exams(),
		Habits: s.Habits(),
		Labels: labels,
		Clock:  clock,
	}
	return &Screens{
		Dashboard: &Dashboard{Study: study, Labels: labels, Clock: clock},
		Study:     study,
		Writing:   &Writing{Writings: s.Writings(), Labels: labels, Clock: clock},
		Books:     &Books{Books: s.Books(), Labels: labels},
		Learn:     &Learn{Querier: q, Labels: labels},
		Pomodoro:  NewPomodoro(DefaultDurations),
		Journal:   &Journal{Entries: s.JournalEntries(), Labels: labels, Clock: clock},
		Me:        &Me{Data: s.MeData(), Labels: labels},
		Music:     &Music{Playlist: s.Playlist(), Current: s.SpotifyURI(), Labels: labels},
		Labels:    labels,
	}
}

// Labels edits the user-visible headings.
type Labels struct {
	Content app.Slice[appdata.EditableContent]
}

// Get returns the label for key.
func (l *Labels) Get(key string) string {
	return l.Content.Get().Label(key)
}

// Set changes the label for key. Unknown keys are rejected.
func (l *Labels) Set(key, value string) error {
	if !slices.Contains(appdata.LabelKeys, key) {
		return fmt.Errorf("%w: unknown label %q", ErrInvalid, key)
	}
	return l.Content.Update(func(prev appdata.EditableContent) appdata.EditableContent {
		if prev == nil {
			prev = appdata.DefaultEditableContent()
		}
		prev[key] = value
		return prev
	})
}

// Reset restores every label to its default text.
func (l *Labels) Reset() error {
	return l.Content.Set(appdata.DefaultEditableContent())
}
