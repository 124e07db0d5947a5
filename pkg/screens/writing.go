package screens

import (
	"slices"
	"strings"
	"time"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
)

// Writing keeps longer pieces of text.
type Writing struct {
	Writings app.Slice[[]appdata.Writing]
	Labels   *Labels
	Clock    Clock
}

func (w *Writing) Title() string { return w.Labels.Get(appdata.LabelWritingTitle) }

func writingID(v appdata.Writing) string { return v.ID }

func (w *Writing) stamp() string { return w.Clock.now().UTC().Format(time.RFC3339) }

// Create adds a new piece. An empty title becomes "Untitled".
func (w *Writing) Create(title, content string) (appdata.Writing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	piece := appdata.Writing{ID: newID(), Title: title, Content: content, UpdatedAt: w.stamp()}
	return piece, w.Writings.Update(func(prev []appdata.Writing) []appdata.Writing {
		return append([]appdata.Writing{piece}, prev...)
	})
}

// Edit replaces the title and content of piece id.
func (w *Writing) Edit(id, title, content string) error {
	title, err := required(title)
	if err != nil {
		return err
	}
	stamp := w.stamp()
	return w.Writings.Try(func(prev []appdata.Writing) ([]appdata.Writing, error) {
		return edit(prev, writingID, id, func(v *appdata.Writing) error {
			v.Title, v.Content, v.UpdatedAt = title, content, stamp
			return nil
		})
	})
}

func (w *Writing) Delete(id string) error {
	return w.Writings.Try(func(prev []appdata.Writing) ([]appdata.Writing, error) {
		return remove(prev, writingID, id)
	})
}

// Find returns piece id.
func (w *Writing) Find(id string) (appdata.Writing, error) {
	all := w.Writings.Get()
	if i := slices.IndexFunc(all, func(v appdata.Writing) bool { return v.ID == id }); i >= 0 {
		return all[i], nil
	}
	return appdata.Writing{}, ErrNotFound
}

// List returns every piece, most recently edited first.
func (w *Writing) List() []appdata.Writing {
	all := w.Writings.Get()
	slices.SortStableFunc(all, func(a, b appdata.Writing) int { return strings.Compare(b.UpdatedAt, a.UpdatedAt) })
	return all
}

// WordCount counts whitespace separated words.
func WordCount(s string) int { return len(strings.Fields(s)) }
