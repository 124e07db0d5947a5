// Package router tracks which screen is showing.
package router

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// View identifies one screen.
type View string

const (
	Dashboard View = "Dashboard"
	Study     View = "Study"
	Writing   View = "Writing"
	Books     View = "Books"
	Learn     View = "Learn"
	Pomodoro  View = "Pomodoro"
	Journal   View = "Journal"
	Me        View = "Me"
	Music     View = "Music"
)

// Views lists every view in navigation order.
var Views = []View{Dashboard, Study, Writing, Books, Learn, Pomodoro, Journal, Me, Music}

// Lookup resolves a possibly abbreviated or misspelled view name. Names that
// match nothing resolve to Dashboard.
func Lookup(name string) View {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dashboard
	}
	targets := make([]string, len(Views))
	for i, v := range Views {
		if strings.EqualFold(string(v), name) {
			return v
		}
		targets[i] = strings.ToLower(string(v))
	}
	matches := fuzzy.Find(strings.ToLower(name), targets)
	if len(matches) == 0 {
		return Dashboard
	}
	return Views[matches[0].Index]
}

// Router holds the current view. The zero value shows Dashboard. Selection
// is session state and is never persisted.
type Router struct {
	current View
}

// Current returns the selected view.
func (r *Router) Current() View {
	if r.current == "" {
		return Dashboard
	}
	return r.current
}

// Set selects v. Unknown views select Dashboard.
func (r *Router) Set(v View) {
	if index(v) < 0 {
		v = Dashboard
	}
	r.current = v
}

// Next selects the following view, wrapping around.
func (r *Router) Next() View {
	r.current = Views[(index(r.Current())+1)%len(Views)]
	return r.current
}

// Prev selects the preceding view, wrapping around.
func (r *Router) Prev() View {
	r.current = Views[(index(r.Current())+len(Views)-1)%len(Views)]
	return r.current
}

func index(v View) int {
	for i, known := range Views {
		if known == v {
			return i
		}
	}
	return -1
}
