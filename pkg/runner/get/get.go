package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

// Get prints the dashboard summary, one list, or a single item.
type Get struct {
	ShowID bool
	// Kind selects a list; empty prints the dashboard.
	Kind items.Kind
	// ID selects one writing to render in full, or one habit to draw on a
	// month calendar.
	ID      string
	Screens *screens.Screens
	Now     time.Time
	Width   int
}

func (n *Get) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("can not get, no screens")
	}
	s := n.Screens
	pp := printers.PrettyPrint{ShowID: n.ShowID, Width: n.Width}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	if n.Kind == "" {
		pp.Summary(s.Dashboard.Summary())
		return nil
	}
	if n.ID == "" {
		return items.Print(&pp, s, n.Kind, now)
	}

	id, err := items.Resolve(s, n.Kind, n.ID)
	if err != nil {
		return err
	}
	switch n.Kind {
	case items.Writing:
		w, err := s.Writing.Find(id)
		if err != nil {
			return err
		}
		return pp.Writing(w)
	case items.Habit:
		for _, h := range s.Study.Habits.Get() {
			if h.ID == id {
				pp.Title(h.Name)
				pp.HabitMonth(now, h)
			}
		}
		return nil
	}
	return items.Print(&pp, s, n.Kind, now)
}
