// Package complete provides the runner logic for marking items done.
package complete

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

// Complete marks an item as done; see items.Done for what that means per
// kind.
type Complete struct {
	Kind items.Kind
	ID   string
	Done items.Done

	Screens *screens.Screens
	Now     time.Time
}

// Do executes the completion for the configured item.
func (n *Complete) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("can not complete, no screens")
	}
	if err := items.Complete(n.Screens, n.Kind, n.ID, n.Done); err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	return items.Print(&printers.PrettyPrint{ShowID: true}, n.Screens, n.Kind, now)
}
