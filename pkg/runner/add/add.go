package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

// Add creates one item and prints the list it landed in.
type Add struct {
	Kind   items.Kind
	Fields items.Fields

	ShowID  bool
	Screens *screens.Screens
	Now     time.Time
}

func (n *Add) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("can not add, no screens")
	}
	if _, err := items.Add(n.Screens, n.Kind, n.Fields); err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	return items.Print(&printers.PrettyPrint{ShowID: n.ShowID}, n.Screens, n.Kind, now)
}
