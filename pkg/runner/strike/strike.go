package strike

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

// Strike deletes an item, or every completed todo when Completed is set.
type Strike struct {
	Kind      items.Kind
	ID        string
	Completed bool

	Screens *screens.Screens
	Now     time.Time
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("can not strike, no screens")
	}

	var err error
	switch {
	case n.Completed && n.Kind != items.Todo:
		return fmt.Errorf("strike: only todos can be cleared, not %ss", n.Kind)
	case n.Completed:
		err = n.Screens.Study.ClearCompleted()
	default:
		err = items.Delete(n.Screens, n.Kind, n.ID)
	}
	if err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	return items.Print(&printers.PrettyPrint{ShowID: true}, n.Screens, n.Kind, now)
}
