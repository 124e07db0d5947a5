package learn

import (
	"context"
	"errors"
	"fmt"
	"io"

	ailearn "tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/screens"
)

// Learn asks the AI collaborator about a topic, or for the current events
// digest, and prints articles and videos. With no topic it lists the
// external study sites.
type Learn struct {
	Topic         string
	CurrentEvents bool

	Screens *screens.Screens
	Out     io.Writer
	Width   int
}

func (n *Learn) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("learn: no screens")
	}
	l := n.Screens.Learn
	pp := printers.PrettyPrint{Out: n.Out, Width: n.Width}

	if n.Topic == "" && !n.CurrentEvents {
		pp.Title(l.Title())
		pp.Sites(l.Sites()...)
		return nil
	}

	var st screens.LearnState
	if n.CurrentEvents {
		pp.Title("Current events")
		st = l.CurrentEvents(ctx)
	} else {
		pp.Title(n.Topic)
		st = l.Search(ctx, n.Topic)
	}
	if st.Err != nil {
		return Explain(st.Err)
	}
	pp.Learn(st.Result)
	return nil
}

// Explain turns a query error into a message a user can act on. The
// original error stays in the chain.
func Explain(err error) error {
	switch {
	case errors.Is(err, ailearn.ErrMissingCredential), errors.Is(err, screens.ErrLearnUnavailable):
		return fmt.Errorf("no API key configured; set ACADEMIA_API_KEY or GEMINI_API_KEY: %w", err)
	case errors.Is(err, ailearn.ErrInvalidCredential):
		return fmt.Errorf("the configured API key was rejected: %w", err)
	case errors.Is(err, ailearn.ErrMalformedResponse):
		return fmt.Errorf("the answer could not be read, try again: %w", err)
	case errors.Is(err, screens.ErrEmpty):
		return fmt.Errorf("enter a topic to search: %w", err)
	}
	return fmt.Errorf("search failed, try again later: %w", err)
}

