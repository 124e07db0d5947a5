// Package edit changes free-text state: the Me sections, screen labels and
// writing pieces.
package edit

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

// Me sets one reflection section, or shows them all when Field is empty.
type Me struct {
	Field string
	Value string
	Clear bool

	Screens *screens.Screens
	Out     io.Writer
	Width   int
}

func (n *Me) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("edit: no screens")
	}
	me := n.Screens.Me
	switch {
	case n.Clear:
		if err := me.Clear(); err != nil {
			return err
		}
	case n.Field != "":
		if err := me.SetField(n.Field, n.Value); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Out: n.Out, Width: n.Width}
	_, _ = color.New(color.Bold, color.FgHiYellow).Fprintln(out(n.Out), me.Title())
	_, _ = color.New(color.Italic).Fprintln(out(n.Out), me.Subtitle())
	pp.NewLine()
	pp.Me(me.Sections(), me.Get())
	return nil
}

// Label renames a heading, resets them all, or lists them.
type Label struct {
	Key   string
	Value string
	Reset bool

	Screens *screens.Screens
	Out     io.Writer
}

func (n *Label) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("edit: no screens")
	}
	labels := n.Screens.Labels
	switch {
	case n.Reset:
		if err := labels.Reset(); err != nil {
			return err
		}
	case n.Key != "":
		if err := labels.Set(n.Key, n.Value); err != nil {
			return err
		}
	}

	rows := make([][2]string, 0, len(appdata.LabelKeys))
	for _, k := range appdata.LabelKeys {
		rows = append(rows, [2]string{k, labels.Get(k)})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Table("Label", "Text", rows)
	return nil
}

// Writing replaces a piece's title and/or body. Nil fields keep their
// current value.
type Writing struct {
	ID      string
	Title   *string
	Content *string

	Screens *screens.Screens
	Out     io.Writer
	Width   int
}

func (n *Writing) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("edit: no screens")
	}
	w := n.Screens.Writing
	id, err := items.Resolve(n.Screens, items.Writing, n.ID)
	if err != nil {
		return err
	}
	cur, err := w.Find(id)
	if err != nil {
		return err
	}
	title, content := cur.Title, cur.Content
	if n.Title != nil {
		title = *n.Title
	}
	if n.Content != nil {
		content = *n.Content
	}
	if err := w.Edit(id, title, content); err != nil {
		return err
	}
	if cur, err = w.Find(id); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Width: n.Width}
	if err := pp.Writing(cur); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(out(n.Out), "%d words\n", screens.WordCount(cur.Content))
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

