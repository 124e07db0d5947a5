package music

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

type Action string

const (
	Load  Action = "load"
	Add   Action = "add"
	List  Action = "list"
	Play  Action = "play"
	Rm    Action = "rm"
	Embed Action = "embed"
)

// Music drives the music screen from the command line.
type Music struct {
	Action Action
	Link   string
	Title  string
	// ID is a playlist item id or unique prefix.
	ID string

	ShowID  bool
	Screens *screens.Screens
	Out     io.Writer
}

func (n *Music) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("music: no screens")
	}
	m := n.Screens.Music

	var err error
	switch n.Action {
	case Load:
		err = m.Load(n.Link)
	case Add:
		_, err = m.Add(n.Link, n.Title)
	case Play, Rm:
		var id string
		if id, err = items.Resolve(n.Screens, items.Track, n.ID); err != nil {
			return err
		}
		if n.Action == Play {
			err = m.Play(id)
		} else {
			err = m.Delete(id)
		}
	case Embed:
		return n.printEmbed()
	case List, "":
	default:
		return fmt.Errorf("music: unknown action %q", n.Action)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Title(m.Title())
	_, _ = color.New(color.Faint, color.Italic).Fprintln(n.out(), m.Subtitle())
	pp.NewLine()
	pp.Playlist(m.Current.Get(), m.Playlist.Get()...)
	return n.printEmbed()
}

func (n *Music) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Music) printEmbed() error {
	m := n.Screens.Music
	current := m.Current.Get()
	if current == "" {
		_, _ = color.New(color.Faint).Fprintln(n.out(), "nothing loaded")
		return nil
	}
	url, ok := m.Embed()
	if !ok {
		_, _ = color.New(color.FgYellow).Fprintf(n.out(), "%s has no player\n", current)
		return nil
	}
	_, _ = fmt.Fprint(n.out(), "now playing ")
	_, _ = color.New(color.FgCyan, color.Underline).Fprintln(n.out(), url)
	return nil
}
