package edit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

func init() {
	color.NoColor = true
}

func newScreens(t *testing.T) *screens.Screens {
	t.Helper()
	st := app.New(store.NewMemory(), nil)
	st.SetIdentity(nil)
	return screens.New(st, nil, nil)
}

func TestMe(t *testing.T) {
	s := newScreens(t)
	var buf bytes.Buffer
	n := &Me{Field: "vision", Value: "teach latin", Screens: s, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Me.Get().Vision != "teach latin" || !strings.Contains(buf.String(), "teach latin") {
		t.Fatalf("vision not saved: %+v", s.Me.Get())
	}

	n = &Me{Field: "hobbies", Value: "x", Screens: s, Out: &buf}
	if err := n.Do(context.Background()); !errors.Is(err, screens.ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	s := newScreens(t)
	var buf bytes.Buffer
	if err := (&Label{Key: appdata.LabelBooksTitle, Value: "Shelf", Screens: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Books.Title() != "Shelf" || !strings.Contains(buf.String(), "Shelf") {
		t.Fatalf("label not applied, title = %q", s.Books.Title())
	}
	if err := (&Label{Reset: true, Screens: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Books.Title() != "Reading List" {
		t.Fatalf("reset failed, title = %q", s.Books.Title())
	}
}

func TestWritingKeepsUnsetFields(t *testing.T) {
	s := newScreens(t)
	w, err := s.Writing.Create("Essay", "first draft")
	if err != nil {
		t.Fatal(err)
	}
	body := "second draft"
	n := &Writing{ID: w.ID[:8], Content: &body, Screens: s, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Writing.Find(w.ID)
	if got.Title != "Essay" || got.Content != "second draft" {
		t.Fatalf("got %+v", got)
	}
}
