package items

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

func init() {
	color.NoColor = true
}

func newScreens(t *testing.T) *screens.Screens {
	t.Helper()
	s := app.New(store.NewMemory(), nil)
	s.SetIdentity(nil)
	return screens.New(s, nil, nil)
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Kind
		wantErr bool
	}{
		"singular": {in: "todo", want: Todo},
		"plural":   {in: "Books", want: Book},
		"spaces":   {in: " track ", want: Track},
		"unknown":  {in: "widgets", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("want ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("Parse(%q) = %q, %v", tc.in, got, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	s := newScreens(t)
	err := s.Study.Todos.Set([]appdata.Todo{
		{ID: "abc-1", Text: "one"},
		{ID: "abd-2", Text: "two"},
		{ID: "ab", Text: "exact"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if id, err := Resolve(s, Todo, "abc"); err != nil || id != "abc-1" {
		t.Fatalf("got %q, %v", id, err)
	}
	if id, err := Resolve(s, Todo, "ab"); err != nil || id != "ab" {
		t.Fatalf("exact match should win, got %q, %v", id, err)
	}
	if _, err := Resolve(s, Todo, "a"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("want ErrAmbiguous, got %v", err)
	}
	if _, err := Resolve(s, Todo, "zz"); !errors.Is(err, screens.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := Resolve(s, Todo, " "); !errors.Is(err, screens.ErrNotFound) {
		t.Fatalf("want ErrNotFound for empty id, got %v", err)
	}
	if _, err := Resolve(s, Kind("nope"), "a"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("want ErrUnknownKind, got %v", err)
	}
}

func TestPrintEveryKind(t *testing.T) {
	s := newScreens(t)
	if _, err := s.Books.Add("Middlemarch", "George Eliot"); err != nil {
		t.Fatal(err)
	}
	for _, k := range Kinds {
		var buf bytes.Buffer
		if err := Print(&printers.PrettyPrint{Out: &buf}, s, k, time.Now()); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s printed nothing", k)
		}
	}

	var buf bytes.Buffer
	_ = Print(&printers.PrettyPrint{Out: &buf}, s, Book, time.Now())
	if !strings.Contains(buf.String(), "Middlemarch") || !strings.Contains(buf.String(), "1 book") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
