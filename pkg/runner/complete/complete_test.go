package complete

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/runner/add"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/runner/strike"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

func init() {
	color.NoColor = true
}

var today = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newScreens(t *testing.T) *screens.Screens {
	t.Helper()
	st := app.New(store.NewMemory(), nil)
	st.SetIdentity(nil)
	return screens.New(st, nil, func() time.Time { return today })
}

func TestAddCompleteStrike(t *testing.T) {
	ctx := context.Background()
	s := newScreens(t)

	if err := (&add.Add{Kind: items.Todo, Fields: items.Fields{Text: "outline chapter"}, Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	todo := s.Study.Todos.Get()[0]

	if err := (&Complete{Kind: items.Todo, ID: todo.ID[:6], Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if !s.Study.Todos.Get()[0].Completed {
		t.Fatal("todo not completed")
	}

	if err := (&strike.Strike{Kind: items.Todo, Completed: true, Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Study.Todos.Get()); n != 0 {
		t.Fatalf("%d todos left after clearing completed", n)
	}
}

func TestCompleteKinds(t *testing.T) {
	ctx := context.Background()
	s := newScreens(t)

	h, _ := s.Study.AddHabit("latin vocab")
	if err := (&Complete{Kind: items.Habit, ID: h.ID, Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if got := s.Study.Habits.Get()[0].CompletedDates; len(got) != 1 || got[0] != "2025-03-10" {
		t.Fatalf("check-in dates = %v", got)
	}

	g, _ := s.Study.AddGoal("thesis", "")
	half := 50
	if err := (&Complete{Kind: items.Goal, ID: g.ID, Done: items.Done{Progress: &half}, Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Study.Goals.Get()[0].Progress != 50 {
		t.Fatalf("progress = %d", s.Study.Goals.Get()[0].Progress)
	}

	b, _ := s.Books.Add("Ulysses", "Joyce")
	if err := (&Complete{Kind: items.Book, ID: b.ID, Screens: s, Now: today}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Books.Books.Get()[0].Status != appdata.BookFinished {
		t.Fatalf("status = %q", s.Books.Books.Get()[0].Status)
	}

	e, _ := s.Journal.Add("rainy day")
	if err := (&Complete{Kind: items.Journal, ID: e.ID, Screens: s}).Do(ctx); !errors.Is(err, items.ErrNotCompletable) {
		t.Fatalf("want ErrNotCompletable, got %v", err)
	}
}

func TestStrikeUnknownID(t *testing.T) {
	s := newScreens(t)
	err := (&strike.Strike{Kind: items.Exam, ID: "missing", Screens: s}).Do(context.Background())
	if !errors.Is(err, screens.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
