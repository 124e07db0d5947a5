package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	m := store.NewMemory()
	s := app.New(m, nil)
	s.SetIdentity(nil)
	return NewService(s, screens.New(s, nil, nil), identity.NewMock(m, nil))
}

func TestServiceAddItemDefaults(t *testing.T) {
	svc := newService(t)

	created, err := svc.Add("todo", items.Fields{Text: "  Finish report "})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	todo, ok := created.(appdata.Todo)
	if !ok {
		t.Fatalf("expected a todo, got %T", created)
	}
	if todo.Text != "Finish report" || todo.Completed || todo.ID == "" {
		t.Fatalf("unexpected todo %+v", todo)
	}
}

func TestServiceCompleteItem(t *testing.T) {
	svc := newService(t)
	created, err := svc.Add("todos", items.Fields{Text: "Finish report"})
	if err != nil {
		t.Fatal(err)
	}
	id := created.(appdata.Todo).ID

	list, err := svc.Complete("todo", id[:8], items.Done{})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	todos := list.([]appdata.Todo)
	if len(todos) != 1 || !todos[0].Completed {
		t.Fatalf("expected completed todo, got %+v", todos)
	}

	if _, err := svc.Complete("exam", id, items.Done{}); !errors.Is(err, items.ErrNotCompletable) {
		t.Fatalf("want ErrNotCompletable, got %v", err)
	}
}

func TestServiceTrackWithoutTitleOnlyLoads(t *testing.T) {
	svc := newService(t)
	got, err := svc.Add("track", items.Fields{Link: "spotify:album:xyz"})
	if err != nil {
		t.Fatal(err)
	}
	st, ok := got.(Music)
	if !ok {
		t.Fatalf("expected player state, got %T", got)
	}
	if len(st.Playlist) != 0 || st.Embed != "https://open.spotify.com/embed/album/xyz?utm_source=generator" {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestServiceDataAndSetField(t *testing.T) {
	svc := newService(t)

	raw, err := svc.SetField("editableContent", json.RawMessage(`{"booksTitle":"Shelf"}`))
	if err != nil {
		t.Fatal(err)
	}
	var labels map[string]string
	if err := json.Unmarshal(raw, &labels); err != nil {
		t.Fatal(err)
	}
	if labels["booksTitle"] != "Shelf" || labels["appTitle"] != "AcademiaOS" {
		t.Fatalf("labels not back-filled: %v", labels)
	}

	if _, err := svc.Data("nope"); !errors.Is(err, appdata.ErrUnknownField) {
		t.Fatalf("want ErrUnknownField, got %v", err)
	}
}

func TestServiceLoginSwitchesNamespace(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	if _, err := svc.Add("book", items.Fields{Text: "Guest book"}); err != nil {
		t.Fatal(err)
	}

	who, err := svc.Login(ctx, "ada@example.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if who.Guest || who.Key != "app-data-mock-uid-ada@example.com" {
		t.Fatalf("unexpected identity %+v", who)
	}
	list, _ := svc.List("book")
	if n := len(list.([]appdata.Book)); n != 0 {
		t.Fatalf("new identity sees %d guest books", n)
	}

	who, err = svc.Logout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	list, _ = svc.List("book")
	if !who.Guest || len(list.([]appdata.Book)) != 1 {
		t.Fatalf("guest data not restored: %+v %v", who, list)
	}
}

func TestServiceTheme(t *testing.T) {
	svc := newService(t)
	if _, err := svc.SetTheme("neon"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	st, err := svc.SetColor(appdata.VarBgPrimary, "#000")
	if err != nil {
		t.Fatal(err)
	}
	if st.Theme != appdata.ThemeDarkAcademia {
		t.Fatalf("setting a color must not switch theme, got %q", st.Theme)
	}
	st, err = svc.SetTheme(string(appdata.ThemeCustom))
	if err != nil {
		t.Fatal(err)
	}
	if st.Palette[appdata.VarBgPrimary] != "#000000" {
		t.Fatalf("custom palette not applied: %v", st.Palette)
	}
}

func TestServiceNotConfigured(t *testing.T) {
	var svc *Service
	if _, err := svc.WhoAmI(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestArgument(t *testing.T) {
	if got := argument(map[string]any{"field": "todos"}, "field"); got != "todos" {
		t.Fatalf("got %q", got)
	}
	if got := argument(map[string]any{"field": []string{"goals"}}, "field"); got != "goals" {
		t.Fatalf("got %q", got)
	}
	if got := argument(nil, "field"); got != "" {
		t.Fatalf("got %q", got)
	}
}
