package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/store"
)

type flakyMedium struct {
	*store.Memory
	getErr error
	setErr error
	sets   int
}

func (f *flakyMedium) Get(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.Memory.Get(key)
}

func (f *flakyMedium) Set(key, value string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(key, value)
}

var alice = &identity.Identity{UID: "mock-uid-alice@example.com", Email: "alice@example.com"}
var bob = &identity.Identity{UID: "mock-uid-bob@example.com", Email: "bob@example.com"}

func TestKeyFor(t *testing.T) {
	if got := KeyFor(nil); got != "app-data-guest" {
		t.Fatalf("guest key = %q", got)
	}
	if got := KeyFor(alice); got != "app-data-mock-uid-alice@example.com" {
		t.Fatalf("alice key = %q", got)
	}
}

func TestMutationBeforeLoadNeverWrites(t *testing.T) {
	mem := &flakyMedium{Memory: store.NewMemory()}
	s := New(mem, nil)

	if err := s.Todos().Set([]appdata.Todo{{ID: "1", Text: "x"}}); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if err := s.SetField("theme", []byte(`"evergreen"`)); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if mem.sets != 0 {
		t.Fatalf("expected no writes before load, got %d", mem.sets)
	}
}

func TestLoadIsReadOnly(t *testing.T) {
	mem := &flakyMedium{Memory: store.NewMemory()}
	_ = mem.Memory.Set("app-data-guest", `{"todos":[{"id":"1","text":"keep me","completed":false}]}`)
	s := New(mem, nil)
	s.SetIdentity(nil)

	if mem.sets != 0 {
		t.Fatalf("load must not write, got %d writes", mem.sets)
	}
	raw, _ := mem.Get("app-data-guest")
	if raw != `{"todos":[{"id":"1","text":"keep me","completed":false}]}` {
		t.Fatalf("stored data was clobbered: %s", raw)
	}
	if got := s.Todos().Get(); len(got) != 1 || got[0].Text != "keep me" {
		t.Fatalf("unexpected todos %+v", got)
	}
}

func TestNamespaceIsolation(t *testing.T) {
	mem := store.NewMemory()
	s := New(mem, nil)

	s.SetIdentity(alice)
	if err := s.Todos().Set([]appdata.Todo{{ID: "a", Text: "alice's"}}); err != nil {
		t.Fatal(err)
	}

	s.SetIdentity(bob)
	if got := s.Todos().Get(); len(got) != 0 {
		t.Fatalf("bob should not see alice's todos: %+v", got)
	}
	if err := s.Todos().Set([]appdata.Todo{{ID: "b", Text: "bob's"}}); err != nil {
		t.Fatal(err)
	}

	s.SetIdentity(alice)
	got := s.Todos().Get()
	if len(got) != 1 || got[0].Text != "alice's" {
		t.Fatalf("alice's namespace changed: %+v", got)
	}
	if _, err := mem.Get("app-data-mock-uid-bob@example.com"); err != nil {
		t.Fatalf("bob's namespace should persist: %v", err)
	}
}

func TestLoadSaveLoadIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set("app-data-guest", `{"theme":"midnight-dusk","editableContent":{"appTitle":"Mine"},"future":{"x":1}}`)

	first := New(mem, nil)
	first.SetIdentity(nil)
	if err := first.Theme().Set(first.Theme().Get()); err != nil {
		t.Fatal(err)
	}
	saved, _ := mem.Get("app-data-guest")

	second := New(mem, nil)
	second.SetIdentity(nil)
	if diff := cmp.Diff(first.Snapshot(), second.Snapshot()); diff != "" {
		t.Fatalf("reload differs (-first +second):\n%s", diff)
	}
	if err := second.Theme().Set(second.Theme().Get()); err != nil {
		t.Fatal(err)
	}
	resaved, _ := mem.Get("app-data-guest")
	if saved != resaved {
		t.Fatalf("second save differs:\n%s\n%s", saved, resaved)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resaved), &top); err != nil {
		t.Fatal(err)
	}
	if string(top["future"]) != `{"x":1}` {
		t.Fatalf("unknown key was not preserved: %s", top["future"])
	}
}

func TestEditableContentBackfill(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set("app-data-guest", `{"editableContent":{"appTitle":"X"}}`)
	s := New(mem, nil)
	s.SetIdentity(nil)

	labels := s.EditableContent().Get()
	if labels[appdata.LabelAppTitle] != "X" {
		t.Fatalf("appTitle = %q", labels[appdata.LabelAppTitle])
	}
	if labels[appdata.LabelMusicTitle] != "Music Hub" {
		t.Fatalf("musicTitle = %q", labels[appdata.LabelMusicTitle])
	}
	if len(labels) != len(appdata.LabelKeys) {
		t.Fatalf("expected %d labels, got %d", len(appdata.LabelKeys), len(labels))
	}
}

func TestUnparseableFallsBackToDefaults(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set("app-data-guest", "{oops")
	s := New(mem, nil)
	s.SetIdentity(nil)

	if diff := cmp.Diff(appdata.Default(), s.Snapshot()); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
	if s.Degraded() {
		t.Fatal("an unparseable record should not stop writes")
	}
}

func TestUnrelatedSaveKeepsPartlyUnreadableData(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set("app-data-guest", `{"todos":[{"id":"1","text":"keep"},{"id":2,"text":"bad id"}],`+
		`"editableContent":{"appTitle":"Mine","musicTitle":7}}`)
	s := New(mem, nil)
	s.SetIdentity(nil)

	if got := s.Todos().Get(); len(got) != 1 || got[0].Text != "keep" {
		t.Fatalf("readable todo lost on load: %+v", got)
	}
	if got := s.EditableContent().Get().Label(appdata.LabelAppTitle); got != "Mine" {
		t.Fatalf("stored title lost on load: %q", got)
	}

	if err := s.Theme().Set(appdata.ThemeEvergreen); err != nil {
		t.Fatal(err)
	}
	raw, err := mem.Get("app-data-guest")
	if err != nil {
		t.Fatal(err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		t.Fatal(err)
	}
	if got := string(top["todos"]); got != `[{"id":"1","text":"keep"},{"id":2,"text":"bad id"}]` {
		t.Fatalf("stored todos overwritten: %s", got)
	}
	if got := string(top["editableContent"]); got != `{"appTitle":"Mine","musicTitle":7}` {
		t.Fatalf("stored labels overwritten: %s", got)
	}

	s.Reload()
	if got := s.Theme().Get(); got != appdata.ThemeEvergreen {
		t.Fatalf("theme not saved: %s", got)
	}
	if got := s.EditableContent().Get().Label(appdata.LabelAppTitle); got != "Mine" {
		t.Fatalf("stored title lost after reload: %q", got)
	}

	if err := s.Todos().Update(func(prev []appdata.Todo) []appdata.Todo {
		return append(prev, appdata.Todo{ID: "3", Text: "new"})
	}); err != nil {
		t.Fatal(err)
	}
	raw, _ = mem.Get("app-data-guest")
	d, skipped, err := appdata.Decode([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Todos) != 2 || d.Todos[0].Text != "keep" || d.Todos[1].Text != "new" {
		t.Fatalf("edited todos = %+v", d.Todos)
	}
	if diff := cmp.Diff([]string{"editableContent"}, skipped); diff != "" {
		t.Fatalf("only the untouched field should stay unreadable (-want +got):\n%s", diff)
	}
}

func TestFailedWriteDegradesToMemory(t *testing.T) {
	mem := &flakyMedium{Memory: store.NewMemory(), setErr: errors.New("quota exceeded")}
	s := New(mem, nil)
	s.SetIdentity(nil)

	if err := s.Todos().Set([]appdata.Todo{{ID: "1", Text: "first"}}); err != nil {
		t.Fatalf("storage errors must not reach callers: %v", err)
	}
	if !s.Degraded() {
		t.Fatal("expected degraded after failed write")
	}
	if err := s.Todos().Update(func(prev []appdata.Todo) []appdata.Todo {
		return append(prev, appdata.Todo{ID: "2", Text: "second"})
	}); err != nil {
		t.Fatal(err)
	}
	if mem.sets != 1 {
		t.Fatalf("writes should not be retried, got %d", mem.sets)
	}
	if got := s.Todos().Get(); len(got) != 2 {
		t.Fatalf("in-memory state lost: %+v", got)
	}
}

func TestUnreadableMediumDegrades(t *testing.T) {
	mem := &flakyMedium{Memory: store.NewMemory(), getErr: errors.New("storage disabled")}
	s := New(mem, nil)
	s.SetIdentity(nil)

	if !s.Degraded() {
		t.Fatal("expected degraded after failed read")
	}
	if err := s.Theme().Set(appdata.ThemeEvergreen); err != nil {
		t.Fatal(err)
	}
	if mem.sets != 0 {
		t.Fatalf("degraded store should not write, got %d", mem.sets)
	}
}

func TestUpdaterSeesPreviousValue(t *testing.T) {
	s := New(store.NewMemory(), nil)
	s.SetIdentity(nil)

	for i := 0; i < 3; i++ {
		if err := s.Goals().Update(func(prev []appdata.Goal) []appdata.Goal {
			return append(prev, appdata.Goal{ID: string(rune('a' + len(prev)))})
		}); err != nil {
			t.Fatal(err)
		}
	}
	got := s.Goals().Get()
	if len(got) != 3 || got[2].ID != "c" {
		t.Fatalf("unexpected goals %+v", got)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := New(store.NewMemory(), nil)
	s.SetIdentity(nil)
	_ = s.Todos().Set([]appdata.Todo{{ID: "1", Text: "orig"}})

	got := s.Todos().Get()
	got[0].Text = "changed"
	if s.Todos().Get()[0].Text != "orig" {
		t.Fatal("Get must not alias the store")
	}
}

func TestSetField(t *testing.T) {
	mem := store.NewMemory()
	s := New(mem, nil)
	s.SetIdentity(nil)

	if err := s.SetField("customColors", []byte(`{"--bg-primary":"#000000"}`)); err != nil {
		t.Fatal(err)
	}
	colors := s.CustomColors().Get()
	if colors[appdata.VarBgPrimary] != "#000000" || colors[appdata.VarTextHeader] != "#fde68a" {
		t.Fatalf("unexpected colors %+v", colors)
	}
	if err := s.SetField("nope", []byte(`1`)); !errors.Is(err, appdata.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := s.SetField("todos", []byte(`"not a list"`)); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestGuestLoginLogoutScenario(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mem := store.NewMemory()
	provider := identity.NewMock(mem, nil)
	s := New(mem, nil)

	changes, err := s.Follow(ctx, provider)
	if err != nil {
		t.Fatal(err)
	}
	wait(t, changes)
	if s.Key() != "app-data-guest" {
		t.Fatalf("expected guest key, got %q", s.Key())
	}
	if err := s.Todos().Set([]appdata.Todo{{ID: "g", Text: "guest task"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Theme().Set(appdata.ThemeCustom); err != nil {
		t.Fatal(err)
	}
	if err := s.CustomColors().Update(func(prev appdata.CustomColors) appdata.CustomColors {
		prev[appdata.VarAccentPrimary] = "#ff0000"
		return prev
	}); err != nil {
		t.Fatal(err)
	}
	defaultAccent := appdata.DefaultCustomColors()[appdata.VarAccentPrimary]

	if _, err := provider.Login(ctx, "a@b.com", "pw"); err != nil {
		t.Fatal(err)
	}
	wait(t, changes)
	if s.Key() != "app-data-mock-uid-a@b.com" {
		t.Fatalf("unexpected key %q", s.Key())
	}
	if got := s.Todos().Get(); len(got) != 0 {
		t.Fatalf("new identity should start empty: %+v", got)
	}
	if got := s.Theme().Get(); got != appdata.ThemeDarkAcademia {
		t.Fatalf("new identity theme = %s", got)
	}
	if got := s.CustomColors().Get()[appdata.VarAccentPrimary]; got != defaultAccent {
		t.Fatalf("new identity accent = %s, want %s", got, defaultAccent)
	}
	if err := s.Todos().Set([]appdata.Todo{{ID: "u", Text: "user task"}}); err != nil {
		t.Fatal(err)
	}

	if err := provider.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	wait(t, changes)
	got := s.Todos().Get()
	if len(got) != 1 || got[0].Text != "guest task" {
		t.Fatalf("guest data should be back: %+v", got)
	}
	if got := s.Theme().Get(); got != appdata.ThemeCustom {
		t.Fatalf("guest theme = %s", got)
	}
	if got := s.CustomColors().Get()[appdata.VarAccentPrimary]; got != "#ff0000" {
		t.Fatalf("guest accent = %s", got)
	}
	if _, err := mem.Get("app-data-mock-uid-a@b.com"); err != nil {
		t.Fatalf("user namespace should survive logout: %v", err)
	}
}

func wait(t *testing.T, ch <-chan identity.Change) identity.Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		if !ok {
			t.Fatal("follow channel closed")
		}
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for identity change")
	}
	return identity.Change{}
}
