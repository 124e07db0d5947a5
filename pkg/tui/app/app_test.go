package teaui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/router"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
	"tableflip.dev/academia/pkg/tui/components/login"
)

var today = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := store.NewMemory()
	s := app.New(m, nil)
	s.SetIdentity(nil)
	clock := func() time.Time { return today }
	model := New(Options{
		Store:    s,
		Screens:  screens.New(s, nil, clock),
		Identity: identity.NewMock(m, nil),
		Now:      clock,
	})
	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(*Model)
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(*Model)
	}
	return m
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = press(m, string(r))
	}
	return m
}

func TestViewShowsDashboardAndIdentity(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"AcademiaOS", "1 Dashboard", "9 Music", "guest", "open todos"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "tab")
	if got := m.router.Current(); got != router.Study {
		t.Fatalf("after tab view = %s", got)
	}
	m = press(m, "7")
	if got := m.router.Current(); got != router.Journal {
		t.Fatalf("after 7 view = %s", got)
	}
}

func TestQuickAddFromDashboard(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "a")
	if m.mode != modeInsert {
		t.Fatalf("a did not open the input, mode %d", m.mode)
	}
	m = typeText(m, "read chapter 3")
	m = press(m, "enter")

	todos := m.opts.Screens.Study.Todos.Get()
	if len(todos) != 1 || todos[0].Text != "read chapter 3" {
		t.Fatalf("todos = %+v", todos)
	}
	if m.mode != modeNormal {
		t.Fatalf("input still open")
	}
}

func TestStudyCompleteAndDelete(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.opts.Screens.Study.AddTodo("outline essay"); err != nil {
		t.Fatal(err)
	}
	m.goTo(router.Study)

	m = press(m, "x")
	if !m.opts.Screens.Study.Todos.Get()[0].Completed {
		t.Fatal("x did not complete the todo")
	}
	if !strings.Contains(m.View(), "outline essay") {
		t.Fatal("completed todo not shown")
	}

	m = press(m, "d")
	if n := len(m.opts.Screens.Study.Todos.Get()); n != 0 {
		t.Fatalf("%d todos left after delete", n)
	}
}

func TestStudySectionsAndHabitCheckIn(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.opts.Screens.Study.AddHabit("latin"); err != nil {
		t.Fatal(err)
	}
	m.goTo(router.Study)
	m = press(m, "h")
	if m.section != sectionHabits {
		t.Fatalf("h from todos selected section %d", m.section)
	}
	m = press(m, "x")
	h := m.opts.Screens.Study.Habits.Get()[0]
	if len(h.CompletedDates) != 1 || h.CompletedDates[0] != "2025-03-10" {
		t.Fatalf("check-ins = %v", h.CompletedDates)
	}
}

func TestBookAdvancesShelf(t *testing.T) {
	m := newTestModel(t)
	m.goTo(router.Books)
	m = press(m, "a")
	m = typeText(m, "Middlemarch by Eliot")
	m = press(m, "enter")

	books := m.opts.Screens.Books.Books.Get()
	if len(books) != 1 || books[0].Author != "Eliot" || books[0].Status != appdata.BookToRead {
		t.Fatalf("books = %+v", books)
	}
	m = press(m, "x")
	if got := m.opts.Screens.Books.Books.Get()[0].Status; got != appdata.BookReading {
		t.Fatalf("status = %s", got)
	}
}

func TestCommandModeNavigatesAndSetsTheme(t *testing.T) {
	m := newTestModel(t)
	m = press(m, ":")
	m = typeText(m, "mus")
	m = press(m, "enter")
	if got := m.router.Current(); got != router.Music {
		t.Fatalf("view = %s", got)
	}

	m = press(m, ":")
	m = typeText(m, "theme evergreen")
	m = press(m, "enter")
	if got := m.opts.Store.Theme().Get(); got != appdata.ThemeEvergreen {
		t.Fatalf("theme = %s", got)
	}

	m = press(m, "t")
	if got := m.opts.Store.Theme().Get(); got != appdata.ThemeCustom {
		t.Fatalf("theme after cycling = %s", got)
	}
}

func TestLoginSwitchesNamespace(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.opts.Screens.Study.AddTodo("guest todo"); err != nil {
		t.Fatal(err)
	}

	m = press(m, "L")
	if m.mode != modeLogin {
		t.Fatalf("L did not open the login form")
	}
	next, cmd := m.Update(login.SubmitMsg{Email: "ada@example.com", Password: "pw"})
	m = next.(*Model)
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	next, _ = m.Update(cmd())
	m = next.(*Model)

	if m.mode != modeNormal {
		t.Fatalf("form still open: %q", m.status)
	}
	if got := m.opts.Store.Key(); got != "app-data-mock-uid-ada@example.com" {
		t.Fatalf("key = %q", got)
	}
	if n := len(m.opts.Screens.Study.Todos.Get()); n != 0 {
		t.Fatalf("signed in user sees %d guest todos", n)
	}
	if !strings.Contains(m.View(), "ada@example.com") {
		t.Fatal("sidebar does not show the signed in user")
	}
}

func TestLoginErrorStaysInForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "L")
	next, cmd := m.Update(login.SubmitMsg{Email: "not-an-email", Password: "pw"})
	m = next.(*Model)
	next, _ = m.Update(cmd())
	m = next.(*Model)
	if m.mode != modeLogin {
		t.Fatal("failed login closed the form")
	}
	if m.opts.Store.Identity() != nil {
		t.Fatal("failed login changed identity")
	}
}

func TestReloadPicksUpStoredChanges(t *testing.T) {
	m := newTestModel(t)
	other := app.New(m.opts.Store.Medium, nil)
	other.SetIdentity(nil)
	if err := other.Todos().Set([]appdata.Todo{{ID: "1", Text: "from the cli"}}); err != nil {
		t.Fatal(err)
	}
	if n := len(m.opts.Screens.Study.Todos.Get()); n != 0 {
		t.Fatalf("store saw %d todos before reload", n)
	}

	m = press(m, ":")
	m = typeText(m, "reload")
	m = press(m, "enter")
	if todos := m.opts.Screens.Study.Todos.Get(); len(todos) != 1 || todos[0].Text != "from the cli" {
		t.Fatalf("todos after reload = %+v", todos)
	}
}

func TestBooksGroupedByShelf(t *testing.T) {
	m := newTestModel(t)
	books := m.opts.Screens.Books
	done, err := books.Add("Emma", "Austen")
	if err != nil {
		t.Fatal(err)
	}
	if err := books.SetStatus(done.ID, appdata.BookFinished); err != nil {
		t.Fatal(err)
	}
	if _, err := books.Add("Ulysses", "Joyce"); err != nil {
		t.Fatal(err)
	}
	m.goTo(router.Books)
	rows := m.rows()
	if len(rows) != 2 || rows[0].line.Text != "[to-read] Ulysses by Joyce" || rows[1].id != done.ID {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestPomodoroKeys(t *testing.T) {
	m := newTestModel(t)
	m.goTo(router.Pomodoro)
	if !strings.Contains(m.View(), "25:00") {
		t.Fatal("pomodoro does not start at 25:00")
	}
	m = press(m, "s")
	if st := m.opts.Screens.Pomodoro.State(today); st.Phase != screens.ShortBreak {
		t.Fatalf("skip moved to %s", st.Phase)
	}
}

func TestParseFields(t *testing.T) {
	f := parseFields("exam", "organic chemistry 2025-05-14")
	if f.Text != "organic chemistry" || f.Date != "2025-05-14" {
		t.Fatalf("exam fields = %+v", f)
	}
	f = parseFields("goal", "finish draft")
	if f.Text != "finish draft" || f.Date != "" {
		t.Fatalf("goal fields = %+v", f)
	}
}
