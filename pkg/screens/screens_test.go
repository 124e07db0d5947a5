package screens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/store"
)

var day = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func newScreens(t *testing.T, q learn.Querier) (*Screens, *app.Store) {
	t.Helper()
	s := app.New(store.NewMemory(), nil)
	s.SetIdentity(nil)
	return New(s, q, func() time.Time { return day }), s
}

func TestStudyTodos(t *testing.T) {
	sc, st := newScreens(t, nil)

	if _, err := sc.Study.AddTodo("  "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	a, err := sc.Study.AddTodo("read chapter 3")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := sc.Study.AddTodo("write essay")

	if err := sc.Study.ToggleTodo(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := sc.Study.ToggleTodo("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := sc.Study.ClearCompleted(); err != nil {
		t.Fatal(err)
	}
	got := st.Todos().Get()
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("unexpected todos %+v", got)
	}
	if got[0].CreatedAt != "2025-03-10T09:30:00Z" {
		t.Fatalf("createdAt = %q", got[0].CreatedAt)
	}
	if err := sc.Study.DeleteTodo(b.ID); err != nil {
		t.Fatal(err)
	}
	if len(st.Todos().Get()) != 0 {
		t.Fatal("todo not deleted")
	}
}

func TestStudyGoalsAndExams(t *testing.T) {
	sc, st := newScreens(t, nil)

	g, err := sc.Study.AddGoal("Finish thesis", "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sc.Study.AddGoal("Bad", "June"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err := sc.Study.SetGoalProgress(g.ID, 140); err != nil {
		t.Fatal(err)
	}
	if p := st.Goals().Get()[0].Progress; p != 100 {
		t.Fatalf("progress should clamp to 100, got %d", p)
	}

	_, _ = sc.Study.AddExam("History", "2025-04-02", "")
	_, _ = sc.Study.AddExam("Latin", "2025-03-20", "declensions")
	var subjects []string
	for _, e := range st.Exams().Get() {
		subjects = append(subjects, e.Subject)
	}
	if diff := cmp.Diff([]string{"Latin", "History"}, subjects); diff != "" {
		t.Fatalf("exams not sorted by date: %s", diff)
	}
}

func TestHabitCheckInAndStreak(t *testing.T) {
	sc, st := newScreens(t, nil)
	h, _ := sc.Study.AddHabit("Read")

	for _, d := range []string{"2025-03-08", "2025-03-09", ""} {
		if err := sc.Study.CheckIn(h.ID, d); err != nil {
			t.Fatal(err)
		}
	}
	habit := st.Habits().Get()[0]
	if diff := cmp.Diff([]string{"2025-03-08", "2025-03-09", "2025-03-10"}, habit.CompletedDates); diff != "" {
		t.Fatal(diff)
	}
	if n := Streak(habit, day); n != 3 {
		t.Fatalf("streak = %d", n)
	}

	if err := sc.Study.CheckIn(h.ID, ""); err != nil {
		t.Fatal(err)
	}
	habit = st.Habits().Get()[0]
	if DoneOn(habit, day) {
		t.Fatal("second check-in should toggle today off")
	}
	if n := Streak(habit, day); n != 2 {
		t.Fatalf("streak counting from yesterday = %d", n)
	}
}

func TestDashboardSummary(t *testing.T) {
	sc, _ := newScreens(t, nil)
	_, _ = sc.Dashboard.QuickAdd("one")
	done, _ := sc.Dashboard.QuickAdd("two")
	_ = sc.Study.ToggleTodo(done.ID)
	_, _ = sc.Study.AddExam("Past", "2025-03-01", "")
	_, _ = sc.Study.AddExam("Soon", "2025-03-12", "")
	_, _ = sc.Study.AddGoal("Later", "2025-03-11")
	_, _ = sc.Study.AddHabit("Walk")

	sum := sc.Dashboard.Summary()
	if sum.Title != "AcademiaOS" || sum.Greeting != "Here's your snapshot for today." {
		t.Fatalf("unexpected labels %q %q", sum.Title, sum.Greeting)
	}
	if sum.OpenTodos != 1 || len(sum.Focus) != 1 {
		t.Fatalf("open=%d focus=%d", sum.OpenTodos, len(sum.Focus))
	}
	want := []Deadline{
		{Date: "2025-03-11", Title: "Later", Kind: "goal", Days: 1},
		{Date: "2025-03-12", Title: "Soon", Kind: "exam", Days: 2},
	}
	if diff := cmp.Diff(want, sum.Deadlines); diff != "" {
		t.Fatalf("deadlines (-want +got):\n%s", diff)
	}
	if sum.HabitsDue != 1 {
		t.Fatalf("habits due = %d", sum.HabitsDue)
	}
}

func TestWritingAndBooks(t *testing.T) {
	sc, _ := newScreens(t, nil)

	w, _ := sc.Writing.Create("", "draft")
	if w.Title != "Untitled" {
		t.Fatalf("title = %q", w.Title)
	}
	if err := sc.Writing.Edit(w.ID, "Essay", "body text here"); err != nil {
		t.Fatal(err)
	}
	got, err := sc.Writing.Find(w.ID)
	if err != nil || got.Title != "Essay" || WordCount(got.Content) != 3 {
		t.Fatalf("unexpected writing %+v (%v)", got, err)
	}

	b, _ := sc.Books.Add("Middlemarch", "George Eliot")
	if b.Status != appdata.BookToRead {
		t.Fatalf("status = %q", b.Status)
	}
	if err := sc.Books.SetStatus(b.ID, "abandoned"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err := sc.Books.SetStatus(b.ID, appdata.BookReading); err != nil {
		t.Fatal(err)
	}
	if n := len(sc.Books.Shelves()[appdata.BookReading]); n != 1 {
		t.Fatalf("reading shelf has %d books", n)
	}
}

func TestJournalNewestFirst(t *testing.T) {
	sc, st := newScreens(t, nil)
	_ = st.JournalEntries().Set([]appdata.JournalEntry{
		{ID: "old", Date: "2025-01-01", Content: "old"},
		{ID: "mid", Date: "2025-02-01", Content: "mid"},
	})
	_, _ = sc.Journal.Add("today")

	var ids []string
	for _, e := range sc.Journal.List() {
		ids = append(ids, e.Content)
	}
	if diff := cmp.Diff([]string{"today", "mid", "old"}, ids); diff != "" {
		t.Fatal(diff)
	}
	if sc.Journal.EmbedURL() != "https://dark-academia-productivity-753.created.app/journal" {
		t.Fatalf("embed = %q", sc.Journal.EmbedURL())
	}
}

func TestMe(t *testing.T) {
	sc, _ := newScreens(t, nil)
	if err := sc.Me.SetField("vision", "teach"); err != nil {
		t.Fatal(err)
	}
	if err := sc.Me.SetField("mood", "x"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err := sc.Me.SetField("values", "curiosity"); err != nil {
		t.Fatal(err)
	}
	if got := sc.Me.Get(); got.Values != "curiosity" || got.Vision != "teach" {
		t.Fatalf("unexpected %+v", got)
	}
	_ = sc.Me.Clear()
	if sc.Me.Get() != (appdata.MeData{}) {
		t.Fatal("clear left data behind")
	}
	if s := sc.Me.Sections(); len(s) != 4 || s[0].Label != "Core Values" {
		t.Fatalf("unexpected sections %+v", s)
	}
}

func TestMusic(t *testing.T) {
	sc, st := newScreens(t, nil)

	if err := sc.Music.Load("spotify:track:abc"); err != nil {
		t.Fatal(err)
	}
	if url, ok := sc.Music.Embed(); !ok || url != "https://open.spotify.com/embed/track/abc?utm_source=generator" {
		t.Fatalf("embed = %q %v", url, ok)
	}

	item, err := sc.Music.Add("https://open.spotify.com/album/xyz", "Album")
	if err != nil || item == nil {
		t.Fatalf("add: %v", err)
	}
	if st.SpotifyURI().Get() != "https://open.spotify.com/album/xyz" {
		t.Fatal("added link should be loaded")
	}
	_ = sc.Music.Load("not a link")
	if _, ok := sc.Music.Embed(); ok {
		t.Fatal("malformed link must not embed")
	}
	if err := sc.Music.Play(item.ID); err != nil {
		t.Fatal(err)
	}
	if st.SpotifyURI().Get() != item.SpotifyURI {
		t.Fatal("play did not load the item")
	}
	if err := sc.Music.Delete(item.ID); err != nil {
		t.Fatal(err)
	}
	if len(st.Playlist().Get()) != 0 {
		t.Fatal("item not deleted")
	}
	if none, err := sc.Music.Add("spotify:track:q", ""); err != nil || none != nil {
		t.Fatalf("link without title should only load, got %+v %v", none, err)
	}
}

func TestLabels(t *testing.T) {
	sc, st := newScreens(t, nil)
	if err := sc.Labels.Set(appdata.LabelMusicTitle, "Tunes"); err != nil {
		t.Fatal(err)
	}
	if sc.Music.Title() != "Tunes" {
		t.Fatalf("title = %q", sc.Music.Title())
	}
	if err := sc.Labels.Set("nope", "x"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if got := st.EditableContent().Get(); len(got) != len(appdata.LabelKeys) {
		t.Fatalf("labels lost keys: %d", len(got))
	}
	_ = sc.Labels.Reset()
	if sc.Music.Title() != "Music Hub" {
		t.Fatal("reset did not restore defaults")
	}
}

func TestScreensRefuseBeforeLoad(t *testing.T) {
	s := app.New(store.NewMemory(), nil)
	sc := New(s, nil, nil)
	if _, err := sc.Study.AddTodo("x"); !errors.Is(err, app.ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

type fakeQuerier struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	results map[string]*learn.Result
	err     error
}

func (f *fakeQuerier) Query(_ context.Context, topic string) (*learn.Result, error) {
	f.mu.Lock()
	gate := f.gates[topic]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[topic], nil
}

func TestLearnLastResponseWins(t *testing.T) {
	slow := make(chan struct{})
	q := &fakeQuerier{
		gates: map[string]chan struct{}{"first": slow},
		results: map[string]*learn.Result{
			"first":  {Articles: []learn.Article{{Title: "1"}}, Videos: []learn.Video{}},
			"second": {Articles: []learn.Article{{Title: "2"}}, Videos: []learn.Video{}},
		},
	}
	sc, _ := newScreens(t, q)

	done := make(chan LearnState)
	go func() { done <- sc.Learn.Search(context.Background(), "first") }()
	for sc.Learn.State().Topic != "first" {
		time.Sleep(time.Millisecond)
	}
	second := sc.Learn.Search(context.Background(), "second")
	if second.Seq != 2 || second.Result.Articles[0].Title != "2" {
		t.Fatalf("unexpected second state %+v", second)
	}
	close(slow)
	first := <-done

	final := sc.Learn.State()
	if final.Seq != first.Seq || final.Result.Articles[0].Title != "1" {
		t.Fatalf("last response should win, got %+v", final)
	}
}

func TestLearnErrors(t *testing.T) {
	sc, _ := newScreens(t, nil)
	if st := sc.Learn.Search(context.Background(), "x"); !errors.Is(st.Err, ErrLearnUnavailable) {
		t.Fatalf("expected ErrLearnUnavailable, got %v", st.Err)
	}

	q := &fakeQuerier{err: learn.ErrMissingCredential}
	sc, _ = newScreens(t, q)
	if st := sc.Learn.CurrentEvents(context.Background()); !errors.Is(st.Err, learn.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", st.Err)
	}
	if st := sc.Learn.Search(context.Background(), " "); !errors.Is(st.Err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", st.Err)
	}
	if len(sc.Learn.Sites()) != 3 {
		t.Fatal("expected three launchpad sites")
	}
}

func TestPomodoro(t *testing.T) {
	p := NewPomodoro(Durations{Focus: 10 * time.Second, ShortBreak: 2 * time.Second, LongBreak: 5 * time.Second, LongEvery: 2})
	start := day

	p.Start(start)
	if st := p.State(start.Add(4 * time.Second)); st.Remaining != 6*time.Second || !st.Running {
		t.Fatalf("unexpected state %+v", st)
	}
	p.Pause(start.Add(4 * time.Second))
	if st := p.State(start.Add(time.Hour)); st.Remaining != 6*time.Second || st.Running {
		t.Fatalf("paused timer moved: %+v", st)
	}

	resume := start.Add(time.Hour)
	p.Start(resume)
	if p.Tick(resume.Add(5 * time.Second)) {
		t.Fatal("phase ended early")
	}
	if !p.Tick(resume.Add(6 * time.Second)) {
		t.Fatal("phase should have ended")
	}
	if st := p.State(resume); st.Phase != ShortBreak || st.Completed != 1 || st.Running {
		t.Fatalf("unexpected state after focus %+v", st)
	}

	p.Skip()
	p.Start(resume)
	p.Tick(resume.Add(10 * time.Second))
	if st := p.State(resume); st.Phase != LongBreak || st.Completed != 2 {
		t.Fatalf("expected long break after two sessions, got %+v", st)
	}
	p.Reset()
	if st := p.State(resume); st.Remaining != 5*time.Second {
		t.Fatalf("reset remaining = %s", st.Remaining)
	}
}
