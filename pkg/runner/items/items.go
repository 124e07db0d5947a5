// Package items names the list kinds the CLI and MCP server operate on and
// resolves short id prefixes to full ids.
package items

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/screens"
)

type Kind string

const (
	Todo    Kind = "todo"
	Goal    Kind = "goal"
	Exam    Kind = "exam"
	Habit   Kind = "habit"
	Book    Kind = "book"
	Journal Kind = "journal"
	Writing Kind = "writing"
	Track   Kind = "track"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Todo, Goal, Exam, Habit, Book, Journal, Writing, Track}

var (
	ErrUnknownKind = errors.New("items: unknown kind")
	ErrAmbiguous   = errors.New("items: id prefix is ambiguous")
)

// Parse accepts a kind name or its plural.
func Parse(s string) (Kind, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IDs returns the ids of every item of kind k, in stored order.
func IDs(s *screens.Screens, k Kind) ([]string, error) {
	switch k {
	case Todo:
		return ids(s.Study.Todos.Get(), func(v appdata.Todo) string { return v.ID }), nil
	case Goal:
		return ids(s.Study.Goals.Get(), func(v appdata.Goal) string { return v.ID }), nil
	case Exam:
		return ids(s.Study.Exams.Get(), func(v appdata.Exam) string { return v.ID }), nil
	case Habit:
		return ids(s.Study.Habits.Get(), func(v appdata.Habit) string { return v.ID }), nil
	case Book:
		return ids(s.Books.Books.Get(), func(v appdata.Book) string { return v.ID }), nil
	case Journal:
		return ids(s.Journal.Entries.Get(), func(v appdata.JournalEntry) string { return v.ID }), nil
	case Writing:
		return ids(s.Writing.Writings.Get(), func(v appdata.Writing) string { return v.ID }), nil
	case Track:
		return ids(s.Music.Playlist.Get(), func(v appdata.PlaylistItem) string { return v.ID }), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, id(v))
	}
	return out
}

// Resolve expands prefix to the single id of kind k that starts with it. An
// exact match always wins.
func Resolve(s *screens.Screens, k Kind, prefix string) (string, error) {
	all, err := IDs(s, k)
	if err != nil {
		return "", err
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", screens.ErrNotFound)
	}
	var found []string
	for _, id := range all {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s %q", screens.ErrNotFound, k, prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("%w: %q matches %d %ss", ErrAmbiguous, prefix, len(found), k)
}

// Print lists every item of kind k.
func Print(pp *printers.PrettyPrint, s *screens.Screens, k Kind, today time.Time) error {
	switch k {
	case Todo:
		pp.TitleWithCount(s.Study.Title(), len(s.Study.Todos.Get()), "todo")
		pp.Todos(s.Study.Todos.Get()...)
	case Goal:
		pp.TitleWithCount(s.Study.Title(), len(s.Study.Goals.Get()), "goal")
		pp.Goals(s.Study.Goals.Get()...)
	case Exam:
		pp.TitleWithCount(s.Study.Title(), len(s.Study.Exams.Get()), "exam")
		pp.Exams(s.Study.Exams.Get()...)
	case Habit:
		pp.TitleWithCount(s.Study.Title(), len(s.Study.Habits.Get()), "habit")
		pp.Habits(today, s.Study.Habits.Get()...)
	case Book:
		pp.TitleWithCount(s.Books.Title(), len(s.Books.Books.Get()), "book")
		pp.Books(s.Books.Books.Get()...)
	case Journal:
		pp.TitleWithCount(s.Journal.Title(), len(s.Journal.Entries.Get()), "page")
		pp.Journal(s.Journal.List()...)
	case Writing:
		pp.TitleWithCount(s.Writing.Title(), len(s.Writing.Writings.Get()), "piece")
		pp.Writings(s.Writing.List()...)
	case Track:
		pp.TitleWithCount(s.Music.Title(), len(s.Music.Playlist.Get()), "track")
		pp.Playlist(s.Music.Current.Get(), s.Music.Playlist.Get()...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return nil
}

// Fields carries the inputs Add understands. Each kind reads only the
// fields it needs.
type Fields struct {
	// Text is the todo text, goal/writing title, exam subject, habit name,
	// book title, journal content or track title.
	Text string `json:"text"`
	// Date is an exam date or a goal deadline, YYYY-MM-DD.
	Date   string `json:"date,omitempty"`
	Notes  string `json:"notes,omitempty"`
	Author string `json:"author,omitempty"`
	// Link is a track's Spotify link or URI.
	Link string `json:"link,omitempty"`
	// Content is a writing body.
	Content string `json:"content,omitempty"`
}

// Add creates one item of kind k and returns it. A track added without a
// title is only loaded, and Add returns nil for it.
func Add(s *screens.Screens, k Kind, f Fields) (any, error) {
	text := strings.TrimSpace(f.Text)
	switch k {
	case Todo:
		return s.Study.AddTodo(text)
	case Goal:
		return s.Study.AddGoal(text, f.Date)
	case Exam:
		return s.Study.AddExam(text, f.Date, f.Notes)
	case Habit:
		return s.Study.AddHabit(text)
	case Book:
		return s.Books.Add(text, f.Author)
	case Journal:
		return s.Journal.Add(text)
	case Writing:
		return s.Writing.Create(text, f.Content)
	case Track:
		item, err := s.Music.Add(f.Link, text)
		if item == nil {
			return nil, err
		}
		return *item, err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

// ErrNotCompletable is returned for kinds that have no notion of done.
var ErrNotCompletable = errors.New("items: kind cannot be completed")

// Done says what completing an item means. A todo toggles, a habit is
// checked in for Date (empty is today), a goal moves to Progress (nil is
// 100) and a book moves to Status (empty is finished).
type Done struct {
	Date     string             `json:"date,omitempty"`
	Progress *int               `json:"progress,omitempty"`
	Status   appdata.BookStatus `json:"status,omitempty"`
}

// Complete marks item id of kind k done. id may be a unique prefix.
func Complete(s *screens.Screens, k Kind, id string, d Done) error {
	switch k {
	case Todo, Habit, Goal, Book:
	default:
		return fmt.Errorf("%w: %s", ErrNotCompletable, k)
	}
	id, err := Resolve(s, k, id)
	if err != nil {
		return err
	}
	switch k {
	case Todo:
		return s.Study.ToggleTodo(id)
	case Habit:
		return s.Study.CheckIn(id, d.Date)
	case Goal:
		progress := 100
		if d.Progress != nil {
			progress = *d.Progress
		}
		return s.Study.SetGoalProgress(id, progress)
	default:
		status := d.Status
		if status == "" {
			status = appdata.BookFinished
		}
		return s.Books.SetStatus(id, status)
	}
}

// Delete removes item id of kind k. id may be a unique prefix.
func Delete(s *screens.Screens, k Kind, id string) error {
	id, err := Resolve(s, k, id)
	if err != nil {
		return err
	}
	switch k {
	case Todo:
		return s.Study.DeleteTodo(id)
	case Goal:
		return s.Study.DeleteGoal(id)
	case Exam:
		return s.Study.DeleteExam(id)
	case Habit:
		return s.Study.DeleteHabit(id)
	case Book:
		return s.Books.Delete(id)
	case Journal:
		return s.Journal.Delete(id)
	case Writing:
		return s.Writing.Delete(id)
	case Track:
		return s.Music.Delete(id)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

// List returns every item of kind k in display order.
func List(s *screens.Screens, k Kind) (any, error) {
	switch k {
	case Todo:
		return s.Study.Todos.Get(), nil
	case Goal:
		return s.Study.Goals.Get(), nil
	case Exam:
		return s.Study.Exams.Get(), nil
	case Habit:
		return s.Study.Habits.Get(), nil
	case Book:
		return s.Books.Books.Get(), nil
	case Journal:
		return s.Journal.List(), nil
	case Writing:
		return s.Writing.List(), nil
	case Track:
		return s.Music.Playlist.Get(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}
