package app

import "tableflip.dev/academia/pkg/appdata"

// Updater computes a field's next value from its previous one. prev is a
// private copy and may be modified in place.
type Updater[T any] func(prev T) T

// Replace returns an Updater that ignores the previous value.
func Replace[T any](v T) Updater[T] {
	return func(T) T { return v }
}

// Slice is a typed handle on one AppData field. Screens receive Slices
// rather than the Store so each can only touch the fields it owns.
type Slice[T any] struct {
	store *Store
	name  string
	field func(d *appdata.AppData) *T
}

// Get returns a copy of the field.
func (sl Slice[T]) Get() T {
	d := sl.store.Snapshot()
	return *sl.field(&d)
}

// Apply replaces the field with u(prev) and saves the whole aggregate.
func (sl Slice[T]) Apply(u Updater[T]) error {
	return sl.store.mutate(func(d *appdata.AppData) error {
		f := sl.field(d)
		*f = u(*f)
		d.Touch(sl.name)
		return nil
	})
}

// Set replaces the field with v.
func (sl Slice[T]) Set(v T) error {
	return sl.Apply(Replace(v))
}

// Update replaces the field with fn(prev).
func (sl Slice[T]) Update(fn func(prev T) T) error {
	return sl.Apply(fn)
}

// Try is Update for edits that can fail. When fn returns an error nothing
// is changed or written and the error is returned.
func (sl Slice[T]) Try(fn func(prev T) (T, error)) error {
	return sl.store.mutate(func(d *appdata.AppData) error {
		f := sl.field(d)
		next, err := fn(*f)
		if err != nil {
			return err
		}
		*f = next
		d.Touch(sl.name)
		return nil
	})
}

func slice[T any](s *Store, name string, field func(d *appdata.AppData) *T) Slice[T] {
	return Slice[T]{store: s, name: name, field: field}
}

func (s *Store) Todos() Slice[[]appdata.Todo] {
	return slice(s, "todos", func(d *appdata.AppData) *[]appdata.Todo { return &d.Todos })
}

func (s *Store) Goals() Slice[[]appdata.Goal] {
	return slice(s, "goals", func(d *appdata.AppData) *[]appdata.Goal { return &d.Goals })
}

func (s *Store) Exams() Slice[[]appdata.Exam] {
	return slice(s, "exams", func(d *appdata.AppData) *[]appdata.Exam { return &d.Exams })
}

func (s *Store) Habits() Slice[[]appdata.Habit] {
	return slice(s, "habits", func(d *appdata.AppData) *[]appdata.Habit { return &d.Habits })
}

func (s *Store) Writings() Slice[[]appdata.Writing] {
	return slice(s, "writings", func(d *appdata.AppData) *[]appdata.Writing { return &d.Writings })
}

func (s *Store) Books() Slice[[]appdata.Book] {
	return slice(s, "books", func(d *appdata.AppData) *[]appdata.Book { return &d.Books })
}

func (s *Store) JournalEntries() Slice[[]appdata.JournalEntry] {
	return slice(s, "journalEntries", func(d *appdata.AppData) *[]appdata.JournalEntry { return &d.JournalEntries })
}

func (s *Store) MeData() Slice[appdata.MeData] {
	return slice(s, "meData", func(d *appdata.AppData) *appdata.MeData { return &d.MeData })
}

func (s *Store) Playlist() Slice[[]appdata.PlaylistItem] {
	return slice(s, "playlist", func(d *appdata.AppData) *[]appdata.PlaylistItem { return &d.Playlist })
}

// SpotifyURI is the link currently loaded in the music player.
func (s *Store) SpotifyURI() Slice[string] {
	return slice(s, "spotifyUri", func(d *appdata.AppData) *string { return &d.SpotifyURI })
}

func (s *Store) EditableContent() Slice[appdata.EditableContent] {
	return slice(s, "editableContent", func(d *appdata.AppData) *appdata.EditableContent { return &d.EditableContent })
}

func (s *Store) Theme() Slice[appdata.Theme] {
	return slice(s, "theme", func(d *appdata.AppData) *appdata.Theme { return &d.Theme })
}

func (s *Store) CustomColors() Slice[appdata.CustomColors] {
	return slice(s, "customColors", func(d *appdata.AppData) *appdata.CustomColors { return &d.CustomColors })
}
