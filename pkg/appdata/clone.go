package appdata

import (
	"encoding/json"
	"maps"
	"slices"
)

// Clone returns a deep copy of d; mutating the copy never affects d.
func (d AppData) Clone() AppData {
	out := d
	out.Todos = cloneSlice(d.Todos)
	out.Goals = cloneSlice(d.Goals)
	out.Exams = cloneSlice(d.Exams)
	out.Habits = make([]Habit, len(d.Habits))
	for i, h := range d.Habits {
		h.CompletedDates = cloneSlice(h.CompletedDates)
		out.Habits[i] = h
	}
	out.Writings = cloneSlice(d.Writings)
	out.Books = cloneSlice(d.Books)
	out.JournalEntries = cloneSlice(d.JournalEntries)
	out.Playlist = cloneSlice(d.Playlist)
	out.EditableContent = maps.Clone(d.EditableContent)
	out.CustomColors = maps.Clone(d.CustomColors)
	out.Extra = cloneRaw(d.Extra)
	out.Unreadable = cloneRaw(d.Unreadable)
	return out
}

func cloneRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// Touch records that the named field was set, so its unreadable stored JSON
// is no longer written back.
func (d *AppData) Touch(name string) {
	delete(d.Unreadable, name)
	if len(d.Unreadable) == 0 {
		d.Unreadable = nil
	}
}

// cloneSlice copies s; a nil input yields an empty slice.
func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Label returns the label for key, falling back to the default text.
func (c EditableContent) Label(key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return DefaultEditableContent()[key]
}

// Color returns the color for name, falling back to the default palette.
func (c CustomColors) Color(name string) string {
	if v, ok := c[name]; ok {
		return v
	}
	return DefaultCustomColors()[name]
}
