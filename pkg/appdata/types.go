// Package appdata defines the AppData aggregate persisted per identity, its
// hard-coded defaults and the default-filling decoder.
package appdata

import "encoding/json"

// AppData is the complete persisted state for one identity.
type AppData struct {
	Todos           []Todo          `json:"todos"`
	Goals           []Goal          `json:"goals"`
	Exams           []Exam          `json:"exams"`
	Habits          []Habit         `json:"habits"`
	Writings        []Writing       `json:"writings"`
	Books           []Book          `json:"books"`
	JournalEntries  []JournalEntry  `json:"journalEntries"`
	MeData          MeData          `json:"meData"`
	Playlist        []PlaylistItem  `json:"playlist"`
	SpotifyURI      string          `json:"spotifyUri"`
	EditableContent EditableContent `json:"editableContent"`
	Theme           Theme           `json:"theme"`
	CustomColors    CustomColors    `json:"customColors"`

	// Extra holds top-level keys this version does not know about so they
	// survive a load/save cycle.
	Extra map[string]json.RawMessage `json:"-"`
	// Unreadable holds the stored JSON of known fields that did not decode
	// cleanly. It is written back in place of the field until that field is
	// set again.
	Unreadable map[string]json.RawMessage `json:"-"`
}

type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Deadline string `json:"deadline,omitempty"`
}

type Exam struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Notes   string `json:"notes,omitempty"`
}

type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CompletedDates []string `json:"completedDates"`
}

type Writing struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// BookStatus tracks progress through the reading list.
type BookStatus string

const (
	BookToRead   BookStatus = "to-read"
	BookReading  BookStatus = "reading"
	BookFinished BookStatus = "finished"
)

// Valid reports whether s is a known status.
func (s BookStatus) Valid() bool {
	switch s {
	case BookToRead, BookReading, BookFinished:
		return true
	}
	return false
}

type Book struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	Status BookStatus `json:"status"`
}

type JournalEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// MeData holds the four personal-reflection fields.
type MeData struct {
	Values       string `json:"values"`
	Vision       string `json:"vision"`
	Strengths    string `json:"strengths"`
	Achievements string `json:"achievements"`
}

type PlaylistItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SpotifyURI string `json:"spotifyUri"`
}

// Theme is a theme id; see package theme for palettes.
type Theme string

const (
	ThemeDarkAcademia  Theme = "dark-academia"
	ThemeLightAcademia Theme = "light-academia"
	ThemeMidnightDusk  Theme = "midnight-dusk"
	ThemeEvergreen     Theme = "evergreen"
	ThemeCustom        Theme = "custom"
)

// Themes lists every theme id in display order.
var Themes = []Theme{ThemeDarkAcademia, ThemeLightAcademia, ThemeMidnightDusk, ThemeEvergreen, ThemeCustom}

// Valid reports whether t is a known theme id.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// EditableContent maps UI label keys to their user-edited text.
type EditableContent map[string]string

// CustomColors maps CSS variable names to color strings.
type CustomColors map[string]string
