package screens

import (
	"slices"
	"strings"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/embed"
)

// Journal keeps dated entries and links the hosted journal.
type Journal struct {
	Entries app.Slice[[]appdata.JournalEntry]
	Labels  *Labels
	Clock   Clock
}

func (j *Journal) Title() string { return j.Labels.Get(appdata.LabelJournalTitle) }

// EmbedURL is the external journal page.
func (j *Journal) EmbedURL() string { return embed.JournalURL }

func entryID(e appdata.JournalEntry) string { return e.ID }

// Add records content under today's date.
func (j *Journal) Add(content string) (appdata.JournalEntry, error) {
	content, err := required(content)
	if err != nil {
		return appdata.JournalEntry{}, err
	}
	entry := appdata.JournalEntry{ID: newID(), Date: j.Clock.now().Format(DateLayout), Content: content}
	return entry, j.Entries.Update(func(prev []appdata.JournalEntry) []appdata.JournalEntry {
		return append([]appdata.JournalEntry{entry}, prev...)
	})
}

func (j *Journal) Delete(id string) error {
	return j.Entries.Try(func(prev []appdata.JournalEntry) ([]appdata.JournalEntry, error) {
		return remove(prev, entryID, id)
	})
}

// List returns entries newest first.
func (j *Journal) List() []appdata.JournalEntry {
	all := j.Entries.Get()
	slices.SortStableFunc(all, func(a, b appdata.JournalEntry) int { return strings.Compare(b.Date, a.Date) })
	return all
}
