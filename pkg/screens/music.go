package screens

import (
	"slices"
	"strings"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/embed"
)

// Music manages the Spotify player and a saved playlist.
type Music struct {
	Playlist app.Slice[[]appdata.PlaylistItem]
	Current  app.Slice[string]
	Labels   *Labels
}

func (m *Music) Title() string    { return m.Labels.Get(appdata.LabelMusicTitle) }
func (m *Music) Subtitle() string { return m.Labels.Get(appdata.LabelMusicSubtitle) }

func itemID(v appdata.PlaylistItem) string { return v.ID }

// Load puts link in the player without saving it to the playlist. Links
// without an embed are stored as typed and simply show nothing.
func (m *Music) Load(link string) error {
	link, err := required(link)
	if err != nil {
		return err
	}
	return m.Current.Set(link)
}

// Add saves link under title at the top of the playlist and loads it. With
// an empty title it only loads the link.
func (m *Music) Add(link, title string) (*appdata.PlaylistItem, error) {
	link, err := required(link)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, m.Current.Set(link)
	}
	item := appdata.PlaylistItem{ID: newID(), Title: title, SpotifyURI: link}
	if err := m.Playlist.Update(func(prev []appdata.PlaylistItem) []appdata.PlaylistItem {
		return append([]appdata.PlaylistItem{item}, prev...)
	}); err != nil {
		return nil, err
	}
	return &item, m.Current.Set(link)
}

// Play loads playlist item id.
func (m *Music) Play(id string) error {
	items := m.Playlist.Get()
	i := slices.IndexFunc(items, func(v appdata.PlaylistItem) bool { return v.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	return m.Current.Set(items[i].SpotifyURI)
}

// Delete drops item id from the playlist. The player keeps playing.
func (m *Music) Delete(id string) error {
	return m.Playlist.Try(func(prev []appdata.PlaylistItem) ([]appdata.PlaylistItem, error) {
		return remove(prev, itemID, id)
	})
}

// Embed returns the player URL for the loaded link.
func (m *Music) Embed() (string, bool) {
	return embed.Music(m.Current.Get())
}
