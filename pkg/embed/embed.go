// Package embed resolves the external pages academia frames: the music
// player and the journal.
package embed

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// JournalURL is the hosted journal page framed by the Journal screen.
const JournalURL = "https://dark-academia-productivity-753.created.app/journal"

const spotifyHost = "open.spotify.com"

// MusicTypes are the Spotify resource kinds that have an embed player.
var MusicTypes = []string{"track", "playlist", "album", "artist", "episode"}

// Music returns the embed player URL for a Spotify share link such as
// https://open.spotify.com/track/<id> or a URI such as spotify:track:<id>.
// Anything else has no embed.
func Music(linkOrURI string) (string, bool) {
	s := strings.TrimSpace(linkOrURI)
	if s == "" {
		return "", false
	}
	if strings.Contains(s, spotifyHost) {
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() {
			return "", false
		}
		parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
		if len(parts) >= 2 {
			kind, id := parts[len(parts)-2], parts[len(parts)-1]
			if slices.Contains(MusicTypes, kind) {
				return player(kind, id), true
			}
		}
	}
	parts := strings.Split(s, ":")
	if len(parts) == 3 && parts[0] == "spotify" && parts[2] != "" && slices.Contains(MusicTypes, parts[1]) {
		return player(parts[1], parts[2]), true
	}
	return "", false
}

func player(kind, id string) string {
	return fmt.Sprintf("https://%s/embed/%s/%s?utm_source=generator", spotifyHost, kind, url.PathEscape(id))
}
