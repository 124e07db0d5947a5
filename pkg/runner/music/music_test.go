package music

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestMusic(t *testing.T) {
	ctx := context.Background()
	st := app.New(store.NewMemory(), nil)
	st.SetIdentity(nil)
	s := screens.New(st, nil, nil)

	var buf bytes.Buffer
	run := func(n Music) string {
		t.Helper()
		buf.Reset()
		n.Screens, n.Out = s, &buf
		if err := n.Do(ctx); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	out := run(Music{Action: Embed})
	if !strings.Contains(out, "nothing loaded") {
		t.Fatalf("got %q", out)
	}

	out = run(Music{Action: Add, Link: "https://open.spotify.com/track/abc123", Title: "Nocturne"})
	if !strings.Contains(out, "▶ Nocturne") || !strings.Contains(out, "https://open.spotify.com/embed/track/abc123?utm_source=generator") {
		t.Fatalf("got %q", out)
	}

	out = run(Music{Action: Load, Link: "not a link"})
	if !strings.Contains(out, "not a link has no player") {
		t.Fatalf("got %q", out)
	}

	id := s.Music.Playlist.Get()[0].ID
	run(Music{Action: Play, ID: id[:4]})
	if s.Music.Current.Get() != "https://open.spotify.com/track/abc123" {
		t.Fatalf("play did not load the track: %q", s.Music.Current.Get())
	}

	run(Music{Action: Rm, ID: id})
	if len(s.Music.Playlist.Get()) != 0 {
		t.Fatal("track not removed")
	}
}
