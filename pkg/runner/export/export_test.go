package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/store"
)

func newStore(t *testing.T) *app.Store {
	t.Helper()
	s := app.New(store.NewMemory(), nil)
	s.SetIdentity(nil)
	return s
}

func TestExportYAMLKeepsFieldNames(t *testing.T) {
	s := newStore(t)
	if err := s.Todos().Set([]appdata.Todo{{ID: "t1", Text: "read"}}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := (&Export{Format: YAML, Store: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"journalEntries:", "editableContent:", "text: read"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in yaml", want)
		}
	}
}

func TestExportField(t *testing.T) {
	s := newStore(t)
	var buf bytes.Buffer
	if err := (&Export{Format: JSON, Field: "theme", Store: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"dark-academia"` {
		t.Fatalf("got %s", got)
	}

	err := (&Export{Field: "nope", Store: s, Out: &buf}).Do(context.Background())
	if !errors.Is(err, appdata.ErrUnknownField) {
		t.Fatalf("want ErrUnknownField, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, f := range []Format{JSON, YAML} {
		t.Run(string(f), func(t *testing.T) {
			src := newStore(t)
			if err := src.Books().Set([]appdata.Book{{ID: "b1", Title: "Dubliners", Author: "Joyce", Status: appdata.BookReading}}); err != nil {
				t.Fatal(err)
			}
			if err := src.Theme().Set(appdata.ThemeEvergreen); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := (&Export{Format: f, Store: src, Out: &buf}).Do(context.Background()); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(t.TempDir(), "backup."+string(f))
			if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
				t.Fatal(err)
			}

			dst := newStore(t)
			if err := (&Import{Path: path, Store: dst, Out: &bytes.Buffer{}}).Do(context.Background()); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(src.Snapshot(), dst.Snapshot()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := Marshal("toml", map[string]string{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}
