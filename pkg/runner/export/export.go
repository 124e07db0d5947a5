// Package export writes the active aggregate out as JSON or YAML and reads
// one back in.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Export writes the active identity's data, or one field of it.
type Export struct {
	Format Format
	// Field limits the output to one top-level field.
	Field string

	Store *app.Store
	Out   io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("export: no store")
	}
	raw, err := appdata.Encode(n.Store.Snapshot())
	if err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}

	var doc any = json.RawMessage(raw)
	if n.Field != "" {
		var top map[string]json.RawMessage
		if err := json.Unmarshal(raw, &top); err != nil {
			return fmt.Errorf("export: encode: %w", err)
		}
		v, ok := top[n.Field]
		if !ok {
			return fmt.Errorf("%w: %q", appdata.ErrUnknownField, n.Field)
		}
		doc = v
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	b, err := Marshal(n.Format, doc)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

// Marshal renders a JSON document in format f. YAML keeps the JSON field
// names.
func Marshal(f Format, doc any) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	switch f {
	case JSON, "":
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case YAML:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Import replaces the active identity's data with the file at Path. The
// format follows the file extension; anything but .yaml or .yml is JSON.
// The file is decoded with the same default-filling rules as a load.
type Import struct {
	Path string

	Store *app.Store
	Out   io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("import: no store")
	}
	b, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	switch strings.ToLower(filepath.Ext(n.Path)) {
	case ".yaml", ".yml":
		if b, err = yamlToJSON(b); err != nil {
			return fmt.Errorf("import: %s: %w", n.Path, err)
		}
	}
	d, skipped, err := appdata.Decode(b)
	if err != nil {
		return fmt.Errorf("import: %s: %w", n.Path, err)
	}
	if err := n.Store.Replace(d); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "imported %s into %s\n", n.Path, n.Store.Key())
	if len(skipped) > 0 {
		_, _ = color.New(color.FgYellow).Fprintf(out, "reset to defaults: %s\n", strings.Join(skipped, ", "))
	}
	return nil
}

func yamlToJSON(b []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
