// Package appearance shows and changes the persisted theme and custom
// palette.
package appearance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/theme"
)

// ErrUnknownTheme is returned for theme ids outside appdata.Themes.
var ErrUnknownTheme = errors.New("appearance: unknown theme")

// Color is one custom palette edit.
type Color struct {
	Name  string
	Value string
}

// Appearance applies the requested edits in order: theme, reset, colors.
// It then prints the effective palette.
type Appearance struct {
	Theme appdata.Theme
	// Reset restores the default custom palette.
	Reset  bool
	Colors []Color
	// CSS prints the resulting :root rule instead of the palette table.
	CSS bool

	Store *app.Store
	Out   io.Writer
}

func (n *Appearance) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("appearance: no store")
	}
	if n.Theme != "" {
		if !n.Theme.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownTheme, n.Theme)
		}
		if err := n.Store.Theme().Set(n.Theme); err != nil {
			return err
		}
	}
	if n.Reset {
		if err := n.Store.CustomColors().Set(appdata.DefaultCustomColors()); err != nil {
			return err
		}
	}
	if len(n.Colors) > 0 {
		if err := SetColors(n.Store, n.Colors...); err != nil {
			return err
		}
	}
	n.print()
	return nil
}

// SetColors validates every edit before writing any of them. Changing
// --accent-primary also derives --accent-primary-hover unless the same call
// sets it.
func SetColors(s *app.Store, colors ...Color) error {
	normalized := make(map[string]string, len(colors))
	for _, c := range colors {
		v, err := theme.ValidateColor(c.Name, c.Value)
		if err != nil {
			return err
		}
		normalized[c.Name] = v
	}
	if accent, ok := normalized[appdata.VarAccentPrimary]; ok {
		if _, ok := normalized[appdata.VarAccentPrimaryHover]; !ok {
			hover, err := theme.HoverShade(accent)
			if err != nil {
				return err
			}
			normalized[appdata.VarAccentPrimaryHover] = hover
		}
	}
	return s.CustomColors().Update(func(prev appdata.CustomColors) appdata.CustomColors {
		if prev == nil {
			prev = appdata.DefaultCustomColors()
		}
		for k, v := range normalized {
			prev[k] = v
		}
		return prev
	})
}

// Document returns a variable document with the store's theme applied.
func Document(s *app.Store) *theme.VarDocument {
	doc := theme.NewDocument()
	theme.Apply(doc, s.Theme().Get(), s.CustomColors().Get())
	return doc
}

func (n *Appearance) print() {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	doc := Document(n.Store)
	if n.CSS {
		_, _ = fmt.Fprint(out, doc.CSS())
		return
	}

	id := n.Store.Theme().Get()
	pp := printers.PrettyPrint{Out: out}
	pp.Title(fmt.Sprintf("%s (%s)", theme.Names[id], id))
	resolved := doc.Resolved()
	pp.Palette(appdata.ColorVars, resolved.Get)

	if id != appdata.ThemeCustom && len(n.Colors) > 0 {
		_, _ = color.New(color.Faint).Fprintln(out, "custom colors saved; select the custom theme to use them")
	}
	others := slices.DeleteFunc(slices.Clone(appdata.Themes), func(t appdata.Theme) bool { return t == id })
	_, _ = color.New(color.Faint).Fprintf(out, "other themes: %v\n", others)
}
