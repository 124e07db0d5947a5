// Package theme applies the persisted theme selection to a variable document
// and turns the resulting palette into Lip Gloss styles.
package theme

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"tableflip.dev/academia/pkg/appdata"
)

// Attribute names the document attribute selecting a named palette.
const Attribute = "data-theme"

// Document is the styling root a theme is applied to: one attribute selecting
// a named palette plus inline variables that override it.
type Document interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	SetVar(name, value string)
	RemoveVar(name string)
}

// Apply makes doc reflect id. Named themes clear every custom variable and
// select their palette through the attribute; the custom theme removes the
// attribute and sets each variable from custom. Applying the same inputs
// twice leaves doc unchanged.
func Apply(doc Document, id appdata.Theme, custom appdata.CustomColors) {
	if id == appdata.ThemeCustom {
		doc.RemoveAttribute(Attribute)
		for _, name := range appdata.ColorVars {
			doc.SetVar(name, custom.Color(name))
		}
		return
	}
	for _, name := range appdata.ColorVars {
		doc.RemoveVar(name)
	}
	doc.SetAttribute(Attribute, string(id))
}

// VarDocument is an in-memory Document.
type VarDocument struct {
	attrs map[string]string
	vars  map[string]string
}

var _ Document = (*VarDocument)(nil)

// NewDocument returns an empty document, which resolves to the base palette.
func NewDocument() *VarDocument {
	return &VarDocument{attrs: map[string]string{}, vars: map[string]string{}}
}

func (d *VarDocument) SetAttribute(name, value string) { d.attrs[name] = value }
func (d *VarDocument) RemoveAttribute(name string)     { delete(d.attrs, name) }
func (d *VarDocument) SetVar(name, value string)       { d.vars[name] = value }
func (d *VarDocument) RemoveVar(name string)           { delete(d.vars, name) }

// Attribute returns the named attribute and whether it is set.
func (d *VarDocument) Attribute(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// Vars returns a copy of the inline variables.
func (d *VarDocument) Vars() map[string]string {
	return maps.Clone(d.vars)
}

// Resolved returns the effective palette: the palette selected by the
// attribute (or the base palette) overlaid with inline variables.
func (d *VarDocument) Resolved() Palette {
	base := Base
	if id, ok := d.attrs[Attribute]; ok {
		if p, ok := Palettes[appdata.Theme(id)]; ok {
			base = p
		}
	}
	out := base.clone()
	for k, v := range d.vars {
		out[k] = v
	}
	return out
}

// CSS renders the document as a :root rule.
func (d *VarDocument) CSS() string {
	var b strings.Builder
	b.WriteString(":root")
	if id, ok := d.attrs[Attribute]; ok {
		fmt.Fprintf(&b, "[%s=%q]", Attribute, id)
	}
	b.WriteString(" {\n")
	names := make([]string, 0, len(d.vars))
	for k := range d.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", k, d.vars[k])
	}
	b.WriteString("}\n")
	return b.String()
}
