package theme

import (
	"maps"

	"tableflip.dev/academia/pkg/appdata"
)

// Palette maps the color variables to values.
type Palette map[string]string

func (p Palette) clone() Palette { return maps.Clone(p) }

// Get returns the value of name.
func (p Palette) Get(name string) string { return p[name] }

// Base is the palette in effect when no theme attribute is set. It matches
// dark-academia.
var Base = Palette(appdata.DefaultCustomColors())

// Palettes holds the palette of every named theme.
var Palettes = map[appdata.Theme]Palette{
	appdata.ThemeDarkAcademia: Base,
	appdata.ThemeLightAcademia: {
		appdata.VarBgPrimary:          "#f5f0e6",
		appdata.VarBgSecondary:        "#ebe3d3",
		appdata.VarBgInteractive:      "#ddd2bc",
		appdata.VarBorderPrimary:      "#d6c9ae",
		appdata.VarBorderSecondary:    "#c2b394",
		appdata.VarTextPrimary:        "#3b3228",
		appdata.VarTextSecondary:      "#5e5142",
		appdata.VarTextMuted:          "#8a7a66",
		appdata.VarTextHeader:         "#6b3e26",
		appdata.VarAccentPrimary:      "#8b5e34",
		appdata.VarAccentPrimaryHover: "#6f4a28",
		appdata.VarAccentSecondary:    "#a47148",
	},
	appdata.ThemeMidnightDusk: {
		appdata.VarBgPrimary:          "#0f172a",
		appdata.VarBgSecondary:        "#1e293b",
		appdata.VarBgInteractive:      "#334155",
		appdata.VarBorderPrimary:      "#334155",
		appdata.VarBorderSecondary:    "#475569",
		appdata.VarTextPrimary:        "#e2e8f0",
		appdata.VarTextSecondary:      "#94a3b8",
		appdata.VarTextMuted:          "#64748b",
		appdata.VarTextHeader:         "#c4b5fd",
		appdata.VarAccentPrimary:      "#7c3aed",
		appdata.VarAccentPrimaryHover: "#6d28d9",
		appdata.VarAccentSecondary:    "#a78bfa",
	},
	appdata.ThemeEvergreen: {
		appdata.VarBgPrimary:          "#14201b",
		appdata.VarBgSecondary:        "#1c2e26",
		appdata.VarBgInteractive:      "#2a4236",
		appdata.VarBorderPrimary:      "#2a4236",
		appdata.VarBorderSecondary:    "#3b5a4a",
		appdata.VarTextPrimary:        "#e3ede6",
		appdata.VarTextSecondary:      "#a3b8ab",
		appdata.VarTextMuted:          "#6f8a7b",
		appdata.VarTextHeader:         "#bfe3c8",
		appdata.VarAccentPrimary:      "#2f855a",
		appdata.VarAccentPrimaryHover: "#276749",
		appdata.VarAccentSecondary:    "#68d391",
	},
}

// Names returns the display name of every theme id.
var Names = map[appdata.Theme]string{
	appdata.ThemeDarkAcademia:  "Dark Academia",
	appdata.ThemeLightAcademia: "Light Academia",
	appdata.ThemeMidnightDusk:  "Midnight Dusk",
	appdata.ThemeEvergreen:     "Evergreen",
	appdata.ThemeCustom:        "Custom",
}
