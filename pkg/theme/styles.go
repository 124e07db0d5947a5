package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/academia/pkg/appdata"
)

// Styles centralizes the Lip Gloss styles of the TUI, built from a resolved
// palette.
type Styles struct {
	App     lipgloss.Style
	Sidebar SidebarStyles
	Panel   PanelStyles
	Footer  FooterStyles
	Modal   ModalStyles
}

// SidebarStyles groups the navigation column.
type SidebarStyles struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Item     lipgloss.Style
	Active   lipgloss.Style
}

// PanelStyles styles framed panels and headings.
type PanelStyles struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Done   lipgloss.Style
}

// FooterStyles groups the bottom status and command bar.
type FooterStyles struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// ModalStyles styles centered overlays such as the login form.
type ModalStyles struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// NewStyles builds styles from p.
func NewStyles(p Palette) Styles {
	c := func(name string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Get(name)))
	}
	bg := lipgloss.Color(p.Get(appdata.VarBgPrimary))
	panelBg := lipgloss.Color(p.Get(appdata.VarBgSecondary))
	header := c(appdata.VarTextHeader).Bold(true)

	return Styles{
		App: c(appdata.VarTextPrimary).Background(bg),
		Sidebar: SidebarStyles{
			Frame: lipgloss.NewStyle().
				Background(panelBg).
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(lipgloss.Color(p.Get(appdata.VarBorderPrimary))).
				Padding(1, 2),
			Title:    header,
			Subtitle: c(appdata.VarTextMuted).Italic(true),
			Item:     c(appdata.VarTextSecondary),
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Get(appdata.VarTextPrimary))).
				Background(lipgloss.Color(p.Get(appdata.VarAccentPrimary))).
				Bold(true),
		},
		Panel: PanelStyles{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(p.Get(appdata.VarBorderSecondary))).
				Padding(0, 1),
			Title:  header,
			Body:   c(appdata.VarTextPrimary),
			Muted:  c(appdata.VarTextMuted),
			Accent: c(appdata.VarAccentSecondary),
			Done:   c(appdata.VarTextMuted).Strikethrough(true),
		},
		Footer: FooterStyles{
			Help:   c(appdata.VarTextMuted),
			Status: c(appdata.VarTextSecondary),
			Error:  c(appdata.VarAccentPrimaryHover).Bold(true),
			Prompt: c(appdata.VarAccentPrimary).Bold(true),
		},
		Modal: ModalStyles{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(p.Get(appdata.VarAccentPrimary))).
				Padding(1, 2),
			Title: header,
			Body:  c(appdata.VarTextPrimary),
		},
	}
}

// For applies id and custom to a fresh document and returns its styles.
func For(id appdata.Theme, custom appdata.CustomColors) Styles {
	doc := NewDocument()
	Apply(doc, id, custom)
	return NewStyles(doc.Resolved())
}
