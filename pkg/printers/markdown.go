package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/appdata"
)

// Writing prints one piece, rendering its content as markdown.
func (pp *PrettyPrint) Writing(w appdata.Writing) error {
	pp.Title(w.Title)
	body, err := Markdown(w.Content, pp.width())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(pp.out(), body)
	return nil
}

// Markdown renders md for the terminal. Without a terminal it is rendered
// without styling.
func Markdown(md string, width int) (string, error) {
	style := "dark"
	if color.NoColor || !IsTerminal() {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		return "", fmt.Errorf("printers: markdown renderer: %w", err)
	}
	out, err := renderer.Render(strings.TrimSpace(md))
	if err != nil {
		return "", fmt.Errorf("printers: render markdown: %w", err)
	}
	return out, nil
}

// Swatch is a small block painted hex, or nothing when color is off.
func Swatch(hex string) string {
	if color.NoColor {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
