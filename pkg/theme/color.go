package theme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/academia/pkg/appdata"
)

var (
	// ErrUnknownVar is returned for names outside the custom palette.
	ErrUnknownVar = errors.New("theme: unknown color variable")
	// ErrBadColor is returned for values that are not hex colors.
	ErrBadColor = errors.New("theme: not a hex color")
)

// ValidateColor checks that name is a palette variable and value a #rgb or
// #rrggbb color. It returns the normalized #rrggbb form.
func ValidateColor(name, value string) (string, error) {
	if !slices.Contains(appdata.ColorVars, name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownVar, name)
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, value)
	}
	return c.Hex(), nil
}

// HoverShade darkens hex for hover states, the way the built-in palettes
// pair --accent-primary with --accent-primary-hover.
func HoverShade(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return c.BlendLab(colorful.Color{}, 0.15).Clamped().Hex(), nil
}
