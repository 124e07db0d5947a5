package commands

import (
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/runner/appearance"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Example: `
academia theme show --css
academia theme set midnight-dusk
academia theme color --accent-primary=#8b5a2b
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addThemeShow(cmd)
	addThemeSet(cmd)
	addThemeColor(cmd)
	topLevel.AddCommand(cmd)
}

func runAppearance(cmd *cobra.Command, a appearance.Appearance) error {
	e, err := open(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	a.Store = e.Store
	a.Out = cmd.OutOrStdout()
	err = a.Do(cmd.Context())
	return oo.HandleError(err)
}

func addThemeShow(topLevel *cobra.Command) {
	var css bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAppearance(cmd, appearance.Appearance{CSS: css})
		},
	}

	cmd.Flags().BoolVar(&css, "css", false, "Print the :root rule instead of the table.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addThemeSet(topLevel *cobra.Command) {
	valid := make([]string, 0, len(appdata.Themes))
	for _, t := range appdata.Themes {
		valid = append(valid, string(t))
	}

	cmd := &cobra.Command{
		Use:       "set <theme>",
		Short:     "Select a theme: " + strings.Join(valid, ", "),
		ValidArgs: valid,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return fmt.Errorf("requires one of %s", strings.Join(valid, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppearance(cmd, appearance.Appearance{Theme: appdata.Theme(args[0])})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addThemeColor(topLevel *cobra.Command) {
	var reset bool

	cmd := &cobra.Command{
		Use:   "color <--var=value>...",
		Short: "Edit the custom palette",
		Long: base.Wrap80("Edit the custom palette. Each argument is a CSS variable and a hex color. " +
			"Changing --accent-primary also updates its hover shade. " +
			"Variables: " + strings.Join(appdata.ColorVars, ", ")),
		Example: `
academia theme color --bg-primary=#101010 --text-primary=#eeeeee
academia theme color --reset
`,
		// The arguments look like flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			colors, err := parseColors(args, &reset)
			if err != nil {
				return err
			}
			if !reset && len(colors) == 0 {
				return cmd.Help()
			}
			return runAppearance(cmd, appearance.Appearance{Reset: reset, Colors: colors})
		},
	}

	topLevel.AddCommand(cmd)
}

// parseColors reads name=value pairs. --reset is the only flag recognized.
func parseColors(args []string, reset *bool) ([]appearance.Color, error) {
	var colors []appearance.Color
	for _, arg := range args {
		if arg == "--reset" {
			*reset = true
			continue
		}
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("expected --var=#hex, got %q", arg)
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		colors = append(colors, appearance.Color{Name: name, Value: value})
	}
	return colors, nil
}
