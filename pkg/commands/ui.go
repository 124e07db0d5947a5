package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/runner/env"
	"tableflip.dev/academia/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
academia ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so logs go to the log file.
			e, err := env.Open(cmd.Context(), env.Options{Verbose: g.Verbose, LogToFile: true})
			if err != nil {
				return err
			}
			defer e.Close()

			i := ui.UI{Env: e}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
