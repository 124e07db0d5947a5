package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	format := string(export.JSON)
	var field string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the signed in user's data",
		Example: `
academia export > backup.json
academia export -o yaml --field todos
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := export.Export{
				Format: export.Format(format),
				Field:  field,
				Store:  e.Store,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", format, "Output format. One of 'yaml' or 'json'.")
	cmd.Flags().StringVar(&field, "field", "", "Only print one top-level field, such as todos.")
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the signed in user's data from an export",
		Example: `
academia import backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a file")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := export.Import{
				Path:  path,
				Store: e.Store,
				Out:   cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
