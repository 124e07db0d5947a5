package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/runner/edit"
	"tableflip.dev/academia/pkg/screens"
)

func addMe(topLevel *cobra.Command) {
	var (
		field string
		value string
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "me [section] [text]",
		Short: "Show or edit your values, vision, strengths and achievements",
		Example: `
academia me
academia me vision become a patient reader
academia me --clear
`,
		ValidArgs: screens.MeFields,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				return errors.New("requires text for the section")
			}
			if len(args) > 1 {
				field = args[0]
				value = strings.Join(args[1:], " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := edit.Me{
				Field:   field,
				Value:   value,
				Clear:   clear,
				Screens: e.Screens,
				Out:     cmd.OutOrStdout(),
				Width:   g.Width,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Empty every section.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLabel(topLevel *cobra.Command) {
	var (
		key   string
		value string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "label [key] [text]",
		Short: "Show or rename headings",
		Example: `
academia label
academia label booksTitle The Shelf
academia label --reset
`,
		ValidArgs: appdata.LabelKeys,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				return errors.New("requires text for the label")
			}
			if len(args) > 1 {
				key = args[0]
				value = strings.Join(args[1:], " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := edit.Label{
				Key:     key,
				Value:   value,
				Reset:   reset,
				Screens: e.Screens,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Restore every default heading.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
