package commands

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/runner/learn"
)

func addLearn(topLevel *cobra.Command) {
	var currentEvents bool

	cmd := &cobra.Command{
		Use:   "learn [topic]",
		Short: "Ask for a short lesson on a topic",
		Long: base.Wrap80("Ask for a short lesson on a topic with suggested resources. " +
			"Without a topic it lists the learning sites. " +
			"Requires ACADEMIA_API_KEY or GEMINI_API_KEY."),
		Example: `
academia learn the french revolution
academia learn --current-events
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := learn.Learn{
				Topic:         strings.Join(args, " "),
				CurrentEvents: currentEvents,
				Screens:       e.Screens,
				Out:           cmd.OutOrStdout(),
				Width:         g.Width,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&currentEvents, "current-events", false,
		"Summarize today's notable news instead of a topic.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
