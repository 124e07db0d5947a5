package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/academia/pkg/commands/options"
	"tableflip.dev/academia/pkg/runner/env"
)

var (
	oo = &base.OutputOptions{}
	g  = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "academia",
		Short: base.Wrap80("A personal study, reading and writing dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, g)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSession(topLevel)
	addItems(topLevel)
	addMe(topLevel)
	addLabel(topLevel)
	addTheme(topLevel)
	addMusic(topLevel)
	addLearn(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// open loads the environment for the active identity.
func open(cmd *cobra.Command) (*env.Env, error) {
	return env.Open(cmd.Context(), env.Options{Verbose: g.Verbose})
}

// now is swapped in tests.
var now = time.Now
