package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions apply to every command.
type GlobalOptions struct {
	Verbose bool
	Width   int
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log at debug level.")
	cmd.PersistentFlags().IntVar(&o.Width, "width", 80,
		"Wrap long text at this many columns.")
}
