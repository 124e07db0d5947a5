package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/runner/items"
)

// DoneOptions
type DoneOptions struct {
	Progress int
	Status   string
}

func AddGoalProgressArgs(cmd *cobra.Command, o *DoneOptions) {
	cmd.Flags().IntVarP(&o.Progress, "progress", "p", 100,
		"Goal progress, 0 to 100.")
}

func AddBookStatusArgs(cmd *cobra.Command, o *DoneOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", string(appdata.BookFinished),
		"Book status: to-read, reading or finished.")
}

// Done builds the completion for date, reading only the flags cmd defines.
func (o *DoneOptions) Done(cmd *cobra.Command, date string) items.Done {
	d := items.Done{Date: date}
	if cmd.Flags().Lookup("progress") != nil {
		p := o.Progress
		d.Progress = &p
	}
	if cmd.Flags().Lookup("status") != nil {
		d.Status = appdata.BookStatus(o.Status)
	}
	return d
}
