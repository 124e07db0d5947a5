package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/commands/options"
	"tableflip.dev/academia/pkg/runner/session"
)

func addSession(topLevel *cobra.Command) {
	addSessionAction(topLevel, session.Login, "Sign in; your data follows the account",
		"academia login --email ada@example.com --password-stdin < pw.txt")
	addSessionAction(topLevel, session.Signup, "Create an account and sign in",
		"academia signup --email ada@example.com --password hunter2")
	addSessionAction(topLevel, session.Logout, "Sign out and go back to guest data",
		"academia logout")
	addSessionAction(topLevel, session.WhoAmI, "Show who is signed in and where data is kept",
		"academia whoami")
}

func addSessionAction(topLevel *cobra.Command, action session.Action, short, example string) {
	so := &options.SessionOptions{}
	credentials := action == session.Login || action == session.Signup

	cmd := &cobra.Command{
		Use:     string(action),
		Short:   short,
		Example: "\n" + example + "\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := session.Session{Action: action, Out: cmd.OutOrStdout()}
			if credentials {
				var err error
				if s.Email, s.Password, err = so.Credentials(); err != nil {
					return err
				}
			}

			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s.Provider = e.Identity
			s.Store = e.Store
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	if credentials {
		options.AddSessionArgs(cmd, so)
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
