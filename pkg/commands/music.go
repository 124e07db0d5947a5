package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/commands/options"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/runner/music"
)

func addMusic(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Keep a study playlist of Spotify links",
		Example: `
academia music load https://open.spotify.com/playlist/37i9dQZF1DX8NTLI2TtZa6
academia music add lofi beats --link spotify:album:4aawyAB9vmqN3uQ7FjRGTy
academia music play 2c4d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMusicAction(cmd, music.Load, "load <link>", "Put a link in the player")
	addMusicAction(cmd, music.Add, "add [title]", "Save a link to the playlist; no title just loads it")
	addMusicAction(cmd, music.List, "list", "Show the playlist")
	addMusicAction(cmd, music.Play, "play <id>", "Load a playlist item")
	addMusicAction(cmd, music.Rm, "rm <id>", "Remove a playlist item")
	addMusicAction(cmd, music.Embed, "embed", "Print the player URL for what is loaded")
	topLevel.AddCommand(cmd)
}

func addMusicAction(topLevel *cobra.Command, action music.Action, use, short string) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}
	m := music.Music{Action: action}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			switch action {
			case music.Load:
				if len(args) != 1 {
					return errors.New("requires a link")
				}
				m.Link = args[0]
			case music.Add:
				m.Title = strings.Join(args, " ")
			case music.Play, music.Rm:
				if len(args) != 1 {
					return errors.New("requires a playlist item id")
				}
				m.ID = args[0]
			default:
				return cobra.NoArgs(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := m
			if action == music.Add {
				s.Link = ao.Link
			}
			s.ShowID = io.ShowID
			s.Screens = e.Screens
			s.Out = cmd.OutOrStdout()
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	switch action {
	case music.Add:
		options.AddTrackArgs(cmd, ao)
		_ = cmd.MarkFlagRequired("link")
	case music.Play, music.Rm:
		cmd.ValidArgsFunction = idCompletions(items.Track)
	}
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
