package options

import (
	"io"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

// AddOptions holds the optional fields of new items.
type AddOptions struct {
	Notes   string
	Author  string
	Link    string
	Content string
	File    string
}

func AddExamArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Notes for the exam.")
}

func AddBookArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Author, "author", "a", "",
		"Author of the book.")
}

func AddTrackArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Link, "link", "l", "",
		base.Wrap80("Spotify link or URI, example: --link=https://open.spotify.com/track/<id>."))
}

func AddContentArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Content, "content", "",
		"Body text.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Read the body from a file, - for stdin.")
}

// Body returns the content flag, or the file's text when --file is set.
func (o *AddOptions) Body() (string, error) {
	switch o.File {
	case "":
		return o.Content, nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(o.File)
	return string(b), err
}
