package commands

import (
	"errors"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/academia/pkg/commands/options"
	"tableflip.dev/academia/pkg/runner/add"
	"tableflip.dev/academia/pkg/runner/complete"
	"tableflip.dev/academia/pkg/runner/edit"
	"tableflip.dev/academia/pkg/runner/get"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/runner/strike"
)

// kindCommand describes how one list kind is exposed.
type kindCommand struct {
	kind    items.Kind
	short   string
	noun    string
	example string
	// completable kinds get a done subcommand.
	completable bool
	// detail kinds accept an id on list to show one item.
	detail bool
}

var kindCommands = []kindCommand{{
	kind:        items.Todo,
	short:       "Manage study todos",
	noun:        "task",
	completable: true,
	example: `
academia todo add read chapter 3
academia todo done 3f2a
academia todo rm --completed
`,
}, {
	kind:        items.Goal,
	short:       "Manage goals and their progress",
	noun:        "goal",
	completable: true,
	example: `
academia goal add finish thesis draft --on=2025-6-1
academia goal done 7c1e --progress 40
`,
}, {
	kind:  items.Exam,
	short: "Manage upcoming exams",
	noun:  "subject",
	example: `
academia exam add organic chemistry --on=5/14 --notes "chapters 1-6"
academia exam list
`,
}, {
	kind:        items.Habit,
	short:       "Manage daily habits",
	noun:        "habit",
	completable: true,
	detail:      true,
	example: `
academia habit add latin vocabulary
academia habit done 1b9d
academia habit list 1b9d
`,
}, {
	kind:        items.Book,
	short:       "Manage the reading list",
	noun:        "title",
	completable: true,
	example: `
academia book add the name of the rose --author Eco
academia book done 52aa --status reading
`,
}, {
	kind:  items.Journal,
	short: "Keep a journal",
	noun:  "entry",
	example: `
academia journal add a long walk by the river
academia journal list
`,
}, {
	kind:   items.Writing,
	short:  "Draft longer writing",
	noun:   "title",
	detail: true,
	example: `
academia writing add essay on memory --file draft.md
academia writing list 9e07
academia writing edit 9e07 --title "On Memory"
`,
}}

func addItems(topLevel *cobra.Command) {
	for _, kc := range kindCommands {
		addKind(topLevel, kc)
	}
}

func addKind(topLevel *cobra.Command, kc kindCommand) {
	cmd := &cobra.Command{
		Use:     string(kc.kind),
		Aliases: []string{string(kc.kind) + "s"},
		Short:   kc.short,
		Example: kc.example,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addKindAdd(cmd, kc)
	addKindList(cmd, kc)
	if kc.completable {
		addKindDone(cmd, kc)
	}
	addKindRm(cmd, kc)
	if kc.kind == items.Writing {
		addWritingEdit(cmd)
	}

	topLevel.AddCommand(cmd)
}

func addKindAdd(topLevel *cobra.Command, kc kindCommand) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("add <%s>", kc.noun),
		Short: fmt.Sprintf("Add a %s", kc.kind),
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return fmt.Errorf("requires a %s", kc.noun)
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			date, err := on.Date(now())
			if err != nil {
				return oo.HandleError(err)
			}
			body, err := ao.Body()
			if err != nil {
				return oo.HandleError(err)
			}

			s := add.Add{
				Kind: kc.kind,
				Fields: items.Fields{
					Text:    text,
					Date:    date,
					Notes:   ao.Notes,
					Author:  ao.Author,
					Content: body,
				},
				ShowID:  io.ShowID,
				Screens: e.Screens,
				Now:     now(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	switch kc.kind {
	case items.Goal:
		options.AddOnArgs(cmd, on, "Target date for the goal.")
	case items.Exam:
		options.AddOnArgs(cmd, on, "Date of the exam.")
		options.AddExamArgs(cmd, ao)
	case items.Book:
		options.AddBookArgs(cmd, ao)
	case items.Writing:
		options.AddContentArgs(cmd, ao)
	}
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addKindList(topLevel *cobra.Command, kc kindCommand) {
	io := &options.IDOptions{}
	var id string

	use := "list"
	if kc.detail {
		use = "list [id]"
	}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{"ls", "get"},
		Short:   fmt.Sprintf("List %ss", kc.kind),
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
			case kc.detail && len(args) == 1:
				id = args[0]
			default:
				return errors.New("too many arguments")
			}
			return nil
		},
		ValidArgsFunction: idCompletions(kc.kind),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := get.Get{
				ShowID:  io.ShowID,
				Kind:    kc.kind,
				ID:      id,
				Screens: e.Screens,
				Now:     now(),
				Width:   g.Width,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addKindDone(topLevel *cobra.Command, kc kindCommand) {
	do := &options.DoneOptions{}
	on := &options.OnOptions{}
	var id string

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   fmt.Sprintf("Complete a %s", kc.kind),
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return fmt.Errorf("requires a %s id", kc.kind)
			}
			id = args[0]
			return nil
		},
		ValidArgsFunction: idCompletions(kc.kind),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			date, err := on.Date(now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := complete.Complete{
				Kind:    kc.kind,
				ID:      id,
				Done:    do.Done(cmd, date),
				Screens: e.Screens,
				Now:     now(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	switch kc.kind {
	case items.Habit:
		options.AddOnArgs(cmd, on, "Day to check in, defaults to today.")
	case items.Goal:
		options.AddGoalProgressArgs(cmd, do)
	case items.Book:
		options.AddBookStatusArgs(cmd, do)
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addKindRm(topLevel *cobra.Command, kc kindCommand) {
	var (
		id        string
		completed bool
	)

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"strike", "delete"},
		Short:   fmt.Sprintf("Remove a %s", kc.kind),
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if completed && len(args) == 0 {
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("requires a %s id", kc.kind)
			}
			id = args[0]
			return nil
		},
		ValidArgsFunction: idCompletions(kc.kind),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := strike.Strike{
				Kind:      kc.kind,
				ID:        id,
				Completed: completed,
				Screens:   e.Screens,
				Now:       now(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	if kc.kind == items.Todo {
		cmd.Flags().BoolVar(&completed, "completed", false,
			"Remove every completed todo.")
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addWritingEdit(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	var (
		id    string
		title string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a writing's title or body",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a writing id")
			}
			id = args[0]
			return nil
		},
		ValidArgsFunction: idCompletions(items.Writing),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := edit.Writing{
				ID:      id,
				Screens: e.Screens,
				Out:     cmd.OutOrStdout(),
				Width:   g.Width,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("content") || cmd.Flags().Changed("file") {
				body, err := ao.Body()
				if err != nil {
					return oo.HandleError(err)
				}
				s.Content = &body
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title.")
	options.AddContentArgs(cmd, ao)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
