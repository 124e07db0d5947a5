// Command demo seeds the active identity with sample study data and prints
// the resulting dashboard.
package main

import (
	"context"
	"time"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/runner/env"
	"tableflip.dev/academia/pkg/screens"
)

func main() {
	ctx := context.Background()
	e, err := env.Open(ctx, env.Options{})
	if err != nil {
		panic(err)
	}
	defer e.Close()

	if err := seed(e.Screens, time.Now()); err != nil {
		panic(err)
	}

	pp := &printers.PrettyPrint{}
	pp.Summary(e.Screens.Dashboard.Summary())
}

func seed(sc *screens.Screens, now time.Time) error {
	day := func(n int) string { return now.AddDate(0, 0, n).Format(screens.DateLayout) }

	for _, t := range []string{"Outline chapter two", "Email advisor", "Annotate Foucault reading"} {
		if _, err := sc.Study.AddTodo(t); err != nil {
			return err
		}
	}
	g, err := sc.Study.AddGoal("Submit thesis proposal", day(21))
	if err != nil {
		return err
	}
	if err := sc.Study.SetGoalProgress(g.ID, 40); err != nil {
		return err
	}
	if _, err := sc.Study.AddExam("Organic Chemistry", day(9), "Chapters 4 to 7"); err != nil {
		return err
	}
	h, err := sc.Study.AddHabit("Read for an hour")
	if err != nil {
		return err
	}
	for i := -3; i < 0; i++ {
		if err := sc.Study.CheckIn(h.ID, day(i)); err != nil {
			return err
		}
	}
	b, err := sc.Books.Add("Middlemarch", "George Eliot")
	if err != nil {
		return err
	}
	if err := sc.Books.SetStatus(b.ID, appdata.BookReading); err != nil {
		return err
	}
	if _, err := sc.Writing.Create("Notes on method", "# Method\n\nClose reading first, theory second."); err != nil {
		return err
	}
	_, err = sc.Journal.Add("Library was quiet today. Finished the first draft of the intro.")
	return err
}
