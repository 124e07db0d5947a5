package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/screens"
)

const width = len("11 12 13 14 15 16 17") // an example week

// HabitMonth prints the month containing then with the days h was done
// highlighted.
func (pp *PrettyPrint) HabitMonth(then time.Time, h appdata.Habit) {
	days := DaysIn(then)
	done := make([]bool, days)
	for i := range done {
		day := time.Date(then.Year(), then.Month(), i+1, 12, 0, 0, 0, then.Location())
		done[i] = screens.DoneOn(h, day)
	}
	pp.PrintMonthDone(then, done)
}

// PrintMonthDone prints a month grid, bold on the days marked done.
func (pp *PrettyPrint) PrintMonthDone(then time.Time, done []bool) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	for i := 0; i < DaysIn(then); i++ {
		if i < len(done) && done[i] {
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
