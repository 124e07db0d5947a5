package screens

import (
	"slices"
	"strings"
	"time"

	"tableflip.dev/academia/pkg/appdata"
)

// Dashboard summarizes the study data for today.
type Dashboard struct {
	Study  *Study
	Labels *Labels
	Clock  Clock
}

// Deadline is an upcoming exam or goal deadline.
type Deadline struct {
	Date  string
	Title string
	Kind  string
	Days  int
}

// Summary is what the dashboard shows.
type Summary struct {
	Title     string
	Greeting  string
	Deadlines []Deadline
	Focus     []appdata.Todo
	Goals     []appdata.Goal
	OpenTodos int
	HabitsDue int
}

const (
	maxDeadlines = 5
	maxFocus     = 5
)

// Summary builds the snapshot for the current day.
func (d *Dashboard) Summary() Summary {
	now := d.Clock.now()
	today := now.Format(DateLayout)

	var deadlines []Deadline
	for _, e := range d.Study.Exams.Get() {
		if e.Date >= today {
			deadlines = append(deadlines, Deadline{Date: e.Date, Title: e.Subject, Kind: "exam", Days: daysUntil(now, e.Date)})
		}
	}
	goals := d.Study.Goals.Get()
	for _, g := range goals {
		if g.Deadline != "" && g.Deadline >= today && g.Progress < 100 {
			deadlines = append(deadlines, Deadline{Date: g.Deadline, Title: g.Title, Kind: "goal", Days: daysUntil(now, g.Deadline)})
		}
	}
	slices.SortStableFunc(deadlines, func(a, b Deadline) int { return strings.Compare(a.Date, b.Date) })
	if len(deadlines) > maxDeadlines {
		deadlines = deadlines[:maxDeadlines]
	}

	var focus []appdata.Todo
	open := 0
	for _, t := range d.Study.Todos.Get() {
		if t.Completed {
			continue
		}
		open++
		if len(focus) < maxFocus {
			focus = append(focus, t)
		}
	}

	due := 0
	for _, h := range d.Study.Habits.Get() {
		if !DoneOn(h, now) {
			due++
		}
	}

	return Summary{
		Title:     d.Labels.Get(appdata.LabelAppTitle),
		Greeting:  d.Labels.Get(appdata.LabelDashboardGreeting),
		Deadlines: deadlines,
		Focus:     focus,
		Goals:     goals,
		OpenTodos: open,
		HabitsDue: due,
	}
}

// QuickAdd adds a todo from the dashboard.
func (d *Dashboard) QuickAdd(text string) (appdata.Todo, error) {
	return d.Study.AddTodo(text)
}

func daysUntil(now time.Time, date string) int {
	t, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return 0
	}
	y, m, dd := now.Date()
	start := time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	return int(t.Sub(start).Hours() / 24)
}
