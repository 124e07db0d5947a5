package screens

import (
	"slices"
	"strings"
	"time"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
)

// Study manages todos, goals, exams and habits.
type Study struct {
	Todos  app.Slice[[]appdata.Todo]
	Goals  app.Slice[[]appdata.Goal]
	Exams  app.Slice[[]appdata.Exam]
	Habits app.Slice[[]appdata.Habit]
	Labels *Labels
	Clock  Clock
}

func (s *Study) Title() string { return s.Labels.Get(appdata.LabelStudyHubTitle) }

func todoID(t appdata.Todo) string   { return t.ID }
func goalID(g appdata.Goal) string   { return g.ID }
func examID(e appdata.Exam) string   { return e.ID }
func habitID(h appdata.Habit) string { return h.ID }

// AddTodo appends an open todo.
func (s *Study) AddTodo(text string) (appdata.Todo, error) {
	text, err := required(text)
	if err != nil {
		return appdata.Todo{}, err
	}
	todo := appdata.Todo{ID: newID(), Text: text, CreatedAt: s.Clock.now().UTC().Format(time.RFC3339)}
	return todo, s.Todos.Update(func(prev []appdata.Todo) []appdata.Todo {
		return append(prev, todo)
	})
}

// ToggleTodo flips the completion of todo id.
func (s *Study) ToggleTodo(id string) error {
	return s.Todos.Try(func(prev []appdata.Todo) ([]appdata.Todo, error) {
		return edit(prev, todoID, id, func(t *appdata.Todo) error {
			t.Completed = !t.Completed
			return nil
		})
	})
}

func (s *Study) DeleteTodo(id string) error {
	return s.Todos.Try(func(prev []appdata.Todo) ([]appdata.Todo, error) {
		return remove(prev, todoID, id)
	})
}

// ClearCompleted drops every completed todo.
func (s *Study) ClearCompleted() error {
	return s.Todos.Update(func(prev []appdata.Todo) []appdata.Todo {
		return slices.DeleteFunc(prev, func(t appdata.Todo) bool { return t.Completed })
	})
}

// AddGoal appends a goal at 0% progress. deadline may be empty.
func (s *Study) AddGoal(title, deadline string) (appdata.Goal, error) {
	title, err := required(title)
	if err != nil {
		return appdata.Goal{}, err
	}
	if deadline != "" {
		if deadline, err = parseDate(deadline); err != nil {
			return appdata.Goal{}, err
		}
	}
	goal := appdata.Goal{ID: newID(), Title: title, Deadline: deadline}
	return goal, s.Goals.Update(func(prev []appdata.Goal) []appdata.Goal {
		return append(prev, goal)
	})
}

// SetGoalProgress sets the progress of goal id, clamped to 0..100.
func (s *Study) SetGoalProgress(id string, progress int) error {
	progress = max(0, min(100, progress))
	return s.Goals.Try(func(prev []appdata.Goal) ([]appdata.Goal, error) {
		return edit(prev, goalID, id, func(g *appdata.Goal) error {
			g.Progress = progress
			return nil
		})
	})
}

func (s *Study) DeleteGoal(id string) error {
	return s.Goals.Try(func(prev []appdata.Goal) ([]appdata.Goal, error) {
		return remove(prev, goalID, id)
	})
}

// AddExam records an exam on date (YYYY-MM-DD). Exams stay sorted by date.
func (s *Study) AddExam(subject, date, notes string) (appdata.Exam, error) {
	subject, err := required(subject)
	if err != nil {
		return appdata.Exam{}, err
	}
	if date, err = parseDate(date); err != nil {
		return appdata.Exam{}, err
	}
	exam := appdata.Exam{ID: newID(), Subject: subject, Date: date, Notes: notes}
	return exam, s.Exams.Update(func(prev []appdata.Exam) []appdata.Exam {
		next := append(prev, exam)
		slices.SortStableFunc(next, func(a, b appdata.Exam) int { return strings.Compare(a.Date, b.Date) })
		return next
	})
}

func (s *Study) DeleteExam(id string) error {
	return s.Exams.Try(func(prev []appdata.Exam) ([]appdata.Exam, error) {
		return remove(prev, examID, id)
	})
}

// AddHabit starts tracking a habit.
func (s *Study) AddHabit(name string) (appdata.Habit, error) {
	name, err := required(name)
	if err != nil {
		return appdata.Habit{}, err
	}
	habit := appdata.Habit{ID: newID(), Name: name, CompletedDates: []string{}}
	return habit, s.Habits.Update(func(prev []appdata.Habit) []appdata.Habit {
		return append(prev, habit)
	})
}

// CheckIn toggles whether habit id was done on date. An empty date means
// today.
func (s *Study) CheckIn(id, date string) error {
	if date == "" {
		date = s.Clock.now().Format(DateLayout)
	} else {
		var err error
		if date, err = parseDate(date); err != nil {
			return err
		}
	}
	return s.Habits.Try(func(prev []appdata.Habit) ([]appdata.Habit, error) {
		return edit(prev, habitID, id, func(h *appdata.Habit) error {
			if i := slices.Index(h.CompletedDates, date); i >= 0 {
				h.CompletedDates = slices.Delete(h.CompletedDates, i, i+1)
				return nil
			}
			h.CompletedDates = append(h.CompletedDates, date)
			slices.Sort(h.CompletedDates)
			return nil
		})
	})
}

func (s *Study) DeleteHabit(id string) error {
	return s.Habits.Try(func(prev []appdata.Habit) ([]appdata.Habit, error) {
		return remove(prev, habitID, id)
	})
}

// Streak counts consecutive days ending today, or yesterday when today is
// not checked yet, on which h was done.
func Streak(h appdata.Habit, today time.Time) int {
	done := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		done[d] = true
	}
	day := today
	if !done[day.Format(DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for done[day.Format(DateLayout)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// DoneOn reports whether h was checked in on day.
func DoneOn(h appdata.Habit, day time.Time) bool {
	return slices.Contains(h.CompletedDates, day.Format(DateLayout))
}
