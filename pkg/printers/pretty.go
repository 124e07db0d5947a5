// Package printers renders academia data for the command line.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/screens"
)

// PrettyPrint writes colored, human oriented output.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Width wraps long text; 0 means 80.
	Width int
}

var (
	spacing = strings.Repeat(" ", len("0b6e3a5c  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// id prints the short id column when ShowID is set.
func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	short := ShortID(id)
	_, _ = y.Fprint(pp.out(), short)
	_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(1, len(spacing)-len(short))))
}

// ShortID trims a uuid to its first block.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func (pp *PrettyPrint) Todos(todos ...appdata.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	for _, t := range todos {
		pp.id(t.ID)
		if t.Completed {
			_, _ = done.Fprintf(pp.out(), "✓ %s\n", t.Text)
			continue
		}
		_, _ = fmt.Fprintf(pp.out(), "• %s\n", t.Text)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Goals(goals ...appdata.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	for _, g := range goals {
		pp.id(g.ID)
		_, _ = fmt.Fprintf(pp.out(), "%s %3d%% %s", ProgressBar(g.Progress, 20), g.Progress, g.Title)
		if g.Deadline != "" {
			_, _ = faint.Fprintf(pp.out(), " (by %s)", g.Deadline)
		}
		pp.NewLine()
	}
	pp.NewLine()
}

// ProgressBar draws pct (0..100) as a bar of width cells.
func ProgressBar(pct, width int) string {
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (pp *PrettyPrint) Exams(exams ...appdata.Exam) {
	if len(exams) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	for _, e := range exams {
		pp.id(e.ID)
		_, _ = fmt.Fprintf(pp.out(), "%s  %s", e.Date, e.Subject)
		if e.Notes != "" {
			_, _ = faint.Fprintf(pp.out(), "  %s", e.Notes)
		}
		pp.NewLine()
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Habits(today time.Time, habits ...appdata.Habit) {
	if len(habits) == 0 {
		pp.none()
		return
	}
	done := color.New(color.FgGreen)
	for _, h := range habits {
		pp.id(h.ID)
		mark := "○"
		if screens.DoneOn(h, today) {
			mark = done.Sprint("●")
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s", mark, h.Name)
		if n := screens.Streak(h, today); n > 0 {
			_, _ = color.New(color.Faint).Fprintf(pp.out(), "  %d day streak", n)
		}
		pp.NewLine()
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Books(books ...appdata.Book) {
	if len(books) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	header := []any{bold.Sprint("Status"), bold.Sprint("Title"), bold.Sprint("Author")}
	if pp.ShowID {
		header = append([]any{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)
	for _, b := range books {
		row := []any{b.Status, b.Title, b.Author}
		if pp.ShowID {
			row = append([]any{ShortID(b.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Writings(ws ...appdata.Writing) {
	if len(ws) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	for _, w := range ws {
		pp.id(w.ID)
		_, _ = fmt.Fprintf(pp.out(), "%s", w.Title)
		_, _ = faint.Fprintf(pp.out(), "  %d words", screens.WordCount(w.Content))
		if w.UpdatedAt != "" {
			_, _ = faint.Fprintf(pp.out(), ", edited %s", w.UpdatedAt)
		}
		pp.NewLine()
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Journal(entries ...appdata.JournalEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	date := color.New(color.Bold, color.FgHiWhite)
	for _, e := range entries {
		pp.id(e.ID)
		_, _ = date.Fprintln(pp.out(), e.Date)
		_, _ = fmt.Fprintln(pp.out(), pp.wrap(e.Content, 2))
		pp.NewLine()
	}
}

// wrap word-wraps s to the print width and indents it by n spaces.
func (pp *PrettyPrint) wrap(s string, n int) string {
	return indent.String(wordwrap.String(s, pp.width()-n), uint(n))
}

func (pp *PrettyPrint) Me(sections []screens.Section, d appdata.MeData) {
	faint := color.New(color.Faint, color.Italic)
	for _, s := range sections {
		pp.Title(s.Label)
		v, _ := screens.MeField(&d, s.Field)
		if strings.TrimSpace(*v) == "" {
			_, _ = faint.Fprintln(pp.out(), pp.wrap(s.Placeholder, 2))
		} else {
			_, _ = fmt.Fprintln(pp.out(), pp.wrap(*v, 2))
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) Playlist(current string, items ...appdata.PlaylistItem) {
	if len(items) == 0 {
		pp.none()
		return
	}
	playing := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)
	for _, it := range items {
		pp.id(it.ID)
		if it.SpotifyURI == current {
			_, _ = playing.Fprintf(pp.out(), "▶ %s", it.Title)
		} else {
			_, _ = fmt.Fprintf(pp.out(), "  %s", it.Title)
		}
		_, _ = faint.Fprintf(pp.out(), "  %s\n", it.SpotifyURI)
	}
	pp.NewLine()
}

// Table prints two columns of key/value pairs in order.
func (pp *PrettyPrint) Table(left, right string, rows [][2]string) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width() / 2)
	tbl.AddRow(bold.Sprint(left), bold.Sprint(right))
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Palette prints each color variable with a swatch.
func (pp *PrettyPrint) Palette(vars []string, get func(string) string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, name := range vars {
		hex := get(name)
		tbl.AddRow(name, hex, Swatch(hex))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Learn(res *learn.Result) {
	link := color.New(color.FgCyan, color.Underline)
	pp.TitleWithCount("Articles", len(res.Articles), "article")
	for _, a := range res.Articles {
		_, _ = color.New(color.Bold).Fprintln(pp.out(), a.Title)
		_, _ = link.Fprintln(pp.out(), a.Link)
		if a.Snippet != "" {
			_, _ = fmt.Fprintln(pp.out(), pp.wrap(a.Snippet, 2))
		}
		pp.NewLine()
	}
	pp.TitleWithCount("Videos", len(res.Videos), "video")
	for _, v := range res.Videos {
		_, _ = color.New(color.Bold).Fprintln(pp.out(), v.Title)
		_, _ = link.Fprintln(pp.out(), v.Link)
		if v.Description != "" {
			_, _ = fmt.Fprintln(pp.out(), pp.wrap(v.Description, 2))
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) Sites(sites ...learn.Site) {
	link := color.New(color.FgCyan, color.Underline)
	for _, s := range sites {
		_, _ = color.New(color.Bold).Fprintln(pp.out(), s.Name)
		_, _ = link.Fprintln(pp.out(), s.URL)
		_, _ = fmt.Fprintln(pp.out(), pp.wrap(s.Description, 2))
		pp.NewLine()
	}
}

func (pp *PrettyPrint) Summary(s screens.Summary) {
	_, _ = color.New(color.Bold, color.FgHiYellow).Fprintln(pp.out(), s.Title)
	_, _ = color.New(color.Italic).Fprintln(pp.out(), s.Greeting)
	pp.NewLine()

	pp.TitleWithCount("Upcoming", len(s.Deadlines), "deadline")
	if len(s.Deadlines) == 0 {
		pp.none()
	} else {
		for _, d := range s.Deadlines {
			_, _ = fmt.Fprintf(pp.out(), "%s  %-4s %s", d.Date, d.Kind, d.Title)
			_, _ = color.New(color.Faint).Fprintf(pp.out(), "  in %d days\n", d.Days)
		}
		pp.NewLine()
	}
	pp.TitleWithCount("Focus", s.OpenTodos, "open todo")
	pp.Todos(s.Focus...)
	pp.Title("Goals")
	pp.Goals(s.Goals...)
	if s.HabitsDue > 0 {
		_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d habits left today\n\n", s.HabitsDue)
	}
}
