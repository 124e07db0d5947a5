package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/learn"
	"tableflip.dev/academia/pkg/printers"
	"tableflip.dev/academia/pkg/router"
	"tableflip.dev/academia/pkg/runner/items"
	learnrunner "tableflip.dev/academia/pkg/runner/learn"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/tui/components/panel"
)

// row is one selectable item of the current list.
type row struct {
	id   string
	line panel.Line
}

var studyKinds = [sectionCount]items.Kind{items.Todo, items.Goal, items.Exam, items.Habit}

// kind is the list the cursor moves over in the current view.
func (m *Model) kind() (items.Kind, bool) {
	switch m.router.Current() {
	case router.Study:
		return studyKinds[m.section], true
	case router.Writing:
		return items.Writing, true
	case router.Books:
		return items.Book, true
	case router.Journal:
		return items.Journal, true
	case router.Music:
		return items.Track, true
	}
	return "", false
}

func (m *Model) rowCount() int {
	if m.opts.Screens == nil {
		return 0
	}
	if m.router.Current() == router.Me {
		return len(screens.MeFields)
	}
	return len(m.rows())
}

// rows lists the current view's items in display order.
func (m *Model) rows() []row {
	k, ok := m.kind()
	if !ok || m.opts.Screens == nil {
		return nil
	}
	return m.rowsOf(k)
}

func (m *Model) rowsOf(k items.Kind) []row {
	sc := m.opts.Screens
	now := m.now()
	var out []row
	switch k {
	case items.Todo:
		for _, t := range sc.Study.Todos.Get() {
			out = append(out, row{t.ID, panel.Line{Text: t.Text, Done: t.Completed}})
		}
	case items.Goal:
		for _, g := range sc.Study.Goals.Get() {
			text := fmt.Sprintf("%s %3d%%  %s", printers.ProgressBar(g.Progress, 10), g.Progress, g.Title)
			if g.Deadline != "" {
				text += "  by " + g.Deadline
			}
			out = append(out, row{g.ID, panel.Line{Text: text, Done: g.Progress >= 100}})
		}
	case items.Exam:
		today := now.Format(screens.DateLayout)
		for _, e := range sc.Study.Exams.Get() {
			text := e.Date + "  " + e.Subject
			if e.Notes != "" {
				text += "  (" + e.Notes + ")"
			}
			out = append(out, row{e.ID, panel.Line{Text: text, Muted: e.Date < today}})
		}
	case items.Habit:
		for _, h := range sc.Study.Habits.Get() {
			text := fmt.Sprintf("%s  streak %d", h.Name, screens.Streak(h, now))
			out = append(out, row{h.ID, panel.Line{Text: text, Done: screens.DoneOn(h, now)}})
		}
	case items.Book:
		shelves := sc.Books.Shelves()
		for _, status := range bookCycle {
			for _, b := range shelves[status] {
				text := fmt.Sprintf("[%s] %s", b.Status, b.Title)
				if b.Author != "" {
					text += " by " + b.Author
				}
				out = append(out, row{b.ID, panel.Line{Text: text, Done: b.Status == appdata.BookFinished}})
			}
		}
	case items.Journal:
		for _, e := range sc.Journal.List() {
			out = append(out, row{e.ID, panel.Line{Text: e.Date + "  " + firstLine(e.Content)}})
		}
	case items.Writing:
		for _, w := range sc.Writing.Writings.Get() {
			out = append(out, row{w.ID, panel.Line{Text: w.Title + "  " + shortStamp(w.UpdatedAt)}})
		}
	case items.Track:
		current := sc.Music.Current.Get()
		for _, p := range sc.Music.Playlist.Get() {
			text := p.Title
			if p.SpotifyURI == current {
				text = "♪ " + text
			}
			out = append(out, row{p.ID, panel.Line{Text: text}})
		}
	}
	return out
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func shortStamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Local().Format("Jan 2 15:04")
}

func phaseName(p screens.Phase) string {
	switch p {
	case screens.ShortBreak:
		return "a short break"
	case screens.LongBreak:
		return "a long break"
	}
	return "focus"
}

func renderMarkdown(md string, width int) string {
	out, err := printers.Markdown(md, width)
	if err != nil {
		return wordwrap.String(md, width)
	}
	return out
}

func (m *Model) newPanel(width int) panel.Model {
	p := panel.New(m.styles.Panel, m.styles.Sidebar.Active)
	p.SetWidth(width)
	return p
}

func (m *Model) panelView(title string, lines []panel.Line, width int, selected int) string {
	p := m.newPanel(width)
	if len(lines) == 0 {
		lines = []panel.Line{{Text: "nothing yet", Muted: true}}
		selected = -1
	}
	p.SetContent(title, lines)
	p.Select(selected, selected >= 0)
	view, _ := p.View()
	return view
}

func lines(rows []row) []panel.Line {
	out := make([]panel.Line, len(rows))
	for i, r := range rows {
		out[i] = r.line
	}
	return out
}

// View renders the sidebar, the current screen and the footer, or an
// overlay in place of the screen.
func (m *Model) View() string {
	if m.opts.Screens == nil {
		return "academia: " + errServiceUnavailable.Error()
	}
	w, h := m.mainSize()

	var main string
	switch m.mode {
	case modeLogin:
		view, _ := m.login.View()
		main = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, view)
	case modeHelp:
		view, _ := m.help.View()
		main = view
	default:
		main = m.renderView(w)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(h), " ", main)
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter()))
}

func (m *Model) renderSidebar(height int) string {
	sb := m.styles.Sidebar
	labels := m.opts.Screens.Labels
	out := []string{
		sb.Title.Render(labels.Get(appdata.LabelAppTitle)),
		sb.Subtitle.Render(labels.Get(appdata.LabelSidebarSubtitle)),
		"",
	}
	current := m.router.Current()
	for i, v := range router.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == current {
			out = append(out, sb.Active.Render(label))
			continue
		}
		out = append(out, sb.Item.Render(label))
	}

	who := "guest"
	if m.opts.Store != nil {
		if id := m.opts.Store.Identity(); id != nil {
			who = id.Email
		}
		if m.opts.Store.Degraded() {
			who += " (not saving)"
		}
	}
	out = append(out, "", sb.Subtitle.Render(who))

	frame := sb.Frame.Width(sidebarWidth)
	if height > 0 {
		frame = frame.Height(height)
	}
	return frame.Render(strings.Join(out, "\n"))
}

func (m *Model) renderFooter() string {
	f := m.styles.Footer
	switch m.mode {
	case modeCommand:
		return f.Prompt.Render(":") + m.input.View()
	case modeInsert:
		return f.Prompt.Render(m.prompt()) + m.input.View()
	}
	if m.status != "" {
		if m.statusErr {
			return f.Error.Render(m.status)
		}
		return f.Status.Render(m.status)
	}
	return f.Help.Render(m.hint())
}

func (m *Model) prompt() string {
	switch m.action {
	case actionSearch:
		return "Search: "
	case actionLoadMusic:
		return "Link: "
	case actionSaveTrack:
		return "Title: "
	case actionEditMe:
		return screens.MeFields[m.cursor] + ": "
	}
	if k, ok := m.kind(); ok {
		switch k {
		case items.Exam:
			return "Exam (subject YYYY-MM-DD): "
		case items.Goal:
			return "Goal (title [YYYY-MM-DD]): "
		case items.Book:
			return "Book (title by author): "
		}
		return "Add " + string(k) + ": "
	}
	return "Add todo: "
}

func (m *Model) hint() string {
	base := "tab: next screen  ?: help  q: quit"
	switch m.router.Current() {
	case router.Dashboard:
		return "a: quick add todo  " + base
	case router.Study:
		return "h/l: list  a: add  x: done  d: delete  " + base
	case router.Writing:
		return "a: new  enter: read  d: delete  " + base
	case router.Books:
		return "a: add  x: next shelf  d: delete  " + base
	case router.Journal:
		return "a: write  d: delete  " + base
	case router.Learn:
		return "a: search  c: current events  " + base
	case router.Pomodoro:
		return "space: start/pause  r: reset  s: skip  " + base
	case router.Me:
		return "e: edit section  " + base
	case router.Music:
		return "a: load link  p: save to playlist  enter: play  d: delete  " + base
	}
	return base
}

func (m *Model) renderView(width int) string {
	switch m.router.Current() {
	case router.Study:
		return m.renderStudy(width)
	case router.Writing:
		return m.renderWriting(width)
	case router.Books:
		return m.renderList(m.opts.Screens.Books.Title(), width)
	case router.Learn:
		return m.renderLearn(width)
	case router.Pomodoro:
		return m.renderPomodoro(width)
	case router.Journal:
		return m.renderJournal(width)
	case router.Me:
		return m.renderMe(width)
	case router.Music:
		return m.renderMusic(width)
	}
	return m.renderDashboard(width)
}

func (m *Model) renderList(title string, width int) string {
	return m.panelView(title, lines(m.rows()), width, m.cursor)
}

func (m *Model) renderDashboard(width int) string {
	sc := m.opts.Screens
	s := sc.Dashboard.Summary()
	ps := m.styles.Panel

	header := lipgloss.JoinVertical(lipgloss.Left,
		ps.Title.Render(s.Greeting),
		ps.Muted.Render(fmt.Sprintf("%d open todos, %d habits left today", s.OpenTodos, s.HabitsDue)),
	)

	var deadlines []panel.Line
	for _, d := range s.Deadlines {
		deadlines = append(deadlines, panel.Line{Text: fmt.Sprintf("%s  %s (%s)", inDays(d.Days), d.Title, d.Kind)})
	}
	var focus []panel.Line
	for _, t := range s.Focus {
		focus = append(focus, panel.Line{Text: t.Text})
	}
	var goals []panel.Line
	for _, g := range s.Goals {
		goals = append(goals, panel.Line{Text: fmt.Sprintf("%s %3d%%  %s", printers.ProgressBar(g.Progress, 10), g.Progress, g.Title), Done: g.Progress >= 100})
	}

	labels := sc.Labels
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.panelView(labels.Get(appdata.LabelDashboardDeadlinesTitle), deadlines, width, -1),
		m.panelView(labels.Get(appdata.LabelDashboardFocusTitle), focus, width, -1),
		m.panelView(labels.Get(appdata.LabelDashboardGoalsTitle), goals, width, -1),
	)
}

func inDays(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", n)
}

var studyTitles = [sectionCount]string{"Todos", "Goals", "Exams", "Habits"}

func (m *Model) renderStudy(width int) string {
	views := []string{m.styles.Panel.Title.Render(m.opts.Screens.Study.Title())}
	for i, k := range studyKinds {
		selected := -1
		if i == m.section {
			selected = m.cursor
		}
		views = append(views, m.panelView(studyTitles[i], lines(m.rowsOf(k)), width, selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *Model) renderWriting(width int) string {
	if m.reading == "" {
		return m.renderList(m.opts.Screens.Writing.Title(), width)
	}
	w, err := m.opts.Screens.Writing.Find(m.reading)
	if err != nil {
		return m.styles.Footer.Error.Render(err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Panel.Title.Render(w.Title),
		m.styles.Panel.Muted.Render("updated "+shortStamp(w.UpdatedAt)+"  esc: back"),
		m.reader.View(),
	)
}

func (m *Model) renderLearn(width int) string {
	l := m.opts.Screens.Learn
	st := l.State()
	ps := m.styles.Panel
	out := []string{ps.Title.Render(l.Title())}

	switch {
	case st.Loading:
		out = append(out, ps.Muted.Render("Searching "+topicName(st.Topic)+"..."))
	case st.Err != nil:
		out = append(out, m.styles.Footer.Error.Render(wordwrap.String(learnrunner.Explain(st.Err).Error(), width)))
	case st.Result != nil:
		out = append(out, ps.Accent.Render(topicName(st.Topic)))
		var articles, videos []panel.Line
		for _, a := range st.Result.Articles {
			articles = append(articles, panel.Line{Text: a.Title}, panel.Line{Text: "  " + a.Link, Muted: true})
			if a.Snippet != "" {
				articles = append(articles, panel.Line{Text: wordwrap.String(a.Snippet, max(width-6, 10))})
			}
		}
		for _, v := range st.Result.Videos {
			videos = append(videos, panel.Line{Text: v.Title}, panel.Line{Text: "  " + v.Link, Muted: true})
		}
		out = append(out, m.panelView("Articles", articles, width, -1), m.panelView("Videos", videos, width, -1))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	var sites []panel.Line
	for _, s := range l.Sites() {
		sites = append(sites, panel.Line{Text: s.Name + "  " + s.Description}, panel.Line{Text: "  " + s.URL, Muted: true})
	}
	out = append(out, m.panelView("Sites", sites, width, -1))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func topicName(topic string) string {
	if topic == "" || topic == learn.CurrentEvents {
		return "Current events"
	}
	return topic
}

func (m *Model) renderPomodoro(width int) string {
	st := m.opts.Screens.Pomodoro.State(m.now())
	ps := m.styles.Panel
	rem := st.Remaining.Round(time.Second)
	clock := fmt.Sprintf("%02d:%02d", int(rem.Minutes()), int(rem.Seconds())%60)
	state := "paused"
	if st.Running {
		state = "running"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		ps.Accent.Render(strings.ToUpper(phaseName(st.Phase))),
		ps.Title.Render(clock),
		ps.Muted.Render(state),
		ps.Body.Render(fmt.Sprintf("%d focus sessions done", st.Completed)),
	)
	return ps.Frame.Width(width).Align(lipgloss.Center).Render(body)
}

func (m *Model) renderJournal(width int) string {
	j := m.opts.Screens.Journal
	list := m.renderList(j.Title(), width)
	rows := m.rows()
	if m.cursor >= len(rows) {
		return list
	}
	for _, e := range j.List() {
		if e.ID == rows[m.cursor].id {
			entry := m.styles.Panel.Body.Render(wordwrap.String(e.Content, max(width-4, 10)))
			return lipgloss.JoinVertical(lipgloss.Left, list, entry, m.styles.Panel.Muted.Render(j.EmbedURL()))
		}
	}
	return list
}

func (m *Model) renderMe(width int) string {
	me := m.opts.Screens.Me
	d := me.Get()
	ps := m.styles.Panel
	out := []string{ps.Title.Render(me.Title()), ps.Muted.Render(me.Subtitle())}
	for i, s := range me.Sections() {
		value, _ := screens.MeField(&d, s.Field)
		line := panel.Line{Text: wordwrap.String(*value, max(width-6, 10))}
		if *value == "" {
			line = panel.Line{Text: s.Placeholder, Muted: true}
		}
		p := m.newPanel(width)
		p.SetContent(s.Label, []panel.Line{line})
		p.Select(0, i == m.cursor)
		view, _ := p.View()
		out = append(out, view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m *Model) renderMusic(width int) string {
	mu := m.opts.Screens.Music
	ps := m.styles.Panel
	out := []string{ps.Title.Render(mu.Title()), ps.Muted.Render(mu.Subtitle())}
	current := mu.Current.Get()
	switch url, ok := mu.Embed(); {
	case current == "":
		out = append(out, ps.Muted.Render("Nothing loaded"))
	case ok:
		out = append(out, ps.Body.Render("Now playing "+current), ps.Accent.Render(url))
	default:
		out = append(out, ps.Body.Render(current), ps.Muted.Render("This link has no player"))
	}
	out = append(out, m.panelView("Playlist", lines(m.rows()), width, m.cursor))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
