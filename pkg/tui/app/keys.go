package teaui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/router"
	"tableflip.dev/academia/pkg/runner/items"
	"tableflip.dev/academia/pkg/screens"
)

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit(cmds)
		return
	}
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	case modeLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		*cmds = append(*cmds, cmd)
	case modeInsert, modeCommand:
		m.handleInputKey(msg, cmds)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeNormal
		return
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	*cmds = append(*cmds, cmd)
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		wasCommand := m.mode == modeCommand
		act := m.action
		m.closeInput()
		if wasCommand {
			m.runCommand(value, cmds)
			return
		}
		m.submit(act, value, cmds)
		return
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	*cmds = append(*cmds, cmd)
}

func (m *Model) openInput(md mode, act action, value string, cmds *[]tea.Cmd) {
	m.mode = md
	m.action = act
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.action = actionNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	view := m.router.Current()
	key := msg.String()

	if m.reading != "" {
		switch key {
		case "esc", "q", "enter":
			m.reading = ""
		default:
			var cmd tea.Cmd
			m.reader, cmd = m.reader.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return
	}

	switch key {
	case "q":
		m.quit(cmds)
		return
	case "?":
		m.mode = modeHelp
		return
	case ":":
		m.openInput(modeCommand, actionNone, "", cmds)
		return
	case "tab":
		m.goTo(m.router.Next())
		return
	case "shift+tab":
		m.goTo(m.router.Prev())
		return
	case "L":
		m.openLogin(false)
		return
	case "O":
		*cmds = append(*cmds, m.logoutCmd())
		return
	case "t":
		m.cycleTheme()
		return
	case "j", "down":
		m.cursor++
		m.clampCursor()
		return
	case "k", "up":
		m.cursor--
		m.clampCursor()
		return
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(router.Views) {
			m.goTo(router.Views[i])
		}
		return
	}

	switch view {
	case router.Dashboard:
		if key == "a" {
			m.openInput(modeInsert, actionAdd, "", cmds)
		}
	case router.Study:
		switch key {
		case "h", "left":
			m.section = (m.section + sectionCount - 1) % sectionCount
			m.cursor = 0
			return
		case "l", "right":
			m.section = (m.section + 1) % sectionCount
			m.cursor = 0
			return
		}
		m.handleListKey(key, cmds)
	case router.Writing, router.Books, router.Journal:
		m.handleListKey(key, cmds)
	case router.Music:
		switch key {
		case "a":
			m.openInput(modeInsert, actionLoadMusic, "", cmds)
		case "p":
			if m.opts.Screens.Music.Current.Get() == "" {
				m.setStatus("Load a link first")
				return
			}
			m.openInput(modeInsert, actionSaveTrack, "", cmds)
		default:
			m.handleListKey(key, cmds)
		}
	case router.Learn:
		switch key {
		case "a", "/":
			m.openInput(modeInsert, actionSearch, "", cmds)
		case "c":
			m.setStatus("Loading current events")
			*cmds = append(*cmds, m.learnCmd("", true))
		}
	case router.Pomodoro:
		p := m.opts.Screens.Pomodoro
		switch key {
		case " ", "space":
			p.Toggle(m.now())
		case "r":
			p.Reset()
		case "s":
			p.Skip()
		}
	case router.Me:
		if key == "e" || key == "enter" {
			field := screens.MeFields[m.cursor]
			d := m.opts.Screens.Me.Get()
			current, _ := screens.MeField(&d, field)
			m.openInput(modeInsert, actionEditMe, *current, cmds)
		}
	}
}

// handleListKey applies the shared list actions to the selected row of the
// current view.
func (m *Model) handleListKey(key string, cmds *[]tea.Cmd) {
	k, ok := m.kind()
	if !ok {
		return
	}
	rows := m.rows()
	var sel *row
	if m.cursor < len(rows) {
		sel = &rows[m.cursor]
	}

	switch key {
	case "a":
		m.openInput(modeInsert, actionAdd, "", cmds)
	case "x":
		if sel == nil {
			return
		}
		m.setError(items.Complete(m.opts.Screens, k, sel.id, m.nextDone(k, sel.id)))
	case "d":
		if sel == nil {
			return
		}
		if err := items.Delete(m.opts.Screens, k, sel.id); err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("Deleted %s", k))
		m.clampCursor()
	case "enter":
		if sel == nil {
			return
		}
		switch k {
		case items.Writing:
			m.openReader(sel.id)
		case items.Track:
			m.setError(m.opts.Screens.Music.Play(sel.id))
		}
	}
}

// nextDone decides what x means for the selected item: toggle a todo, check
// in a habit today, move a goal forward a quarter and advance a book along
// its shelves.
func (m *Model) nextDone(k items.Kind, id string) items.Done {
	switch k {
	case items.Habit:
		return items.Done{Date: m.now().Format(screens.DateLayout)}
	case items.Goal:
		for _, g := range m.opts.Screens.Study.Goals.Get() {
			if g.ID == id {
				p := min(g.Progress+25, 100)
				if g.Progress >= 100 {
					p = 0
				}
				return items.Done{Progress: &p}
			}
		}
	case items.Book:
		for _, b := range m.opts.Screens.Books.Books.Get() {
			if b.ID == id {
				return items.Done{Status: nextStatus(b.Status)}
			}
		}
	}
	return items.Done{}
}

var bookCycle = []appdata.BookStatus{appdata.BookToRead, appdata.BookReading, appdata.BookFinished}

func nextStatus(s appdata.BookStatus) appdata.BookStatus {
	i := slices.Index(bookCycle, s)
	return bookCycle[(i+1)%len(bookCycle)]
}

func (m *Model) submit(act action, value string, cmds *[]tea.Cmd) {
	sc := m.opts.Screens
	switch act {
	case actionAdd:
		if m.router.Current() == router.Dashboard {
			_, err := sc.Dashboard.QuickAdd(value)
			m.setError(err)
			return
		}
		k, ok := m.kind()
		if !ok {
			return
		}
		if _, err := items.Add(sc, k, parseFields(k, value)); err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("Added %s", k))
	case actionSearch:
		m.setStatus("Searching " + value)
		*cmds = append(*cmds, m.learnCmd(value, false))
	case actionLoadMusic:
		if err := sc.Music.Load(value); err != nil {
			m.setError(err)
			return
		}
		if _, ok := sc.Music.Embed(); !ok {
			m.setStatus("Saved, but that link has no player")
		}
	case actionSaveTrack:
		if _, err := items.Add(sc, items.Track, items.Fields{Text: value, Link: sc.Music.Current.Get()}); err != nil {
			m.setError(err)
		}
	case actionEditMe:
		m.setError(sc.Me.SetField(screens.MeFields[m.cursor], value))
	}
}

// parseFields reads the one line add syntax: "subject YYYY-MM-DD" for exams,
// "title [YYYY-MM-DD]" for goals and "title by author" for books.
func parseFields(k items.Kind, value string) items.Fields {
	f := items.Fields{Text: value}
	switch k {
	case items.Exam, items.Goal:
		if i := strings.LastIndex(value, " "); i > 0 && looksLikeDate(value[i+1:]) {
			f.Text, f.Date = value[:i], value[i+1:]
		}
	case items.Book:
		if title, author, ok := strings.Cut(value, " by "); ok {
			f.Text, f.Author = title, author
		}
	}
	return f
}

func looksLikeDate(s string) bool {
	return len(s) == len(screens.DateLayout) && s[4] == '-' && s[7] == '-'
}

func (m *Model) runCommand(value string, cmds *[]tea.Cmd) {
	name, arg, _ := strings.Cut(value, " ")
	switch strings.ToLower(name) {
	case "":
	case "q", "quit", "exit":
		m.quit(cmds)
	case "help":
		m.mode = modeHelp
	case "login":
		m.openLogin(false)
	case "signup":
		m.openLogin(true)
	case "logout":
		*cmds = append(*cmds, m.logoutCmd())
	case "reload":
		m.opts.Store.Reload()
		m.identityChanged(m.opts.Store.Identity(), false)
		m.setStatus("Reloaded stored data")
	case "theme":
		m.setTheme(appdata.Theme(strings.TrimSpace(arg)))
	default:
		m.goTo(router.Lookup(value))
	}
}

func (m *Model) openLogin(signup bool) {
	m.login.Reset()
	m.login.SetSignup(signup)
	m.mode = modeLogin
}

func (m *Model) goTo(v router.View) {
	m.router.Set(v)
	m.cursor = 0
	m.reading = ""
}

func (m *Model) cycleTheme() {
	current := m.opts.Store.Theme().Get()
	i := slices.Index(appdata.Themes, current)
	m.setTheme(appdata.Themes[(i+1)%len(appdata.Themes)])
}

func (m *Model) setTheme(t appdata.Theme) {
	if !t.Valid() {
		m.setError(fmt.Errorf("unknown theme %q", t))
		return
	}
	if err := m.opts.Store.Theme().Set(t); err != nil {
		m.setError(err)
		return
	}
	m.restyle()
	m.setStatus("Theme " + string(t))
}

func (m *Model) clampCursor() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) openReader(id string) {
	w, err := m.opts.Screens.Writing.Find(id)
	if err != nil {
		m.setError(err)
		return
	}
	m.reading = id
	m.reader.SetContent(renderMarkdown(w.Content, m.readerWidth))
	m.reader.SetYOffset(0)
}
