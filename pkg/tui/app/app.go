// Package teaui hosts the Bubble Tea program for the academia TUI.
package teaui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/logging"
	"tableflip.dev/academia/pkg/router"
	"tableflip.dev/academia/pkg/screens"
	"tableflip.dev/academia/pkg/theme"
	"tableflip.dev/academia/pkg/tui/components/help"
	"tableflip.dev/academia/pkg/tui/components/login"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeLogin
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionSearch
	actionLoadMusic
	actionSaveTrack
	actionEditMe
)

// Study lists, in the order h/l move through them.
const (
	sectionTodos = iota
	sectionGoals
	sectionExams
	sectionHabits
	sectionCount
)

const sidebarWidth = 26

var errServiceUnavailable = errors.New("service unavailable")

// Options wires the model to an opened environment.
type Options struct {
	Store    *app.Store
	Screens  *screens.Screens
	Identity identity.Provider
	Logger   *zap.Logger
	// Now is the clock for the pomodoro and habit check-ins.
	Now func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc

	router  router.Router
	mode    mode
	action  action
	input   textinput.Model
	login   *login.Model
	help    *help.Model
	styles  theme.Styles
	cursor  int
	section int

	// reading is the id of the writing open in the reader.
	reading     string
	reader      viewport.Model
	readerWidth int

	status    string
	statusErr bool

	followCh     <-chan identity.Change
	followCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// New creates a UI model over opts.
func New(opts Options) *Model {
	return newModel(context.Background(), opts)
}

func newModel(parent context.Context, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.VirtualCursor = true

	ctx, cancel := context.WithCancel(parent)
	m := &Model{
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		input:  ti,
		reader: viewport.New(viewport.WithWidth(60), viewport.WithHeight(20)),

		readerWidth: 60,
	}
	m.restyle()
	m.login = login.New(m.styles.Modal)
	m.help = help.New(m.styles.Modal.Frame, 60, 20)
	return m
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, opts Options) error {
	m := newModel(ctx, opts)
	defer m.cancel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) log() *zap.Logger {
	return logging.OrNop(m.opts.Logger)
}

func (m *Model) now() time.Time {
	if m.opts.Now != nil {
		return m.opts.Now()
	}
	return time.Now()
}

// restyle rebuilds the styles from the active identity's theme.
func (m *Model) restyle() {
	if m.opts.Store == nil {
		m.styles = theme.NewStyles(theme.Base)
	} else {
		m.styles = theme.For(m.opts.Store.Theme().Get(), m.opts.Store.CustomColors().Get())
	}
	if m.login != nil {
		m.login.SetStyles(m.styles.Modal)
	}
	if m.help != nil {
		m.help.SetFrame(m.styles.Modal.Frame)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.log().Debug("action failed", zap.Error(err))
	m.status = err.Error()
	m.statusErr = true
}

type tickMsg time.Time

type followStartedMsg struct {
	ch     <-chan identity.Change
	cancel context.CancelFunc
	err    error
}

type followEventMsg struct{ change identity.Change }

type followStoppedMsg struct{}

type sessionMsg struct {
	id  *identity.Identity
	err error
}

type learnMsg struct{ state screens.LearnState }

// Init starts the pomodoro clock and follows identity changes made by other
// academia processes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), startFollowCmd(m.ctx, m.opts.Store, m.opts.Identity))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func startFollowCmd(parent context.Context, s *app.Store, p identity.Provider) tea.Cmd {
	if s == nil || p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := s.Follow(ctx, p)
		if err != nil {
			cancel()
			return followStartedMsg{err: err}
		}
		return followStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForFollow() tea.Cmd {
	if m.followCh == nil {
		return nil
	}
	ch := m.followCh
	return func() tea.Msg {
		if c, ok := <-ch; ok {
			return followEventMsg{change: c}
		}
		return followStoppedMsg{}
	}
}

func (m *Model) stopFollow() {
	if m.followCancel != nil {
		m.followCancel()
		m.followCancel = nil
	}
	m.followCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tickMsg:
		if m.opts.Screens != nil && m.opts.Screens.Pomodoro.Tick(time.Time(msg)) {
			st := m.opts.Screens.Pomodoro.State(time.Time(msg))
			m.setStatus("Time for " + phaseName(st.Phase))
		}
		cmds = append(cmds, tick())
	case followStartedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.stopFollow()
		m.followCh = msg.ch
		m.followCancel = msg.cancel
		cmds = append(cmds, m.waitForFollow())
	case followEventMsg:
		m.identityChanged(msg.change.Current, !msg.change.Initial)
		cmds = append(cmds, m.waitForFollow())
	case followStoppedMsg:
		m.stopFollow()
	case sessionMsg:
		m.handleSession(msg)
	case learnMsg:
		if msg.state.Err == nil {
			m.setStatus("")
		}
	case login.SubmitMsg:
		cmds = append(cmds, m.sessionCmd(msg.Email, msg.Password, msg.Signup))
	case login.CancelMsg:
		m.mode = modeNormal
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		m.routeToFocused(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

// routeToFocused forwards messages such as cursor blinks to the component
// that owns input.
func (m *Model) routeToFocused(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeInsert, modeCommand:
		m.input, cmd = m.input.Update(msg)
	case modeLogin:
		m.login, cmd = m.login.Update(msg)
	}
	*cmds = append(*cmds, cmd)
}

// identityChanged applies a new active identity. announce is false for the
// initial resolution.
func (m *Model) identityChanged(id *identity.Identity, announce bool) {
	m.restyle()
	m.cursor = 0
	m.reading = ""
	if !announce {
		return
	}
	if id == nil {
		m.setStatus("Signed out, browsing as guest")
		return
	}
	m.setStatus("Signed in as " + id.Email)
}

func (m *Model) sessionCmd(email, password string, signup bool) tea.Cmd {
	p := m.opts.Identity
	ctx := m.ctx
	return func() tea.Msg {
		if p == nil {
			return sessionMsg{err: errServiceUnavailable}
		}
		var (
			id  *identity.Identity
			err error
		)
		if signup {
			id, err = p.Signup(ctx, email, password)
		} else {
			id, err = p.Login(ctx, email, password)
		}
		return sessionMsg{id: id, err: err}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	p := m.opts.Identity
	ctx := m.ctx
	return func() tea.Msg {
		if p == nil {
			return sessionMsg{err: errServiceUnavailable}
		}
		return sessionMsg{err: p.Logout(ctx)}
	}
}

func (m *Model) handleSession(msg sessionMsg) {
	if msg.err != nil {
		if m.mode == modeLogin {
			m.login.SetError(msg.err.Error())
			return
		}
		m.setError(msg.err)
		return
	}
	if m.opts.Store != nil {
		m.opts.Store.SetIdentity(msg.id)
	}
	m.mode = modeNormal
	m.login.Reset()
	m.identityChanged(msg.id, true)
}

func (m *Model) learnCmd(topic string, currentEvents bool) tea.Cmd {
	if m.opts.Screens == nil {
		return nil
	}
	l := m.opts.Screens.Learn
	ctx := m.ctx
	return func() tea.Msg {
		if currentEvents {
			return learnMsg{state: l.CurrentEvents(ctx)}
		}
		return learnMsg{state: l.Search(ctx, topic)}
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.stopFollow()
	m.cancel()
	*cmds = append(*cmds, tea.Quit)
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w, h := m.mainSize()
	m.readerWidth = max(w-4, 10)
	m.reader.SetWidth(m.readerWidth)
	m.reader.SetHeight(max(h-4, 3))
	m.login.SetSize(w, h)
	m.help.SetSize(min(w, 80), max(h-2, 8))
}

// mainSize is the area right of the sidebar and above the footer.
func (m *Model) mainSize() (int, int) {
	w := m.termWidth - sidebarWidth - 2
	if w < 20 {
		w = 20
	}
	h := m.termHeight - 3
	if h < 5 {
		h = 5
	}
	return w, h
}
