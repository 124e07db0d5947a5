package screens

import (
	"sync"
	"time"
)

// Phase is a pomodoro interval kind.
type Phase string

const (
	Focus      Phase = "focus"
	ShortBreak Phase = "short-break"
	LongBreak  Phase = "long-break"
)

// Durations configures the timer.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	// LongEvery is how many focus sessions come before a long break.
	LongEvery int
}

// DefaultDurations is the classic 25/5/15 cycle.
var DefaultDurations = Durations{
	Focus:      25 * time.Minute,
	ShortBreak: 5 * time.Minute,
	LongBreak:  15 * time.Minute,
	LongEvery:  4,
}

// Pomodoro is a focus/break timer. It lives only in memory; nothing about
// it is persisted.
type Pomodoro struct {
	d Durations

	mu        sync.Mutex
	phase     Phase
	remaining time.Duration
	startedAt time.Time
	running   bool
	completed int
}

// NewPomodoro returns a stopped timer at the start of a focus phase.
func NewPomodoro(d Durations) *Pomodoro {
	if d.LongEvery <= 0 {
		d.LongEvery = DefaultDurations.LongEvery
	}
	p := &Pomodoro{d: d}
	p.reset(Focus)
	return p
}

// PomodoroState is a point-in-time view of the timer.
type PomodoroState struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
	Completed int
}

func (p *Pomodoro) length(ph Phase) time.Duration {
	switch ph {
	case ShortBreak:
		return p.d.ShortBreak
	case LongBreak:
		return p.d.LongBreak
	}
	return p.d.Focus
}

func (p *Pomodoro) reset(ph Phase) {
	p.phase = ph
	p.remaining = p.length(ph)
	p.running = false
}

// Start resumes the countdown at now.
func (p *Pomodoro) Start(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		p.running = true
		p.startedAt = now
	}
}

// Pause stops the countdown at now.
func (p *Pomodoro) Pause(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		p.remaining = p.left(now)
		p.running = false
	}
}

// Toggle starts a paused timer or pauses a running one.
func (p *Pomodoro) Toggle(now time.Time) {
	if p.State(now).Running {
		p.Pause(now)
		return
	}
	p.Start(now)
}

// Reset stops the timer and restarts the current phase.
func (p *Pomodoro) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset(p.phase)
}

// Skip moves straight to the next phase, stopped.
func (p *Pomodoro) Skip() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
}

// Tick advances to the next phase when the running one has elapsed by now.
// It reports whether a phase ended.
func (p *Pomodoro) Tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running || p.left(now) > 0 {
		return false
	}
	if p.phase == Focus {
		p.completed++
	}
	p.advance()
	return true
}

// State reports the timer at now.
func (p *Pomodoro) State(now time.Time) PomodoroState {
	p.mu.Lock()
	defer p.mu.Unlock()
	rem := p.remaining
	if p.running {
		rem = p.left(now)
	}
	return PomodoroState{Phase: p.phase, Remaining: rem, Running: p.running, Completed: p.completed}
}

func (p *Pomodoro) left(now time.Time) time.Duration {
	return max(0, p.remaining-now.Sub(p.startedAt))
}

func (p *Pomodoro) advance() {
	switch {
	case p.phase != Focus:
		p.reset(Focus)
	case p.completed > 0 && p.completed%p.d.LongEvery == 0:
		p.reset(LongBreak)
	default:
		p.reset(ShortBreak)
	}
}
