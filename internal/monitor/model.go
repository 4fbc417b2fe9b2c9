package monitor

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/phbuddy/internal/logger"
	"github.com/rileyhilliard/phbuddy/internal/sensor"
)

// readTimeout bounds one sensor acquisition inside a tick so a stalled
// transport cannot stall the tick source.
const readTimeout = 1 * time.Second

// Entry is the per-tick record handed to sinks (recorder, publisher).
type Entry struct {
	Elapsed float64 `json:"elapsed"`
	PH      float64 `json:"ph"`
	Band    string  `json:"band"`
	Health  int     `json:"health"`
	Stars   int     `json:"stars"`
}

// Sink receives each completed tick. Sink errors are logged and dropped;
// they never interrupt monitoring.
type Sink func(Entry) error

// errorCounter is implemented by sources that track hardware errors.
type errorCounter interface {
	TotalErrors() int
}

// tickMsg signals the sampling cadence.
type tickMsg time.Time

// readingMsg carries one acquired reading (or the error that prevented it).
type readingMsg struct {
	ph   float64
	err  error
	time time.Time
}

// Model is the Bubble Tea model for the live pH dashboard.
type Model struct {
	src     sensor.Source
	state   *State
	history *History
	rng     *rand.Rand
	log     logger.Logger
	sinks   []Sink

	interval time.Duration
	start    time.Time
	now      func() time.Time

	width  int
	height int

	paused   bool
	quitting bool

	// readPending is set while an acquisition Cmd is in flight. Cmds run
	// on their own goroutines, and the sources are not safe for
	// concurrent reads, so at most one read may be outstanding.
	readPending bool

	display    Display
	hasDisplay bool
	lastUpdate time.Time
	lastErr    string

	// spin animates the waiting state before the first reading arrives.
	spin spinner.Model
}

// waitFrames is the waiting-state animation (◐ ◓ ◑ ◒).
var waitFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the model's logger.
func WithLogger(log logger.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithSinks attaches per-tick sinks (session recorder, telemetry publisher).
func WithSinks(sinks ...Sink) Option {
	return func(m *Model) { m.sinks = append(m.sinks, sinks...) }
}

// WithRand injects a seeded random source for advice selection.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) { m.rng = rng }
}

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithHistorySize overrides the chart history capacity.
func WithHistorySize(size int) Option {
	return func(m *Model) { m.history = NewHistory(size) }
}

// NewModel creates the dashboard model around a sensor source.
func NewModel(src sensor.Source, interval time.Duration, opts ...Option) Model {
	m := Model{
		src:      src,
		history:  NewHistory(DefaultHistorySize),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logger.NewEnvLogger("[monitor]"),
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.spin = spinner.New()
	m.spin.Spinner = waitFrames
	m.spin.Style = lipgloss.NewStyle().Foreground(ColorTextMuted)
	m.start = m.now()
	m.state = NewState(m.start)
	// Init issues the first acquisition, so it counts as in flight from
	// the start; Init cannot record that itself (bubbletea discards any
	// mutation made there).
	m.readPending = true
	return m
}

// Init starts the tick timer and the first acquisition.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.readCmd(), m.spin.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.handleKey(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused || m.readPending {
			return m, m.tickCmd()
		}
		m.readPending = true
		return m, tea.Batch(m.tickCmd(), m.readCmd())

	case readingMsg:
		m.readPending = false
		m.applyReading(msg)
		return m, nil

	case spinner.TickMsg:
		// Only animate while waiting for the first reading.
		if m.hasDisplay {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd schedules the next sampling tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// readCmd acquires one reading off the Update loop.
func (m Model) readCmd() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		ph, err := src.Read(ctx)
		return readingMsg{ph: ph, err: err, time: time.Now()}
	}
}

// applyReading runs the classify/score/display pipeline for one reading.
// A failed acquisition logs and leaves the previous display untouched, so
// the loop survives any per-tick error.
func (m *Model) applyReading(msg readingMsg) {
	if msg.err != nil {
		m.lastErr = msg.err.Error()
		m.log.Warn("tick skipped: %v", msg.err)
		return
	}

	elapsed := msg.time.Sub(m.start).Seconds()
	m.history.Push(Sample{Elapsed: elapsed, PH: msg.ph})

	m.display = m.state.Advance(msg.time, msg.ph, m.rng)
	m.hasDisplay = true
	m.lastUpdate = msg.time
	m.lastErr = ""

	if counter, ok := m.src.(errorCounter); ok {
		m.state.SensorErrors = counter.TotalErrors()
	}

	entry := Entry{
		Elapsed: elapsed,
		PH:      msg.ph,
		Band:    m.display.Band.Kind.String(),
		Health:  m.state.Health,
		Stars:   m.state.Stars,
	}
	for _, sink := range m.sinks {
		if err := sink(entry); err != nil {
			m.log.Warn("sink failed: %v", err)
		}
	}
}

// handleKey processes keyboard input. Returns whether the key was handled.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyPause:
		m.paused = !m.paused
		return true, nil

	case KeyReadNow:
		if !m.paused && !m.readPending {
			m.readPending = true
			return true, m.readCmd()
		}
		return true, nil
	}

	return false, nil
}

// Summary returns the final health score and star count for the exit banner.
func (m Model) Summary() (health, stars int) {
	return m.state.Health, m.state.Stars
}

// Elapsed returns how long the monitor has been running.
func (m Model) Elapsed() time.Duration {
	return m.now().Sub(m.start)
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful reading.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(m.now().Sub(m.lastUpdate).Seconds())
}
