package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/padprobe/padprobe/internal/config"
	"github.com/padprobe/padprobe/internal/core"
	"github.com/padprobe/padprobe/internal/intent"
	"github.com/padprobe/padprobe/internal/logbuf"
	"github.com/padprobe/padprobe/internal/sim"
	"github.com/padprobe/padprobe/internal/storage"
)

// logPanelRows is the height of the toggleable log panel, rule included.
const logPanelRows = 8

// Options configures a padprobe session.
type Options struct {
	Cols, Rows   int // terminal size in cells
	FPS          int // simulation tick rate
	Seed         int64
	Config       config.Config
	Store        *storage.Store // nil disables run persistence
	StartInProbe bool
	User         string // SSH user, empty for local sessions
}

// Model is the Bubble Tea model hosting one world. It steps the simulation
// on tick messages and renders snapshots on view; the simulation never
// sees the terminal.
type Model struct {
	opts   Options
	world  *sim.World
	screen *core.Screen
	km     *KeyMapper

	logs    *logbuf.Buffer
	logger  *log.Logger
	logView viewport.Model
	showLog bool

	probe      bool
	lastIntent intent.Intent

	ticks      int
	peakEnergy float64
	quitting   bool
	runSaved   bool
}

// NewModel creates a session model. A zero seed picks a time-based one.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	logs := logbuf.New(logbuf.DefaultCap)
	logger := log.NewWithOptions(logs, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	pf := opts.Config.Playfield
	world := sim.NewWithTuning(pf.Width, pf.Height, opts.Seed, opts.Config.Tuning())

	logger.Info("session started",
		"playfield", fmt.Sprintf("%.0fx%.0f", pf.Width, pf.Height),
		"seed", opts.Seed,
		"fps", opts.FPS)
	if opts.User != "" {
		logger.Info("remote session", "user", opts.User)
	}

	lv := viewport.New(opts.Cols, logPanelRows-1)

	return Model{
		opts:    opts,
		world:   world,
		screen:  core.NewScreen(opts.Cols, opts.Rows),
		km:      NewKeyMapper(),
		logs:    logs,
		logger:  logger,
		logView: lv,
		probe:   opts.StartInProbe,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, control := m.km.MapKey(msg)

	switch control {
	case ControlQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case ControlToggleProbe:
		m.probe = !m.probe
		if m.probe {
			m.logger.Info("probe view")
		} else {
			m.logger.Info("game view")
		}
		return m, nil
	case ControlToggleLog:
		m.showLog = !m.showLog
		return m, nil
	case ControlClearLog:
		m.logs.Clear()
		m.logger.Info("log cleared")
		return m, nil
	}

	if action != ActionNone {
		m.km.Press(action)
	}
	return m, nil
}

// handleResize adjusts the render surfaces. The simulated playfield keeps
// its pixel dimensions; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Cols = msg.Width
	m.opts.Rows = msg.Height
	m.logView.Width = msg.Width
	m.logger.Info("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick advances the world by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.km.Tick()
	m.lastIntent = in

	dt := 1.0 / float64(m.opts.FPS)
	m.world.Step(dt, in)
	m.ticks++
	if e := m.world.Energy(); e > m.peakEnergy {
		m.peakEnergy = e
	}

	if m.showLog {
		m.logView.SetContent(strings.Join(m.logs.Lines(), "\n"))
		m.logView.GotoBottom()
	}

	return m, tickCmd(m.opts.FPS)
}

// saveRun persists the finished run once, best-effort.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil {
		return
	}
	m.runSaved = true

	score := m.world.Score()
	if score == 0 && m.ticks == 0 {
		return
	}
	if _, err := m.opts.Store.SaveRun(score, m.ticks, m.peakEnergy); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "score", score, "ticks", m.ticks)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.probe {
		if m.screen.Height() != m.opts.Rows || m.screen.Width() != m.opts.Cols {
			m.screen.Resize(m.opts.Cols, m.opts.Rows)
		}
		RenderProbe(m.screen, m.lastIntent, m.km, m.logs.Lines())
		return RenderScreen(m.screen)
	}

	rows := m.opts.Rows
	if m.showLog {
		rows -= logPanelRows
		if rows < 4 {
			rows = 4
		}
	}
	if m.screen.Height() != rows || m.screen.Width() != m.opts.Cols {
		m.screen.Resize(m.opts.Cols, rows)
	}

	RenderWorld(m.screen, m.world.Snapshot())
	out := RenderScreen(m.screen)

	if m.showLog {
		rule := colorStyles[core.ColorDimGray].Render(repeatRune(ruleChar, m.opts.Cols))
		out += "\n" + rule + "\n" + m.logView.View()
	}
	return out
}

// repeatRune builds a string of n copies of r.
func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = r
	}
	return string(buf)
}

// Run starts the Bubble Tea program for one local session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
