package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Options configures the terminal host.
type Options struct {
	Config config.Config
	Store  *storage.Store // optional session ledger
	Logger *log.Logger    // optional; nil discards

	// Screen carries the terminal size, tick period and seed. A zero tick
	// period or seed falls back to Config.
	Screen core.RuntimeConfig

	// Now overrides the wall clock used for round timestamps.
	Now func() time.Time
}

// Model is the Bubble Tea model hosting one snake game.
type Model struct {
	session  *session.Session
	game     *snake.Game
	canvas   *Canvas
	keys     KeyMap
	help     help.Model
	ledger   ledgerPanel
	store    *storage.Store
	interval time.Duration

	// gen numbers clock runs. A timer is armed only while ticking is set, and
	// only a TickMsg carrying the current gen is applied.
	gen     uint64
	ticking bool

	width, height int
	showLedger    bool
	quitting      bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts Options) Model {
	rt := opts.Screen
	if rt.TickInterval <= 0 {
		rt.TickInterval = opts.Config.TickInterval()
	}

	gameOpts := opts.Config.GameOptions()
	if rt.Seed != 0 {
		gameOpts.Seed = rt.Seed
	}
	if gameOpts.Seed == 0 {
		gameOpts.Seed = time.Now().UnixNano()
	}
	game := snake.New(gameOpts)

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		session:  session.New(game, opts.Store, opts.Logger, opts.Now),
		game:     game,
		canvas:   NewCanvas(game.Board()),
		keys:     NewKeyMap(opts.Config.Keys),
		help:     h,
		ledger:   newLedgerPanel(opts.Store, rt.ScreenH),
		store:    opts.Store,
		interval: rt.TickInterval,
		gen:      1,
		ticking:  game.ClockRunning(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

// Init arms the first tick.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ledger = newLedgerPanel(m.store, msg.Height)
		if m.showLedger {
			m.ledger.refresh()
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey routes a key through the ledger toggle and the game's state machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Ledger) && m.game.State() != snake.StateRunning {
		m.showLedger = !m.showLedger
		if m.showLedger {
			m.ledger.refresh()
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if m.showLedger && action.IsDirection() {
		var cmd tea.Cmd
		m.ledger, cmd = m.ledger.Update(msg)
		return m, cmd
	}

	switch m.session.Key(action) {
	case session.EventQuit:
		m.ticking = false
		m.quitting = true
		return m, tea.Quit
	case session.EventNewRound:
		// A fresh round always starts a new clock run.
		m.ticking = false
		m.showLedger = false
	case session.EventResumed:
		m.showLedger = false
	}

	return m, m.syncClock()
}

// handleTick applies a tick from the current clock run and re-arms the timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	m.session.Tick()

	if !m.game.ClockRunning() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.interval, m.gen)
}

// syncClock starts a new clock run when the game's clock is running and no
// timer is armed. Timers of a stopped run go stale.
func (m *Model) syncClock() tea.Cmd {
	if !m.game.ClockRunning() {
		m.ticking = false
		return nil
	}
	if m.ticking {
		return nil
	}
	m.gen++
	m.ticking = true
	return tickCmd(m.interval, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showLedger {
		body = m.ledger.View()
	} else {
		if m.width > 0 && m.height > 0 &&
			(m.width < m.canvas.Width() || m.height < m.canvas.Height()+2) {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
				statusStyle.Render("window too small"))
		}
		board := RenderScreen(m.canvas.Draw(m.game.Render()))
		body = lipgloss.JoinVertical(lipgloss.Center, board, statusStyle.Render(m.statusLine()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, body, helpStyle.Render(m.help.View(m.keys)))
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// statusLine describes states the board itself does not show.
func (m Model) statusLine() string {
	switch m.game.State() {
	case snake.StatePaused:
		return "PAUSED"
	case snake.StateOver:
		return "tab: rounds this session"
	default:
		return ""
	}
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
