package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasilenko/termsnake/internal/core"
	"github.com/avasilenko/termsnake/internal/snake"
)

// The bottom row is reserved for the controls bar.
const helpBarRows = 1

// Model is the Bubble Tea model driving the game loop: it forwards key
// presses into an input frame, steps the game on every tick and re-arms the
// tick timer with the game's current interval.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	status   core.Status
	quitting bool
}

// NewModel creates the model and initializes the game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	boardH := cfg.ScreenH - helpBarRows
	game.Reset(core.RuntimeConfig{
		ScreenW: cfg.ScreenW,
		ScreenH: boardH,
		Seed:    cfg.Seed,
	})

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, boardH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		input:  core.NewInputFrame(),
		status: game.Status(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
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

// handleKey maps a key press into the input frame for the next tick.
// Unrecognized keys are no-ops.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.ActionFor(msg, m.status.GameOver); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		// Ignored
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer and the game's notion of the window
// in sync with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	boardH := msg.Height - helpBarRows
	m.screen.Resize(msg.Width, boardH)
	m.game.Resize(msg.Width, boardH)

	return m, nil
}

// handleTick runs one simulation step and re-arms the timer with the
// current (score-dependent) interval.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.status = result.Status
	m.input.Clear()

	return m, tickCmd(m.game.TickInterval())
}

// View renders the current frame: the game screen buffer flattened in one
// pass, with the controls bar underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// Terminal raw mode is acquired and restored by Bubble Tea on all exit
// paths, including errors and panics.
func Run(game *snake.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
