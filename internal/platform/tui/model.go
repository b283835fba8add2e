package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running a game. Every tick it feeds the
// accumulated input to the loop and renders the result.
type Model struct {
	loop       *loop.Loop
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	game.Reset(cfg)

	input := core.NewInputFrame()
	input.PointerX = cfg.FieldW / 2

	return Model{
		loop:       loop.New(game, cfg, logger),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 0)),
		renderer:   NewRenderer(),
		config:     cfg,
		inputFrame: input,
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.MapKey(msg, &m.inputFrame, m.config.FieldW)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleMouse tracks the pointer column and turns a button release into a launch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.PointerX = cellToPixel(msg.X, m.screen.Width(), m.config.FieldW)
	if msg.Action == tea.MouseActionRelease {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield keeps its pixel
// size; only the cell grid it is scaled onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result, err := m.loop.Frame(m.inputFrame)
	if errors.Is(err, loop.ErrQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	stats := fmt.Sprintf(" %3.0f fps · %d blocks ", m.loop.FPS(), m.gameState.BlocksLeft)
	return footerStyle.Render(stats) + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until it exits.
// quit is true when the player asked to leave the game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.Quitting(), nil
	}
	return false, nil
}
