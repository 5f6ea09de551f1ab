package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/game"
)

var (
	pauseTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	pauseBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *game.Game
	keys     KeyMap
	help     help.Model
	log      *log.Logger
	state    core.GameState
	paused   bool
	quitting bool
	width    int
	height   int
}

// NewModel creates a model for g. The board size is fixed by g; later
// terminal resizes only move the pause overlay.
func NewModel(g *game.Game, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	rows, cols := g.Screen().Height(), g.Screen().Width()
	return Model{
		game:   g,
		keys:   DefaultKeyMap(),
		help:   h,
		log:    logger,
		state:  g.State(),
		width:  cols,
		height: rows,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Config().Tick)
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
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.state.GameOver {
			m.paused = !m.paused
			m.state.Paused = m.paused
		}

	case core.ActionRestart:
		if m.state.GameOver {
			m.game.Reset()
			m.paused = false
			m.state = m.game.State()
			if m.log != nil {
				m.log.Info("restarted after crash")
			}
		}

	case core.ActionNone:

	default:
		if !m.paused {
			m.game.Input().Set(action)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.game.Tick()
		m.state = m.game.State()
		m.state.Paused = m.paused
	}
	return m, tickCmd(m.game.Config().Tick)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.paused {
		return m.pauseView()
	}
	return RenderScreen(m.game.Screen())
}

func (m Model) pauseView() string {
	var b strings.Builder
	b.WriteString(pauseTitleStyle.Render("PAUSED"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		pauseBoxStyle.Render(b.String()))
}

// Run starts the Bubble Tea program for g on the alternate screen.
func Run(g *game.Game, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(g, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
