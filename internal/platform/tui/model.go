package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

// Model is the Bubble Tea model for playing a single puzzle.
type Model struct {
	session  *Session
	keys     PuzzleKeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a play model around a running session.
func NewModel(session *Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW
	session.Layout(cfg.ScreenW)

	return Model{
		session: session,
		keys:    DefaultPuzzleKeyMap(),
		help:    h,
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.session.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Hint):
		m.session.ShowHint()

	case key.Matches(msg, m.keys.Restart):
		if err := m.session.Restart(); err != nil {
			m.logger.Error("could not rescramble", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Layout(m.width)

	case key.Matches(msg, m.keys.Move):
		m.session.HandleInput(core.KeyPress(msg.String()))
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.session.Layout(msg.Width)
	return m, nil
}

// saveScreenshot writes the current picture as a PNG.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".puzzles", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.session.Puzzle().ID(), timestamp))

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, m.session.Frame()); err != nil {
		m.logger.Warn("could not encode screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(m.session.Puzzle().Title(), m.width)))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.session.Render(m.width)))
	b.WriteString("\n")
	b.WriteString(m.session.HUD())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// IsQuitting returns true if the user left the puzzle.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// RunPuzzle builds the puzzle and runs it until the user quits.
func RunPuzzle(id string, setup *Setup, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if !registry.Exists(id) {
		return fmt.Errorf("tui: unknown puzzle %q", id)
	}
	session, err := NewSession(setup, id, 0, store, logger)
	if err != nil {
		return err
	}
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select tiles
	)

	_, err = p.Run()
	return err
}
