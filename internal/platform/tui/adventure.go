package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/overworld"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

// AdventureKeyMap defines the key bindings on the overworld.
type AdventureKeyMap struct {
	Walk key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AdventureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Walk, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AdventureKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Walk, k.Quit}}
}

// DefaultAdventureKeyMap returns default key bindings.
func DefaultAdventureKeyMap() AdventureKeyMap {
	return AdventureKeyMap{
		Walk: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "walk"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AdventureModel walks the player around the overworld. Bumping into an
// unsolved trigger opens its puzzle; solving it marks the trigger and
// returns to the map.
type AdventureModel struct {
	setup  *Setup
	world  *overworld.World
	prog   config.ProgressionConfig
	store  *storage.Store
	logger *log.Logger
	screen *core.Screen

	session *Session // Non-nil while a puzzle is open
	trigger string   // Trigger that opened the session

	keys       AdventureKeyMap
	puzzleKeys PuzzleKeyMap
	help       help.Model
	width      int
	height     int
	message    string
	quitting   bool
}

// NewAdventureModel creates the adventure model for a loaded world.
func NewAdventureModel(setup *Setup, world *overworld.World, prog config.ProgressionConfig,
	store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) AdventureModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return AdventureModel{
		setup:      setup,
		world:      world,
		prog:       prog,
		store:      store,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, 0),
		keys:       DefaultAdventureKeyMap(),
		puzzleKeys: DefaultPuzzleKeyMap(),
		help:       h,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		message:    "Find the glowing tiles and solve their puzzles.",
	}
}

// Init starts the clock.
func (m AdventureModel) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages for the overworld and the open puzzle.
func (m AdventureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.session != nil {
			return m.handlePuzzleKey(msg)
		}
		return m.handleWorldKey(msg)

	case tea.MouseMsg:
		if m.session != nil {
			m.session.HandleMouse(msg)
			m.checkSolved()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.session != nil {
			m.session.Layout(msg.Width)
		}
		return m, nil

	case TickMsg:
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleWorldKey moves the player and opens puzzles.
func (m AdventureModel) handleWorldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Walk):
		res, puzzleID := m.world.HandleKey(msg.String())
		if res.Trigger == "" {
			return m, nil
		}
		m.enter(res.Trigger, puzzleID)
	}
	return m, nil
}

// enter opens the puzzle behind a trigger unless it is already solved.
func (m *AdventureModel) enter(trigger, puzzleID string) {
	if m.world.IsSolved(trigger) {
		m.message = "You have already solved this one."
		return
	}
	extra := m.prog.ExtraPieces(m.world.SolvedCount())
	session, err := NewSession(m.setup, puzzleID, extra, m.store, m.logger)
	if err != nil {
		m.logger.Error("could not open puzzle", "puzzle", puzzleID, "error", err)
		m.message = fmt.Sprintf("The %s puzzle is broken.", puzzleID)
		return
	}
	session.Layout(m.width)
	m.session = session
	m.trigger = trigger
	m.message = ""
}

// handlePuzzleKey drives the open puzzle.
func (m AdventureModel) handlePuzzleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.Solved() && !m.session.StartedSolved() {
		// Any key returns to the map once the puzzle is done
		m.leave()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.puzzleKeys.Back), key.Matches(msg, m.puzzleKeys.Quit):
		m.message = "The puzzle will wait for you."
		m.session = nil

	case key.Matches(msg, m.puzzleKeys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.puzzleKeys.Hint):
		m.session.ShowHint()

	case key.Matches(msg, m.puzzleKeys.Restart):
		if err := m.session.Restart(); err != nil {
			m.logger.Error("could not rescramble", "error", err)
			m.session = nil
			return m, nil
		}
		m.session.Layout(m.width)

	case key.Matches(msg, m.puzzleKeys.Move):
		m.session.HandleInput(core.KeyPress(msg.String()))
		m.checkSolved()
	}
	return m, nil
}

// checkSolved records the trigger as soon as its puzzle is solved.
func (m *AdventureModel) checkSolved() {
	if m.session == nil || !m.session.Solved() || m.session.StartedSolved() {
		return
	}
	m.world.MarkSolved(m.trigger)
}

// leave closes a solved puzzle and returns to the map.
func (m *AdventureModel) leave() {
	m.world.MarkSolved(m.trigger)
	m.session = nil
	m.trigger = ""
	if m.world.SolvedCount() == m.world.TriggerCount() {
		m.message = "Every puzzle is solved. Well done!"
		return
	}
	m.message = fmt.Sprintf("Solved %d of %d.", m.world.SolvedCount(), m.world.TriggerCount())
}

// InPuzzle reports whether a puzzle is open.
func (m AdventureModel) InPuzzle() bool {
	return m.session != nil
}

// World returns the overworld.
func (m AdventureModel) World() *overworld.World {
	return m.world
}

// View renders the map or the open puzzle.
func (m AdventureModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.session != nil {
		b.WriteString(titleStyle.Render(centerText(m.session.Puzzle().Title(), m.width)))
		b.WriteString("\n")
		b.WriteString(RenderScreen(m.session.Render(m.width)))
		b.WriteString("\n")
		b.WriteString(m.session.HUD())
		b.WriteString("\n")
		if m.session.Solved() && !m.session.StartedSolved() {
			b.WriteString(hudStyle.Render("Press any key to return to the map"))
		} else {
			b.WriteString(m.help.View(m.puzzleKeys))
		}
		return b.String()
	}

	frame := m.world.Frame()
	rows := (frame.Bounds().Dy() + 1) / 2
	width := m.width
	if width < frame.Bounds().Dx() {
		width = frame.Bounds().Dx()
	}
	m.screen.Resize(width, rows)
	m.screen.Clear()
	m.screen.DrawImage((width-frame.Bounds().Dx())/2, 0, frame)

	title := fmt.Sprintf("Puzzle World  %d/%d", m.world.SolvedCount(), m.world.TriggerCount())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(m.message))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// NewAdventureWorld builds the overworld and checks that every trigger
// opens a registered puzzle.
func NewAdventureWorld(cfg config.WorldConfig) (*overworld.World, error) {
	world, err := overworld.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	for trigger := range world.Map.Triggers() {
		if id := cfg.Triggers[trigger]; !registry.Exists(id) {
			return nil, fmt.Errorf("tui: trigger %q opens unknown puzzle %q", trigger, id)
		}
	}
	return world, nil
}

// RunAdventure loads the world and runs adventure mode until the user quits.
func RunAdventure(setup *Setup, worldCfg config.WorldConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	world, err := NewAdventureWorld(worldCfg)
	if err != nil {
		return err
	}
	model := NewAdventureModel(setup, world, worldCfg.Progression, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
