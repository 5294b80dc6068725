package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuKeyMap defines the puzzle picker bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Difficulty key.Binding
	Select     key.Binding
	Solves     key.Binding
	Quit       key.Binding
}

func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Difficulty, k.Select, k.Solves, k.Quit}
}

func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Difficulty: key.NewBinding(key.WithKeys("left", "right", "a", "d"), key.WithHelp("←/→", "difficulty")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Solves:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "solves")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "b", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuItem is one puzzle in the picker.
type MenuItem struct {
	PuzzleID string
	Title    string
	Best     string // Empty when never solved
}

// MenuModel is the puzzle picker. Left and right cycle the difficulty
// preset, which changes the grid sizes shown next to each puzzle.
type MenuModel struct {
	setup  *Setup
	items  []MenuItem
	cursor int
	preset int
	keys   MenuKeyMap
	help   help.Model
	config core.RuntimeConfig

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered puzzle. store may be nil.
func NewMenuModel(setup *Setup, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{PuzzleID: info.ID, Title: info.Title}
		if store != nil {
			if best, err := store.BestSolve(info.ID, 0); err == nil && best != nil {
				item.Best = fmt.Sprintf("best %d moves", best.Moves)
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		setup:  setup,
		items:  items,
		preset: 1,
		keys:   defaultMenuKeyMap(),
		help:   help.New(),
		config: cfg,
	}
	for i, p := range presets {
		if p == setup.Preset {
			m.preset = i
		}
	}
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(m.items) - 1) % max(len(m.items), 1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % max(len(m.items), 1)
		case key.Matches(msg, m.keys.Difficulty):
			step := 1
			if s := msg.String(); s == "left" || s == "a" {
				step = len(presets) - 1
			}
			m.preset = (m.preset + step) % len(presets)
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Solves):
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// Preset returns the difficulty currently chosen in the menu.
func (m MenuModel) Preset() config.DifficultyPreset { return presets[m.preset] }

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  T I L E   P U Z Z L E S  ", width)))
	b.WriteString("\n\n")

	var tabs []string
	for i, p := range presets {
		label := string(p)
		if i == m.preset {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		mark := "  "
		if i == m.cursor {
			mark = "> "
		}
		n := m.setup.SizeAt(item.PuzzleID, m.Preset(), 0)
		line := fmt.Sprintf("%s%-12s %dx%d", mark, item.Title, n, n)
		if item.Best != "" {
			line += "  " + item.Best
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) Selected() *MenuItem { return m.selected }

func (m MenuModel) IsQuitting() bool { return m.quitting }

func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text on the left to centre it in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the picker decided when it exited.
type MenuResult struct {
	PuzzleID        string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker until the player chooses something.
func RunMenu(setup *Setup, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(setup, store, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: setup.Preset}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: setup.Preset, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), Preset: m.Preset()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.PuzzleID = m.Selected().PuzzleID
	default:
		result.Quit = true
	}
	return result, nil
}
