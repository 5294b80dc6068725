package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// PuzzleKeyMap defines the key bindings while a puzzle is on screen.
type PuzzleKeyMap struct {
	Move    key.Binding
	Hint    key.Binding
	Restart key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PuzzleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hint, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PuzzleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Hint, k.Restart},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultPuzzleKeyMap returns default key bindings.
func DefaultPuzzleKeyMap() PuzzleKeyMap {
	return PuzzleKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "slide"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new scramble"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MouseTracker turns raw terminal mouse reports into pointer-up events.
// Terminals without SGR reporting send releases without a button, so the
// last pressed button is remembered.
type MouseTracker struct {
	pressed core.Button
}

// Translate returns the pointer-up event for a mouse release, in screen
// pixels. ok is false for presses, motion and wheel reports.
func (t *MouseTracker) Translate(msg tea.MouseMsg) (ev core.InputEvent, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			t.pressed = core.ButtonLeft
		case tea.MouseButtonRight:
			t.pressed = core.ButtonRight
		default:
			t.pressed = core.ButtonNone
		}
		return core.InputEvent{}, false

	case tea.MouseActionRelease:
		button := t.pressed
		switch msg.Button {
		case tea.MouseButtonLeft:
			button = core.ButtonLeft
		case tea.MouseButtonRight:
			button = core.ButtonRight
		}
		t.pressed = core.ButtonNone
		if button == core.ButtonNone {
			return core.InputEvent{}, false
		}
		p := core.CellToPixel(msg.X, msg.Y)
		return core.PointerUp(button, p.X, p.Y), true
	}
	return core.InputEvent{}, false
}
