package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

// headerRows is the number of terminal rows above the picture.
const headerRows = 1

var hintColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}

// Session is one puzzle being played: the puzzle itself, its clock, the
// current hint and the solve bookkeeping. Both the play screen and the
// adventure screen drive puzzles through it.
type Session struct {
	setup  *Setup
	store  *storage.Store
	logger *log.Logger
	now    func() time.Time

	id     string
	extra  int
	puzzle registry.Puzzle
	events puzzle.Events
	mouse  MouseTracker
	screen *core.Screen

	started time.Time
	elapsed time.Duration
	hint    int // Slot to highlight, -1 for none
	status  string
	saved   bool
	gifted  bool // The scramble came out already solved
}

// NewSession builds a scrambled puzzle and starts its clock. store may be
// nil, in which case solves are not recorded.
func NewSession(setup *Setup, id string, extra int, store *storage.Store, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		setup:  setup,
		store:  store,
		logger: logger,
		now:    time.Now,
		id:     id,
		extra:  extra,
		screen: core.NewScreen(0, 0),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart replaces the puzzle with a new scramble of the same size.
func (s *Session) Restart() error {
	p, err := s.setup.Build(s.id, s.extra)
	if err != nil {
		return err
	}
	pos := core.Point{}
	if s.puzzle != nil {
		pos = s.puzzle.Board().Position()
	}
	p.Board().SetPosition(pos)

	s.puzzle = p
	s.events.Drain()
	s.started = s.now()
	s.elapsed = 0
	s.hint = -1
	s.status = ""
	s.saved = false
	s.gifted = p.Solved()
	if s.gifted {
		s.status = "Already solved, press r for another scramble"
	}
	s.logger.Debug("puzzle started", "puzzle", s.id, "size", p.Board().PiecesPerSide())
	if f, ok := p.(interface{ Fallback() bool }); ok && f.Fallback() {
		s.logger.Warn("random anchors could not be routed, using corner anchors", "puzzle", s.id)
	}
	return nil
}

// Puzzle returns the puzzle being played.
func (s *Session) Puzzle() registry.Puzzle { return s.puzzle }

// Solved reports whether the puzzle has reached its terminal state.
func (s *Session) Solved() bool { return s.puzzle.Solved() }

// StartedSolved reports whether the puzzle was solved before any move was
// made. Such a puzzle earns no credit.
func (s *Session) StartedSolved() bool { return s.gifted }

// Elapsed returns the time spent so far, frozen once solved.
func (s *Session) Elapsed() time.Duration {
	if s.puzzle.Solved() {
		return s.elapsed
	}
	return s.now().Sub(s.started)
}

// Layout centres the picture horizontally in a terminal of the given width
// and keeps pointer mapping in step with where it is drawn.
func (s *Session) Layout(width int) {
	out := s.puzzle.Board().OutputSize()
	x := (width - out.X) / 2
	if x < 0 {
		x = 0
	}
	s.puzzle.Board().SetPosition(core.CellToPixel(x, headerRows))
}

// HandleInput feeds one event to the puzzle and reacts to what it emits.
func (s *Session) HandleInput(ev core.InputEvent) []puzzle.Event {
	s.puzzle.HandleInput(ev, &s.events)
	emitted := s.events.Drain()
	for _, e := range emitted {
		switch e.Type {
		case puzzle.EventTileUpdated:
			s.hint = -1
		case puzzle.EventPuzzleSolved:
			s.onSolved()
		}
	}
	return emitted
}

// HandleMouse translates a terminal mouse report and applies it.
func (s *Session) HandleMouse(msg tea.MouseMsg) []puzzle.Event {
	ev, ok := s.mouse.Translate(msg)
	if !ok {
		return nil
	}
	return s.HandleInput(ev)
}

// ShowHint asks the puzzle for a suggestion and highlights it.
func (s *Session) ShowHint() {
	slot, ok := s.puzzle.Hint()
	if !ok {
		s.status = "No hint available"
		return
	}
	s.hint = slot
	s.status = ""
}

func (s *Session) onSolved() {
	s.elapsed = s.now().Sub(s.started)
	s.hint = -1
	s.status = fmt.Sprintf("Solved in %d moves!", s.puzzle.Moves())
	if s.saved {
		return
	}
	s.saved = true

	s.logger.Info("puzzle solved",
		"puzzle", s.id,
		"size", s.puzzle.Board().PiecesPerSide(),
		"moves", s.puzzle.Moves(),
		"elapsed", s.elapsed.Round(time.Second),
	)
	if s.store == nil {
		return
	}
	_, err := s.store.SaveSolve(storage.SolveEntry{
		PuzzleID:      s.id,
		PiecesPerSide: s.puzzle.Board().PiecesPerSide(),
		Moves:         s.puzzle.Moves(),
		Duration:      s.elapsed,
		Seed:          s.setup.Seed,
		Player:        s.setup.Player,
	})
	if err != nil {
		s.logger.Warn("could not save solve", "puzzle", s.id, "error", err)
	}
}

// Frame returns the picture to display, with the hinted tile outlined.
func (s *Session) Frame() *image.RGBA {
	img := s.puzzle.Image()
	if s.hint < 0 || s.puzzle.Solved() {
		return img
	}
	out := puzzle.Clone(img)
	b := s.puzzle.Board()
	tile := b.TileSize()
	at := b.SlotCoord(s.hint)
	outline(out, image.Rect(at.X*tile.X, at.Y*tile.Y, (at.X+1)*tile.X, (at.Y+1)*tile.Y), hintColor)
	return out
}

// outline draws a one pixel frame just inside r.
func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	u := &image.Uniform{C: c}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), u, image.Point{}, draw.Src)
	}
}

// Render draws the picture into the session's screen buffer and returns it.
func (s *Session) Render(width int) *core.Screen {
	out := s.puzzle.Board().OutputSize()
	rows := (out.Y + 1) / 2
	if width < out.X {
		width = out.X
	}
	s.screen.Resize(width, rows)
	s.screen.Clear()
	pos := s.puzzle.Board().Position()
	s.screen.DrawImage(pos.X, 0, s.Frame())
	return s.screen
}

// HUD returns the status line shown under the picture.
func (s *Session) HUD() string {
	elapsed := s.Elapsed().Round(time.Second)
	line := hudStyle.Render(fmt.Sprintf("Moves: %d   Time: %02d:%02d   Size: %dx%d",
		s.puzzle.Moves(),
		int(elapsed.Minutes()), int(elapsed.Seconds())%60,
		s.puzzle.Board().PiecesPerSide(), s.puzzle.Board().PiecesPerSide(),
	))
	switch {
	case s.puzzle.Solved():
		line += "   " + solvedStyle.Render(s.status)
	case s.status != "":
		line += "   " + errorStyle.Render(s.status)
	}
	return line
}
