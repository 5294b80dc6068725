package overworld

import (
	"fmt"
	"image"
	"sort"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
)

const defaultCellPixels = 3

// World ties the map, the player and the viewport together.
type World struct {
	Map    *CollisionMap
	Player *Player
	View   Viewport

	triggers map[string]string // Trigger key -> puzzle ID
	solved   map[string]bool
	floor    *image.RGBA
}

// NewWorld builds a world from configuration. Every trigger on the map must
// name a puzzle in cfg.Triggers.
func NewWorld(cfg config.WorldConfig) (*World, error) {
	var (
		m     *CollisionMap
		start core.Point
		err   error
	)
	if cfg.CollisionImage != "" {
		img, lerr := puzzle.Load(cfg.CollisionImage)
		if lerr != nil {
			return nil, fmt.Errorf("overworld: collision image: %w", lerr)
		}
		m, err = FromImage(img)
		start = core.Pt(cfg.Start[0], cfg.Start[1])
	} else {
		m, start, err = ParseLayout(cfg.Layout)
	}
	if err != nil {
		return nil, err
	}
	if c := m.At(start); c.Kind == CellWall || c.Kind == CellTrigger {
		return nil, fmt.Errorf("overworld: start %s is not walkable", start)
	}

	keys := make([]string, 0)
	for key := range m.Triggers() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if cfg.Triggers[key] == "" {
			return nil, fmt.Errorf("overworld: trigger %q has no puzzle", key)
		}
	}

	cellPx := cfg.Viewport.PixelsPerCell
	if cellPx <= 0 {
		cellPx = defaultCellPixels
	}
	size := core.Pt(cfg.Viewport.Width, cfg.Viewport.Height)
	if size.X <= 0 || size.Y <= 0 {
		size = m.Size()
	}

	w := &World{
		Map:      m,
		Player:   NewPlayer(start),
		View:     Viewport{Size: size, CellPixels: cellPx},
		triggers: cfg.Triggers,
		solved:   make(map[string]bool),
	}
	w.View.CenterOn(start)
	w.floor = RenderMap(m, cellPx, w.solved)
	return w, nil
}

// HandleKey moves the player for a direction key. When the step bumps into
// a trigger, the trigger's puzzle ID is returned.
func (w *World) HandleKey(key string) (StepResult, string) {
	res := w.Player.Step(core.KeyDirection(key), w.Map)
	if res.Moved {
		w.View.Shift(res.Delta)
	}
	if res.Trigger != "" {
		return res, w.triggers[res.Trigger]
	}
	return res, ""
}

// MarkSolved records a solved trigger and greys it out on the map.
func (w *World) MarkSolved(trigger string) {
	if w.solved[trigger] {
		return
	}
	w.solved[trigger] = true
	w.floor = RenderMap(w.Map, w.View.CellPixels, w.solved)
}

// IsSolved reports whether a trigger's puzzle has been solved.
func (w *World) IsSolved(trigger string) bool { return w.solved[trigger] }

// SolvedCount returns how many triggers have been solved.
func (w *World) SolvedCount() int { return len(w.solved) }

// TriggerCount returns how many distinct triggers the map holds.
func (w *World) TriggerCount() int { return len(w.Map.Triggers()) }

// Frame renders the visible window with the player on top.
func (w *World) Frame() *image.RGBA {
	img := w.View.Extract(w.floor)
	DrawPlayer(img, w.View.ToScreen(w.Player.Pos), w.Player, w.View.CellPixels)
	return img
}
