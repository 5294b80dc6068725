// Package registry provides a global registry for puzzle factories.
// Puzzle variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
)

// Puzzle is the capability set every variant implements.
// Variants contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input translation, timing, and rendering.
type Puzzle interface {
	// ID returns a unique identifier for this variant (e.g., "sliding").
	// Used for CLI commands and solve storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// HandleInput applies one normalized input event. Outward signals are
	// appended to out in emission order. Input outside the board is ignored.
	HandleInput(ev core.InputEvent, out *puzzle.Events)

	// Solved reports whether the terminal condition has been reached.
	// Once true, further input is ignored.
	Solved() bool

	// Image returns the current composited picture.
	Image() *image.RGBA

	// Board exposes the shared arrangement for pointer mapping and rendering.
	Board() *puzzle.Board

	// Moves returns the number of state-changing inputs applied so far.
	Moves() int

	// Hint suggests a slot to act on next. ok is false when no hint is
	// available (solved, or the search space is too large).
	Hint() (slot int, ok bool)
}

// Info contains metadata about a registered variant.
type Info struct {
	ID          string
	Title       string
	DefaultSize int // Pieces per side used when the caller does not choose
}

// Factory builds a scrambled puzzle from a source image.
type Factory func(src image.Image, opts puzzle.Options, rng puzzle.Rand) (Puzzle, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata for a registered variant.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create builds a new puzzle by its ID. A zero PiecesPerSide falls back to
// the variant's default size.
// Returns an error if the ID is not registered or construction fails.
func Create(id string, src image.Image, opts puzzle.Options, rng puzzle.Rand) (Puzzle, error) {
	mu.RLock()
	f, ok := factories[id]
	info := infos[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown puzzle %q", id)
	}
	if opts.PiecesPerSide == 0 {
		opts.PiecesPerSide = info.DefaultSize
	}

	p, err := f(src, opts, rng)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return p, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
	infos = make(map[string]Info)
}
