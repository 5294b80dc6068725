package overworld

import "github.com/vovakirdan/tile-puzzles/internal/core"

// Player is the walking character.
type Player struct {
	Pos    core.Point
	Facing core.Direction
	Layer  int // 1 while standing on a bridge
}

// NewPlayer places a player at start, facing down.
func NewPlayer(start core.Point) *Player {
	return &Player{Pos: start, Facing: core.DirDown}
}

// StepResult describes what a step did.
type StepResult struct {
	Moved     bool
	Delta     core.Point // Movement applied, zero when blocked
	Trigger   string     // Set when the step bumped into a trigger
	TriggerAt core.Point
}

// Step turns the player toward dir and tries to move one cell. Walls and
// triggers block; bumping a trigger reports it. Stepping onto a bridge
// raises the player to layer 1, any other floor lowers it to 0.
func (p *Player) Step(dir core.Direction, m *CollisionMap) StepResult {
	if dir == core.DirNone {
		return StepResult{}
	}
	p.Facing = dir
	target := p.Pos.Add(dir.Delta())

	switch c := m.At(target); c.Kind {
	case CellWall:
		return StepResult{}
	case CellTrigger:
		return StepResult{Trigger: c.Trigger, TriggerAt: target}
	case CellBridge:
		p.Layer = 1
	default:
		p.Layer = 0
	}
	p.Pos = target
	return StepResult{Moved: true, Delta: dir.Delta()}
}
