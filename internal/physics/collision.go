package physics

import (
	"bullseye/internal/bounds"
	"bullseye/internal/entity"
	"bullseye/internal/profiling"
	"bullseye/internal/projectile"
	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
)

// HitKind says what a flying arrow struck this frame.
type HitKind int

const (
	HitNone HitKind = iota
	HitTarget
	HitWall
)

func (h HitKind) String() string {
	switch h {
	case HitTarget:
		return "target"
	case HitWall:
		return "wall"
	}
	return "none"
}

// Frame is the per-tick input of the evaluator.
type Frame struct {
	Transforms *entity.Transforms
	// Delta is the movement applied to the archer earlier in this tick.
	Delta mgl32.Vec3
}

// Outcome reports what the evaluator decided this frame.
type Outcome struct {
	World    entity.WorldBoxes
	Blocked  bool
	Hit      HitKind
	Struck   entity.ID // valid when Hit != HitNone
	GameOver bool
}

// Evaluator applies the range's collision rules once per frame.
type Evaluator struct {
	table    *entity.Table
	hitBonus int
}

// NewEvaluator uses the cached local boxes in table; they are never recomputed.
func NewEvaluator(table *entity.Table, hitBonus int) *Evaluator {
	return &Evaluator{table: table, hitBonus: hitBonus}
}

// Evaluate builds this frame's world boxes and applies, in order: the
// archer blocking rule, the arrow hit rules and the terminal check.
func (e *Evaluator) Evaluate(gs *state.GameState, f Frame) Outcome {
	defer profiling.Track("physics.Evaluate")()

	out := Outcome{World: e.table.World(f.Transforms)}

	// Blocked movement is undone rather than pushed out, so a tick that
	// moves further than an obstacle is thick can still tunnel through it.
	if PlayerBlocked(&out.World) {
		gs.Player.Position = gs.Player.Position.Sub(f.Delta)
		out.Blocked = true
	}

	if gs.Arrow.Phase() == projectile.PhaseArmed {
		tip, _ := gs.Arrow.Position()
		if id, ok := TargetHit(tip, &out.World); ok {
			gs.Arrow.Freeze()
			gs.Session.RecordTargetHit(e.hitBonus)
			out.Hit, out.Struck = HitTarget, id
		} else if id, ok := WallHit(out.World[entity.Arrow], &out.World); ok {
			gs.Arrow.Freeze()
			gs.Session.RecordWallHit()
			out.Hit, out.Struck = HitWall, id
		}
	}

	out.GameOver = gs.Session.CheckTerminal()
	return out
}

// PlayerBlocked reports whether the archer overlaps any target or wall.
func PlayerBlocked(world *entity.WorldBoxes) bool {
	player := world[entity.Player]
	for _, id := range entity.Targets {
		if bounds.IntersectAABB(player, world[id]) {
			return true
		}
	}
	for _, id := range entity.Walls {
		if bounds.IntersectAABB(player, world[id]) {
			return true
		}
	}
	return false
}

// TargetHit tests the arrow's point position against the target boxes.
// A point is used instead of the arrow's box so the shaft's length does
// not register a hit on the near face early.
func TargetHit(p mgl32.Vec3, world *entity.WorldBoxes) (entity.ID, bool) {
	for _, id := range entity.Targets {
		if bounds.PointInsideAABB(p, world[id]) {
			return id, true
		}
	}
	return 0, false
}

// WallHit tests the arrow's box against the wall boxes.
func WallHit(arrow bounds.BoundingBox, world *entity.WorldBoxes) (entity.ID, bool) {
	for _, id := range entity.Walls {
		if bounds.IntersectAABB(arrow, world[id]) {
			return id, true
		}
	}
	return 0, false
}
