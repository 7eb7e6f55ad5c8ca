package scene

import (
	"math"

	"bullseye/internal/config"
	"bullseye/internal/entity"
	"bullseye/internal/launch"
	"bullseye/internal/profiling"
	"bullseye/internal/projectile"
	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed placement of the range's models.
const (
	archerDrop  = 13
	archerScale = 0.08

	targetY     = -23
	targetScale = 0.01
	target1Z    = -17
	target2X    = 15
	target23Z   = 13
	target2Spin = 4.12

	// the arrow rests pointing forward and slightly up while held
	restPitch = math.Pi / 8
)

// Layout places every entity for one frame.
type Layout struct {
	WallHalfSize float32
	ArrowLength  float32
	ArrowScale   float32
	SideOffset   float32
}

// NewLayout takes the sizes from the loaded config.
func NewLayout(c config.Config) Layout {
	return Layout{
		WallHalfSize: c.Range.WallHalfSize,
		ArrowLength:  c.Flight.ArrowLength,
		ArrowScale:   c.Flight.ArrowScale,
		SideOffset:   c.Flight.SideOffset,
	}
}

// BuildTable computes each entity's local box from the model vertex sets.
func BuildTable(m config.Models) *entity.Table {
	t := entity.NewTable()
	t.SetVertices(entity.Player, m.Archer)
	t.SetVertices(entity.Arrow, m.Arrow)
	for _, id := range entity.Targets {
		t.SetVertices(id, m.Target)
	}
	for _, id := range entity.Walls {
		t.SetVertices(id, m.Wall)
	}
	return t
}

// Transforms builds this frame's model matrices from the game state.
func (l Layout) Transforms(gs *state.GameState) entity.Transforms {
	defer profiling.Track("scene.Transforms")()

	tr := entity.IdentityTransforms()
	tr[entity.Player] = l.Archer(gs.Player)
	tr[entity.Arrow] = l.Arrow(gs)

	tr[entity.Target1] = mgl32.Translate3D(gs.Targets.SlideX, targetY, target1Z).
		Mul4(upright()).
		Mul4(mgl32.Scale3D(targetScale, targetScale, targetScale))

	s2 := targetScale + gs.Targets.ExtraScale()
	tr[entity.Target2] = mgl32.Translate3D(target2X, targetY, target23Z).
		Mul4(upright()).
		Mul4(mgl32.HomogRotate3DZ(target2Spin)).
		Mul4(mgl32.Scale3D(s2, s2, s2))

	tr[entity.Target3] = mgl32.Translate3D(-target2X, targetY, target23Z).
		Mul4(upright()).
		Mul4(mgl32.HomogRotate3DZ(-target2Spin + gs.Targets.Spin)).
		Mul4(mgl32.Scale3D(targetScale, targetScale, targetScale))

	h := l.WallHalfSize
	scale := mgl32.Scale3D(h, h, h)
	tr[entity.WallLeft] = mgl32.Translate3D(-h, 0, 0).Mul4(mgl32.HomogRotate3DZ(math.Pi / 2)).Mul4(scale)
	tr[entity.WallRight] = mgl32.Translate3D(h, 0, 0).Mul4(mgl32.HomogRotate3DZ(-math.Pi / 2)).Mul4(scale)
	tr[entity.WallFront] = mgl32.Translate3D(0, 0, h).Mul4(mgl32.HomogRotate3DX(math.Pi / 2)).Mul4(scale)
	tr[entity.WallBack] = mgl32.Translate3D(0, 0, -h).Mul4(mgl32.HomogRotate3DX(-math.Pi / 2)).Mul4(scale)
	return tr
}

// Archer places the archer model with its feet below the eye point.
func (l Layout) Archer(p state.Player) mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X(), p.Position.Y()-archerDrop, p.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(p.Theta + math.Pi)).
		Mul4(mgl32.Scale3D(archerScale, archerScale, archerScale))
}

// Arrow places the arrow at its flight or frozen pose, or held by the
// archer when idle. The shaft is centred on the arrow's position.
func (l Layout) Arrow(gs *state.GameState) mgl32.Mat4 {
	if pos, ok := gs.Arrow.Position(); ok {
		o, _ := gs.Arrow.Orientation()
		return l.shaft(pos, o.Yaw, o.Pitch)
	}
	return l.shaft(launch.Origin(gs.Player, l.SideOffset), gs.Player.Theta, restPitch)
}

// Floor and Ceiling are the visual planes closing the range; they never collide.
func (l Layout) Floor() mgl32.Mat4 {
	h := l.WallHalfSize
	return mgl32.Translate3D(0, -h, 0).Mul4(mgl32.Scale3D(h, h, h))
}

func (l Layout) Ceiling() mgl32.Mat4 {
	h := l.WallHalfSize
	return mgl32.Translate3D(0, h, 0).Mul4(mgl32.HomogRotate3DX(math.Pi)).Mul4(mgl32.Scale3D(h, h, h))
}

func (l Layout) shaft(pos mgl32.Vec3, yaw, pitch float32) mgl32.Mat4 {
	s := l.ArrowScale
	return mgl32.Translate3D(pos.Elem()).
		Mul4(mgl32.HomogRotate3DY(yaw)).
		Mul4(mgl32.HomogRotate3DX(pitch)).
		Mul4(mgl32.Scale3D(s, s, s)).
		Mul4(mgl32.Translate3D(0, 0, -l.ArrowLength/2))
}

// upright tips a model authored with +z up onto the world's +y.
func upright() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(3 * math.Pi / 2)
}

// Visible reports which entities are drawn this frame. The archer only
// shows in the look-at camera. The held arrow shows there too; a fired or
// stuck arrow always shows until the game ends.
func Visible(gs *state.GameState, mode CameraMode) [entity.Count]bool {
	var v [entity.Count]bool
	for i := range v {
		v[i] = true
	}
	v[entity.Player] = mode == ModeLookAt
	v[entity.Arrow] = !gs.Session.GameOver &&
		(mode == ModeLookAt || gs.Arrow.Phase() != projectile.PhaseIdle)
	return v
}
