package launch

import (
	"errors"
	"math"

	"bullseye/internal/projectile"
	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrRayParallel means the aim ray never meets the aim plane.
	ErrRayParallel = errors.New("launch: aim ray is parallel to the aim plane")
	// ErrBehindCamera means the aim plane is only hit behind the eye.
	ErrBehindCamera = errors.New("launch: aim plane is behind the camera")
	// ErrViewport means the framebuffer size or camera matrices cannot be inverted.
	ErrViewport = errors.New("launch: degenerate viewport or camera")
)

// parallelEpsilon bounds |dir.y| below which the aim ray counts as parallel.
const parallelEpsilon = 1e-6

// Params are the fixed launch constants.
type Params struct {
	Duration    float32 // flight time in seconds
	ArrowLength float32 // model length before scaling
	ArrowScale  float32
	Lift1       float32 // vertical lift of the 1/3 control point
	Lift2       float32 // vertical lift of the 2/3 control point
	AimDrop     float32 // aim plane height below the archer
	SideOffset  float32 // lateral offset of the launch origin
}

// DefaultParams matches the range's arrow model and arc.
func DefaultParams() Params {
	return Params{
		Duration:    1.0,
		ArrowLength: 15.0926,
		ArrowScale:  0.3,
		Lift1:       4.5,
		Lift2:       3.0,
		AimDrop:     15.0,
		SideOffset:  1.5,
	}
}

// Aim is the pointer and camera state sampled on the fire input.
type Aim struct {
	CursorX, CursorY float64
	Width, Height    int // framebuffer size in pixels
	View             mgl32.Mat4
	Projection       mgl32.Mat4
}

// Controller arms the projectile on fire input.
type Controller struct {
	params Params
}

func NewController(params Params) *Controller {
	return &Controller{params: params}
}

// Params returns the controller's launch constants
func (c *Controller) Params() Params {
	return c.params
}

// Fire starts a flight toward the point under the pointer. Firing while a
// flight is armed or frozen is a no-op and returns false with no error.
// An aim that cannot be resolved returns an error and changes nothing.
func (c *Controller) Fire(gs *state.GameState, aim Aim) (projectile.Trajectory, bool, error) {
	if gs.Arrow.Phase() != projectile.PhaseIdle {
		return projectile.Trajectory{}, false, nil
	}

	start := Origin(gs.Player, c.params.SideOffset)

	eye, dir, err := ScreenRay(aim.CursorX, aim.CursorY, aim.Width, aim.Height, aim.View, aim.Projection)
	if err != nil {
		return projectile.Trajectory{}, false, err
	}
	target, err := IntersectHorizontalPlane(eye, dir, gs.Player.Position.Y()-c.params.AimDrop)
	if err != nil {
		return projectile.Trajectory{}, false, err
	}

	tr := Plan(start, target, c.params)
	if !gs.Arrow.Arm(tr) {
		return projectile.Trajectory{}, false, nil
	}
	return tr, true, nil
}

// Origin is where the arrow leaves the archer, offset sideways by the facing.
func Origin(p state.Player, side float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(p.Theta))
	return p.Position.Add(mgl32.Vec3{-side * float32(c), 0, float32(s)})
}

// Plan builds the arched trajectory from start to target. Both ends are
// pushed forward by half the arrow's rendered length; the control points
// sit at 1/3 and 2/3 of the straight path, lifted by Lift1 and Lift2.
func Plan(start, target mgl32.Vec3, params Params) projectile.Trajectory {
	path := target.Sub(start)
	distance := path.Len()
	var dir mgl32.Vec3
	if distance > 0 {
		dir = path.Mul(1 / distance)
	}

	half := params.ArrowLength / 2 * params.ArrowScale
	start = start.Add(dir.Mul(half))
	target = target.Add(dir.Mul(half))

	return projectile.Trajectory{
		Start:    start,
		Control1: start.Add(dir.Mul(distance / 3)).Add(mgl32.Vec3{0, params.Lift1, 0}),
		Control2: start.Add(dir.Mul(distance * 2 / 3)).Add(mgl32.Vec3{0, params.Lift2, 0}),
		Target:   target,
		Duration: params.Duration,
	}
}
