package projectile

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Trajectory fully determines the arrow's position over one flight.
type Trajectory struct {
	Start    mgl32.Vec3
	Control1 mgl32.Vec3
	Control2 mgl32.Vec3
	Target   mgl32.Vec3
	Elapsed  float32 // seconds since launch
	Duration float32 // seconds
}

// Orientation of the arrow in radians.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// Progress returns the normalized flight time in [0, 1].
func (tr Trajectory) Progress() float32 {
	if tr.Duration <= 0 {
		return 1
	}
	t := tr.Elapsed / tr.Duration
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}

// Done reports whether the flight reached its target point.
func (tr Trajectory) Done() bool {
	return tr.Progress() >= 1
}

// Position evaluates the curve at the current progress.
func (tr Trajectory) Position() mgl32.Vec3 {
	return BezierPoint(tr.Progress(), tr.Start, tr.Control1, tr.Control2, tr.Target)
}

// Orientation is derived from the straight start→target direction and
// stays fixed for the whole flight; it does not follow the curve tangent.
func (tr Trajectory) Orientation() Orientation {
	return DirectionOrientation(tr.Target.Sub(tr.Start))
}

// DirectionOrientation returns yaw = atan2(-dx, -dz) and pitch = asin(dy)
// of the normalized direction. A zero direction yields a zero orientation.
func DirectionOrientation(dir mgl32.Vec3) Orientation {
	if dir.Len() == 0 {
		return Orientation{}
	}
	d := dir.Normalize()
	dy := float64(mgl32.Clamp(d.Y(), -1, 1))
	return Orientation{
		Yaw:   float32(math.Atan2(float64(-d.X()), float64(-d.Z()))),
		Pitch: float32(math.Asin(dy)),
	}
}
