package projectile

import "github.com/go-gl/mathgl/mgl32"

// Phase names the lifecycle stage of the arrow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseArmed
	PhaseColliding
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseColliding:
		return "colliding"
	}
	return "unknown"
}

// State is one of Idle, Armed or Colliding.
type State interface {
	Phase() Phase
}

// Idle: the arrow rests on the archer; no timer runs.
type Idle struct{}

// Armed: the arrow is flying along Trajectory.
type Armed struct {
	Trajectory Trajectory
}

// Colliding: the arrow is frozen at its point of impact.
type Colliding struct {
	Position    mgl32.Vec3
	Orientation Orientation
}

func (Idle) Phase() Phase      { return PhaseIdle }
func (Armed) Phase() Phase     { return PhaseArmed }
func (Colliding) Phase() Phase { return PhaseColliding }

// Projectile drives the arrow through Idle → Armed → Colliding → Idle.
type Projectile struct {
	state State
}

// New returns an idle projectile
func New() *Projectile {
	return &Projectile{state: Idle{}}
}

// State returns the current lifecycle state.
func (p *Projectile) State() State {
	return p.state
}

// Phase returns the current lifecycle phase.
func (p *Projectile) Phase() Phase {
	return p.state.Phase()
}

// Arm starts a flight. Only an idle projectile can be armed; otherwise
// nothing changes and false is returned.
func (p *Projectile) Arm(tr Trajectory) bool {
	if _, ok := p.state.(Idle); !ok {
		return false
	}
	tr.Elapsed = 0
	p.state = Armed{Trajectory: tr}
	return true
}

// Advance accumulates dt seconds of flight time.
func (p *Projectile) Advance(dt float32) {
	armed, ok := p.state.(Armed)
	if !ok {
		return
	}
	armed.Trajectory.Elapsed += dt
	p.state = armed
}

// Position returns the arrow's free position while flying or frozen.
// An idle arrow is attached to the archer and has no free position.
func (p *Projectile) Position() (mgl32.Vec3, bool) {
	switch s := p.state.(type) {
	case Armed:
		return s.Trajectory.Position(), true
	case Colliding:
		return s.Position, true
	}
	return mgl32.Vec3{}, false
}

// Orientation returns the arrow's orientation while flying or frozen.
func (p *Projectile) Orientation() (Orientation, bool) {
	switch s := p.state.(type) {
	case Armed:
		return s.Trajectory.Orientation(), true
	case Colliding:
		return s.Orientation, true
	}
	return Orientation{}, false
}

// Freeze stops a flying arrow where it is. Returns false if it was not flying.
func (p *Projectile) Freeze() bool {
	armed, ok := p.state.(Armed)
	if !ok {
		return false
	}
	p.state = Colliding{
		Position:    armed.Trajectory.Position(),
		Orientation: armed.Trajectory.Orientation(),
	}
	return true
}

// Settle returns a flight that reached its target without colliding to Idle.
// Returns true when that happened (the arrow missed).
func (p *Projectile) Settle() bool {
	armed, ok := p.state.(Armed)
	if !ok || !armed.Trajectory.Done() {
		return false
	}
	p.state = Idle{}
	return true
}

// Recover clears a frozen arrow back to Idle.
func (p *Projectile) Recover() bool {
	if _, ok := p.state.(Colliding); !ok {
		return false
	}
	p.state = Idle{}
	return true
}
