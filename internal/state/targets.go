package state

import "math"

const (
	targetSlideStep  = 1.0
	targetSlideLimit = 17.0
	targetScaleStep  = 0.002
	targetScaleSteps = 5
	targetSpinStep   = math.Pi / 4
)

// Targets holds the user-driven animation of the three targets:
// target 1 slides along x, target 2 pulses in size, target 3 spins.
type Targets struct {
	SlideX     float32
	slideRight bool

	pulse   int
	growing bool

	Spin float32
}

func NewTargets() Targets {
	return Targets{slideRight: true, growing: true}
}

// Slide moves target 1 one step, bouncing between ±17.
func (t *Targets) Slide() {
	if t.slideRight {
		t.SlideX += targetSlideStep
		if t.SlideX >= targetSlideLimit {
			t.slideRight = false
		}
		return
	}
	t.SlideX -= targetSlideStep
	if t.SlideX <= -targetSlideLimit {
		t.slideRight = true
	}
}

// Pulse grows or shrinks target 2, bouncing between 0 and 0.01 extra scale.
func (t *Targets) Pulse() {
	if t.growing {
		t.pulse++
		if t.pulse >= targetScaleSteps {
			t.growing = false
		}
		return
	}
	t.pulse--
	if t.pulse <= 0 {
		t.growing = true
	}
}

// ExtraScale is added to target 2's base scale.
func (t *Targets) ExtraScale() float32 {
	return float32(t.pulse) * targetScaleStep
}

// Rotate spins target 3 by an eighth of a turn.
func (t *Targets) Rotate() {
	t.Spin += targetSpinStep
}
