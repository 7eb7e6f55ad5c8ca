package scene

import (
	"math"

	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode selects where the camera sits relative to the archer.
type CameraMode int

const (
	// ModeFree looks out from the archer's eye along the orbit direction.
	ModeFree CameraMode = iota
	// ModeLookAt orbits behind the archer's shoulders, looking at them.
	ModeLookAt
)

func (m CameraMode) String() string {
	if m == ModeLookAt {
		return "look_at"
	}
	return "free"
}

const (
	orbitSensitivity = 0.01
	zoomStep         = 0.1
	// phi stops just short of the poles so the view never lines up with up
	maxPhi = math.Pi/2 - 1e-3

	eyeHeight      = 10
	shoulderHeight = 14
	shoulderBack   = 3
)

// Camera is the spherical orbit camera. Its theta is the archer's facing
// angle, so turning the camera turns the archer.
type Camera struct {
	Mode     CameraMode
	Phi      float32
	Distance float32

	FovY float32
	Near float32
	Far  float32
}

func NewCamera(fovY, near, far float32) *Camera {
	return &Camera{FovY: fovY, Near: near, Far: far}
}

// Reset applies the starting pose of the current mode.
func (c *Camera) Reset(p *state.Player) {
	if c.Mode == ModeLookAt {
		p.Theta, c.Phi, c.Distance = 0, 0, 3.5
		return
	}
	p.Theta, c.Phi, c.Distance = math.Pi/4, math.Pi/6, 2.5
}

// Toggle switches between the free and look-at modes and returns the new mode.
func (c *Camera) Toggle() CameraMode {
	if c.Mode == ModeFree {
		c.Mode = ModeLookAt
	} else {
		c.Mode = ModeFree
	}
	return c.Mode
}

// Orbit applies a pointer drag of (dx, dy) pixels.
func (c *Camera) Orbit(p *state.Player, dx, dy float64) {
	p.Theta -= float32(orbitSensitivity * dx)
	c.Phi = mgl32.Clamp(c.Phi+float32(orbitSensitivity*dy), -maxPhi, maxPhi)
}

// Zoom applies a scroll offset.
func (c *Camera) Zoom(yoff float64) {
	c.Distance -= float32(zoomStep * yoff)
	if c.Distance < mgl32.Epsilon {
		c.Distance = mgl32.Epsilon
	}
}

// offset is the spherical position relative to the orbit centre.
func (c *Camera) offset(theta float32) mgl32.Vec3 {
	st, ct := math.Sincos(float64(theta))
	sp, cp := math.Sincos(float64(c.Phi))
	r := float64(c.Distance)
	return mgl32.Vec3{float32(r * cp * st), float32(r * sp), float32(r * cp * ct)}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye(p state.Player) mgl32.Vec3 {
	if c.Mode == ModeLookAt {
		return p.Position.Add(mgl32.Vec3{0, shoulderHeight, shoulderBack}).Add(c.offset(p.Theta))
	}
	return p.Position.Add(mgl32.Vec3{0, eyeHeight, 0})
}

// View returns the world-to-camera matrix.
func (c *Camera) View(p state.Player) mgl32.Mat4 {
	eye := c.Eye(p)
	var center mgl32.Vec3
	if c.Mode == ModeLookAt {
		center = p.Position.Add(mgl32.Vec3{0, shoulderHeight, shoulderBack})
	} else {
		center = eye.Sub(c.offset(p.Theta))
	}
	return mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a framebuffer of the given size.
func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}
