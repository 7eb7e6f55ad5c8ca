package state

import (
	"math"

	"bullseye/internal/projectile"
	"bullseye/internal/session"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is the archer's pose on the range.
type Player struct {
	Position mgl32.Vec3
	// Theta is the facing angle around Y shared with the orbit camera.
	Theta float32
}

// Forward returns the unit walking direction on the XZ plane.
func (p Player) Forward() mgl32.Vec3 {
	s, c := math.Sincos(float64(p.Theta))
	return mgl32.Vec3{float32(-s), 0, float32(-c)}
}

// Right returns the unit strafing direction on the XZ plane.
func (p Player) Right() mgl32.Vec3 {
	s, c := math.Sincos(float64(p.Theta))
	return mgl32.Vec3{float32(c), 0, float32(-s)}
}

// GameState is the single aggregate the tick passes around.
type GameState struct {
	Player  Player
	Arrow   *projectile.Projectile
	Session *session.Session
	Targets Targets
}

// New creates a fresh game with the archer at spawn.
func New(spawn mgl32.Vec3, maxAttempts int) *GameState {
	return &GameState{
		Player:  Player{Position: spawn},
		Arrow:   projectile.New(),
		Session: session.New(maxAttempts),
		Targets: NewTargets(),
	}
}
