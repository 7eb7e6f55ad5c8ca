package game

import (
	"testing"

	"bullseye/internal/config"
	"bullseye/internal/physics"
	"bullseye/internal/projectile"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	fbWidth  = 800
	fbHeight = 600
)

func newTestSession(t *testing.T, cfg config.Config) (*Session, *observer.ObservedLogs) {
	t.Helper()
	require.NoError(t, cfg.Validate())
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSession(cfg, zap.New(core)), logs
}

func centerAim() FrameInput {
	return FrameInput{CursorX: fbWidth / 2, CursorY: fbHeight / 2, Width: fbWidth, Height: fbHeight}
}

// cursorFor returns the framebuffer pixel under which p appears.
func cursorFor(s *Session, p mgl32.Vec3) (float64, float64) {
	clip := s.Camera.Projection(fbWidth, fbHeight).Mul4(s.Camera.View(s.State.Player)).Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return float64(ndc.X()+1) / 2 * fbWidth, float64(1-ndc.Y()) / 2 * fbHeight
}

// fly runs ticks of dt until the arrow is no longer armed and returns
// every outcome seen.
func fly(t *testing.T, s *Session, dt float32) []physics.Outcome {
	t.Helper()
	var outs []physics.Outcome
	for i := 0; i < 1000 && s.State.Arrow.Phase() == projectile.PhaseArmed; i++ {
		outs = append(outs, s.Tick(dt, FrameInput{Width: fbWidth, Height: fbHeight}))
	}
	require.NotEqual(t, projectile.PhaseArmed, s.State.Arrow.Phase(), "flight never ended")
	return outs
}

func fire(t *testing.T, s *Session, in FrameInput) {
	t.Helper()
	in.Fire = true
	s.Tick(0, in)
	require.Equal(t, projectile.PhaseArmed, s.State.Arrow.Phase())
}

func TestCleanMissReturnsToIdle(t *testing.T) {
	s, logs := newTestSession(t, config.Default())
	// steep enough that the shot lands on the open floor
	s.Camera.Phi = 1.2

	fire(t, s, centerAim())
	outs := fly(t, s, 0.25)

	assert.Len(t, outs, 4)
	for _, out := range outs {
		assert.Equal(t, physics.HitNone, out.Hit)
	}
	assert.Equal(t, projectile.PhaseIdle, s.State.Arrow.Phase())
	assert.Zero(t, s.State.Session.Attempts)
	assert.Zero(t, s.State.Session.Score)
	assert.Equal(t, 1, logs.FilterMessage("arrow fired").Len())
	assert.Equal(t, 1, logs.FilterMessage("arrow missed").Len())
}

func TestTargetHitScores(t *testing.T) {
	cfg := config.Default()
	// a lower stance puts the aim plane inside the targets' height
	cfg.Game.Spawn = mgl32.Vec3{0, -6, 0}
	s, logs := newTestSession(t, cfg)

	x, y := cursorFor(s, mgl32.Vec3{0, -21, -15.5})
	in := centerAim()
	in.CursorX, in.CursorY = x, y
	fire(t, s, in)

	outs := fly(t, s, 0.05)
	last := outs[len(outs)-1]
	assert.Equal(t, physics.HitTarget, last.Hit)
	assert.Equal(t, "target1", last.Struck.String())

	assert.Equal(t, projectile.PhaseColliding, s.State.Arrow.Phase())
	assert.Equal(t, 1, s.State.Session.Attempts)
	assert.Equal(t, 50, s.State.Session.Score)
	assert.Equal(t, 1, logs.FilterMessage("target hit").Len())

	// frozen arrows stay put and show the recover prompt
	pos, _ := s.State.Arrow.Position()
	s.Tick(0.5, FrameInput{})
	still, _ := s.State.Arrow.Position()
	assert.Equal(t, pos, still)
	assert.Contains(t, lineTexts(s), "Press C to recover the arrow")

	s.Tick(0, FrameInput{Recover: true})
	assert.Equal(t, projectile.PhaseIdle, s.State.Arrow.Phase())
}

func TestFiveWallHitsEndTheGame(t *testing.T) {
	s, logs := newTestSession(t, config.Default())

	for i := 1; i <= 5; i++ {
		fire(t, s, centerAim())
		outs := fly(t, s, 1.0/60)
		last := outs[len(outs)-1]
		require.Equal(t, physics.HitWall, last.Hit, "shot %d", i)
		assert.Equal(t, i, s.State.Session.Attempts)
		assert.Equal(t, i == 5, last.GameOver)
		s.Tick(0, FrameInput{Recover: true})
	}

	assert.True(t, s.State.Session.GameOver)
	assert.Zero(t, s.State.Session.Score)
	assert.Equal(t, 1, logs.FilterMessage("game over").Len())
	assert.Contains(t, lineTexts(s), "GAME OVER")

	// no more arrows once the game is over
	s.Tick(0, FrameInput{Fire: true, CursorX: fbWidth / 2, CursorY: fbHeight / 2, Width: fbWidth, Height: fbHeight})
	assert.Equal(t, projectile.PhaseIdle, s.State.Arrow.Phase())
	assert.Equal(t, 5, s.State.Session.Attempts)
}

func TestBlockedMoveHasNoNetDisplacement(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Spawn = mgl32.Vec3{0, -10, -12}
	s, logs := newTestSession(t, cfg)
	s.State.Player.Theta = 0

	blocked := 0
	for i := 0; i < 10; i++ {
		before := s.State.Player.Position
		out := s.Tick(0.1, FrameInput{Forward: true})
		if out.Blocked {
			blocked++
			assert.True(t, s.State.Player.Position.ApproxEqual(before), "moved to %v", s.State.Player.Position)
		}
		assert.False(t, physics.PlayerBlocked(&out.World))
	}
	assert.Positive(t, blocked)
	entries := logs.FilterMessage("archer blocked").All()
	require.Len(t, entries, blocked)
	assert.Equal(t, []any{"target1"}, entries[0].ContextMap()["against"])
	assert.Greater(t, s.State.Player.Position.Z(), float32(-13.6))
}

func TestMovementFollowsFacing(t *testing.T) {
	s, _ := newTestSession(t, config.Default())
	s.State.Player.Theta = 0
	start := s.State.Player.Position

	s.Tick(0.2, FrameInput{Forward: true})
	assert.True(t, s.State.Player.Position.ApproxEqual(start.Add(mgl32.Vec3{0, 0, -1})))

	s.Tick(0.2, FrameInput{Right: true})
	assert.True(t, s.State.Player.Position.ApproxEqual(start.Add(mgl32.Vec3{1, 0, -1})))

	s.Tick(0.2, FrameInput{Left: true, Backward: true})
	assert.True(t, s.State.Player.Position.ApproxEqual(start))
}

func TestTargetAndCameraControls(t *testing.T) {
	s, _ := newTestSession(t, config.Default())

	s.Tick(0, FrameInput{SlideTarget: true, ScaleTarget: true, RotateTarget: true, ToggleCamera: true})
	assert.Equal(t, float32(1), s.State.Targets.SlideX)
	assert.InDelta(t, 0.002, s.State.Targets.ExtraScale(), 1e-7)
	assert.InDelta(t, 0.785398, s.State.Targets.Spin, 1e-5)
	assert.Equal(t, "look_at", s.Camera.Mode.String())

	theta := s.State.Player.Theta
	s.Tick(0, FrameInput{DragX: 50})
	assert.InDelta(t, theta-0.5, s.State.Player.Theta, 1e-6)

	d := s.Camera.Distance
	s.Tick(0, FrameInput{Scroll: 1})
	assert.InDelta(t, d-0.1, s.Camera.Distance, 1e-6)

	boxes := config.GetDebugBoxes()
	s.Tick(0, FrameInput{ToggleBoxes: true})
	assert.Equal(t, !boxes, config.GetDebugBoxes())
	config.SetDebugBoxes(boxes)
}

func lineTexts(s *Session) []string {
	var out []string
	for _, l := range s.HUD() {
		out = append(out, l.Text)
	}
	return out
}

func TestFrameBoxes(t *testing.T) {
	s, _ := newTestSession(t, config.Default())

	// free camera: archer and held arrow are hidden
	assert.Len(t, s.FrameBoxes(false), 9)
	assert.Len(t, s.FrameBoxes(true), 11)

	s.Camera.Toggle()
	boxes := s.FrameBoxes(false)
	assert.Len(t, boxes, 11)
	assert.Equal(t, archerColor, boxes[0].Color)

	floor := boxes[len(boxes)-2]
	assert.InDelta(t, -25, floor.Min.Y(), 1e-4)
	assert.InDelta(t, -25, floor.Min.X(), 1e-4)
	assert.InDelta(t, 25, floor.Max.Z(), 1e-4)
}
