package scene_test

import (
	"math"
	"testing"

	"bullseye/internal/config"
	"bullseye/internal/entity"
	"bullseye/internal/physics"
	"bullseye/internal/projectile"
	"bullseye/internal/scene"
	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRange(t *testing.T) (*entity.Table, scene.Layout, *state.GameState) {
	t.Helper()
	c := config.Default()
	return scene.BuildTable(c.Models), scene.NewLayout(c), state.New(c.Game.Spawn, c.Game.MaxAttempts)
}

func TestWallBoxes(t *testing.T) {
	table, layout, gs := newRange(t)
	tr := layout.Transforms(gs)
	world := table.World(&tr)

	left := world[entity.WallLeft]
	assert.InDelta(t, -25, left.Min.X(), 1e-3)
	assert.InDelta(t, -25, left.Max.X(), 1e-3)
	assert.InDelta(t, -25, left.Min.Y(), 1e-3)
	assert.InDelta(t, 25, left.Max.Z(), 1e-3)

	front := world[entity.WallFront]
	assert.InDelta(t, 25, front.Min.Z(), 1e-3)
	assert.InDelta(t, 25, front.Max.Z(), 1e-3)

	back := world[entity.WallBack]
	assert.InDelta(t, -25, back.Max.Z(), 1e-3)
	assert.InDelta(t, 25, back.Max.X(), 1e-3)
}

func TestTargetBoxesStandUpright(t *testing.T) {
	table, layout, gs := newRange(t)
	tr := layout.Transforms(gs)
	world := table.World(&tr)

	t1 := world[entity.Target1]
	assert.InDelta(t, -23, t1.Min.Y(), 1e-3)
	assert.InDelta(t, -19, t1.Max.Y(), 1e-3)
	assert.InDelta(t, -17, t1.Center().Z(), 1e-3)
	assert.InDelta(t, 0, t1.Center().X(), 1e-3)

	gs.Targets.Slide()
	tr = layout.Transforms(gs)
	moved := table.World(&tr)[entity.Target1]
	assert.InDelta(t, 1, moved.Center().X(), 1e-3)

	before := world[entity.Target2].Size()
	gs.Targets.Pulse()
	tr = layout.Transforms(gs)
	after := table.World(&tr)[entity.Target2].Size()
	assert.Greater(t, after.Y(), before.Y())
}

func TestSpawnIsClear(t *testing.T) {
	table, layout, gs := newRange(t)
	tr := layout.Transforms(gs)
	world := table.World(&tr)

	assert.False(t, physics.PlayerBlocked(&world))
	archer := world[entity.Player]
	assert.InDelta(t, -23, archer.Min.Y(), 1e-3)
	assert.True(t, archer.Max.Y() > gs.Player.Position.Y()-1)
}

func TestArrowBoxFollowsFlight(t *testing.T) {
	table, layout, gs := newRange(t)
	p := mgl32.Vec3{3, -20, -8}
	require.True(t, gs.Arrow.Arm(projectile.Trajectory{
		Start: p, Control1: p, Control2: p, Target: p.Add(mgl32.Vec3{0, -1, -1}), Duration: 1,
	}))

	tr := layout.Transforms(gs)
	box := table.World(&tr)[entity.Arrow]
	assert.True(t, box.Center().ApproxEqualThreshold(p, 1e-3), "center %v", box.Center())
	// the shaft points down the launch direction so its extent is split
	// between -y and -z
	size := box.Size()
	assert.Greater(t, size.Y(), float32(2))
	assert.Greater(t, size.Z(), float32(2))
	assert.Less(t, size.X(), float32(1))
}

func TestIdleArrowHeldAtBow(t *testing.T) {
	table, layout, gs := newRange(t)
	tr := layout.Transforms(gs)
	box := table.World(&tr)[entity.Arrow]
	// held beside the archer, not at the origin of the range
	assert.InDelta(t, gs.Player.Position.Y(), box.Center().Y(), 2)
	assert.InDelta(t, -1.5, box.Center().X(), 2)
}

func TestCameraReset(t *testing.T) {
	c := scene.NewCamera(math.Pi/3, 0.1, 100)
	var p state.Player
	c.Reset(&p)
	assert.Equal(t, scene.ModeFree, c.Mode)
	assert.InDelta(t, math.Pi/4, p.Theta, 1e-6)
	assert.InDelta(t, math.Pi/6, c.Phi, 1e-6)
	assert.Equal(t, float32(2.5), c.Distance)

	assert.Equal(t, scene.ModeLookAt, c.Toggle())
	c.Reset(&p)
	assert.Zero(t, p.Theta)
	assert.Equal(t, float32(3.5), c.Distance)
	assert.Equal(t, "look_at", c.Mode.String())
	assert.Equal(t, scene.ModeFree, c.Toggle())
}

func TestCameraOrbitAndZoom(t *testing.T) {
	c := scene.NewCamera(math.Pi/3, 0.1, 100)
	p := state.Player{}
	c.Orbit(&p, 100, 0)
	assert.InDelta(t, -1, p.Theta, 1e-6)

	c.Orbit(&p, 0, 1e4)
	assert.Less(t, c.Phi, float32(math.Pi/2))
	assert.Greater(t, c.Phi, float32(1.5))
	c.Orbit(&p, 0, -1e5)
	assert.Greater(t, c.Phi, float32(-math.Pi/2))

	c.Distance = 1
	c.Zoom(100)
	assert.Greater(t, c.Distance, float32(0))
	c.Zoom(-10)
	assert.InDelta(t, 1, c.Distance, 1e-3)
}

func TestLookAtCentersShoulders(t *testing.T) {
	c := scene.NewCamera(math.Pi/3, 0.1, 100)
	c.Toggle()
	p := state.Player{Position: mgl32.Vec3{4, -10, 2}}
	c.Reset(&p)

	eye := c.Eye(p)
	assert.True(t, eye.ApproxEqual(mgl32.Vec3{4, 4, 8.5}), "eye %v", eye)

	clip := c.Projection(800, 600).Mul4(c.View(p)).Mul4x1(mgl32.Vec4{4, 4, 5, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-4)
	assert.InDelta(t, 0, ndc.Y(), 1e-4)
}

func TestFreeCameraSitsAtEye(t *testing.T) {
	c := scene.NewCamera(math.Pi/3, 0.1, 100)
	p := state.Player{Position: mgl32.Vec3{0, -10, 0}}
	c.Reset(&p)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Eye(p))

	// the view looks away from the orbit offset, so it points down
	inv := c.View(p).Inv()
	forward := inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	assert.Less(t, forward.Y(), float32(0))
}

func TestVisible(t *testing.T) {
	_, _, gs := newRange(t)
	v := scene.Visible(gs, scene.ModeFree)
	assert.False(t, v[entity.Player])
	assert.False(t, v[entity.Arrow])
	assert.True(t, v[entity.Target1])

	v = scene.Visible(gs, scene.ModeLookAt)
	assert.True(t, v[entity.Player])
	assert.True(t, v[entity.Arrow])

	p := mgl32.Vec3{}
	require.True(t, gs.Arrow.Arm(projectile.Trajectory{Start: p, Control1: p, Control2: p, Target: p, Duration: 1}))
	assert.True(t, scene.Visible(gs, scene.ModeFree)[entity.Arrow])

	gs.Session.GameOver = true
	assert.False(t, scene.Visible(gs, scene.ModeLookAt)[entity.Arrow])
}
