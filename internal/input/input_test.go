package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	assert.True(t, im.JustPressed(ActionFire))
	assert.True(t, im.IsActive(ActionFire))

	// key repeat does not retrigger the edge
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionFire))
	assert.True(t, im.IsActive(ActionFire))

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	assert.True(t, im.JustReleased(ActionFire))
	assert.False(t, im.IsActive(ActionFire))

	im.PostUpdate()
	assert.False(t, im.JustReleased(ActionFire))
}

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()
	bindings := map[glfw.Key]Action{
		glfw.KeyW:      ActionMoveForward,
		glfw.KeyS:      ActionMoveBackward,
		glfw.KeyA:      ActionMoveLeft,
		glfw.KeyD:      ActionMoveRight,
		glfw.KeyC:      ActionRecover,
		glfw.KeyF:      ActionToggleCamera,
		glfw.KeyT:      ActionSlideTarget,
		glfw.KeyE:      ActionScaleTarget,
		glfw.KeyR:      ActionRotateTarget,
		glfw.KeyB:      ActionToggleBoxes,
		glfw.KeyEscape: ActionQuit,
	}
	for key, action := range bindings {
		im.HandleKeyEvent(key, glfw.Press)
		assert.True(t, im.JustPressed(action), "key %v", key)
	}
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	assert.False(t, im.IsActive(ActionCount))
}

func TestDragOnlyWithLeftButton(t *testing.T) {
	im := NewInputManager()

	im.HandleCursorPos(100, 100)
	im.HandleCursorPos(110, 90)
	dx, dy := im.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleCursorPos(130, 95)
	im.HandleCursorPos(135, 100)
	dx, dy = im.Drag()
	assert.Equal(t, 25.0, dx)
	assert.Equal(t, 10.0, dy)

	x, y := im.Cursor()
	assert.Equal(t, 135.0, x)
	assert.Equal(t, 100.0, y)

	im.PostUpdate()
	dx, dy = im.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestScrollResetsEachFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleScroll(1)
	im.HandleScroll(0.5)
	assert.Equal(t, 1.5, im.Scroll())
	im.PostUpdate()
	assert.Zero(t, im.Scroll())
}

func TestUnbind(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeySpace)
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	assert.False(t, im.IsActive(ActionFire))

	im.BindKey(glfw.KeyEnter, ActionFire)
	im.HandleKeyEvent(glfw.KeyEnter, glfw.Press)
	assert.True(t, im.JustPressed(ActionFire))

	im.UnbindMouseButton(glfw.MouseButtonLeft)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	assert.False(t, im.IsActive(ActionMouseLeft))
}

func TestFrameSnapshot(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleCursorPos(10, 20)
	im.HandleScroll(-1)

	f := im.Frame()
	assert.True(t, f.Held[ActionMoveForward])
	assert.True(t, f.Pressed[ActionMouseLeft])
	assert.Equal(t, 10.0, f.CursorX)
	assert.Equal(t, -1.0, f.Scroll)

	im.PostUpdate()
	f = im.Frame()
	assert.True(t, f.Held[ActionMoveForward])
	assert.False(t, f.Pressed[ActionMoveForward])
	assert.Zero(t, f.Scroll)
}
