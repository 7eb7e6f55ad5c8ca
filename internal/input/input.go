package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical control of the range, independent of the key or
// button that triggers it.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionRecover
	ActionToggleCamera
	ActionSlideTarget
	ActionScaleTarget
	ActionRotateTarget
	ActionToggleBoxes
	ActionQuit
	ActionMouseLeft
	ActionCount // Sentinel value for array sizing
)

func (a Action) valid() bool { return a >= 0 && a < ActionCount }

// Frame is a consistent copy of the input state for one tick. Pointer
// values are in window coordinates.
type Frame struct {
	Held    [ActionCount]bool
	Pressed [ActionCount]bool

	CursorX, CursorY float64
	DragX, DragY     float64
	Scroll           float64
}

// InputManager turns glfw callbacks into per-frame action state. The
// callbacks write and the tick reads, both on the main thread in
// practice; the lock keeps the pair safe if that ever changes.
type InputManager struct {
	mu sync.RWMutex

	keys    map[glfw.Key][]Action
	buttons map[glfw.MouseButton][]Action

	held     [ActionCount]bool
	pressed  [ActionCount]bool // edges since the last PostUpdate
	released [ActionCount]bool

	cursorX, cursorY float64
	haveCursor       bool
	dragX, dragY     float64 // accumulated while ActionMouseLeft is held
	scrollY          float64
}

// NewInputManager returns a manager with the range's default bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keys:    make(map[glfw.Key][]Action),
		buttons: make(map[glfw.MouseButton][]Action),
	}

	for key, action := range map[glfw.Key]Action{
		glfw.KeyW:      ActionMoveForward,
		glfw.KeyS:      ActionMoveBackward,
		glfw.KeyA:      ActionMoveLeft,
		glfw.KeyD:      ActionMoveRight,
		glfw.KeySpace:  ActionFire,
		glfw.KeyC:      ActionRecover,
		glfw.KeyF:      ActionToggleCamera,
		glfw.KeyT:      ActionSlideTarget,
		glfw.KeyE:      ActionScaleTarget,
		glfw.KeyR:      ActionRotateTarget,
		glfw.KeyB:      ActionToggleBoxes,
		glfw.KeyEscape: ActionQuit,
	} {
		im.BindKey(key, action)
	}
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey adds action to the key; a key may drive several actions.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !action.valid() {
		return
	}
	im.mu.Lock()
	im.keys[key] = append(im.keys[key], action)
	im.mu.Unlock()
}

func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	delete(im.keys, key)
	im.mu.Unlock()
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !action.valid() {
		return
	}
	im.mu.Lock()
	im.buttons[button] = append(im.buttons[button], action)
	im.mu.Unlock()
}

func (im *InputManager) UnbindMouseButton(button glfw.MouseButton) {
	im.mu.Lock()
	delete(im.buttons, button)
	im.mu.Unlock()
}

// HandleKeyEvent records a key transition. Repeat counts as held but
// never produces a second press edge.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.set(im.keys[key], action == glfw.Press || action == glfw.Repeat)
}

func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.set(im.buttons[button], action == glfw.Press)
}

// set updates held state and edges; callers hold mu.
func (im *InputManager) set(actions []Action, down bool) {
	for _, a := range actions {
		switch {
		case down && !im.held[a]:
			im.pressed[a] = true
		case !down && im.held[a]:
			im.released[a] = true
		}
		im.held[a] = down
	}
}

// HandleCursorPos records the pointer position. Movement while the left
// button is held accumulates as a drag.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.haveCursor && im.held[ActionMouseLeft] {
		im.dragX += x - im.cursorX
		im.dragY += y - im.cursorY
	}
	im.cursorX, im.cursorY = x, y
	im.haveCursor = true
}

// HandleScroll accumulates vertical scroll until the next PostUpdate.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	im.scrollY += yoff
	im.mu.Unlock()
}

// SetCallbacks routes the window's key, button, cursor and scroll
// events into the manager.
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// PostUpdate ends the frame: edges, drag and scroll start over.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	clear(im.pressed[:])
	clear(im.released[:])
	im.dragX, im.dragY = 0, 0
	im.scrollY = 0
}

// Frame copies the state gathered since the last PostUpdate.
func (im *InputManager) Frame() Frame {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return Frame{
		Held:    im.held,
		Pressed: im.pressed,
		CursorX: im.cursorX,
		CursorY: im.cursorY,
		DragX:   im.dragX,
		DragY:   im.dragY,
		Scroll:  im.scrollY,
	}
}

func (im *InputManager) IsActive(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.held[action]
}

func (im *InputManager) JustPressed(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.pressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.released[action]
}

func (im *InputManager) Cursor() (x, y float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cursorX, im.cursorY
}

// Drag returns the pointer movement made with the left button held this frame.
func (im *InputManager) Drag() (dx, dy float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.dragX, im.dragY
}

func (im *InputManager) Scroll() float64 {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.scrollY
}
