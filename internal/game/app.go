package game

import (
	"time"

	"bullseye/internal/config"
	hudrender "bullseye/internal/graphics/renderables/hud"
	"bullseye/internal/graphics/renderables/wireframe"
	"bullseye/internal/graphics/renderer"
	"bullseye/internal/hud"
	"bullseye/internal/input"
	"bullseye/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	overlay      *hud.Overlay

	session *Session

	fpsLimiter *FPSLimiter
	fps        fpsCounter
	lastTime   time.Time
	log        *zap.Logger
}

func NewApp(window *glfw.Window, im *input.InputManager, cfg config.Config, logger *zap.Logger) (*App, error) {
	r, err := renderer.NewRenderer(
		wireframe.NewWireframe(),
		hudrender.NewOverlay(),
	)
	if err != nil {
		return nil, err
	}
	config.SetFPSLimit(cfg.FPSCap)

	return &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		overlay:      hud.NewOverlay(),
		session:      NewSession(cfg, logger),
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		log:          logger,
	}, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	a.session.Tick(float32(dt), a.sampleInput())
	a.fps.Frame(now)
	a.render()

	a.window.SwapBuffers()

	if d := time.Since(now); d > slowFrame {
		a.log.Debug("slow frame", zap.Duration("took", d), zap.String("top", profiling.TopN(5)))
	}

	a.inputManager.PostUpdate()

	a.fpsLimiter.Wait()
}

// sampleInput reads this frame's actions and converts the pointer from
// window to framebuffer pixels, which differ on high-DPI displays.
func (a *App) sampleInput() FrameInput {
	f := a.inputManager.Frame()
	fbW, fbH := a.window.GetFramebufferSize()
	winW, winH := a.window.GetSize()

	sx, sy := 1.0, 1.0
	if winW > 0 && winH > 0 {
		sx = float64(fbW) / float64(winW)
		sy = float64(fbH) / float64(winH)
	}

	return FrameInput{
		Forward:      f.Held[input.ActionMoveForward],
		Backward:     f.Held[input.ActionMoveBackward],
		Left:         f.Held[input.ActionMoveLeft],
		Right:        f.Held[input.ActionMoveRight],
		Fire:         f.Pressed[input.ActionFire],
		Recover:      f.Pressed[input.ActionRecover],
		ToggleCamera: f.Pressed[input.ActionToggleCamera],
		SlideTarget:  f.Pressed[input.ActionSlideTarget],
		ScaleTarget:  f.Pressed[input.ActionScaleTarget],
		RotateTarget: f.Pressed[input.ActionRotateTarget],
		ToggleBoxes:  f.Pressed[input.ActionToggleBoxes],
		CursorX:      f.CursorX * sx,
		CursorY:      f.CursorY * sy,
		DragX:        f.DragX,
		DragY:        f.DragY,
		Scroll:       f.Scroll,
		Width:        fbW,
		Height:       fbH,
	}
}

func (a *App) render() {
	s := a.session
	w, h := a.window.GetFramebufferSize()
	lines := s.HUD()
	if fps, ok := a.fps.Rate(); ok {
		lines = append(lines, hud.FPSLine(fps))
	}
	changed := a.overlay.Update(w, h, lines)

	a.renderer.Render(renderer.RenderContext{
		View:           s.Camera.View(s.State.Player),
		Proj:           s.Camera.Projection(w, h),
		Boxes:          s.FrameBoxes(config.GetDebugBoxes()),
		Overlay:        a.overlay.Image(),
		OverlayChanged: changed,
		Width:          w,
		Height:         h,
	})
}

// Dispose releases GL resources. The window is owned by the caller.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
