package game

import (
	"time"

	"bullseye/internal/bounds"
	"bullseye/internal/config"
	"bullseye/internal/entity"
	"bullseye/internal/hud"
	"bullseye/internal/launch"
	"bullseye/internal/logging"
	"bullseye/internal/physics"
	"bullseye/internal/profiling"
	"bullseye/internal/scene"
	"bullseye/internal/state"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// FrameInput is everything the tick reads from the user for one frame.
// Cursor coordinates are framebuffer pixels.
type FrameInput struct {
	Forward, Backward, Left, Right bool

	Fire         bool
	Recover      bool
	ToggleCamera bool
	SlideTarget  bool
	ScaleTarget  bool
	RotateTarget bool
	ToggleBoxes  bool

	CursorX, CursorY float64
	DragX, DragY     float64
	Scroll           float64
	Width, Height    int
}

// Session is one play-through of the range. It owns the game state and
// runs the per-frame update; it does not touch GL.
type Session struct {
	State  *state.GameState
	Camera *scene.Camera

	layout    scene.Layout
	table     *entity.Table
	eval      *physics.Evaluator
	launcher  *launch.Controller
	moveSpeed float32
	log       *zap.Logger

	transforms entity.Transforms
	outcome    physics.Outcome
}

func NewSession(cfg config.Config, logger *zap.Logger) *Session {
	gs := state.New(cfg.Game.Spawn, cfg.Game.MaxAttempts)
	cam := scene.NewCamera(cfg.Camera.FovY, cfg.Camera.Near, cfg.Camera.Far)
	cam.Reset(&gs.Player)

	table := scene.BuildTable(cfg.Models)
	s := &Session{
		State:     gs,
		Camera:    cam,
		layout:    scene.NewLayout(cfg),
		table:     table,
		eval:      physics.NewEvaluator(table, cfg.Game.HitBonus),
		launcher:  launch.NewController(launchParams(cfg.Flight)),
		moveSpeed: cfg.Game.MoveSpeed,
		log:       logger.With(zap.Stringer("session", gs.Session.ID)),
	}
	s.transforms = s.layout.Transforms(gs)
	s.outcome.World = table.World(&s.transforms)

	s.log.Info("session started",
		zap.Int("max_attempts", gs.Session.MaxAttempts),
		logging.Vec3("spawn", gs.Player.Position))
	return s
}

func launchParams(f config.Flight) launch.Params {
	return launch.Params{
		Duration:    f.Duration,
		ArrowLength: f.ArrowLength,
		ArrowScale:  f.ArrowScale,
		Lift1:       f.Lift1,
		Lift2:       f.Lift2,
		AimDrop:     f.AimDrop,
		SideOffset:  f.SideOffset,
	}
}

// Tick advances the game by dt seconds.
func (s *Session) Tick(dt float32, in FrameInput) physics.Outcome {
	defer profiling.Track("game.Tick")()
	gs := s.State

	s.handleCamera(in)
	s.handleTargets(in)

	if in.Recover && gs.Arrow.Recover() {
		s.log.Debug("arrow recovered")
	}
	if in.Fire {
		s.fire(in)
	}

	delta := s.movement(in, dt)
	gs.Player.Position = gs.Player.Position.Add(delta)

	gs.Arrow.Advance(dt)

	wasOver := gs.Session.GameOver
	s.transforms = s.layout.Transforms(gs)
	out := s.eval.Evaluate(gs, physics.Frame{Transforms: &s.transforms, Delta: delta})
	s.report(out, wasOver)

	settled := gs.Arrow.Settle()
	if settled {
		s.log.Info("arrow missed", zap.Int("attempts", gs.Session.Attempts))
	}
	if out.Blocked {
		s.logBlocked(&out.World)
	}
	if out.Blocked || settled {
		s.transforms = s.layout.Transforms(gs)
		out.World = s.table.World(&s.transforms)
	}

	s.outcome = out
	return out
}

func (s *Session) handleCamera(in FrameInput) {
	if in.ToggleCamera {
		mode := s.Camera.Toggle()
		s.log.Debug("camera mode", zap.Stringer("mode", mode))
	}
	if in.DragX != 0 || in.DragY != 0 {
		s.Camera.Orbit(&s.State.Player, in.DragX, in.DragY)
	}
	if in.Scroll != 0 {
		s.Camera.Zoom(in.Scroll)
	}
}

func (s *Session) handleTargets(in FrameInput) {
	t := &s.State.Targets
	if in.SlideTarget {
		t.Slide()
	}
	if in.ScaleTarget {
		t.Pulse()
	}
	if in.RotateTarget {
		t.Rotate()
	}
	if in.ToggleBoxes {
		s.log.Debug("debug boxes", zap.Bool("enabled", config.ToggleDebugBoxes()))
	}
}

func (s *Session) fire(in FrameInput) {
	gs := s.State
	if gs.Session.GameOver {
		return
	}
	aim := launch.Aim{
		CursorX:    in.CursorX,
		CursorY:    in.CursorY,
		Width:      in.Width,
		Height:     in.Height,
		View:       s.Camera.View(gs.Player),
		Projection: s.Camera.Projection(in.Width, in.Height),
	}
	tr, ok, err := s.launcher.Fire(gs, aim)
	switch {
	case err != nil:
		s.log.Debug("fire rejected", zap.Error(err))
	case ok:
		s.log.Info("arrow fired",
			logging.Vec3("from", tr.Start),
			logging.Vec3("to", tr.Target))
	}
}

// movement returns this tick's displacement on the XZ plane.
func (s *Session) movement(in FrameInput, dt float32) mgl32.Vec3 {
	p := s.State.Player
	var d mgl32.Vec3
	if in.Forward {
		d = d.Add(p.Forward())
	}
	if in.Backward {
		d = d.Sub(p.Forward())
	}
	if in.Right {
		d = d.Add(p.Right())
	}
	if in.Left {
		d = d.Sub(p.Right())
	}
	return d.Mul(s.moveSpeed * dt)
}

func (s *Session) report(out physics.Outcome, wasOver bool) {
	sess := s.State.Session
	switch out.Hit {
	case physics.HitTarget:
		s.log.Info("target hit",
			zap.Stringer("target", out.Struck),
			zap.Int("score", sess.Score),
			zap.Int("attempts", sess.Attempts))
	case physics.HitWall:
		s.log.Info("wall hit",
			zap.Stringer("wall", out.Struck),
			zap.Int("attempts", sess.Attempts))
	}
	if out.GameOver && !wasOver {
		s.log.Info("game over",
			zap.Int("score", sess.Score),
			zap.Duration("played", time.Since(sess.StartedAt)))
	}
}

// logBlocked names what the archer walked into, using the boxes from
// before the move was reverted.
func (s *Session) logBlocked(world *entity.WorldBoxes) {
	if ce := s.log.Check(zap.DebugLevel, "archer blocked"); ce != nil {
		statics := world.Instances(append(entity.Targets[:], entity.Walls[:]...)...)
		var hit []string
		for _, c := range bounds.CheckCollisions(world.Instances(entity.Player), statics) {
			hit = append(hit, c.Static)
		}
		ce.Write(zap.Strings("against", hit))
	}
}

// HUD returns the overlay text for the current state.
func (s *Session) HUD() []hud.Line {
	return hud.Lines(s.State.Session, s.State.Arrow.Phase())
}
