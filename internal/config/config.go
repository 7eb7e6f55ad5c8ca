package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables read at startup.
type Config struct {
	Window Window `yaml:"window"`
	Log    Log    `yaml:"log"`
	Game   Game   `yaml:"game"`
	Flight Flight `yaml:"flight"`
	Range  Range  `yaml:"range"`
	Models Models `yaml:"models"`
	FPSCap int    `yaml:"fps_limit"`
	Camera Camera `yaml:"camera"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

type Game struct {
	MaxAttempts int        `yaml:"max_attempts"`
	HitBonus    int        `yaml:"hit_bonus"`
	MoveSpeed   float32    `yaml:"move_speed"`
	Spawn       mgl32.Vec3 `yaml:"spawn"`
}

// Flight shapes the arrow's arc. Lengths are in world units, duration in seconds.
type Flight struct {
	Duration    float32 `yaml:"duration"`
	Lift1       float32 `yaml:"lift1"`
	Lift2       float32 `yaml:"lift2"`
	AimDrop     float32 `yaml:"aim_drop"`
	SideOffset  float32 `yaml:"side_offset"`
	ArrowLength float32 `yaml:"arrow_length"`
	ArrowScale  float32 `yaml:"arrow_scale"`
}

type Range struct {
	WallHalfSize float32 `yaml:"wall_half_size"`
}

type Camera struct {
	FovY float32 `yaml:"fov_y"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Models holds the vertex sets the local collision boxes are computed
// from. Only the extents matter, so a few points per model are enough.
type Models struct {
	Archer []mgl32.Vec3 `yaml:"archer"`
	Arrow  []mgl32.Vec3 `yaml:"arrow"`
	Target []mgl32.Vec3 `yaml:"target"`
	Wall   []mgl32.Vec3 `yaml:"wall"`
}

// Default returns the configuration the game ships with.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "bullseye"},
		Log:    Log{Level: "info", Format: "console"},
		Game: Game{
			MaxAttempts: 5,
			HitBonus:    50,
			MoveSpeed:   5,
			Spawn:       mgl32.Vec3{0, -10, 0},
		},
		Flight: Flight{
			Duration:    1,
			Lift1:       4.5,
			Lift2:       3,
			AimDrop:     15,
			SideOffset:  1.5,
			ArrowLength: 15.0926,
			ArrowScale:  0.3,
		},
		Range:  Range{WallHalfSize: 25},
		FPSCap: 60,
		Camera: Camera{FovY: mgl32.DegToRad(60), Near: 0.1, Far: 100},
		Models: DefaultModels(),
	}
}

// DefaultModels approximates the shipped meshes.
func DefaultModels() Models {
	return Models{
		// feet at the origin, about 170 units tall before scaling
		Archer: box(mgl32.Vec3{-40, 0, -25}, mgl32.Vec3{40, 170, 25}),
		// shaft along +z
		Arrow: box(mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec3{0.5, 0.5, 15.0926}),
		// face in x/y, standing along +z before it is tipped upright
		Target: box(mgl32.Vec3{-200, -150, 0}, mgl32.Vec3{200, 150, 400}),
		// unit quad on y = 0
		Wall: []mgl32.Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}},
	}
}

func box(lo, hi mgl32.Vec3) []mgl32.Vec3 {
	return []mgl32.Vec3{lo, hi}
}

// Load reads a YAML file on top of the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes r over the defaults and validates the result.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Game.MaxAttempts <= 0:
		return fmt.Errorf("%w: max_attempts must be positive", ErrInvalid)
	case c.Game.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must not be negative", ErrInvalid)
	case c.Game.HitBonus < 0:
		return fmt.Errorf("%w: hit_bonus must not be negative", ErrInvalid)
	case c.Flight.Duration <= 0:
		return fmt.Errorf("%w: flight duration must be positive", ErrInvalid)
	case c.Flight.AimDrop <= 0:
		return fmt.Errorf("%w: aim_drop must be positive", ErrInvalid)
	case c.Flight.ArrowScale <= 0 || c.Flight.ArrowLength < 0:
		return fmt.Errorf("%w: arrow size", ErrInvalid)
	case c.Range.WallHalfSize <= 0:
		return fmt.Errorf("%w: wall_half_size must be positive", ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
