// Package config loads the viewer settings. Angles are written in degrees in
// the file and converted to radians here, before anything reaches the kernel.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"flightview/geom"
	"flightview/view"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Screen Screen   `toml:"screen"`
	Camera Camera   `toml:"camera"`
	Render Render   `toml:"render"`
	Log    Log      `toml:"log"`
	Scene  []Object `toml:"scene"`
}

type Screen struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
	Title  string `toml:"title"`
}

type Camera struct {
	Position [3]float64 `toml:"position"`

	// Angles is the starting orientation in degrees about x, y and z.
	Angles [3]float64 `toml:"angles"`

	// FOV is the vertical field of view in degrees.
	FOV float64 `toml:"fov"`

	// MoveSpeed is in world units per second, TurnSpeed in degrees per second.
	MoveSpeed float64 `toml:"move_speed"`
	TurnSpeed float64 `toml:"turn_speed"`

	// ClipMode is "cone" or "planes".
	ClipMode string `toml:"clip_mode"`
}

type Render struct {
	// Workers bounds how many objects are projected at once.
	Workers    int    `toml:"workers"`
	Background [3]int `toml:"background"`

	// CullBackFaces hides polygons facing away from the camera.
	CullBackFaces bool `toml:"cull_back_faces"`
}

type Log struct {
	Level string `toml:"level"`
}

// Object places one scene generator.
type Object struct {
	Kind     string     `toml:"kind"`
	Position [3]float64 `toml:"position"`
}

// Default returns the settings the viewer runs with when no file is given.
func Default() Config {
	return Config{
		Screen: Screen{Width: 1400, Height: 900, FPS: 30, Title: "Flight View"},
		Camera: Camera{
			FOV:       90,
			MoveSpeed: 20,
			TurnSpeed: 60,
			ClipMode:  "cone",
		},
		Render: Render{Workers: 4, Background: [3]int{50, 50, 50}},
		Log:    Log{Level: "info"},
		Scene: []Object{
			{Kind: "grid", Position: [3]float64{0, 40, 0}},
			{Kind: "house", Position: [3]float64{0, 10, -4}},
			{Kind: "jellyfish", Position: [3]float64{-30, 90, -10}},
			{Kind: "circlegrid", Position: [3]float64{20, 60, 10}},
		},
	}
}

// Load reads path over the defaults. Keys the file does not set keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	// A file listing any scene objects replaces the default scene.
	scene := cfg.Scene
	cfg.Scene = nil

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if len(cfg.Scene) == 0 {
		cfg.Scene = scene
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path as TOML.
func Save(cfg Config, path string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate rejects settings the kernel cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: fps %d", ErrInvalid, c.Screen.FPS))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("%w: fov %g must be between 0 and 180 degrees", ErrInvalid, c.Camera.FOV))
	}
	if _, err := c.ClipMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers %d", ErrInvalid, c.Render.Workers))
	}
	for _, v := range c.Render.Background {
		if v < 0 || v > 255 {
			errs = append(errs, fmt.Errorf("%w: background %v", ErrInvalid, c.Render.Background))
			break
		}
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// View returns the camera in kernel units.
func (c Config) View() view.Camera {
	return view.Camera{
		Position: geom.V3(c.Camera.Position[0], c.Camera.Position[1], c.Camera.Position[2]),
		Orientation: geom.Angle3{
			X: mgl64.DegToRad(c.Camera.Angles[0]),
			Y: mgl64.DegToRad(c.Camera.Angles[1]),
			Z: mgl64.DegToRad(c.Camera.Angles[2]),
		},
		FOV:    mgl64.DegToRad(c.Camera.FOV),
		Width:  c.Screen.Width,
		Height: c.Screen.Height,
	}
}

// TurnRate returns Camera.TurnSpeed in radians per second.
func (c Config) TurnRate() float64 {
	return mgl64.DegToRad(c.Camera.TurnSpeed)
}

func (c Config) ClipMode() (view.ClipMode, error) {
	switch strings.ToLower(c.Camera.ClipMode) {
	case "", "cone":
		return view.ClipCone, nil
	case "planes":
		return view.ClipPlanes, nil
	}
	return view.ClipCone, fmt.Errorf("%w: clip_mode %q", ErrInvalid, c.Camera.ClipMode)
}

func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return l, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
