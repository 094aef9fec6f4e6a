// Package app ties the viewer together without the window: settings, scene,
// pilot and the per-frame pipeline.
package app

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"flightview/geom"
	"flightview/internal/config"
	"flightview/internal/physics"
	"flightview/internal/pilot"
	"flightview/internal/raster"
	"flightview/internal/render"
	"flightview/internal/scene"
	"flightview/view"
)

// App holds everything one viewer run needs, window or not.
type App struct {
	Config config.Config
	Log    *slog.Logger
	Pilot  *pilot.Pilot

	base     view.Camera
	mode     view.ClipMode
	objects  []scene.Object
	pipeline *render.Pipeline
}

func New(cfg config.Config, log *slog.Logger) (*App, error) {
	mode, err := cfg.ClipMode()
	if err != nil {
		return nil, err
	}
	objects, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return nil, err
	}

	base := cfg.View()
	if _, err := view.NewFrame(base); err != nil {
		return nil, err
	}

	pipeline := render.New(cfg.Render.Workers, log)
	pipeline.Cull = cfg.Render.CullBackFaces

	log.Info("scene loaded", "objects", len(objects), "clip", cfg.Camera.ClipMode,
		"screen", fmt.Sprintf("%dx%d", base.Width, base.Height))

	return &App{
		Config: cfg,
		Log:    log,
		Pilot: &pilot.Pilot{
			Position:  base.Position,
			Angles:    base.Orientation,
			MoveSpeed: cfg.Camera.MoveSpeed,
			TurnRate:  cfg.TurnRate(),
		},
		base:     base,
		mode:     mode,
		objects:  objects,
		pipeline: pipeline,
	}, nil
}

// Screen returns the window size in pixels.
func (a *App) Screen() (width, height int) {
	return a.base.Width, a.base.Height
}

// Step advances the pilot and the scene by dt seconds.
func (a *App) Step(c pilot.Controls, dt float64) {
	a.Pilot.Step(c, dt)
	render.Update(a.objects, dt)
}

// Toggle applies fn to every object with switchable movement.
func (a *App) Toggle(name string, fn func(scene.Toggler)) int {
	n := scene.Toggle(a.objects, fn)
	a.Log.Debug("toggled", "what", name, "objects", n)
	return n
}

// Drag is the air drag, in newtons, on a square metre plate carried in front
// of the camera.
func (a *App) Drag() float64 {
	d, err := physics.SurfaceDrag(a.Pilot.Frontal(1), a.Pilot.Velocity, physics.AirDensity)
	if err != nil {
		return 0
	}
	return d
}

// Frame fixes the camera for this frame and projects the scene against it.
func (a *App) Frame(ctx context.Context) (render.Output, error) {
	f, err := view.NewFrame(a.Pilot.Camera(a.base))
	if err != nil {
		return render.Output{}, err
	}
	return a.pipeline.Frame(ctx, f.WithClipMode(a.mode), a.objects)
}

// NextFrame is Frame for the interactive loop: a frame that fails is logged
// and skipped, and ok is false.
func (a *App) NextFrame(ctx context.Context) (out render.Output, ok bool) {
	out, err := a.Frame(ctx)
	if err != nil {
		a.Log.Warn("frame skipped", "err", err)
		return render.Output{}, false
	}
	return out, true
}

func (a *App) Background() color.RGBA {
	bg := a.Config.Render.Background
	return color.RGBA{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: 255}
}

// Snapshot runs frames animation steps at the configured rate, then draws the
// last frame to a PNG file.
func (a *App) Snapshot(ctx context.Context, path string, frames int) error {
	dt := 1 / float64(a.Config.Screen.FPS)
	var out render.Output
	for i := 0; i < max(frames, 1); i++ {
		if i > 0 {
			a.Step(pilot.Controls{}, dt)
		}
		var err error
		if out, err = a.Frame(ctx); err != nil {
			return err
		}
	}

	img := raster.NewImage(a.base.Width, a.base.Height, a.Background())
	if skipped := raster.Draw(img, out); skipped > 0 {
		a.Log.Warn("segments skipped", "count", skipped)
	}
	if err := raster.SavePNG(path, img); err != nil {
		return err
	}
	a.Log.Info("snapshot written", "path", path, "lines", out.Lines(), "hidden", out.Hidden,
		"position", fmtVec(a.Pilot.Position))
	return nil
}

func fmtVec(v geom.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
