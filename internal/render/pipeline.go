// Package render turns the scene into screen-space lines for one frame.
package render

import (
	"context"
	"image/color"
	"log/slog"

	"flightview/geom"
	"flightview/internal/scene"
	"flightview/view"

	"golang.org/x/sync/errgroup"
)

// Drawn is the visible part of one scene object.
type Drawn struct {
	Colour   color.RGBA
	Segments [][2]geom.Vec2
}

// Output is everything to draw for one frame, in scene order.
type Output struct {
	Objects []Drawn

	// Hidden counts the object segments that had nothing left after clipping.
	Hidden int
}

// Lines returns the number of screen segments in o.
func (o Output) Lines() int {
	n := 0
	for _, d := range o.Objects {
		n += len(d.Segments)
	}
	return n
}

type Pipeline struct {
	Workers int
	Log     *slog.Logger

	// Cull hides polygons whose front faces away from the camera.
	Cull bool
}

func New(workers int, log *slog.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Workers: workers, Log: log}
}

// Frame projects every object against f. Objects are independent and are
// worked on concurrently; f is shared read-only between them.
func (p *Pipeline) Frame(ctx context.Context, f view.Frame, objects []scene.Object) (Output, error) {
	out := Output{Objects: make([]Drawn, len(objects))}
	hidden := make([]int, len(objects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, obj := range objects {
		i, obj := i, obj
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out.Objects[i], hidden[i] = project(f, obj, p.Cull)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Output{}, err
	}

	for i, n := range hidden {
		out.Hidden += n
		if n > 0 {
			p.Log.Debug("segments hidden", "object", i, "count", n)
		}
	}
	return out, nil
}

func project(f view.Frame, obj scene.Object, cull bool) (Drawn, int) {
	d := Drawn{Colour: obj.Colour()}
	hidden := 0
	for _, seg := range obj.Segments() {
		if cull && len(seg) > 2 {
			if front, err := geom.FacesPoint(seg, f.Position); err == nil && !front {
				hidden++
				continue
			}
		}
		proj, ok := f.ProjectVertices(seg)
		if !ok {
			hidden++
			continue
		}
		d.Segments = append(d.Segments, proj.Segments()...)
	}
	return d, hidden
}

// Update advances every object by dt seconds.
func Update(objects []scene.Object, dt float64) {
	for _, obj := range objects {
		obj.Update(dt)
	}
}
