package render

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"math"
	"testing"

	"flightview/geom"
	"flightview/internal/config"
	"flightview/internal/scene"
	"flightview/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	segs   [][]geom.Vec3
	colour color.RGBA
	ticks  float64
}

func (s *stub) Segments() [][]geom.Vec3 { return s.segs }
func (s *stub) Colour() color.RGBA { return s.colour }
func (s *stub) Update(dt float64) { s.ticks += dt }

func testFrame(t *testing.T) view.Frame {
	t.Helper()
	f, err := view.NewFrame(view.Camera{FOV: math.Pi / 2, Width: 1400, Height: 900})
	require.NoError(t, err)
	return f
}

func TestPipeline_Frame(t *testing.T) {
	visible := []geom.Vec3{geom.V3(0, 10, 0), geom.V3(1, 10, 0)}
	behind := []geom.Vec3{geom.V3(0, -10, 0), geom.V3(1, -10, 0)}

	var objects []scene.Object
	for i := 0; i < 20; i++ {
		segs := [][]geom.Vec3{visible}
		if i%2 == 1 {
			segs = append(segs, behind)
		}
		objects = append(objects, &stub{segs: segs, colour: color.RGBA{R: uint8(i), A: 255}})
	}

	var logs bytes.Buffer
	p := New(3, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	out, err := p.Frame(context.Background(), testFrame(t), objects)
	require.NoError(t, err)

	require.Len(t, out.Objects, 20)
	for i, d := range out.Objects {
		assert.Equal(t, uint8(i), d.Colour.R, "object order")
		require.Len(t, d.Segments, 1)
		assert.InDelta(t, 700, d.Segments[0][0].X, 1e-6)
		assert.InDelta(t, 450, d.Segments[0][0].Y, 1e-6)
	}
	assert.Equal(t, 10, out.Hidden)
	assert.Equal(t, 20, out.Lines())
	assert.Contains(t, logs.String(), "segments hidden")
}

func TestPipeline_Frame_Scene(t *testing.T) {
	objects, err := scene.FromConfig(config.Default().Scene)
	require.NoError(t, err)

	out, err := New(4, nil).Frame(context.Background(), testFrame(t), objects)
	require.NoError(t, err)
	require.Len(t, out.Objects, len(objects))
	// the grid sits straight ahead and all six arms are in view
	assert.Len(t, out.Objects[0].Segments, 6)
	for _, d := range out.Objects {
		for _, s := range d.Segments {
			for _, v := range s {
				assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y))
			}
		}
	}
}

func TestPipeline_Frame_Cull(t *testing.T) {
	// the same square wound both ways, straight ahead of the camera
	facing := []geom.Vec3{geom.V3(-1, 10, -1), geom.V3(-1, 10, 1), geom.V3(1, 10, 1), geom.V3(1, 10, -1)}
	away := []geom.Vec3{facing[3], facing[2], facing[1], facing[0]}
	line := []geom.Vec3{geom.V3(0, 10, 0), geom.V3(1, 10, 0)}
	objects := []scene.Object{&stub{segs: [][]geom.Vec3{facing, away, line}}}

	p := New(1, nil)
	out, err := p.Frame(context.Background(), testFrame(t), objects)
	require.NoError(t, err)
	assert.Equal(t, 9, out.Lines(), "both squares and the line")
	assert.Zero(t, out.Hidden)

	p.Cull = true
	out, err = p.Frame(context.Background(), testFrame(t), objects)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Lines(), "the square facing the camera and the line")
	assert.Equal(t, 1, out.Hidden)
}

func TestPipeline_Frame_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(2, nil)
	_, err := p.Frame(ctx, testFrame(t), []scene.Object{&stub{}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Defaults(t *testing.T) {
	p := New(0, nil)
	assert.Equal(t, 1, p.Workers)
	assert.NotNil(t, p.Log)
}

func TestUpdate(t *testing.T) {
	a, b := &stub{}, &stub{}
	Update([]scene.Object{a, b}, 0.5)
	Update([]scene.Object{a, b}, 0.25)
	assert.Equal(t, 0.75, a.ticks)
	assert.Equal(t, 0.75, b.ticks)
}
