package view

import (
	"math"
	"testing"

	"flightview/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Classify(t *testing.T) {
	f := mustFrame(t, defaultCamera())

	tests := []struct {
		Point    geom.Vec3
		Expected bool
	}{
		{geom.V3(0, 10, 0), true},
		{geom.V3(15, 10, 0), true},
		{geom.V3(0, 10, -9.9), true},
		{geom.V3(0, -10, 0), false},
		{geom.V3(100, 10, 0), false},
		{geom.V3(0, 0, 10), false},
		{geom.V3(0, 0, 0), false},
	}

	for _, c := range tests {
		assert.Equal(t, c.Expected, f.Classify(c.Point), "%v", c.Point)
	}
}

func TestFrame_ClassifyAll(t *testing.T) {
	cam := defaultCamera()
	cam.Position = geom.V3(1, 1, 1)
	f := mustFrame(t, cam)

	c := f.ClassifyAll([]geom.Vec3{geom.V3(1, 11, 1), geom.V3(1, 1, 1), geom.V3(1, -9, 1)})
	assert.Equal(t, []bool{true, false, false}, c.Inside)
	assert.Equal(t, 1, c.InsideCount())
	assert.InDelta(t, 0, c.Angles[0], 1e-12)
	assert.True(t, math.IsNaN(c.Angles[1]))
	assert.InDelta(t, math.Pi, c.Angles[2], 1e-12)
}

func TestFrame_ExitSide(t *testing.T) {
	f := mustFrame(t, defaultCamera())

	tests := []struct {
		Name     string
		From, To geom.Vec3
		Expected Side
	}{
		{"along x", geom.V3(-5, 10, 0), geom.V3(11, 10, 0), SideRight},
		{"along x mirrored", geom.V3(5, 10, 0), geom.V3(-11, 10, 0), SideLeft},
		{"along z", geom.V3(0, 10, -2.5), geom.V3(0, 10, 10), SideTop},
		{"along z mirrored", geom.V3(0, 10, 2.5), geom.V3(0, 10, -10), SideBottom},

		// 45° is steeper than the 1400x900 screen diagonal
		{"45 from centre", geom.V3(0, 10, 0), geom.V3(20, 10, 20), SideTop},
		{"-45 from centre", geom.V3(0, 10, 0), geom.V3(20, 10, -20), SideBottom},
		{"135 from centre", geom.V3(0, 10, 0), geom.V3(-20, 10, 20), SideTop},
		{"-135 from centre", geom.V3(0, 10, 0), geom.V3(-20, 10, -20), SideBottom},

		// 26.56° is shallower
		{"26 from centre", geom.V3(0, 10, 0), geom.V3(20, 10, 10), SideRight},
		{"-26 from centre", geom.V3(0, 10, 0), geom.V3(20, 10, -10), SideRight},
		{"154 from centre", geom.V3(0, 10, 0), geom.V3(-20, 10, 10), SideLeft},
		{"-154 from centre", geom.V3(0, 10, 0), geom.V3(-20, 10, -10), SideLeft},

		{"26 shifted", geom.V3(2, 10, 0), geom.V3(22, 10, 10), SideRight},
		{"-26 shifted", geom.V3(2, 10, 0), geom.V3(22, 10, -10), SideRight},
		{"154 shifted", geom.V3(2, 10, 0), geom.V3(-18, 10, 10), SideLeft},
		{"-154 shifted", geom.V3(2, 10, 0), geom.V3(-18, 10, -10), SideLeft},

		// the corner angle depends on where the segment starts
		{"30 near the top", geom.V3(0, 10, 8), geom.V3(20, 10, 8+20*math.Tan(math.Pi/6)), SideTop},
		{"leaving behind the camera", geom.V3(0, 10, 0), geom.V3(1, -10, 0), SideRight},
	}

	for _, c := range tests {
		t.Run(c.Name, func(t *testing.T) {
			side, err := f.ExitSide(c.From, c.To)
			require.NoError(t, err)
			assert.Equal(t, c.Expected, side)
		})
	}
}

func TestFrame_ExitSide_PastAnEdge(t *testing.T) {
	f := mustFrame(t, defaultCamera())

	// above the top edge but inside the cone: only a side edge is ahead
	require.True(t, f.Classify(geom.V3(10, 10, 11)))
	side, err := f.ExitSide(geom.V3(10, 10, 11), geom.V3(10, 10, 30))
	require.NoError(t, err)
	assert.Equal(t, SideRight, side)

	// beyond the right edge, heading right
	require.True(t, f.Classify(geom.V3(16, 10, 1)))
	side, err = f.ExitSide(geom.V3(16, 10, 1), geom.V3(40, 10, 2))
	require.NoError(t, err)
	assert.Equal(t, SideTop, side)
}

func TestFrame_ExitSide_Rotated(t *testing.T) {
	// turned to look down -x: world +y is now screen right
	cam := defaultCamera()
	cam.Orientation = geom.Angle3{Z: math.Pi / 2}
	f := mustFrame(t, cam)

	side, err := f.ExitSide(geom.V3(-10, 0, 0), geom.V3(-10, -50, 0))
	require.NoError(t, err)
	assert.Equal(t, SideLeft, side)

	side, err = f.ExitSide(geom.V3(-10, 0, 0), geom.V3(-10, 0, 50))
	require.NoError(t, err)
	assert.Equal(t, SideTop, side)
}

func TestFrame_ExitSide_Errors(t *testing.T) {
	f := mustFrame(t, defaultCamera())

	_, err := f.ExitSide(geom.V3(0, -10, 0), geom.V3(0, 10, 0))
	assert.ErrorIs(t, err, ErrNotVisible)

	_, err = f.ExitSide(geom.V3(1, 10, 1), geom.V3(3, 30, 3))
	assert.ErrorIs(t, err, geom.ErrNoIntersection)
}
