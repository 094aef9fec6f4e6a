package scene

import (
	"image/color"
	"math"

	"flightview/geom"
)

// GridSpin is how fast a Grid turns about its vertical axis, in radians per
// second.
const GridSpin = math.Pi / 12

var gridArms = []geom.Vec3{
	geom.V3(5, 0, 0),
	geom.V3(-5, 0, 0),
	geom.V3(0, -5, 0),
	geom.V3(0, 5, 0),
	geom.V3(0, 0, 5),
	geom.V3(0, 0, -5),
}

// Grid is a set of axis arms drawn out from a centre point, slowly turning
// about z.
type Grid struct {
	Position geom.Vec3

	// Lengths scales each arm; all are 1 after NewGrid.
	Lengths [6]float64

	angle float64
}

func NewGrid(position geom.Vec3) *Grid {
	g := &Grid{Position: position}
	for i := range g.Lengths {
		g.Lengths[i] = 1
	}
	return g
}

func (g *Grid) Segments() [][]geom.Vec3 {
	segs := make([][]geom.Vec3, len(gridArms))
	turn := geom.Angle3{Z: g.angle}
	for i, arm := range gridArms {
		tip := g.Position.Add(arm.Scale(g.Lengths[i]))
		segs[i] = []geom.Vec3{g.Position, geom.Rotate(tip, turn, g.Position)}
	}
	return segs
}

func (g *Grid) Colour() color.RGBA {
	return color.RGBA{R: 50, G: 120, B: 205, A: 255}
}

func (g *Grid) Update(dt float64) {
	g.angle = math.Mod(g.angle+GridSpin*dt, 2*math.Pi)
}
