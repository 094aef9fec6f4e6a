package scene

import (
	"image/color"
	"math"

	"flightview/geom"
)

const (
	// CircleTravel is how long a CircleGrid takes to fly out to its home
	// position or back, in seconds.
	CircleTravel = 2.0

	// CircleSpin is the turn rate about z while rotation is on, in radians
	// per second. Unsynced grids turn twice as fast.
	CircleSpin = math.Pi / 6

	circleArm    = 5.0
	circleOffset = 0.5
)

var circleDirs = []geom.Vec3{
	geom.V3(1, 0, 0),
	geom.V3(-1, 0, 0),
	geom.V3(0, -1, 0),
	geom.V3(0, 1, 0),
	geom.V3(0, 0, 1),
	geom.V3(0, 0, -1),
}

// CircleGrid is a set of axis arms that start a little way out from their
// centre. The centre flies out from the world origin to Home and back on
// ToggleExpand, and the arms spin about z while rotation is on.
type CircleGrid struct {
	Home geom.Vec3

	Rotating bool
	Unsynced bool

	progress    float64
	expanding   bool
	contracting bool
	angle       float64
}

func NewCircleGrid(home geom.Vec3) *CircleGrid {
	return &CircleGrid{Home: home, expanding: true}
}

// Centre returns where the grid currently is.
func (c *CircleGrid) Centre() geom.Vec3 {
	return c.Home.Scale(c.progress)
}

func (c *CircleGrid) Segments() [][]geom.Vec3 {
	centre := c.Centre()
	turn := geom.Angle3{Z: c.angle}
	segs := make([][]geom.Vec3, len(circleDirs))
	for i, d := range circleDirs {
		segs[i] = []geom.Vec3{
			geom.Rotate(centre.Add(d.Scale(circleOffset)), turn, centre),
			geom.Rotate(centre.Add(d.Scale(circleArm)), turn, centre),
		}
	}
	return segs
}

func (c *CircleGrid) Colour() color.RGBA {
	return color.RGBA{R: 230, G: 100, B: 75, A: 255}
}

func (c *CircleGrid) Update(dt float64) {
	step := dt / CircleTravel
	switch {
	case c.expanding:
		c.progress = math.Min(c.progress+step, 1)
		c.expanding = c.progress < 1
	case c.contracting:
		c.progress = math.Max(c.progress-step, 0)
		c.contracting = c.progress > 0
	}

	if c.Rotating {
		rate := CircleSpin
		if c.Unsynced {
			rate *= 2
		}
		c.angle = math.Mod(c.angle+rate*dt, 2*math.Pi)
	}
}

// ToggleExpand sends the grid home, or back to the origin once it is there.
func (c *CircleGrid) ToggleExpand() {
	if c.progress < 1 {
		c.expanding, c.contracting = true, false
		return
	}
	c.expanding, c.contracting = false, true
}

func (c *CircleGrid) ToggleRotate() { c.Rotating = !c.Rotating }

func (c *CircleGrid) ToggleSync() { c.Unsynced = !c.Unsynced }
