package scene

import (
	"image/color"
	"math"

	"flightview/geom"
)

const (
	jellyLength = 60.0
	jellyWidth  = 30.0
	jellyJoints = 30
	jellySides  = 12

	// JellyPulse is the phase speed of the body ripple in radians per second.
	JellyPulse = 12.0
)

// JellyFish is a bell shaped body of revolution about the y axis whose
// outline ripples over time.
type JellyFish struct {
	Position geom.Vec3

	phase float64
	segs  [][]geom.Vec3
}

func NewJellyFish(position geom.Vec3) *JellyFish {
	j := &JellyFish{Position: position}
	j.build()
	return j
}

// profile returns the point of the outline at joint i, in the yz plane.
func (j *JellyFish) profile(i int) geom.Vec3 {
	y := float64(i) * jellyLength / jellyJoints
	swell := math.Sin(math.Pi * y / jellyLength)
	ripple := swell * jellyWidth / 5 * math.Sin(3*math.Pi*y/jellyLength+j.phase)
	return geom.V3(0, y, jellyWidth*swell+ripple)
}

func (j *JellyFish) build() {
	j.segs = make([][]geom.Vec3, 0, jellySides*jellyJoints)
	for side := 0; side < jellySides; side++ {
		turn := geom.Angle3{Y: float64(side) * 2 * math.Pi / jellySides}
		for i := 0; i < jellyJoints; i++ {
			p1 := geom.Rotate(j.profile(i), turn, geom.Vec3{})
			p2 := geom.Rotate(j.profile(i+1), turn, geom.Vec3{})
			j.segs = append(j.segs, []geom.Vec3{j.Position.Add(p1), j.Position.Add(p2)})
		}
	}
}

func (j *JellyFish) Segments() [][]geom.Vec3 { return j.segs }

func (j *JellyFish) Colour() color.RGBA {
	return color.RGBA{R: 35, G: 220, B: 220, A: 255}
}

func (j *JellyFish) Update(dt float64) {
	j.phase = math.Mod(j.phase+JellyPulse*dt, 2*math.Pi)
	j.build()
}
