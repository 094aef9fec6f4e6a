package scene

import (
	"image/color"

	"flightview/geom"
)

const houseBays = 10

// House is a row of wall and roof frames stepping away along +y. It does not
// move.
type House struct {
	Position geom.Vec3

	segs [][]geom.Vec3
}

func NewHouse(position geom.Vec3) *House {
	h := &House{Position: position}
	for i := 0; i < houseBays; i++ {
		y := 5 + float64(i)
		left := position.Add(geom.V3(5, y, 0))
		right := position.Add(geom.V3(-5, y, 0))
		eaveLeft := position.Add(geom.V3(5, y, 6))
		eaveRight := position.Add(geom.V3(-5, y, 6))
		h.segs = append(h.segs,
			[]geom.Vec3{left, left.Add(geom.V3(0, 0, 6))},
			[]geom.Vec3{right, right.Add(geom.V3(0, 0, 6))},
			[]geom.Vec3{eaveLeft, eaveLeft.Add(geom.V3(-5, 0, 4))},
			[]geom.Vec3{eaveRight, eaveRight.Add(geom.V3(5, 0, 4))},
		)
	}
	return h
}

func (h *House) Segments() [][]geom.Vec3 { return h.segs }

func (h *House) Colour() color.RGBA {
	return color.RGBA{R: 200, G: 50, B: 30, A: 255}
}

func (h *House) Update(float64) {}
