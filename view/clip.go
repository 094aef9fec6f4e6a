package view

import (
	"fmt"

	"flightview/geom"
)

// Vertex is one point of a clipped object.
type Vertex struct {
	Point geom.Vec3

	// Clipped is set when the point was made by cutting the object at the
	// view boundary rather than taken from the input.
	Clipped bool

	// Side is the frustum side the cut was made against. It stays SideNone
	// when clipping against the cone.
	Side Side
}

// Clip returns the visible part of an object. Two vertices are a segment;
// three or more are a closed polygon.
//
// An object with no visible vertex is dropped and one with no invisible
// vertex is returned as it is. Otherwise every invisible vertex is replaced by
// the points where the edges to its visible neighbours cross the boundary, so
// a polygon may gain or lose vertices. Edges between two invisible vertices
// are not drawn even if they pass through the view. A cut that cannot be
// solved drops that point and nothing else.
func (f Frame) Clip(vertices []geom.Vec3) []Vertex {
	c := f.ClassifyAll(vertices)
	inside := c.InsideCount()
	if inside == 0 {
		return nil
	}

	out := make([]Vertex, 0, len(vertices)+1)
	if inside == len(vertices) {
		for _, v := range vertices {
			out = append(out, Vertex{Point: v})
		}
		return out
	}

	if len(vertices) == 2 {
		in, ex := 0, 1
		if !c.Inside[0] {
			in, ex = 1, 0
		}
		cut, err := f.cut(vertices[in], vertices[ex])
		if in == 0 {
			out = append(out, Vertex{Point: vertices[in]})
		}
		if err == nil {
			out = append(out, cut)
		}
		if in == 1 {
			out = append(out, Vertex{Point: vertices[in]})
		}
		return out
	}

	n := len(vertices)
	for i, v := range vertices {
		if c.Inside[i] {
			out = append(out, Vertex{Point: v})
			continue
		}
		if prev := (i + n - 1) % n; c.Inside[prev] {
			if cut, err := f.cut(vertices[prev], v); err == nil {
				out = append(out, cut)
			}
		}
		if next := (i + 1) % n; c.Inside[next] {
			if cut, err := f.cut(vertices[next], v); err == nil {
				out = append(out, cut)
			}
		}
	}
	return out
}

// cut returns where the segment from the visible point inside to the
// invisible point outside crosses the view boundary.
func (f Frame) cut(inside, outside geom.Vec3) (Vertex, error) {
	a, b := f.relative(inside), f.relative(outside)

	if f.Mode == ClipPlanes {
		side, err := f.ExitSide(inside, outside)
		if err != nil {
			return Vertex{}, err
		}
		p, err := geom.IntersectPlane(f.Sides[side], geom.LineFromPoints(a, b))
		if err != nil {
			return Vertex{}, fmt.Errorf("cut %v side: %w", side, err)
		}
		if d := b.Sub(a); !onSegment(p.Sub(a).Dot(d) / d.Dot(d)) {
			return Vertex{}, fmt.Errorf("cut %v side: %w: crossing is off the segment", side, geom.ErrNoIntersection)
		}
		return Vertex{Point: p.Add(f.Position), Clipped: true, Side: side}, nil
	}

	hits, err := f.Boundary.IntersectSegment(a, b)
	if err != nil {
		return Vertex{}, err
	}
	if len(hits) == 0 {
		return Vertex{}, fmt.Errorf("cut %v-%v: %w", inside, outside, geom.ErrNoIntersection)
	}
	return Vertex{Point: hits[0].Add(f.Position), Clipped: true}, nil
}

func onSegment(t float64) bool {
	return t >= -geom.Epsilon && t <= 1+geom.Epsilon
}
