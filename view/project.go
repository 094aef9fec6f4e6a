package view

import (
	"fmt"

	"flightview/geom"
)

// Project maps a world point onto the screen. The point is taken relative to
// the camera, its eye ray is cut by the clip plane, and the cut point's offset
// from the plane centre, in the camera's own axes, is scaled to pixels.
// Screen y grows downwards, so camera up is towards y = 0.
//
// Project does not clip; callers wanting only visible output go through
// ProjectVertices.
func (f Frame) Project(world geom.Vec3) (geom.Vec2, error) {
	rel := f.relative(world)
	if rel.Dot(f.Forward) <= geom.Epsilon {
		return geom.Vec2{}, fmt.Errorf("%w: %v is behind the camera", ErrNotVisible, world)
	}

	hit, err := geom.IntersectPlane(f.ClipPlane, geom.LineFromPoints(geom.Vec3{}, rel))
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("project %v: %w", world, err)
	}
	centre := f.Forward.Scale(ClipDistance)
	q := geom.Unrotate(hit.Sub(centre), f.Orientation, geom.Vec3{})

	k := f.scale / ClipDistance
	return geom.Vec2{
		X: float64(f.Width)/2 + q.X*k,
		Y: float64(f.Height)/2 - q.Z*k,
	}, nil
}

// Projected is the drawable part of one object.
type Projected struct {
	Screen []geom.Vec2

	// Camera holds the same points relative to the camera position, for
	// shading by distance or facing.
	Camera []geom.Vec3

	// Closed is set for polygons, whose last point joins the first.
	Closed bool
}

// ProjectVertices clips an object and projects what is left. ok is false when
// fewer than two points survive.
func (f Frame) ProjectVertices(world []geom.Vec3) (p Projected, ok bool) {
	clipped := f.Clip(world)
	p.Closed = len(world) > 2
	for _, v := range clipped {
		s, err := f.Project(v.Point)
		if err != nil {
			continue
		}
		p.Screen = append(p.Screen, s)
		p.Camera = append(p.Camera, f.relative(v.Point))
	}
	return p, len(p.Screen) >= 2
}

// Segments returns the screen-space line segments to draw for p.
func (p Projected) Segments() [][2]geom.Vec2 {
	if len(p.Screen) < 2 {
		return nil
	}
	var segs [][2]geom.Vec2
	for i := 0; i+1 < len(p.Screen); i++ {
		segs = append(segs, [2]geom.Vec2{p.Screen[i], p.Screen[i+1]})
	}
	if p.Closed && len(p.Screen) > 2 {
		segs = append(segs, [2]geom.Vec2{p.Screen[len(p.Screen)-1], p.Screen[0]})
	}
	return segs
}
