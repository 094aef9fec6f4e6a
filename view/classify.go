package view

import (
	"fmt"
	"math"

	"flightview/geom"
)

// Classification is the per-vertex visibility of one object.
type Classification struct {
	Inside []bool

	// Angles holds each vertex's angle from the forward axis. The camera
	// position itself has no direction and is recorded as NaN.
	Angles []float64
}

// InsideCount returns how many vertices are visible.
func (c Classification) InsideCount() int {
	n := 0
	for _, in := range c.Inside {
		if in {
			n++
		}
	}
	return n
}

// Angle returns the angle between Forward and the direction from the camera
// to p.
func (f Frame) Angle(p geom.Vec3) (float64, error) {
	return f.relative(p).AngleTo(f.Forward)
}

// Classify reports whether p is inside the visible volume: closer to the
// forward axis than the screen corners are.
func (f Frame) Classify(p geom.Vec3) bool {
	angle, err := f.Angle(p)
	return err == nil && angle < f.MaxVisibleAngle
}

// ClassifyAll classifies every vertex of an object.
func (f Frame) ClassifyAll(vertices []geom.Vec3) Classification {
	c := Classification{
		Inside: make([]bool, len(vertices)),
		Angles: make([]float64, len(vertices)),
	}
	for i, v := range vertices {
		angle, err := f.Angle(v)
		if err != nil {
			c.Angles[i] = math.NaN()
			continue
		}
		c.Angles[i] = angle
		c.Inside[i] = angle < f.MaxVisibleAngle
	}
	return c
}

// ExitSide returns the frustum side the segment from the visible point inside
// towards outside leaves the screen through.
//
// Seen from the camera, inside sits somewhere on the screen and the segment
// heads off in some screen direction. The corner of the screen in that
// direction splits it: a direction steeper than the corner leaves through the
// top or bottom, a shallower one through the left or right. A point already
// past the top or bottom edge can only leave through the left or right, and
// the other way round.
func (f Frame) ExitSide(inside, outside geom.Vec3) (Side, error) {
	a := f.local(inside)
	if a.Y <= geom.Epsilon {
		return SideNone, fmt.Errorf("%w: %v is not in front of the camera", ErrNotVisible, inside)
	}
	d := f.local(outside).Sub(a)

	// screen position of inside, and the screen direction of the segment there
	sx, sz := a.X/a.Y, a.Z/a.Y
	dirX := d.X*a.Y - a.X*d.Y
	dirZ := d.Z*a.Y - a.Z*d.Y
	if math.Abs(dirX) < geom.Epsilon && math.Abs(dirZ) < geom.Epsilon {
		return SideNone, fmt.Errorf("%w: segment points straight along the view ray", geom.ErrNoIntersection)
	}

	horizontal, edgeX := SideRight, f.tanH-sx
	if dirX < 0 {
		horizontal, edgeX = SideLeft, f.tanH+sx
	}
	vertical, edgeZ := SideTop, f.tanV-sz
	if dirZ < 0 {
		vertical, edgeZ = SideBottom, f.tanV+sz
	}

	// A visible point can lie past one screen edge, within the cone but off
	// the rectangle. The segment cannot cross that side ahead of it.
	switch {
	case edgeX <= 0 && edgeZ <= 0:
		return SideNone, fmt.Errorf("%w: %v is past both screen edges", geom.ErrNoIntersection, inside)
	case edgeZ <= 0:
		return horizontal, nil
	case edgeX <= 0:
		return vertical, nil
	}

	if math.Atan2(math.Abs(dirZ), math.Abs(dirX)) > math.Atan2(edgeZ, edgeX) {
		return vertical, nil
	}
	return horizontal, nil
}
