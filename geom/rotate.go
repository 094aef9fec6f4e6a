package geom

import "math"

// Angle3 holds one rotation angle per axis, in radians. The rotations are
// composed in a fixed order: x first, then y, then z.
type Angle3 struct {
	X, Y, Z float64
}

// Neg returns the angles with every component negated.
func (a Angle3) Neg() Angle3 {
	return Angle3{-a.X, -a.Y, -a.Z}
}

// RotateX rotates the vector around the X axis
func (v Vec3) RotateX(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector around the Y axis
func (v Vec3) RotateY(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the vector around the Z axis
func (v Vec3) RotateZ(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate rotates p about pivot by a, applying the x, y and z rotations in that
// order. Zero angles are skipped so they add no rounding.
func Rotate(p Vec3, a Angle3, pivot Vec3) Vec3 {
	q := p.Sub(pivot)
	if a.X != 0 {
		q = q.RotateX(a.X)
	}
	if a.Y != 0 {
		q = q.RotateY(a.Y)
	}
	if a.Z != 0 {
		q = q.RotateZ(a.Z)
	}
	return q.Add(pivot)
}

// Unrotate undoes Rotate: the negated z, y and x rotations in that order.
func Unrotate(p Vec3, a Angle3, pivot Vec3) Vec3 {
	n := a.Neg()
	q := p.Sub(pivot)
	if n.Z != 0 {
		q = q.RotateZ(n.Z)
	}
	if n.Y != 0 {
		q = q.RotateY(n.Y)
	}
	if n.X != 0 {
		q = q.RotateX(n.X)
	}
	return q.Add(pivot)
}
