// Package geom is the geometry kernel behind the renderer: vectors, rotations,
// planes, line equations and the line/plane and line/cone intersectors.
//
// Everything here is a value type and every function is pure, so a frame that
// fails part way through leaves nothing behind for the next one.
package geom

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for "is this zero" decisions across the kernel.
const Epsilon = 1e-9

var (
	// ErrDegenerateVector is returned when a zero-length vector is used where a
	// direction is required.
	ErrDegenerateVector = errors.New("geom: degenerate vector")

	// ErrNoIntersection is returned when a line does not cross a surface, or the
	// crossing cannot be solved from the line's relations.
	ErrNoIntersection = errors.New("geom: no intersection")
)

// Axis selects one component of a Vec3.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "?"
}

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec2 is a point on the screen.
type Vec2 struct {
	X, Y float64
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a × b. Swapping the arguments flips the result, and the side
// planes of the view frustum rely on that orientation.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the magnitude of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the direction of a.
func (a Vec3) Normalize() (Vec3, error) {
	l := a.Len()
	if l < Epsilon {
		return Vec3{}, ErrDegenerateVector
	}
	return a.Scale(1 / l), nil
}

// Distance returns the distance between the points a and b.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// AngleTo returns the angle between a and b in radians.
//
// Rounding can push the cosine slightly outside [-1, 1] for (anti-)parallel
// vectors; it is clamped so the result is 0 or π instead of NaN.
func (a Vec3) AngleTo(b Vec3) (float64, error) {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0, ErrDegenerateVector
	}
	return math.Acos(clampCos(a.Dot(b) / (la * lb))), nil
}

func clampCos(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}

// Component returns the value of a along axis.
func (a Vec3) Component(axis Axis) float64 {
	switch axis {
	case X:
		return a.X
	case Y:
		return a.Y
	default:
		return a.Z
	}
}

// WithComponent returns a copy of a with the given axis set to v.
func (a Vec3) WithComponent(axis Axis, v float64) Vec3 {
	switch axis {
	case X:
		a.X = v
	case Y:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

// NearlyEqual reports whether every component of a and b differs by at most tol.
func (a Vec3) NearlyEqual(b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec3) IsFinite() bool {
	for _, c := range [3]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
