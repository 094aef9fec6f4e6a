package geom

import "math"

// Plane is the infinite plane of points p with Normal·p == Offset.
// Normal always has unit length.
type Plane struct {
	Normal Vec3
	Offset float64
}

// PlaneFromNormalAndPoint builds the plane with the given normal that passes
// through point. The normal is normalized first unless it already is.
func PlaneFromNormalAndPoint(normal, point Vec3) (Plane, error) {
	if math.Abs(normal.Len()-1) > Epsilon {
		n, err := normal.Normalize()
		if err != nil {
			return Plane{}, err
		}
		normal = n
	}
	return Plane{Normal: normal, Offset: normal.Dot(point)}, nil
}

// Evaluate returns the plane offset and Normal·p. The point lies on the plane
// when the two are equal.
func (pl Plane) Evaluate(p Vec3) (offset, dot float64) {
	return pl.Offset, pl.Normal.Dot(p)
}

// SignedDistance is positive on the side the normal points to.
func (pl Plane) SignedDistance(p Vec3) float64 {
	return pl.Normal.Dot(p) - pl.Offset
}

// Contains reports whether p is within tol of the plane.
func (pl Plane) Contains(p Vec3, tol float64) bool {
	return math.Abs(pl.SignedDistance(p)) <= tol
}
