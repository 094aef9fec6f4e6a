package geom

import (
	"math"
	"sort"
)

// Cone is a right circular cone with its apex at Apex, opening along the local
// +y axis, turned into world space by Orientation. In the local frame its
// surface is x² + z² = y²·tan²(HalfAngle).
type Cone struct {
	HalfAngle   float64
	Apex        Vec3
	Orientation Angle3
}

func (c Cone) toLocal(p Vec3) Vec3 {
	return Unrotate(p, c.Orientation, c.Apex).Sub(c.Apex)
}

func (c Cone) toWorld(p Vec3) Vec3 {
	return Rotate(p.Add(c.Apex), c.Orientation, c.Apex)
}

// Evaluate returns x² + z² − y²·tan²(HalfAngle) for p in the cone's frame:
// zero on the surface, negative inside either nappe.
func (c Cone) Evaluate(p Vec3) float64 {
	l := c.toLocal(p)
	t := math.Tan(c.HalfAngle)
	return l.X*l.X + l.Z*l.Z - l.Y*l.Y*t*t
}

// IntersectSegment returns the points where the segment p1-p2 crosses the
// forward nappe of the cone, ordered from p1. An empty result means the
// segment misses the cone.
//
// The segment is taken into the cone's frame, written as a function of the
// axis it moves along the most, and substituted into the cone equation, which
// leaves a quadratic in that coordinate. The quadratic also answers for the
// mirrored nappe behind the apex, so every root is checked against the
// segment before it is kept.
func (c Cone) IntersectSegment(p1, p2 Vec3) ([]Vec3, error) {
	l1, l2 := c.toLocal(p1), c.toLocal(p2)
	line := LineFromPoints(l1, l2)
	if line.Degenerate() {
		return nil, ErrDegenerateVector
	}

	u := X
	for _, a := range []Axis{Y, Z} {
		if math.Abs(line.Delta(a)) > math.Abs(line.Delta(u)) {
			u = a
		}
	}

	// every local coordinate as m*u + k
	var m, k [3]float64
	for a := X; a <= Z; a++ {
		r, _ := line.Solve(u, a)
		if r.Kind == Sloped {
			m[a] = r.Coeff
		}
		k[a] = r.Const
	}

	t := math.Tan(c.HalfAngle)
	t2 := t * t
	qa := m[X]*m[X] + m[Z]*m[Z] - t2*m[Y]*m[Y]
	qb := 2 * (m[X]*k[X] + m[Z]*k[Z] - t2*m[Y]*k[Y])
	qc := k[X]*k[X] + k[Z]*k[Z] - t2*k[Y]*k[Y]

	u1, u2 := l1.Component(u), l2.Component(u)
	lo, hi := math.Min(u1, u2), math.Max(u1, u2)
	tol := Epsilon * (1 + hi - lo)

	var hits []Vec3
	for _, root := range solveQuadratic(qa, qb, qc) {
		if root < lo-tol || root > hi+tol {
			continue
		}
		var p Vec3
		for a := X; a <= Z; a++ {
			p = p.WithComponent(a, m[a]*root+k[a])
		}
		if p.Y < -tol {
			continue
		}
		hits = append(hits, p)
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance(l1) < hits[j].Distance(l1)
	})
	for i, h := range hits {
		hits[i] = c.toWorld(h)
	}
	return hits, nil
}

// solveQuadratic returns the real roots of a·x² + b·x + c = 0, falling back to
// the linear equation when a vanishes.
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < Epsilon {
		if math.Abs(b) < Epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	// avoids cancellation between b and the root
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	return []float64{q / a, c / q}
}
