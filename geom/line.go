package geom

import "fmt"

// RelationKind tags how a Relation ties its dependent axis to its independent one.
type RelationKind uint8

const (
	// Sloped: dep = Coeff*indep + Const, with Coeff non-zero.
	Sloped RelationKind = iota
	// Flat: dep = Const whatever the independent value is.
	Flat
	// Vertical: the line never moves along the independent axis, which is
	// pinned at Const. The slope is undefined.
	Vertical
)

func (k RelationKind) String() string {
	switch k {
	case Sloped:
		return "sloped"
	case Flat:
		return "flat"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("RelationKind(%d)", uint8(k))
}

// Relation is the 2D slope/intercept form of a line projected onto one pair of axes.
type Relation struct {
	Indep, Dep Axis
	Kind       RelationKind
	Coeff      float64
	Const      float64
}

func relate(indep, dep Axis, p1, p2 Vec3) Relation {
	ci, cd := p1.Component(indep), p1.Component(dep)
	di := ci - p2.Component(indep)
	dd := cd - p2.Component(dep)

	r := Relation{Indep: indep, Dep: dep}
	switch {
	case di != 0 && dd != 0:
		r.Kind = Sloped
		r.Coeff = dd / di
		r.Const = cd - ci*r.Coeff
	case di == 0:
		r.Kind = Vertical
		r.Const = ci
	default:
		r.Kind = Flat
		r.Const = cd
	}
	return r
}

// Apply evaluates the relation at coord. Flat and vertical relations return Const.
func (r Relation) Apply(coord float64) float64 {
	if r.Kind == Sloped {
		return r.Coeff*coord + r.Const
	}
	return r.Const
}

// Invert swaps the independent and dependent axes. A flat relation becomes
// vertical and the other way round. The inverse constant is -Const/Coeff, so
// the sign is carried here and callers apply the result as it is.
func (r Relation) Invert() Relation {
	inv := Relation{Indep: r.Dep, Dep: r.Indep, Const: r.Const}
	switch {
	case r.Kind == Sloped && r.Coeff != 0:
		inv.Kind = Sloped
		inv.Coeff = 1 / r.Coeff
		inv.Const = -r.Const / r.Coeff
	case r.Kind == Vertical:
		inv.Kind = Flat
	default:
		inv.Kind = Vertical
	}
	return inv
}

// Pinned returns the axis whose value the relation fixes, if any.
func (r Relation) Pinned() (Axis, float64, bool) {
	switch r.Kind {
	case Vertical:
		return r.Indep, r.Const, true
	case Flat:
		return r.Dep, r.Const, true
	}
	return 0, 0, false
}

func (r Relation) String() string {
	switch r.Kind {
	case Sloped:
		return fmt.Sprintf("%v = %g*%v + %g", r.Dep, r.Coeff, r.Indep, r.Const)
	case Flat:
		return fmt.Sprintf("%v = %g", r.Dep, r.Const)
	}
	return fmt.Sprintf("%v = %g (%v undefined)", r.Indep, r.Const, r.Dep)
}

// Line is the line through two points, held as three redundant relations:
// y as a function of x, z of y and x of z. Different intersection cases need
// different pairs of them.
type Line struct {
	P1, P2 Vec3
	YX     Relation
	ZY     Relation
	XZ     Relation
}

// LineFromPoints builds the line through p1 and p2.
func LineFromPoints(p1, p2 Vec3) Line {
	return Line{
		P1: p1,
		P2: p2,
		YX: relate(X, Y, p1, p2),
		ZY: relate(Y, Z, p1, p2),
		XZ: relate(Z, X, p1, p2),
	}
}

// Relations returns the three relations in y(x), z(y), x(z) order.
func (l Line) Relations() [3]Relation {
	return [3]Relation{l.YX, l.ZY, l.XZ}
}

// Delta returns how far the line moves along axis from P1 to P2.
func (l Line) Delta(axis Axis) float64 {
	return l.P2.Component(axis) - l.P1.Component(axis)
}

// Degenerate reports whether the two points coincide.
func (l Line) Degenerate() bool {
	return l.P1 == l.P2
}

// Solve returns the relation giving axis to as a function of axis from, using
// the stored relation or the inverse of the one pointing the other way.
// ok is false when the line does not move along from.
func (l Line) Solve(from, to Axis) (r Relation, ok bool) {
	if from == to {
		return Relation{Indep: from, Dep: to, Kind: Sloped, Coeff: 1}, l.Delta(from) != 0
	}
	for _, rel := range l.Relations() {
		if rel.Indep == from && rel.Dep == to {
			r = rel
			break
		}
		if rel.Indep == to && rel.Dep == from {
			r = rel.Invert()
			break
		}
	}
	return r, r.Kind != Vertical
}
