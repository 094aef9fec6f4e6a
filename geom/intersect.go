package geom

import (
	"fmt"
	"math"
	"math/bits"
)

// pinned records which axes a line holds constant and at what value.
type pinned struct {
	mask   uint8
	values [3]float64
}

func (p *pinned) set(axis Axis, v float64) {
	p.mask |= 1 << axis
	p.values[axis] = v
}

func (p pinned) has(axis Axis) bool {
	return p.mask&(1<<axis) != 0
}

func (p pinned) count() int {
	return bits.OnesCount8(p.mask)
}

func pinnedAxes(l Line) (pinned, []Relation) {
	var p pinned
	var sloped []Relation
	for _, r := range l.Relations() {
		if axis, v, ok := r.Pinned(); ok {
			p.set(axis, v)
			continue
		}
		sloped = append(sloped, r)
	}
	return p, sloped
}

// IntersectPlane returns the point where line crosses plane.
//
// The relations of the line are first sorted into pinned axes (flat or
// vertical relations fix a coordinate outright) and sloped ones; the number
// of pinned axes picks the solver. A line parallel to the plane, including one
// lying inside it, yields ErrNoIntersection.
func IntersectPlane(plane Plane, line Line) (Vec3, error) {
	pins, sloped := pinnedAxes(line)

	var (
		p   Vec3
		err error
	)
	switch pins.count() {
	case 0:
		p, err = solveFree(plane, line)
	case 1:
		p, err = solveOnePinned(plane, pins, sloped[0])
	case 2:
		p, err = solveTwoPinned(plane, pins)
	default:
		p, err = solvePoint(plane, line.P1)
	}
	if err != nil {
		return Vec3{}, err
	}
	if !p.IsFinite() {
		return Vec3{}, fmt.Errorf("%w: line %v-%v does not resolve to a finite point", ErrNoIntersection, line.P1, line.P2)
	}
	return p, nil
}

// partner returns the relation whose dependent axis is r's independent one.
func partner(line Line, r Relation) Relation {
	for _, o := range line.Relations() {
		if o.Dep == r.Indep {
			return o
		}
	}
	return r
}

// solveFree handles a line that moves along every axis. Each coordinate is
// solved on its own: the relation gives the next axis, the inverted partner
// the remaining one, and the plane equation becomes linear in one unknown.
func solveFree(plane Plane, line Line) (Vec3, error) {
	n := plane.Normal
	var p Vec3
	for _, r := range line.Relations() {
		inv := partner(line, r).Invert()
		if inv.Kind != Sloped {
			return Vec3{}, ErrNoIntersection
		}
		den := n.Component(r.Indep) + n.Component(r.Dep)*r.Coeff + n.Component(inv.Dep)*inv.Coeff
		if math.Abs(den) < Epsilon {
			return Vec3{}, ErrNoIntersection
		}
		num := plane.Offset - n.Component(r.Dep)*r.Const - n.Component(inv.Dep)*inv.Const
		p = p.WithComponent(r.Indep, num/den)
	}
	return p, nil
}

// solveOnePinned handles a line held constant along one axis. The single
// sloped relation gives its independent axis from the plane equation; the
// last axis comes from the plane again, or from the relation when the plane
// normal has no component along it.
func solveOnePinned(plane Plane, pins pinned, r Relation) (Vec3, error) {
	n := plane.Normal
	var k Axis
	for a := X; a <= Z; a++ {
		if pins.has(a) {
			k = a
		}
	}
	vk := pins.values[k]

	den := n.Component(r.Indep) + n.Component(r.Dep)*r.Coeff
	if math.Abs(den) < Epsilon {
		return Vec3{}, ErrNoIntersection
	}
	vi := (plane.Offset - n.Component(k)*vk - n.Component(r.Dep)*r.Const) / den

	var vd float64
	if nd := n.Component(r.Dep); math.Abs(nd) > Epsilon {
		vd = (plane.Offset - n.Component(r.Indep)*vi - n.Component(k)*vk) / nd
	} else {
		vd = r.Apply(vi)
	}

	return Vec3{}.WithComponent(k, vk).WithComponent(r.Indep, vi).WithComponent(r.Dep, vd), nil
}

// solveTwoPinned handles a line parallel to a coordinate axis: two values are
// known and the plane equation gives the third. Every relation of such a line
// is pinned, so when the normal has no component along the free axis there is
// nothing left to solve with.
func solveTwoPinned(plane Plane, pins pinned) (Vec3, error) {
	n := plane.Normal
	var (
		p     Vec3
		free  Axis
		total float64
	)
	for a := X; a <= Z; a++ {
		if !pins.has(a) {
			free = a
			continue
		}
		p = p.WithComponent(a, pins.values[a])
		total += n.Component(a) * pins.values[a]
	}
	nf := n.Component(free)
	if math.Abs(nf) < Epsilon {
		return Vec3{}, ErrNoIntersection
	}
	return p.WithComponent(free, (plane.Offset-total)/nf), nil
}

// solvePoint handles a zero-length line.
func solvePoint(plane Plane, p Vec3) (Vec3, error) {
	if !plane.Contains(p, Epsilon) {
		return Vec3{}, ErrNoIntersection
	}
	return p, nil
}
