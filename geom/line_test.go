package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFromPoints(t *testing.T) {
	tests := []struct {
		Name       string
		P1, P2     Vec3
		YX, ZY, XZ Relation
	}{
		{
			"xy plane",
			V3(10, 10, 0), V3(0, 0, 0),
			Relation{Indep: X, Dep: Y, Kind: Sloped, Coeff: 1, Const: 0},
			Relation{Indep: Y, Dep: Z, Kind: Flat, Const: 0},
			Relation{Indep: Z, Dep: X, Kind: Vertical, Const: 0},
		},
		{
			"parallel to y",
			V3(10, 10, 0), V3(10, 0, 0),
			Relation{Indep: X, Dep: Y, Kind: Vertical, Const: 10},
			Relation{Indep: Y, Dep: Z, Kind: Flat, Const: 0},
			Relation{Indep: Z, Dep: X, Kind: Vertical, Const: 0},
		},
		{
			"yz plane",
			V3(10, 10, 0), V3(10, 0, 10),
			Relation{Indep: X, Dep: Y, Kind: Vertical, Const: 10},
			Relation{Indep: Y, Dep: Z, Kind: Sloped, Coeff: -1, Const: 10},
			Relation{Indep: Z, Dep: X, Kind: Flat, Const: 10},
		},
		{
			"all axes",
			V3(10, 10, 0), V3(5, 0, 10),
			Relation{Indep: X, Dep: Y, Kind: Sloped, Coeff: 2, Const: -10},
			Relation{Indep: Y, Dep: Z, Kind: Sloped, Coeff: -1, Const: 10},
			Relation{Indep: Z, Dep: X, Kind: Sloped, Coeff: -0.5, Const: 10},
		},
	}

	for _, c := range tests {
		t.Run(c.Name, func(t *testing.T) {
			l := LineFromPoints(c.P1, c.P2)
			assert.Equal(t, c.YX, l.YX)
			assert.Equal(t, c.ZY, l.ZY)
			assert.Equal(t, c.XZ, l.XZ)
		})
	}
}

func TestRelation_ApplyReproducesEndpoints(t *testing.T) {
	pairs := [][2]Vec3{
		{V3(1, 2, 3), V3(-4, 7.5, 0.25)},
		{V3(0, 0, 0), V3(8, 10000001, -6)},
		{V3(3, 3, 1), V3(3, -2, 5)},
		{V3(1, 5, 2), V3(9, 5, 2)},
	}

	for _, pair := range pairs {
		l := LineFromPoints(pair[0], pair[1])
		for _, r := range l.Relations() {
			if r.Kind == Vertical {
				continue
			}
			for _, p := range pair {
				assert.InDelta(t, p.Component(r.Dep), r.Apply(p.Component(r.Indep)), 1e-6, "%v at %v", r, p)
			}
		}
	}
}

func TestRelation_Invert(t *testing.T) {
	r := Relation{Indep: X, Dep: Y, Kind: Sloped, Coeff: 2, Const: -10}
	inv := r.Invert()
	assert.Equal(t, Relation{Indep: Y, Dep: X, Kind: Sloped, Coeff: 0.5, Const: 5}, inv)
	for _, x := range []float64{-3, 0, 4.5, 100} {
		assert.InDelta(t, x, inv.Apply(r.Apply(x)), 1e-12)
	}
	assert.Equal(t, r, inv.Invert())

	flat := Relation{Indep: Y, Dep: Z, Kind: Flat, Const: 4}
	assert.Equal(t, Relation{Indep: Z, Dep: Y, Kind: Vertical, Const: 4}, flat.Invert())
	assert.Equal(t, flat, flat.Invert().Invert())
}

func TestRelation_Pinned(t *testing.T) {
	l := LineFromPoints(V3(10, 10, 0), V3(10, 0, 10))

	axis, v, ok := l.YX.Pinned()
	assert.True(t, ok)
	assert.Equal(t, X, axis)
	assert.Equal(t, 10.0, v)

	_, _, ok = l.ZY.Pinned()
	assert.False(t, ok)

	axis, v, ok = l.XZ.Pinned()
	assert.True(t, ok)
	assert.Equal(t, X, axis)
	assert.Equal(t, 10.0, v)
}

func TestLine_Solve(t *testing.T) {
	l := LineFromPoints(V3(10, 10, 0), V3(10, 0, 10))

	// z from y is stored directly
	r, ok := l.Solve(Y, Z)
	assert.True(t, ok)
	assert.Equal(t, l.ZY, r)

	// y from z goes through the inverse
	r, ok = l.Solve(Z, Y)
	assert.True(t, ok)
	assert.InDelta(t, 10.0, r.Apply(0), 1e-12)
	assert.InDelta(t, 0.0, r.Apply(10), 1e-12)

	// x is constant, so it can be given from y but cannot parametrize anything
	r, ok = l.Solve(Y, X)
	assert.True(t, ok)
	assert.Equal(t, 10.0, r.Apply(123))
	_, ok = l.Solve(X, Z)
	assert.False(t, ok)
}

func TestLine_Degenerate(t *testing.T) {
	assert.True(t, LineFromPoints(V3(1, 2, 3), V3(1, 2, 3)).Degenerate())
	assert.False(t, LineFromPoints(V3(1, 2, 3), V3(1, 2, 4)).Degenerate())
}
