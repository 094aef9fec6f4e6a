package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)
	assert.InDelta(t, math.Sqrt(27), a.Distance(b), 1e-12)
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		A, B     Vec3
		Expected Vec3
	}{
		{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}

	for _, c := range tests {
		assert.Equal(t, c.Expected, c.A.Cross(c.B), "%v x %v", c.A, c.B)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n, err := V3(3, 0, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)
	assert.InDelta(t, 1, n.Len(), 1e-12)

	_, err = V3(0, 0, 0).Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)

	_, err = V3(1e-12, 0, 0).Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVec3_AngleTo(t *testing.T) {
	tests := []struct {
		A, B     Vec3
		Expected float64
	}{
		{V3(1, 0, 0), V3(0, 1, 0), math.Pi / 2},
		{V3(1, 0, 0), V3(1, 1, 0), math.Pi / 4},
		{V3(0.1, 0.2, 0.3), V3(0.1, 0.2, 0.3), 0},
		{V3(0.1, 0.2, 0.3), V3(-0.1, -0.2, -0.3), math.Pi},
		{V3(1e8, 3e-7, 1), V3(1e8, 3e-7, 1), 0},
	}

	for _, c := range tests {
		r, err := c.A.AngleTo(c.B)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(r), "angle %v %v is NaN", c.A, c.B)
		assert.InDelta(t, c.Expected, r, 1e-6, "angle %v %v", c.A, c.B)
	}

	_, err := V3(0, 0, 0).AngleTo(V3(1, 0, 0))
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVec3_Components(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, 1.0, v.Component(X))
	assert.Equal(t, 2.0, v.Component(Y))
	assert.Equal(t, 3.0, v.Component(Z))
	assert.Equal(t, V3(1, 9, 3), v.WithComponent(Y, 9))
	assert.Equal(t, V3(1, 2, 3), v, "WithComponent must not modify the receiver")

	assert.True(t, v.NearlyEqual(V3(1, 2, 3+1e-10), 1e-9))
	assert.False(t, v.NearlyEqual(V3(1, 2.1, 3), 1e-9))
	assert.False(t, V3(math.NaN(), 0, 0).IsFinite())
	assert.False(t, V3(0, math.Inf(-1), 0).IsFinite())
	assert.True(t, v.IsFinite())
}

func BenchmarkVec3_AngleTo(b *testing.B) {
	va := V3(3.1, 4.2, 1.3)
	vb := V3(-1.5, 2.2, 0.4)
	for i := 0; i < b.N; i++ {
		va.AngleTo(vb)
	}
}
