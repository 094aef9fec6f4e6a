package geom

import "fmt"

// SurfaceArea returns the area of a flat polygon and its unit normal.
//
// The normal is (v0 - v1) × (v2 - v1) taken at the first corner that is not
// straight, so it follows the winding of the vertices. Seen from the side it
// points to, the vertices run clockwise.
func SurfaceArea(vertices []Vec3) (float64, Vec3, error) {
	if len(vertices) < 3 {
		return 0, Vec3{}, fmt.Errorf("%w: polygon needs 3 vertices, got %d", ErrDegenerateVector, len(vertices))
	}

	var sum Vec3
	for i, p := range vertices {
		sum = sum.Add(p.Cross(vertices[(i+1)%len(vertices)]))
	}
	area := sum.Len() / 2

	for i := 0; i+2 < len(vertices); i++ {
		a := vertices[i].Sub(vertices[i+1])
		b := vertices[i+2].Sub(vertices[i+1])
		if n, err := a.Cross(b).Normalize(); err == nil {
			return area, n, nil
		}
	}
	return 0, Vec3{}, fmt.Errorf("%w: polygon has no area", ErrDegenerateVector)
}

// FacesPoint reports whether the polygon's front, the side its SurfaceArea
// normal points to, can be seen from p.
func FacesPoint(vertices []Vec3, p Vec3) (bool, error) {
	_, n, err := SurfaceArea(vertices)
	if err != nil {
		return false, err
	}
	return n.Dot(p.Sub(vertices[0])) > 0, nil
}
