// Package physics holds the flight forces shown in the viewer.
package physics

import (
	"math"

	"flightview/geom"
)

// AirDensity is sea level air, in kg/m³.
const AirDensity = 1.225

// SurfaceDrag returns the drag on a flat surface moving at velocity through a
// fluid of the given density: ½·ρ·|v|²·A·Cd. Cd is how squarely the surface
// meets the flow, 1 face on and 0 edge on.
func SurfaceDrag(surface []geom.Vec3, velocity geom.Vec3, density float64) (float64, error) {
	area, normal, err := geom.SurfaceArea(surface)
	if err != nil {
		return 0, err
	}
	speed := velocity.Len()
	if speed < geom.Epsilon {
		return 0, nil
	}
	cd := math.Abs(normal.Dot(velocity)) / speed
	return speed * speed * cd * density * area / 2, nil
}
