// Package pilot flies the camera: it turns held controls into a new position
// and orientation each frame.
package pilot

import (
	"math"

	"flightview/geom"
	"flightview/view"
)

// Controls are the inputs held during one frame, each in [-1, 1].
// Positive Pitch noses up, positive Yaw turns left and positive Roll banks
// right. Forward, Strafe and Lift move along the camera's own axes.
type Controls struct {
	Pitch, Yaw, Roll      float64
	Forward, Strafe, Lift float64
}

// Zero reports whether nothing is held.
func (c Controls) Zero() bool {
	return c == Controls{}
}

type Pilot struct {
	Position geom.Vec3
	Angles   geom.Angle3

	// Velocity is the movement of the last Step, in world units per second.
	Velocity geom.Vec3

	// MoveSpeed is in world units per second, TurnRate in radians per second.
	MoveSpeed float64
	TurnRate  float64
}

// Axes returns the camera's forward, right and up directions in world space.
func (p Pilot) Axes() (forward, right, up geom.Vec3) {
	forward = geom.Rotate(geom.V3(0, 1, 0), p.Angles, geom.Vec3{})
	right = geom.Rotate(geom.V3(1, 0, 0), p.Angles, geom.Vec3{})
	up = geom.Rotate(geom.V3(0, 0, 1), p.Angles, geom.Vec3{})
	return forward, right, up
}

// Step applies c for dt seconds. Turning happens before moving.
func (p *Pilot) Step(c Controls, dt float64) {
	if c.Zero() {
		p.Velocity = geom.Vec3{}
		return
	}

	turn := p.TurnRate * dt
	p.Angles = geom.Angle3{
		X: wrap(p.Angles.X + c.Pitch*turn),
		Y: wrap(p.Angles.Y + c.Roll*turn),
		Z: wrap(p.Angles.Z + c.Yaw*turn),
	}

	forward, right, up := p.Axes()
	move := forward.Scale(c.Forward).Add(right.Scale(c.Strafe)).Add(up.Scale(c.Lift))
	p.Velocity = move.Scale(p.MoveSpeed)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Frontal returns a size by size square centred on the pilot and facing
// forward, wound so its surface normal is the forward axis.
func (p Pilot) Frontal(size float64) []geom.Vec3 {
	_, right, up := p.Axes()
	r, u := right.Scale(size/2), up.Scale(size/2)
	return []geom.Vec3{
		p.Position.Sub(r).Sub(u),
		p.Position.Add(r).Sub(u),
		p.Position.Add(r).Add(u),
		p.Position.Sub(r).Add(u),
	}
}

// Camera returns base posed where the pilot is.
func (p Pilot) Camera(base view.Camera) view.Camera {
	base.Position = p.Position
	base.Orientation = p.Angles
	return base
}

func wrap(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
