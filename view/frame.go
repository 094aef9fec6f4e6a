// Package view turns world-space line work into screen coordinates for one
// camera pose: it decides what is visible, clips what is partly visible and
// projects the rest.
//
// The camera looks along its local +y axis; local +x is screen right and
// local +z is screen up.
package view

import (
	"errors"
	"fmt"
	"math"

	"flightview/geom"
)

var (
	// ErrInvalidCamera is returned by NewFrame for a camera no frame can be built from.
	ErrInvalidCamera = errors.New("view: invalid camera")

	// ErrNotVisible is returned when a point cannot be projected because it is
	// not in front of the camera.
	ErrNotVisible = errors.New("view: point not visible")
)

// Camera is the pose and lens the scene is viewed with.
type Camera struct {
	Position    geom.Vec3
	Orientation geom.Angle3

	// FOV is the vertical field of view in radians.
	FOV float64

	// Width and Height are the screen size in pixels.
	Width, Height int
}

// Side names one of the four side planes of the view frustum.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// ClipMode selects the surface partly visible lines are cut against.
type ClipMode int

const (
	// ClipCone cuts against the visibility cone, the same boundary Classify
	// uses, so clipped points sit exactly at the maximum visible angle.
	ClipCone ClipMode = iota

	// ClipPlanes cuts against the side plane of the screen edge the line
	// leaves through.
	ClipPlanes
)

// ClipDistance is how far in front of the camera the projection plane sits.
const ClipDistance = 1.0

// Frame is everything derived from a Camera that the visibility and
// projection code needs. It is computed once per rendered frame and never
// changed afterwards, so every object in a frame sees the same camera.
//
// Planes and the boundary cone are relative to the camera position.
type Frame struct {
	Camera
	Mode ClipMode

	Forward, Right, Up geom.Vec3

	// ClipPlane faces along Forward, ClipDistance away from the camera.
	ClipPlane geom.Plane

	// Sides holds the frustum side planes indexed by Side. Their normals
	// point into the visible volume.
	Sides [5]geom.Plane

	// MaxVisibleAngle is the angle between Forward and a screen corner.
	MaxVisibleAngle float64

	Boundary geom.Cone

	tanH, tanV float64
	scale      float64
}

// NewFrame derives the frame for cam, clipping with ClipCone.
func NewFrame(cam Camera) (Frame, error) {
	if cam.FOV <= 0 || cam.FOV >= math.Pi {
		return Frame{}, fmt.Errorf("%w: field of view %g outside (0, π)", ErrInvalidCamera, cam.FOV)
	}
	if cam.Width <= 0 || cam.Height <= 0 {
		return Frame{}, fmt.Errorf("%w: screen %dx%d", ErrInvalidCamera, cam.Width, cam.Height)
	}

	f := Frame{Camera: cam, Mode: ClipCone}
	origin := geom.Vec3{}
	rotate := func(v geom.Vec3) geom.Vec3 {
		return geom.Rotate(v, cam.Orientation, origin)
	}

	f.Forward = rotate(geom.V3(0, 1, 0))
	f.Right = rotate(geom.V3(1, 0, 0))
	f.Up = rotate(geom.V3(0, 0, 1))

	f.tanV = math.Tan(cam.FOV / 2)
	f.tanH = f.tanV * float64(cam.Width) / float64(cam.Height)
	f.MaxVisibleAngle = math.Atan(math.Hypot(f.tanH, f.tanV))
	if f.MaxVisibleAngle >= math.Pi/2-geom.Epsilon {
		return Frame{}, fmt.Errorf("%w: screen corners at %g rad from forward", ErrInvalidCamera, f.MaxVisibleAngle)
	}
	f.scale = float64(cam.Height) / (2 * f.tanV)

	var err error
	if f.ClipPlane, err = geom.PlaneFromNormalAndPoint(f.Forward, f.Forward.Scale(ClipDistance)); err != nil {
		return Frame{}, err
	}

	normals := map[Side]geom.Vec3{
		SideTop:    geom.V3(0, f.tanV, -1),
		SideBottom: geom.V3(0, f.tanV, 1),
		SideRight:  geom.V3(-1, f.tanH, 0),
		SideLeft:   geom.V3(1, f.tanH, 0),
	}
	for side, n := range normals {
		if f.Sides[side], err = geom.PlaneFromNormalAndPoint(rotate(n), origin); err != nil {
			return Frame{}, err
		}
	}

	f.Boundary = geom.Cone{HalfAngle: f.MaxVisibleAngle, Orientation: cam.Orientation}
	return f, nil
}

// WithClipMode returns a copy of f that clips with mode.
func (f Frame) WithClipMode(mode ClipMode) Frame {
	f.Mode = mode
	return f
}

// relative returns p relative to the camera position.
func (f Frame) relative(p geom.Vec3) geom.Vec3 {
	return p.Sub(f.Position)
}

// local returns p in the camera's own axes: forward along +y.
func (f Frame) local(p geom.Vec3) geom.Vec3 {
	return geom.Unrotate(f.relative(p), f.Orientation, geom.Vec3{})
}
