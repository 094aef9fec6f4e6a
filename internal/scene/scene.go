// Package scene builds the line objects the viewer flies around. Each object
// hands out world-space segments; what is visible is decided later by the
// view package.
package scene

import (
	"fmt"
	"image/color"

	"flightview/geom"
	"flightview/internal/config"
)

// Object is anything the renderer can draw.
type Object interface {
	// Segments returns the object's lines in world space. Each entry is one
	// segment or, with three or more points, one closed polygon.
	Segments() [][]geom.Vec3
	Colour() color.RGBA

	// Update advances any animation by dt seconds.
	Update(dt float64)
}

// Toggler is an object with movement the viewer can switch on and off.
type Toggler interface {
	ToggleExpand()
	ToggleRotate()
	ToggleSync()
}

// Toggle calls fn on every object in objects that is a Toggler and returns
// how many there were.
func Toggle(objects []Object, fn func(Toggler)) int {
	n := 0
	for _, obj := range objects {
		if t, ok := obj.(Toggler); ok {
			fn(t)
			n++
		}
	}
	return n
}

// New returns the generator called kind placed at position.
func New(kind string, position geom.Vec3) (Object, error) {
	switch kind {
	case "grid":
		return NewGrid(position), nil
	case "house":
		return NewHouse(position), nil
	case "jellyfish":
		return NewJellyFish(position), nil
	case "circlegrid":
		return NewCircleGrid(position), nil
	}
	return nil, fmt.Errorf("scene: unknown object kind %q", kind)
}

// FromConfig builds every object listed in cfg, in order.
func FromConfig(cfg []config.Object) ([]Object, error) {
	objects := make([]Object, 0, len(cfg))
	for i, o := range cfg {
		obj, err := New(o.Kind, geom.V3(o.Position[0], o.Position[1], o.Position[2]))
		if err != nil {
			return nil, fmt.Errorf("scene[%d]: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
