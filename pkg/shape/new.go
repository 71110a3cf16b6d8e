package shape

import (
	"fmt"

	"github.com/Faultbox/glprim/pkg/geometry"
)

// New returns a default builder for kind.
func New(kind geometry.Kind) (Builder, error) {
	switch kind {
	case geometry.Cuboid:
		return NewCuboid(), nil
	case geometry.Quad:
		return NewQuad(), nil
	case geometry.Sphere:
		return NewSphere(), nil
	case geometry.Cylinder:
		return NewCylinder(), nil
	case geometry.Cone:
		return NewCone(), nil
	case geometry.Axes:
		return NewAxes(), nil
	}
	return nil, fmt.Errorf("unknown shape kind %d", kind)
}

// FromConfig returns a fresh builder holding cfg. Nothing is checked until
// the mesh is built.
func FromConfig(cfg Config) (Builder, error) {
	b, err := New(cfg.Kind)
	if err != nil {
		return nil, err
	}
	b.(interface{ load(Config) }).load(cfg)
	return b, nil
}
