// Package geometry generates unit-sized, origin-centred primitive meshes.
//
// All shapes use the OpenGL right-handed convention with Z up: triangles
// wind counter-clockwise when seen from outside the solid. The kernels are
// pure functions of their parameters and are safe for concurrent use.
package geometry

import (
	"fmt"
	"strings"
)

// Kind is the closed set of shape families.
type Kind uint8

const (
	Cuboid Kind = iota
	Quad
	Sphere
	Cylinder
	Cone
	Axes
)

var kindNames = [...]string{
	Cuboid:   "cuboid",
	Quad:     "quad",
	Sphere:   "sphere",
	Cylinder: "cylinder",
	Cone:     "cone",
	Axes:     "axes",
}

// Kinds lists every shape family in declaration order.
func Kinds() []Kind {
	return []Kind{Cuboid, Quad, Sphere, Cylinder, Cone, Axes}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Valid reports whether k is one of the known families.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind parses a family name, case-insensitively. "cube" and "box"
// are accepted for Cuboid and "plane" for Quad.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "cube", "box":
		return Cuboid, nil
	case "plane":
		return Quad, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// MarshalText implements encoding.TextMarshaler (used by YAML config).
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown shape kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
