package shape

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glprim/pkg/geometry"
	gmath "github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

// Config is the resolved configuration of a builder.
type Config struct {
	Kind        geometry.Kind
	Scale       gmath.Vec3
	Translation gmath.Vec3
	Orientation gmath.Quat
	Params      geometry.Params
}

// DefaultConfig returns the configuration a new builder of kind starts with:
// unit scale, no translation, identity orientation, default resolution.
func DefaultConfig(kind geometry.Kind) Config {
	return Config{
		Kind:        kind,
		Scale:       gmath.V3(1, 1, 1),
		Orientation: gmath.QuatIdentity(),
		Params:      geometry.DefaultParams(),
	}
}

// Validate checks every setting without generating geometry.
func (c Config) Validate() error {
	if err := c.Params.Validate(c.Kind); err != nil {
		var pe *geometry.ParamError
		if errors.As(err, &pe) {
			return &ConfigurationError{
				Shape:  c.Kind,
				Field:  pe.Field,
				Reason: fmt.Sprintf("%d is below the minimum of %d", pe.Value, pe.Min),
				Err:    err,
			}
		}
		return &ConfigurationError{Shape: c.Kind, Field: "kind", Reason: err.Error(), Err: err}
	}

	s := c.Scale
	if !s.IsFinite() {
		return &ConfigurationError{Shape: c.Kind, Field: "scale", Reason: fmt.Sprintf("%v is not finite", s)}
	}
	if s.X == 0 || s.Y == 0 || s.Z == 0 {
		return &ConfigurationError{Shape: c.Kind, Field: "scale", Reason: fmt.Sprintf("%v has a zero component", s)}
	}
	if !c.Translation.IsFinite() {
		return &ConfigurationError{Shape: c.Kind, Field: "translation", Reason: fmt.Sprintf("%v is not finite", c.Translation)}
	}
	q := c.Orientation
	if !q.IsFinite() {
		return &ConfigurationError{Shape: c.Kind, Field: "orientation", Reason: "quaternion is not finite"}
	}
	if q.Length() < 1e-6 {
		return &ConfigurationError{Shape: c.Kind, Field: "orientation", Reason: "zero-length rotation"}
	}
	if _, ok := c.normalMatrix(); !ok {
		return &ConfigurationError{Shape: c.Kind, Field: "scale", Reason: fmt.Sprintf("%v is too close to singular", s)}
	}
	return nil
}

// normalMatrix returns the normal transform. It reports false when the
// linear part cannot be inverted in float32.
func (c Config) normalMatrix() (gmath.Mat3, bool) {
	model := c.Matrix()
	if det := model.Mat3().Det(); det == 0 || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return gmath.Ident3(), false
	}
	n, ok := gmath.NormalMatrix(model)
	if !ok {
		return n, false
	}
	for col := 0; col < 9; col += 3 {
		if !gmath.V3(n[col], n[col+1], n[col+2]).IsFinite() {
			return n, false
		}
	}
	return n, true
}

// mirrored reports whether the transform reverses handedness. Rotations
// keep it, so only the count of negative scale factors matters.
func (c Config) mirrored() bool {
	neg := 0
	for _, f := range []float32{c.Scale.X, c.Scale.Y, c.Scale.Z} {
		if math32.Signbit(f) {
			neg++
		}
	}
	return neg%2 == 1
}

// Matrix returns the model matrix translation * orientation * scale.
func (c Config) Matrix() gmath.Mat4 {
	return gmath.TRS(c.Translation, c.Orientation, c.Scale)
}

// build validates, samples the unit shape and moves it into place.
func (c Config) build() (*mesh.Mesh, bool, error) {
	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	data, err := geometry.Generate(c.Kind, c.Params)
	if err != nil {
		return nil, false, &ConfigurationError{Shape: c.Kind, Field: "kind", Reason: err.Error(), Err: err}
	}

	model := c.Matrix()
	normals, _ := c.normalMatrix()
	surface := data.Topology == mesh.Triangles

	for i := range data.Vertices {
		v := &data.Vertices[i]
		v.Position = model.TransformPoint(gmath.Vec3FromArray(v.Position)).Array()
		if surface {
			n := normals.MulVec3(gmath.Vec3FromArray(v.Normal)).Normalize()
			if !n.IsFinite() || math32.Abs(n.Length()-1) > 1e-3 {
				return nil, false, &ConfigurationError{
					Shape:  c.Kind,
					Field:  "scale",
					Reason: fmt.Sprintf("%v overflows the normal transform", c.Scale),
				}
			}
			v.Normal = n.Array()
		}
	}

	// A mirrored transform turns CCW into CW; swap to keep outward faces.
	flipped := surface && c.mirrored()
	if flipped {
		for i := 0; i+2 < len(data.Indices); i += 3 {
			data.Indices[i+1], data.Indices[i+2] = data.Indices[i+2], data.Indices[i+1]
		}
	}

	m, err := mesh.New(data.Vertices, data.Indices, data.Topology)
	if err != nil {
		return nil, flipped, fmt.Errorf("%s: %w", c.Kind, err)
	}
	return m, flipped, nil
}
