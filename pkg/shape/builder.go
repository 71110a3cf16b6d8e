// Package shape provides fluent builders for the primitive meshes in
// package geometry.
//
// A builder starts from defaults (unit scale, no translation, identity
// orientation, default resolution), is configured through chained
// setters, and is consumed by Mesh or Build:
//
//	h, err := shape.NewSphere().Segments(24, 12).Scale(2, 2, 2).Build(uploader)
//
// A builder produces at most one mesh. Clone copies the configuration
// into a fresh builder.
package shape

import (
	"go.uber.org/zap"

	"github.com/Faultbox/glprim/pkg/geometry"
	gmath "github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

// Builder is the family-independent view of a shape builder.
type Builder interface {
	Config() Config
	Spent() bool
	Mesh() (*mesh.Mesh, error)
	Build(up mesh.Uploader) (mesh.Handle, error)
}

// builder holds the state shared by every family. B is the concrete
// builder type so the shared setters can return it for chaining.
type builder[B any] struct {
	self  B
	cfg   Config
	spent bool
}

func (b *builder[B]) init(self B, kind geometry.Kind) {
	b.self = self
	b.cfg = DefaultConfig(kind)
}

func (b *builder[B]) load(cfg Config) {
	b.cfg = cfg
}

// set applies fn unless the builder is spent.
func (b *builder[B]) set(fn func(*Config)) B {
	if !b.spent {
		fn(&b.cfg)
	}
	return b.self
}

// Scale sets the per-axis scale factors. Zero components are rejected at
// build time; negative components mirror the shape and its winding is
// corrected so faces stay outward.
func (b *builder[B]) Scale(x, y, z float32) B {
	return b.set(func(c *Config) { c.Scale = gmath.V3(x, y, z) })
}

// ScaleUniform sets the same scale factor on all axes.
func (b *builder[B]) ScaleUniform(s float32) B {
	return b.Scale(s, s, s)
}

// Translate sets the position of the shape's centroid.
func (b *builder[B]) Translate(x, y, z float32) B {
	return b.set(func(c *Config) { c.Translation = gmath.V3(x, y, z) })
}

// Orient sets the orientation. The quaternion is normalized when the mesh
// is built; a zero quaternion is a configuration error.
func (b *builder[B]) Orient(q gmath.Quat) B {
	return b.set(func(c *Config) { c.Orientation = q })
}

// Rotate sets the orientation to a rotation of radians about axis. It
// replaces any earlier orientation.
func (b *builder[B]) Rotate(axis gmath.Vec3, radians float32) B {
	if axis.Length() == 0 {
		return b.Orient(gmath.Quat{})
	}
	return b.Orient(gmath.QuatFromAxisAngle(axis, radians))
}

// Config returns the current configuration. It stays readable after the
// builder is spent.
func (b *builder[B]) Config() Config {
	return b.cfg
}

// Spent reports whether Mesh or Build has been called.
func (b *builder[B]) Spent() bool {
	return b.spent
}

// Mesh validates the configuration, generates the shape and applies the
// transform. It spends the builder whether or not it succeeds.
func (b *builder[B]) Mesh() (*mesh.Mesh, error) {
	if b.spent {
		return nil, ErrSpent
	}
	b.spent = true

	m, flipped, err := b.cfg.build()
	if err != nil {
		log().Debug("shape build failed", zap.Stringer("shape", b.cfg.Kind), zap.Error(err))
		return nil, err
	}
	if flipped {
		log().Warn("winding reversed for mirrored transform",
			zap.Stringer("shape", b.cfg.Kind),
			zap.Float32s("scale", []float32{b.cfg.Scale.X, b.cfg.Scale.Y, b.cfg.Scale.Z}),
		)
	}
	log().Debug("shape built",
		zap.Stringer("shape", b.cfg.Kind),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
		zap.Bool("mirrored", flipped),
	)
	return m, nil
}

// Build produces the mesh and hands it to up. Adapter failures come back
// as *UploadError; nothing is retried.
func (b *builder[B]) Build(up mesh.Uploader) (mesh.Handle, error) {
	m, err := b.Mesh()
	if err != nil {
		return nil, err
	}
	return Upload(b.cfg.Kind, m, up)
}

// Upload hands a built mesh of kind to up, reporting every failure as
// *UploadError.
func Upload(kind geometry.Kind, m *mesh.Mesh, up mesh.Uploader) (mesh.Handle, error) {
	if up == nil {
		return nil, &UploadError{Shape: kind, Err: errNoUploader}
	}
	h, err := up.Upload(m.AsRenderable())
	if err != nil {
		log().Warn("mesh upload failed", zap.Stringer("shape", kind), zap.Error(err))
		return nil, &UploadError{Shape: kind, Err: err}
	}
	if h == nil {
		return nil, &UploadError{Shape: kind, Err: errNoHandle}
	}
	return h, nil
}
