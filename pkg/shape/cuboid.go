package shape

import "github.com/Faultbox/glprim/pkg/geometry"

// CuboidBuilder builds a box, unit-sized before scaling: 24 vertices,
// 36 indices, flat per-face normals.
type CuboidBuilder struct {
	builder[*CuboidBuilder]
}

// NewCuboid returns a cuboid builder with default settings.
func NewCuboid() *CuboidBuilder {
	b := &CuboidBuilder{}
	b.init(b, geometry.Cuboid)
	return b
}

// Clone returns an unspent builder with the same configuration.
func (b *CuboidBuilder) Clone() *CuboidBuilder {
	c := NewCuboid()
	c.cfg = b.cfg
	return c
}

// QuadBuilder builds a unit square in the XY plane facing +Z.
type QuadBuilder struct {
	builder[*QuadBuilder]
}

// NewQuad returns a quad builder with default settings.
func NewQuad() *QuadBuilder {
	b := &QuadBuilder{}
	b.init(b, geometry.Quad)
	return b
}

// Clone returns an unspent builder with the same configuration.
func (b *QuadBuilder) Clone() *QuadBuilder {
	c := NewQuad()
	c.cfg = b.cfg
	return c
}

// AxesBuilder builds the three unit axis lines as a line list.
type AxesBuilder struct {
	builder[*AxesBuilder]
}

// NewAxes returns an axes builder with default settings.
func NewAxes() *AxesBuilder {
	b := &AxesBuilder{}
	b.init(b, geometry.Axes)
	return b
}

// Clone returns an unspent builder with the same configuration.
func (b *AxesBuilder) Clone() *AxesBuilder {
	c := NewAxes()
	c.cfg = b.cfg
	return c
}
