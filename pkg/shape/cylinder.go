package shape

import "github.com/Faultbox/glprim/pkg/geometry"

// CylinderBuilder builds a unit-height, unit-diameter cylinder along Z.
type CylinderBuilder struct {
	builder[*CylinderBuilder]
}

// NewCylinder returns a capped cylinder builder with the default resolution.
func NewCylinder() *CylinderBuilder {
	b := &CylinderBuilder{}
	b.init(b, geometry.Cylinder)
	return b
}

// Radial sets the number of segments around the axis (at least 3).
func (b *CylinderBuilder) Radial(n int) *CylinderBuilder {
	return b.set(func(c *Config) { c.Params.Radial = n })
}

// Caps toggles the flat end disks.
func (b *CylinderBuilder) Caps(on bool) *CylinderBuilder {
	return b.set(func(c *Config) { c.Params.Caps = on })
}

// Clone returns an unspent builder with the same configuration.
func (b *CylinderBuilder) Clone() *CylinderBuilder {
	c := NewCylinder()
	c.cfg = b.cfg
	return c
}

// ConeBuilder builds a unit-height cone along Z with its apex at +Z.
type ConeBuilder struct {
	builder[*ConeBuilder]
}

// NewCone returns a cone builder with a base cap and the default resolution.
func NewCone() *ConeBuilder {
	b := &ConeBuilder{}
	b.init(b, geometry.Cone)
	return b
}

// Radial sets the number of segments around the axis (at least 3).
func (b *ConeBuilder) Radial(n int) *ConeBuilder {
	return b.set(func(c *Config) { c.Params.Radial = n })
}

// Caps toggles the base disk.
func (b *ConeBuilder) Caps(on bool) *ConeBuilder {
	return b.set(func(c *Config) { c.Params.Caps = on })
}

// Clone returns an unspent builder with the same configuration.
func (b *ConeBuilder) Clone() *ConeBuilder {
	c := NewCone()
	c.cfg = b.cfg
	return c
}
