package shape

import "github.com/Faultbox/glprim/pkg/geometry"

// SphereBuilder builds a UV sphere of unit radius before scaling.
type SphereBuilder struct {
	builder[*SphereBuilder]
}

// NewSphere returns a sphere builder with the default resolution.
func NewSphere() *SphereBuilder {
	b := &SphereBuilder{}
	b.init(b, geometry.Sphere)
	return b
}

// Segments sets both resolutions: segments around the Z axis (at least 3)
// and bands from pole to pole (at least 2).
func (b *SphereBuilder) Segments(longitude, latitude int) *SphereBuilder {
	return b.Longitude(longitude).Latitude(latitude)
}

// Longitude sets the number of segments around the Z axis.
func (b *SphereBuilder) Longitude(n int) *SphereBuilder {
	return b.set(func(c *Config) { c.Params.Longitude = n })
}

// Latitude sets the number of bands from pole to pole.
func (b *SphereBuilder) Latitude(n int) *SphereBuilder {
	return b.set(func(c *Config) { c.Params.Latitude = n })
}

// Clone returns an unspent builder with the same configuration.
func (b *SphereBuilder) Clone() *SphereBuilder {
	c := NewSphere()
	c.cfg = b.cfg
	return c
}
