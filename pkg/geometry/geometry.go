package geometry

import (
	"fmt"

	"github.com/Faultbox/glprim/pkg/mesh"
)

// Data is the raw output of a kernel: unit shape, no transform applied.
type Data struct {
	Vertices []mesh.Vertex
	Indices  []uint32
	Topology mesh.Topology
}

// Generate samples the unit shape of the given family.
func Generate(kind Kind, p Params) (*Data, error) {
	if err := p.Validate(kind); err != nil {
		return nil, err
	}
	nv, ni, _ := Counts(kind, p)
	d := &Data{
		Vertices: make([]mesh.Vertex, 0, nv),
		Indices:  make([]uint32, 0, ni),
		Topology: mesh.Triangles,
	}

	switch kind {
	case Cuboid:
		d.cuboid()
	case Quad:
		d.quad()
	case Sphere:
		d.sphere(p.Longitude, p.Latitude)
	case Cylinder:
		d.frustum(p.Radial, 0.5, p.Caps)
	case Cone:
		d.frustum(p.Radial, 0, p.Caps)
	case Axes:
		d.axes()
	default:
		return nil, fmt.Errorf("unknown shape kind %d", kind)
	}
	return d, nil
}

// base returns the index the next appended vertex will get.
func (d *Data) base() uint32 {
	return uint32(len(d.Vertices))
}

func (d *Data) add(pos, normal [3]float32, uv [2]float32) {
	d.Vertices = append(d.Vertices, mesh.Vertex{Position: pos, Normal: normal, TexCoord: uv})
}

func (d *Data) tri(a, b, c uint32) {
	d.Indices = append(d.Indices, a, b, c)
}
