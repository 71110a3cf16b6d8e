package geometry

import "github.com/Faultbox/glprim/pkg/mesh"

// axes emits one unit line per positive axis, X then Y then Z. Vertex
// pairs are not shared so a renderer can colour each line by vertex id.
func (d *Data) axes() {
	d.Topology = mesh.Lines
	ends := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, end := range ends {
		b := d.base()
		d.add([3]float32{}, [3]float32{}, [2]float32{})
		d.add(end, [3]float32{}, [2]float32{})
		d.Indices = append(d.Indices, b, b+1)
	}
}
