package mesh

import "fmt"

// Mesh is a finished renderable shape. It is immutable once built:
// accessors hand out copies so callers cannot change the buffers.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	topology Topology
	bounds   Bounds
}

// New packages vertices and indices into a Mesh. It checks that every
// index addresses a vertex and that the index count is a whole number
// of primitives. The slices are copied.
func New(vertices []Vertex, indices []uint32, topology Topology) (*Mesh, error) {
	if topology != Triangles && topology != Lines {
		return nil, fmt.Errorf("mesh: unknown topology %d", topology)
	}
	if len(indices)%topology.Stride() != 0 {
		return nil, fmt.Errorf("mesh: %d indices is not a multiple of %d for %s",
			len(indices), topology.Stride(), topology)
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)",
				idx, i, len(vertices))
		}
	}

	m := &Mesh{
		vertices: append([]Vertex(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		topology: topology,
	}
	m.bounds = computeBounds(m.vertices)
	return m, nil
}

// Vertices returns a copy of the vertex sequence.
func (m *Mesh) Vertices() []Vertex {
	return append([]Vertex(nil), m.vertices...)
}

// Indices returns a copy of the index sequence.
func (m *Mesh) Indices() []uint32 {
	return append([]uint32(nil), m.indices...)
}

// Topology returns the primitive grouping of the indices.
func (m *Mesh) Topology() Topology {
	return m.topology
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

// PrimitiveCount returns the number of triangles or lines.
func (m *Mesh) PrimitiveCount() int {
	return len(m.indices) / m.topology.Stride()
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
func (m *Mesh) Bounds() Bounds {
	return m.bounds
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}
