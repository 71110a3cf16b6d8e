// Package mesh holds finished, immutable vertex/index buffers and the
// contract used to hand them to a GPU render adapter.
package mesh

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout is interleaved as uploaded: 12 + 12 + 8 = 32 bytes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexSize is the byte stride of an interleaved Vertex.
const VertexSize = 32

// Topology says how the index sequence groups into primitives.
type Topology uint8

const (
	// Triangles groups indices in threes, counter-clockwise front faces.
	Triangles Topology = iota
	// Lines groups indices in pairs.
	Lines
)

// Stride returns the number of indices per primitive.
func (t Topology) Stride() int {
	if t == Lines {
		return 2
	}
	return 3
}

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the box extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}
