package mesh

// Attribute describes one vertex attribute inside the interleaved buffer.
type Attribute struct {
	Name       string
	Location   uint32
	Components int32
	Offset     int
}

// Layout is the ordered attribute list a renderer binds for a mesh.
type Layout struct {
	Stride     int
	Attributes []Attribute
}

var (
	attrPosition = Attribute{Name: "position", Location: 0, Components: 3, Offset: 0}
	attrNormal   = Attribute{Name: "normal", Location: 1, Components: 3, Offset: 12}
	attrTexCoord = Attribute{Name: "texcoord", Location: 2, Components: 2, Offset: 24}
)

// Layout returns the attributes the mesh carries. Line meshes only carry
// positions; their colour comes from the renderer.
func (m *Mesh) Layout() Layout {
	if m.topology == Lines {
		return Layout{Stride: VertexSize, Attributes: []Attribute{attrPosition}}
	}
	return Layout{Stride: VertexSize, Attributes: []Attribute{attrPosition, attrNormal, attrTexCoord}}
}

// Renderable is everything a render adapter needs to upload a mesh.
type Renderable struct {
	Layout   Layout
	Vertices []Vertex
	Indices  []uint32
	Topology Topology
}

// AsRenderable returns the upload view of the mesh.
func (m *Mesh) AsRenderable() Renderable {
	return Renderable{
		Layout:   m.Layout(),
		Vertices: m.Vertices(),
		Indices:  m.Indices(),
		Topology: m.topology,
	}
}

// Handle is a mesh resident on the GPU.
type Handle interface {
	Draw()
	Release()
}

// Uploader moves a Renderable into GPU storage. Implementations own any
// device synchronization.
type Uploader interface {
	Upload(r Renderable) (Handle, error)
}
