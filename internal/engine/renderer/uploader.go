package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glprim/internal/logger"
	"github.com/Faultbox/glprim/pkg/mesh"
)

// ErrEmptyMesh is returned for a renderable with no vertices or indices.
var ErrEmptyMesh = errors.New("renderer: empty mesh")

// Uploader copies meshes into vertex array objects. It must be used on the
// thread that owns the GL context.
type Uploader struct {
	log *zap.Logger
}

// NewUploader returns an uploader for the current GL context.
func NewUploader() *Uploader {
	return &Uploader{log: logger.Named("upload")}
}

// MeshHandle owns the GL objects of one uploaded mesh.
type MeshHandle struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
}

// Upload implements mesh.Uploader.
func (u *Uploader) Upload(r mesh.Renderable) (mesh.Handle, error) {
	mode, err := checkRenderable(r)
	if err != nil {
		return nil, err
	}

	h := &MeshHandle{count: int32(len(r.Indices)), mode: mode}

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.Vertices)*r.Layout.Stride, unsafe.Pointer(&r.Vertices[0]), gl.STATIC_DRAW)

	for _, a := range r.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, int32(r.Layout.Stride), uintptr(a.Offset))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.GenBuffers(1, &h.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.Indices)*4, unsafe.Pointer(&r.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		h.Release()
		return nil, fmt.Errorf("renderer: upload: GL error 0x%04x", code)
	}

	u.log.Debug("mesh uploaded",
		zap.Uint32("vao", h.vao),
		zap.Int("vertices", len(r.Vertices)),
		zap.Int("indices", len(r.Indices)),
		zap.Stringer("topology", r.Topology),
	)
	return h, nil
}

// Draw issues one indexed draw call for the mesh.
func (h *MeshHandle) Draw() {
	if h.vao == 0 {
		return
	}
	gl.BindVertexArray(h.vao)
	gl.DrawElementsWithOffset(h.mode, h.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Release deletes the GL objects. It is safe to call more than once.
func (h *MeshHandle) Release() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
		h.vao = 0
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
		h.vbo = 0
	}
	if h.ebo != 0 {
		gl.DeleteBuffers(1, &h.ebo)
		h.ebo = 0
	}
}

// checkRenderable validates r against what the GL path can draw and
// returns the primitive mode.
func checkRenderable(r mesh.Renderable) (uint32, error) {
	if len(r.Vertices) == 0 || len(r.Indices) == 0 {
		return 0, ErrEmptyMesh
	}
	if r.Layout.Stride != int(unsafe.Sizeof(mesh.Vertex{})) {
		return 0, fmt.Errorf("renderer: stride %d does not match vertex size %d", r.Layout.Stride, unsafe.Sizeof(mesh.Vertex{}))
	}
	for _, a := range r.Layout.Attributes {
		if a.Offset+int(a.Components)*4 > r.Layout.Stride {
			return 0, fmt.Errorf("renderer: attribute %s overruns the vertex", a.Name)
		}
	}
	switch r.Topology {
	case mesh.Triangles:
		return gl.TRIANGLES, nil
	case mesh.Lines:
		return gl.LINES, nil
	}
	return 0, fmt.Errorf("renderer: unsupported topology %s", r.Topology)
}
