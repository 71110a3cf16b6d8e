// Package renderer draws uploaded shape meshes with OpenGL 4.1.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glprim/internal/engine/shader"
	"github.com/Faultbox/glprim/internal/logger"
	"github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state and the two shape programs.
type Renderer struct {
	config Config
	log    *zap.Logger

	surface *shader.Program
	lines   *shader.Program

	lightDir  math.Vec3
	wireframe bool
	showUV    bool
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		lightDir: math.V3(-0.4, -0.6, -1).Normalize(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Shapes wind counter-clockwise when seen from outside.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.surface, err = shader.NewProgram(surfaceVertexShader, surfaceFragmentShader,
		"uViewProj", "uColor", "uLightDir", "uShowUV")
	if err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}
	r.lines, err = shader.NewProgram(lineVertexShader, lineFragmentShader, "uViewProj")
	if err != nil {
		r.surface.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.surface.Delete()
	r.lines.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport width over height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// ToggleWireframe switches surface meshes between filled and line mode.
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	return r.wireframe
}

// ToggleUV switches surface colouring to the texture coordinates.
func (r *Renderer) ToggleUV() bool {
	r.showUV = !r.showUV
	return r.showUV
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw draws h with the program matching topology.
func (r *Renderer) Draw(h mesh.Handle, topology mesh.Topology, color [3]float32, viewProj math.Mat4) {
	if topology == mesh.Lines {
		r.lines.Use()
		gl.UniformMatrix4fv(r.lines.Uniform("uViewProj"), 1, false, viewProj.Ptr())
		h.Draw()
		return
	}

	r.surface.Use()
	gl.UniformMatrix4fv(r.surface.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(r.surface.Uniform("uColor"), color[0], color[1], color[2])
	gl.Uniform3f(r.surface.Uniform("uLightDir"), r.lightDir.X, r.lightDir.Y, r.lightDir.Z)
	showUV := int32(0)
	if r.showUV {
		showUV = 1
	}
	gl.Uniform1i(r.surface.Uniform("uShowUV"), showUV)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Disable(gl.CULL_FACE)
	}
	h.Draw()
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Enable(gl.CULL_FACE)
	}
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
