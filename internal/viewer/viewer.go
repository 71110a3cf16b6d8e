// Package viewer runs the interactive shape viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glprim/internal/config"
	"github.com/Faultbox/glprim/internal/engine/camera"
	"github.com/Faultbox/glprim/internal/engine/debug"
	"github.com/Faultbox/glprim/internal/engine/input"
	"github.com/Faultbox/glprim/internal/engine/renderer"
	"github.com/Faultbox/glprim/internal/engine/scene"
	"github.com/Faultbox/glprim/internal/engine/window"
	"github.com/Faultbox/glprim/internal/logger"
)

// Viewer owns the window, the GL state and the loaded scene.
type Viewer struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *scene.Scene
	shots    *debug.ScreenshotCapture
}

// New opens the window and uploads the configured scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
		camera: camera.NewOrbitCamera(),
		input:  input.New(),
		shots:  debug.NewScreenshotCapture("screenshots", "glprim"),
	}
	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("shapes", len(cfg.Scene)),
	)

	// Window first: the renderer needs its GL context.
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.Load(cfg, renderer.NewUploader())
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	v.camera.FitToBounds(v.scene.Bounds())

	return v, nil
}

// Run drives the frame loop until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			v.window.SetTitle(fmt.Sprintf("%s - %.0f fps", v.config.Window.Title, fps))
			v.log.Debug("fps", zap.Float64("fps", fps))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventDrag:
			v.camera.HandleDrag(e.DX, e.DY)
		case input.EventZoom:
			v.camera.HandleZoom(e.DY)
		case input.EventKeyDown:
			v.handleKey(e.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_W:
		v.log.Info("wireframe", zap.Bool("on", v.renderer.ToggleWireframe()))
	case sdl.SCANCODE_U:
		v.log.Info("texcoord view", zap.Bool("on", v.renderer.ToggleUV()))
	case sdl.SCANCODE_F:
		v.camera.FitToBounds(v.scene.Bounds())
	case sdl.SCANCODE_F12:
		v.render()
		pixels, w, h := v.renderer.ReadPixels()
		path, err := v.shots.CaptureFromPixels(pixels, w, h)
		if err != nil {
			v.log.Warn("screenshot failed", zap.Error(err))
			return
		}
		v.log.Info("screenshot saved", zap.String("path", path))
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()
	viewProj := v.camera.ViewProjection(v.renderer.Aspect())
	for _, it := range v.scene.Items {
		v.renderer.Draw(it.Handle, it.Topology, it.Color, viewProj)
	}
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Release()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
