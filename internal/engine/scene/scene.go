// Package scene turns the configured shape list into uploaded meshes.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/glprim/internal/config"
	"github.com/Faultbox/glprim/internal/logger"
	"github.com/Faultbox/glprim/pkg/geometry"
	gmath "github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
	"github.com/Faultbox/glprim/pkg/shape"
)

// Palette holds the surface colours handed out in scene order.
var Palette = [][3]float32{
	{0.90, 0.55, 0.30},
	{0.35, 0.65, 0.90},
	{0.55, 0.85, 0.40},
	{0.85, 0.40, 0.65},
	{0.95, 0.85, 0.35},
	{0.60, 0.55, 0.90},
}

// Item is one shape of the scene.
type Item struct {
	Label    string
	Kind     geometry.Kind
	Topology mesh.Topology
	Bounds   mesh.Bounds
	Vertices int
	Indices  int
	Color    [3]float32
	Handle   mesh.Handle
}

// Scene is the set of shapes uploaded from a configuration.
type Scene struct {
	Items  []Item
	bounds mesh.Bounds
}

// ShapeConfig resolves an entry against the shared defaults.
func ShapeConfig(e config.ShapeEntry, defaults config.ShapesConfig) shape.Config {
	cfg := shape.DefaultConfig(e.Kind)
	cfg.Params = defaults.Params()
	if e.Longitude != 0 {
		cfg.Params.Longitude = e.Longitude
	}
	if e.Latitude != 0 {
		cfg.Params.Latitude = e.Latitude
	}
	if e.Radial != 0 {
		cfg.Params.Radial = e.Radial
	}
	if e.Caps != nil {
		cfg.Params.Caps = *e.Caps
	}

	switch len(e.Scale) {
	case 1:
		cfg.Scale = gmath.V3(e.Scale[0], e.Scale[0], e.Scale[0])
	case 3:
		cfg.Scale = gmath.V3(e.Scale[0], e.Scale[1], e.Scale[2])
	}
	if len(e.Translate) == 3 {
		cfg.Translation = gmath.V3(e.Translate[0], e.Translate[1], e.Translate[2])
	}
	if e.Rotate != nil {
		axis := gmath.Vec3FromArray(e.Rotate.Axis)
		if axis.Length() == 0 {
			cfg.Orientation = gmath.Quat{}
		} else {
			cfg.Orientation = gmath.QuatFromAxisAngle(axis, e.Rotate.Degrees*math32.Pi/180)
		}
	}
	return cfg
}

// BuildMesh resolves e and builds its mesh without uploading it.
func BuildMesh(e config.ShapeEntry, defaults config.ShapesConfig) (*mesh.Mesh, error) {
	b, err := shape.FromConfig(ShapeConfig(e, defaults))
	if err != nil {
		return nil, err
	}
	return b.Mesh()
}

// Load builds and uploads every scene entry of cfg in order. On failure
// the handles uploaded so far are released.
func Load(cfg *config.Config, up mesh.Uploader) (*Scene, error) {
	log := logger.Named("scene")
	s := &Scene{Items: make([]Item, 0, len(cfg.Scene))}

	for i, e := range cfg.Scene {
		m, err := BuildMesh(e, cfg.Shapes)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("scene[%d] %s: %w", i, e.Label(), err)
		}
		h, err := shape.Upload(e.Kind, m, up)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("scene[%d] %s: %w", i, e.Label(), err)
		}

		s.add(Item{
			Label:    e.Label(),
			Kind:     e.Kind,
			Topology: m.Topology(),
			Bounds:   m.Bounds(),
			Vertices: m.VertexCount(),
			Indices:  m.IndexCount(),
			Color:    Palette[i%len(Palette)],
			Handle:   h,
		})
	}

	log.Info("scene loaded", zap.Int("shapes", len(s.Items)), zap.Int("vertices", s.VertexCount()))
	return s, nil
}

func (s *Scene) add(it Item) {
	if len(s.Items) == 0 {
		s.bounds = it.Bounds
	} else {
		for a := 0; a < 3; a++ {
			s.bounds.Min[a] = min(s.bounds.Min[a], it.Bounds.Min[a])
			s.bounds.Max[a] = max(s.bounds.Max[a], it.Bounds.Max[a])
		}
	}
	s.Items = append(s.Items, it)
}

// Bounds returns the box enclosing every item.
func (s *Scene) Bounds() mesh.Bounds {
	return s.bounds
}

// VertexCount returns the total number of vertices in the scene.
func (s *Scene) VertexCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Vertices
	}
	return n
}

// Release frees every handle. The scene is empty afterwards.
func (s *Scene) Release() {
	for _, it := range s.Items {
		it.Handle.Release()
	}
	s.Items = s.Items[:0]
	s.bounds = mesh.Bounds{}
}
