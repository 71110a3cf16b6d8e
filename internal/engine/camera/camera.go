// Package camera provides the orbit camera used by the shape viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

// OrbitCamera orbits a target point in a Z-up world.
type OrbitCamera struct {
	Target math.Vec3

	Distance float32
	// Pitch is the elevation above the XY plane in radians.
	Pitch float32
	// Yaw is the heading around +Z in radians, zero looking from +X.
	Yaw float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FovY      float32
	NearPlane float32
	FarPlane  float32
}

// NewOrbitCamera creates an orbit camera framing the unit shapes at the
// origin.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        4,
		Pitch:           0.5,
		Yaw:             0.8,
		MinDistance:     0.5,
		MaxDistance:     500,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            math32.Pi / 4,
		NearPlane:       0.05,
		FarPlane:        1000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return c.Target.Add(math.V3(cp*cy, cp*sy, sp).Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.V3(0, 0, 1))
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY, aspect, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection times view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta. Positive delta
// moves closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centres the camera on b and backs off until the bounding
// sphere fills the vertical field of view.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Target = math.Vec3FromArray(b.Center())
	size := math.Vec3FromArray(b.Size())
	radius := size.Length() / 2
	if radius == 0 {
		radius = 0.5
	}
	c.Distance = clamp(radius/math32.Sin(c.FovY/2), c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
