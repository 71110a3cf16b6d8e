package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/glprim/pkg/math"
	"github.com/Faultbox/glprim/pkg/mesh"
)

const eps = 1e-4

func TestPositionIsDistanceFromTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = math.V3(1, 2, 3)

	offset := c.Position().Sub(c.Target)
	assert.InDelta(t, c.Distance, offset.Length(), eps)
	assert.Greater(t, offset.Z, float32(0), "positive pitch looks down from above")
}

func TestZeroYawLooksFromPlusX(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw, c.Distance = 0, 0, 5

	p := c.Position()
	assert.InDelta(t, 5, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.InDelta(t, 0, p.Z, eps)
}

func TestViewMatrixMapsTargetOntoForwardAxis(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = math.V3(0.5, -1, 2)

	v := c.ViewMatrix().TransformPoint(c.Target)
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, 0, v.Y, eps)
	assert.InDelta(t, -c.Distance, v.Z, eps)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.Pitch)

	yaw := c.Yaw
	c.HandleDrag(100, 0)
	assert.InDelta(t, yaw-100*c.DragSensitivity, c.Yaw, eps)
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	start := c.Distance
	c.HandleZoom(1)
	assert.Less(t, c.Distance, start)

	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 500; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mesh.Bounds{Min: [3]float32{-1, -1, 0}, Max: [3]float32{3, 1, 2}})

	assert.Equal(t, math.V3(1, 0, 1), c.Target)

	// The bounding sphere must sit inside the view frustum.
	radius := math.V3(4, 2, 2).Length() / 2
	assert.Greater(t, c.Distance, radius)
}

func TestFitToEmptyBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mesh.Bounds{})
	assert.Equal(t, math.Vec3{}, c.Target)
	assert.GreaterOrEqual(t, c.Distance, c.MinDistance)
}

func TestProjectionFallsBackOnBadAspect(t *testing.T) {
	c := NewOrbitCamera()
	assert.Equal(t, c.ProjectionMatrix(1), c.ProjectionMatrix(0))
}
