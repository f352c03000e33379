package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, common.Vec3{0, 0, 0}, c.Position())
	assert.Equal(t, common.Vec3{0, 0, 1}, c.Target())
	assert.Equal(t, common.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, float32(0.01), c.Near())
	assert.Equal(t, float32(1), c.Far())
	assert.Equal(t, common.IdentityMat4(), c.ViewProjection())
}

func TestUpdateCombinesProjectionAndView(t *testing.T) {
	c := NewCamera(
		WithPosition(common.Vec3{0, 0, 5}),
		WithTarget(common.Vec3{0, 0, 0}),
		WithPerspective(math32.Pi/2, 1, 0.1, 10),
	)
	c.Update()

	var want common.Mat4
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	common.Mul4(want[:], proj[:], view[:])
	assert.Equal(t, want, c.ViewProjection())

	// Eye at +5 looking at the origin: the origin sits 5 units down -Z in view space.
	assert.InDelta(t, -5, view[14], 1e-5)
}

func TestSetOrthoRecordsDepthRange(t *testing.T) {
	c := NewCamera()
	c.SetOrtho(-1, 1, -1, 1, 2, 8)
	assert.Equal(t, float32(2), c.Near())
	assert.Equal(t, float32(8), c.Far())
	assert.NotEqual(t, common.IdentityMat4(), c.ProjectionMatrix())
}

func TestSetViewport(t *testing.T) {
	c := NewCamera()
	c.SetViewport(common.Vec2{640, 480}, common.Vec2{10, 20}, common.Vec2{1280, 720}, common.Vec2{0, 0})
	vs, vo, ss, so := c.Viewport()
	assert.Equal(t, common.Vec2{640, 480}, vs)
	assert.Equal(t, common.Vec2{10, 20}, vo)
	assert.Equal(t, common.Vec2{1280, 720}, ss)
	assert.Equal(t, common.Vec2{0, 0}, so)
}

func TestControllerDrivesUpdate(t *testing.T) {
	ctrl := NewOrbitController(WithOrbitRadius(4))
	c := NewCamera(WithController(ctrl))
	c.Update()

	assert.InDelta(t, 4, c.Position()[2], 1e-5)
	assert.Equal(t, common.Vec3{}, c.Target())
}

func TestOrbitControllerClamps(t *testing.T) {
	ctrl := NewOrbitController(WithOrbitRadius(2), WithOrbitRadiusBounds(1, 3))

	ctrl.Zoom(10)
	assert.Equal(t, float32(1), ctrl.Radius())
	ctrl.Zoom(-10)
	assert.Equal(t, float32(3), ctrl.Radius())

	ctrl.Orbit(0, math32.Pi)
	assert.Less(t, ctrl.Position()[1], float32(3))
	assert.Greater(t, ctrl.Position()[1], float32(2.9))
}
