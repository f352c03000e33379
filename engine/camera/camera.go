package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rad/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position common.Vec3
	target   common.Vec3
	up       common.Vec3
	near     float32
	far      float32

	viewportSize   common.Vec2
	viewportOffset common.Vec2
	screenSize     common.Vec2
	screenOffset   common.Vec2

	viewMatrix           common.Mat4
	projectionMatrix     common.Mat4
	viewProjectionMatrix common.Mat4

	controller Controller
}

// Camera holds a view (position, target, up) and a projection, and combines them into
// the view-projection matrix that renderers upload as the "u_mvp" uniform.
// Matrices are column-major and use right-handed, OpenGL clip-space conventions.
type Camera interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - common.Vec3: world-space eye position
	Position() common.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - common.Vec3: world-space target
	Target() common.Vec3

	// Up returns the up vector.
	//
	// Returns:
	//   - common.Vec3: the up vector
	Up() common.Vec3

	// Near returns the near plane distance of the last perspective or orthographic projection.
	Near() float32

	// Far returns the far plane distance of the last perspective or orthographic projection.
	Far() float32

	// SetPosition sets the eye position. Takes effect on the next Update.
	//
	// Parameters:
	//   - position: world-space eye position
	SetPosition(position common.Vec3)

	// SetTarget sets the look-at point. Takes effect on the next Update.
	//
	// Parameters:
	//   - target: world-space target
	SetTarget(target common.Vec3)

	// SetUp sets the up vector. Takes effect on the next Update.
	//
	// Parameters:
	//   - up: the up vector
	SetUp(up common.Vec3)

	// SetViewport records the region of the screen the camera renders into.
	//
	// Parameters:
	//   - viewportSize: size of the viewport in pixels
	//   - viewportOffset: offset of the viewport in pixels
	//   - screenSize: size of the screen in pixels
	//   - screenOffset: offset of the screen in pixels
	SetViewport(viewportSize, viewportOffset, screenSize, screenOffset common.Vec2)

	// Viewport returns the values recorded by SetViewport.
	//
	// Returns:
	//   - viewportSize, viewportOffset, screenSize, screenOffset: the recorded region
	Viewport() (viewportSize, viewportOffset, screenSize, screenOffset common.Vec2)

	// SetPerspective replaces the projection with a right-handed perspective projection.
	//
	// Parameters:
	//   - fovY: vertical field of view in radians
	//   - aspect: width divided by height
	//   - near: near plane distance
	//   - far: far plane distance
	SetPerspective(fovY, aspect, near, far float32)

	// SetOrtho replaces the projection with a right-handed orthographic projection.
	//
	// Parameters:
	//   - left, right, bottom, top: view volume bounds
	//   - near, far: depth bounds
	SetOrtho(left, right, bottom, top, near, far float32)

	// Update recomputes the view and view-projection matrices. When a Controller is attached
	// its position and target replace the camera's own.
	Update()

	// ViewMatrix returns the view matrix computed by the last Update.
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns the current projection matrix.
	ProjectionMatrix() common.Mat4

	// ViewProjection returns projection * view as of the last Update.
	ViewProjection() common.Mat4

	// Controller returns the attached Controller, or nil.
	Controller() Controller

	// SetController attaches a Controller that drives position and target.
	//
	// Parameters:
	//   - ctrl: the controller, or nil to detach
	SetController(ctrl Controller)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at the origin looking down +Z with +Y up, identity matrices,
// and near/far of 0.01 and 1.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		target:               common.Vec3{0, 0, 1},
		up:                   common.Vec3{0, 1, 0},
		near:                 0.01,
		far:                  1.0,
		viewMatrix:           common.IdentityMat4(),
		projectionMatrix:     common.IdentityMat4(),
		viewProjectionMatrix: common.IdentityMat4(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Target() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetPosition(position common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *cameraImpl) SetTarget(target common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *cameraImpl) SetUp(up common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) SetViewport(viewportSize, viewportOffset, screenSize, screenOffset common.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewportSize = viewportSize
	c.viewportOffset = viewportOffset
	c.screenSize = screenSize
	c.screenOffset = screenOffset
}

func (c *cameraImpl) Viewport() (viewportSize, viewportOffset, screenSize, screenOffset common.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewportSize, c.viewportOffset, c.screenSize, c.screenOffset
}

func (c *cameraImpl) SetPerspective(fovY, aspect, near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near, c.far = near, far
	common.PerspectiveRHGL(c.projectionMatrix[:], fovY, aspect, near, far)
}

func (c *cameraImpl) SetOrtho(left, right, bottom, top, near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near, c.far = near, far
	common.OrthographicRHGL(c.projectionMatrix[:], left, right, bottom, top, near, far)
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller != nil {
		c.position = c.controller.Position()
		c.target = c.controller.Target()
	}
	common.LookAtRH(c.viewMatrix[:], c.position, c.target, c.up)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjection() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl Controller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}
