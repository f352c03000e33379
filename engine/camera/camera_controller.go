package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/chewxy/math32"
)

// Controller supplies the eye position and target a Camera reads on Update.
type Controller interface {
	// Position returns the world-space eye position.
	Position() common.Vec3

	// Target returns the world-space look-at point.
	Target() common.Vec3
}

// OrbitController places the eye on a sphere around a target using
// spherical coordinates (radius, azimuth, elevation).
type OrbitController struct {
	mu *sync.Mutex

	target    common.Vec3
	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32
}

var _ Controller = &OrbitController{}

// OrbitControllerOption configures an OrbitController during NewOrbitController.
type OrbitControllerOption func(*OrbitController)

// WithOrbitTarget sets the pivot point.
func WithOrbitTarget(target common.Vec3) OrbitControllerOption {
	return func(o *OrbitController) { o.target = target }
}

// WithOrbitRadius sets the initial distance from the pivot.
func WithOrbitRadius(radius float32) OrbitControllerOption {
	return func(o *OrbitController) { o.radius = radius }
}

// WithOrbitRadiusBounds sets the allowed distance range.
func WithOrbitRadiusBounds(min, max float32) OrbitControllerOption {
	return func(o *OrbitController) { o.minRadius, o.maxRadius = min, max }
}

// NewOrbitController creates an OrbitController looking at the origin from +Z.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - *OrbitController: the controller
func NewOrbitController(options ...OrbitControllerOption) *OrbitController {
	o := &OrbitController{
		mu:           &sync.Mutex{},
		radius:       3,
		minRadius:    0.1,
		maxRadius:    100,
		minElevation: -math32.Pi/2 + 0.01,
		maxElevation: math32.Pi/2 - 0.01,
	}
	for _, opt := range options {
		opt(o)
	}
	o.radius = clamp(o.radius, o.minRadius, o.maxRadius)
	return o
}

func (o *OrbitController) Position() common.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	cosElev := math32.Cos(o.elevation)
	return common.Vec3{
		o.target[0] + o.radius*cosElev*math32.Sin(o.azimuth),
		o.target[1] + o.radius*math32.Sin(o.elevation),
		o.target[2] + o.radius*cosElev*math32.Cos(o.azimuth),
	}
}

func (o *OrbitController) Target() common.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

// Orbit rotates the eye around the target. Elevation is clamped short of the poles.
//
// Parameters:
//   - dAzimuth: horizontal rotation in radians
//   - dElevation: vertical rotation in radians
func (o *OrbitController) Orbit(dAzimuth, dElevation float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.azimuth += dAzimuth
	o.elevation = clamp(o.elevation+dElevation, o.minElevation, o.maxElevation)
}

// Zoom moves the eye toward the target by delta, within the radius bounds.
//
// Parameters:
//   - delta: positive to move closer
func (o *OrbitController) Zoom(delta float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.radius = clamp(o.radius-delta, o.minRadius, o.maxRadius)
}

// Radius returns the current distance from the target.
func (o *OrbitController) Radius() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.radius
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
