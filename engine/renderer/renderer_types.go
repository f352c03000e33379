package renderer

import "fmt"

// RendererType identifies the graphics API backing a Renderer.
type RendererType int

const (
	OpenGL RendererType = iota
	OpenGLES
	DirectX
	Vulkan
	Metal
)

func (t RendererType) String() string {
	switch t {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGLES"
	case DirectX:
		return "DirectX12"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	}
	return fmt.Sprintf("RendererType(%d)", int(t))
}

// VersionKind distinguishes symbolic version bounds from concrete numbers.
type VersionKind uint8

const (
	VersionLowest VersionKind = iota
	VersionHighest
	VersionValue
)

// VersionNum is one component of a Version. It is either the lowest or highest
// value a backend supports, or a concrete number.
type VersionNum struct {
	Kind VersionKind
	N    uint32
}

// Lowest is the lowest value the backend supports for a version component.
func Lowest() VersionNum { return VersionNum{Kind: VersionLowest} }

// Highest is the highest value the backend supports for a version component.
func Highest() VersionNum { return VersionNum{Kind: VersionHighest} }

// Value is a concrete version component.
func Value(n uint32) VersionNum { return VersionNum{Kind: VersionValue, N: n} }

func (v VersionNum) String() string {
	switch v.Kind {
	case VersionLowest:
		return "lowest"
	case VersionHighest:
		return "highest"
	}
	return fmt.Sprintf("%d", v.N)
}

// Version is a requested API version, each component possibly symbolic.
type Version struct {
	Major VersionNum
	Minor VersionNum
	Patch VersionNum
}

func (v Version) String() string {
	return fmt.Sprintf("%s.%s.%s", v.Major, v.Minor, v.Patch)
}

// ShaderType is the pipeline stage a shader is compiled for.
type ShaderType int

const (
	ShaderVertex ShaderType = iota
	ShaderTesselationControl
	ShaderTesselationEvaluation
	ShaderGeometry
	ShaderFragment
	ShaderCompute
)

var shaderTypeNames = [...]string{"vert", "tesc", "tese", "geom", "frag", "comp"}

// Extension returns the conventional file extension of the stage, without the dot.
func (s ShaderType) Extension() string {
	if s >= 0 && int(s) < len(shaderTypeNames) {
		return shaderTypeNames[s]
	}
	return "unknown"
}

func (s ShaderType) String() string { return s.Extension() }

// ClearType is a bitmask selecting which buffers to clear.
type ClearType uint32

const (
	ClearNone    ClearType = 0
	ClearColor   ClearType = 1
	ClearDepth   ClearType = 2
	ClearStencil ClearType = 4
	ClearAll               = ClearColor | ClearDepth | ClearStencil
)

// Has reports whether every bit of flag is set.
func (c ClearType) Has(flag ClearType) bool { return c&flag == flag }

// DeviceType is the preferred class of GPU when a backend chooses between adapters.
type DeviceType int

const (
	DeviceDefault DeviceType = iota
	DeviceHighPerformance
	DeviceLowPower
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately. May tear.
	PresentModeUncapped
)
