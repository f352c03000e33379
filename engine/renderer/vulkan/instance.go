package vulkan

import (
	"log"

	vk "github.com/goki/vulkan"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

// Instance is a Vulkan instance.
type Instance struct {
	Handle     vk.Instance
	Validation bool
}

// InstanceConfig selects what a new Instance enables.
type InstanceConfig struct {
	AppName    string
	Extensions []string
	Validation bool
}

// NewInstance creates a Vulkan 1.0 instance. The validation layer is enabled only when requested
// and installed.
//
// Parameters:
//   - cfg: the application name, required instance extensions and validation request
//
// Returns:
//   - *Instance: the instance
//   - error: error if instance creation fails
func NewInstance(cfg InstanceConfig) (*Instance, error) {
	var layers []string
	validation := cfg.Validation && layerAvailable(validationLayer)
	if cfg.Validation && !validation {
		log.Printf("[Vulkan] %s requested but not installed", validationLayer)
	}
	if validation {
		layers = append(layers, validationLayer)
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(cfg.AppName),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        safeString("oxy-rad"),
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		ApiVersion:         vk.MakeVersion(1, 0, 0),
	}
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&createInfo, nil, &instance); res != vk.Success {
		return nil, resultError("vkCreateInstance", res)
	}
	vk.InitInstance(instance)
	return &Instance{Handle: instance, Validation: validation}, nil
}

func layerAvailable(name string) bool {
	var count uint32
	if res := vk.EnumerateInstanceLayerProperties(&count, nil); res != vk.Success || count == 0 {
		return false
	}
	props := make([]vk.LayerProperties, count)
	vk.EnumerateInstanceLayerProperties(&count, props)
	for _, p := range props {
		p.Deref()
		if vk.ToString(p.LayerName[:]) == name {
			return true
		}
	}
	return false
}

// Destroy destroys the instance.
func (i *Instance) Destroy() {
	if i.Handle != nil {
		vk.DestroyInstance(i.Handle, nil)
		i.Handle = nil
	}
}

// Surface is a presentation surface created for a window.
type Surface struct {
	instance *Instance
	Handle   vk.Surface
}

// NewSurface wraps a surface created by the windowing library.
//
// Parameters:
//   - instance: the instance the surface was created with
//   - ptr: pointer to the VkSurfaceKHR handle
//
// Returns:
//   - *Surface: the surface
func NewSurface(instance *Instance, ptr uintptr) *Surface {
	return &Surface{instance: instance, Handle: vk.SurfaceFromPointer(ptr)}
}

// Destroy destroys the surface.
func (s *Surface) Destroy() {
	if s.Handle != vk.NullSurface {
		vk.DestroySurface(s.instance.Handle, s.Handle, nil)
		s.Handle = vk.NullSurface
	}
}
