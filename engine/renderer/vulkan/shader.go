package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// ValidateSPIRV checks that code can be reinterpreted as a stream of 32-bit words.
func ValidateSPIRV(code []byte) error {
	if len(code) == 0 {
		return fmt.Errorf("empty bytecode: %w", ErrInvalidSPIRV)
	}
	if len(code)%4 != 0 {
		return fmt.Errorf("length %d is not a multiple of 4: %w", len(code), ErrInvalidSPIRV)
	}
	return nil
}

// ShaderModule is compiled SPIR-V bytecode for one pipeline stage.
type ShaderModule struct {
	device *Device
	Handle vk.ShaderModule
	Stage  vk.ShaderStageFlagBits
}

// NewShaderModule creates a shader module from SPIR-V bytecode.
//
// Parameters:
//   - device: the logical device
//   - stage: the pipeline stage the module is for
//   - code: SPIR-V bytecode
//
// Returns:
//   - *ShaderModule: the module
//   - error: ErrInvalidSPIRV for malformed bytecode, or a creation error
func NewShaderModule(device *Device, stage vk.ShaderStageFlagBits, code []byte) (*ShaderModule, error) {
	if err := ValidateSPIRV(code); err != nil {
		return nil, err
	}
	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code)),
		PCode:    sliceUint32(code),
	}
	var handle vk.ShaderModule
	if res := vk.CreateShaderModule(device.Handle, &createInfo, nil, &handle); res != vk.Success {
		return nil, resultError("vkCreateShaderModule", res)
	}
	return &ShaderModule{device: device.Retain(), Handle: handle, Stage: stage}, nil
}

// Destroy destroys the module and releases the device.
func (s *ShaderModule) Destroy() {
	if s.device == nil {
		return
	}
	vk.DestroyShaderModule(s.device.Handle, s.Handle, nil)
	s.device.Release()
	s.device = nil
}
