package vulkan

import (
	vk "github.com/goki/vulkan"
)

// PushConstantSize is the size of the vertex stage push constant block: one column-major mat4.
const PushConstantSize = 64

// Vertex layout: binding 0, four floats per vertex, vec2 position then vec2 texture coordinates.
const (
	VertexStride   = 16
	TexCoordOffset = 8
)

// Pipeline is a graphics pipeline and its layout.
type Pipeline struct {
	device *Device
	Handle vk.Pipeline
	Layout vk.PipelineLayout
}

// NewPipeline creates a triangle list pipeline for the render pass: back face culling with
// clockwise front faces, single sampled, no depth test, one opaque color attachment, and
// dynamic viewport and scissor.
//
// Parameters:
//   - device: the logical device
//   - renderPass: the render pass the pipeline draws in
//   - vert: the vertex shader module
//   - frag: the fragment shader module
//
// Returns:
//   - *Pipeline: the pipeline
//   - error: error if the layout or pipeline cannot be created
func NewPipeline(device *Device, renderPass *RenderPass, vert, frag *ShaderModule) (*Pipeline, error) {
	layoutInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		PushConstantRangeCount: 1,
		PPushConstantRanges: []vk.PushConstantRange{{
			StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
			Offset:     0,
			Size:       PushConstantSize,
		}},
	}
	var layout vk.PipelineLayout
	if res := vk.CreatePipelineLayout(device.Handle, &layoutInfo, nil, &layout); res != vk.Success {
		return nil, resultError("vkCreatePipelineLayout", res)
	}

	stages := []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: vert.Handle,
			PName:  safeString("main"),
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: frag.Handle,
			PName:  safeString("main"),
		},
	}

	attributes := []vk.VertexInputAttributeDescription{
		{Location: 0, Binding: 0, Format: vk.FormatR32g32Sfloat, Offset: 0},
		{Location: 1, Binding: 0, Format: vk.FormatR32g32Sfloat, Offset: TexCoordOffset},
	}
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                         vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount: 1,
		PVertexBindingDescriptions: []vk.VertexInputBindingDescription{{
			Binding:   0,
			Stride:    VertexStride,
			InputRate: vk.VertexInputRateVertex,
		}},
		VertexAttributeDescriptionCount: uint32(len(attributes)),
		PVertexAttributeDescriptions:    attributes,
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}
	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1,
	}
	multisampling := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
		MinSampleShading:     1,
	}
	colorBlending := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		AttachmentCount: 1,
		PAttachments: []vk.PipelineColorBlendAttachmentState{{
			BlendEnable:    vk.False,
			ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit | vk.ColorComponentGBit | vk.ColorComponentBBit | vk.ColorComponentABit),
		}},
	}
	dynamicStates := []vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor}
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    dynamicStates,
	}

	pipelineInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizer,
		PMultisampleState:   &multisampling,
		PColorBlendState:    &colorBlending,
		PDynamicState:       &dynamicState,
		Layout:              layout,
		RenderPass:          renderPass.Handle,
		Subpass:             0,
	}

	pipelines := make([]vk.Pipeline, 1)
	if res := vk.CreateGraphicsPipelines(device.Handle, vk.PipelineCache(vk.NullHandle), 1, []vk.GraphicsPipelineCreateInfo{pipelineInfo}, nil, pipelines); res != vk.Success {
		vk.DestroyPipelineLayout(device.Handle, layout, nil)
		return nil, resultError("vkCreateGraphicsPipelines", res)
	}
	return &Pipeline{device: device.Retain(), Handle: pipelines[0], Layout: layout}, nil
}

// Destroy destroys the pipeline and its layout and releases the device.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	vk.DestroyPipeline(p.device.Handle, p.Handle, nil)
	vk.DestroyPipelineLayout(p.device.Handle, p.Layout, nil)
	p.device.Release()
	p.device = nil
}
