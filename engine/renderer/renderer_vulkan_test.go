package renderer

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVulkanRenderer returns a renderer with no device. Only paths that make no Vulkan calls may be used.
func newTestVulkanRenderer() *vulkanRenderer {
	return &vulkanRenderer{clearState: newClearState(8, 4), lastImage: -1}
}

func TestVulkanShaderStage(t *testing.T) {
	cases := map[ShaderType]vk.ShaderStageFlagBits{
		ShaderVertex:                vk.ShaderStageVertexBit,
		ShaderTesselationControl:    vk.ShaderStageTessellationControlBit,
		ShaderTesselationEvaluation: vk.ShaderStageTessellationEvaluationBit,
		ShaderGeometry:              vk.ShaderStageGeometryBit,
		ShaderFragment:              vk.ShaderStageFragmentBit,
		ShaderCompute:               vk.ShaderStageComputeBit,
	}
	for shaderType, want := range cases {
		got, err := vkShaderStage(shaderType)
		require.NoError(t, err)
		assert.Equal(t, want, got, shaderType.String())
	}

	_, err := vkShaderStage(ShaderType(42))
	assert.ErrorIs(t, err, ErrError)
}

func TestVulkanClearStateWithoutFrame(t *testing.T) {
	r := newTestVulkanRenderer()
	assert.Equal(t, "Vulkan", r.Name())
	assert.Equal(t, Vulkan, r.Type())

	r.SetClearColor([4]float32{0.25, 0.5, 0.75, 1})
	r.SetClearDepth(0.5)
	r.SetClearStencil(3)
	r.SetViewport([2]int32{1, 2}, [2]int32{3, 4})
	r.Clear(ClearAll)

	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, r.ClearColor())
	assert.Equal(t, float32(0.5), r.ClearDepth())
	assert.Equal(t, int32(3), r.ClearStencil())
	assert.Equal(t, [2]int32{1, 2}, r.ViewportPos())
	assert.Equal(t, [2]int32{3, 4}, r.ViewportSize())
}

func TestVulkanEndFrameWithoutBeginAdvancesFrame(t *testing.T) {
	r := newTestVulkanRenderer()
	r.EndFrame()
	assert.Equal(t, 1, r.frameIndex)
	r.EndFrame()
	assert.Equal(t, 0, r.frameIndex)
}

func TestVulkanResizeMarksSwapchainStale(t *testing.T) {
	r := newTestVulkanRenderer()
	r.Resize(640, 480)
	assert.True(t, r.stale)
	assert.Equal(t, [2]int32{640, 480}, r.ViewportSize())
}

func TestVulkanReadRenderBufferBeforePresent(t *testing.T) {
	r := newTestVulkanRenderer()
	img := r.ReadRenderBuffer()
	assert.Zero(t, img.Width)
	assert.Empty(t, img.Pixels)
}

func TestVulkanHandles(t *testing.T) {
	r := newTestVulkanRenderer()

	vertices := r.GenBufferVertex(nil)
	geometry := r.GenGeometry(vertices)
	assert.Equal(t, Vulkan, geometry.Backend())

	program := &programVK{}
	u := program.GetUniform("u_mvp", uniform.NewData(uniform.IdentityMat4()))
	assert.Equal(t, "u_mvp", u.Name().String())
	assert.Equal(t, uniform.IdentityMat4(), uniform.Get[uniform.Mat4](u.Data()))
	assert.Equal(t, "u_color", r.GetUniform(program, "u_color").Name().String())

	texture := r.GenBufferTexture()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	r.LoadTexture(img, texture)
	assert.Equal(t, uint32(2), texture.(*textureVK).staging.Width)

	sampler := r.GenSampler(texture)
	sampler.SetName("u_color")
	assert.Equal(t, "u_color", sampler.Name())
	assert.Same(t, texture, sampler.Texture())

	mesh := r.GenMesh(geometry, nil)
	assert.Same(t, geometry, mesh.Geometry)
}

func TestVulkanRejectsOtherBackendHandles(t *testing.T) {
	r := newTestVulkanRenderer()
	gl, _, _ := newTestGLRenderer(false)
	vertices := gl.GenBufferVertex([]float32{0, 0, 0, 0})

	assert.PanicsWithError(t, "OpenGL handle passed to Vulkan: invalid cast", func() {
		r.GenGeometry(vertices)
	})
}

func TestVulkanPlanFrame(t *testing.T) {
	tests := []struct {
		name          string
		recording     bool
		width, height int
		usable        bool
		stale         bool
		extentMatches bool
		want          frameStep
	}{
		{"ready", false, 640, 480, true, false, true, frameAcquire},
		{"already recording", true, 640, 480, true, false, true, frameSkip},
		{"minimised", false, 0, 0, true, false, true, frameSkip},
		{"zero height skips before rebuild", false, 640, 0, false, true, false, frameSkip},
		{"no swapchain", false, 640, 480, false, false, false, frameRebuild},
		{"stale after resize", false, 640, 480, true, true, true, frameRebuild},
		{"extent mismatch", false, 800, 600, true, false, false, frameRebuild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planFrame(tt.recording, tt.width, tt.height, tt.usable, tt.stale, tt.extentMatches)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVulkanClassifyAcquire(t *testing.T) {
	assert.Equal(t, acquireRecord, classifyAcquire(vk.Success))
	assert.Equal(t, acquireRecordStale, classifyAcquire(vk.Suboptimal))
	assert.Equal(t, acquireRebuild, classifyAcquire(vk.ErrorOutOfDate))
	assert.Equal(t, acquireDrop, classifyAcquire(vk.ErrorDeviceLost))
	assert.Equal(t, acquireDrop, classifyAcquire(vk.Timeout))
}

func TestVulkanPresentNeedsRebuild(t *testing.T) {
	assert.False(t, presentNeedsRebuild(vk.Success, false, true))
	assert.True(t, presentNeedsRebuild(vk.ErrorOutOfDate, false, true))
	assert.True(t, presentNeedsRebuild(vk.Suboptimal, false, true))
	assert.True(t, presentNeedsRebuild(vk.Success, true, true))
	assert.True(t, presentNeedsRebuild(vk.Success, false, false))
	assert.False(t, presentNeedsRebuild(vk.ErrorDeviceLost, false, true))
}

// fakeFrameSlot records the sync operations of one frame slot and tracks whether its fence will
// eventually signal.
type fakeFrameSlot struct {
	submit      vk.Result
	submitEmpty vk.Result
	recreateErr error

	calls       []string
	fenceSignal bool
}

func (s *fakeFrameSlot) ResetFence() {
	s.calls = append(s.calls, "reset")
	s.fenceSignal = false
}

func (s *fakeFrameSlot) Submit() vk.Result {
	s.calls = append(s.calls, "submit")
	s.fenceSignal = s.submit == vk.Success
	return s.submit
}

func (s *fakeFrameSlot) SubmitEmpty() vk.Result {
	s.calls = append(s.calls, "submit-empty")
	s.fenceSignal = s.submitEmpty == vk.Success
	return s.submitEmpty
}

func (s *fakeFrameSlot) Recreate() error {
	s.calls = append(s.calls, "recreate")
	if s.recreateErr == nil {
		s.fenceSignal = true
	}
	return s.recreateErr
}

func TestVulkanSubmitOrDrop(t *testing.T) {
	tests := []struct {
		name     string
		slot     *fakeFrameSlot
		recorded bool
		queued   bool
		calls    []string
	}{
		{
			name:     "submitted",
			slot:     &fakeFrameSlot{},
			recorded: true,
			queued:   true,
			calls:    []string{"reset", "submit"},
		},
		{
			name:     "recording failed",
			slot:     &fakeFrameSlot{},
			recorded: false,
			calls:    []string{"reset", "submit-empty"},
		},
		{
			name:     "submit failed",
			slot:     &fakeFrameSlot{submit: vk.ErrorOutOfDeviceMemory},
			recorded: true,
			calls:    []string{"reset", "submit", "reset", "submit-empty"},
		},
		{
			name:     "empty submit failed",
			slot:     &fakeFrameSlot{submit: vk.ErrorDeviceLost, submitEmpty: vk.ErrorDeviceLost},
			recorded: true,
			calls:    []string{"reset", "submit", "reset", "submit-empty", "recreate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.queued, submitOrDrop(tt.slot, tt.recorded))
			assert.Equal(t, tt.calls, tt.slot.calls)
			assert.True(t, tt.slot.fenceSignal, "fence left without a pending signal")
		})
	}
}

func TestVulkanSubmitOrDropRecreateFailure(t *testing.T) {
	slot := &fakeFrameSlot{submitEmpty: vk.ErrorDeviceLost, recreateErr: errors.New("device lost")}

	assert.False(t, submitOrDrop(slot, false))
	assert.Equal(t, []string{"reset", "submit-empty", "recreate"}, slot.calls)
}
