package renderer

import (
	"errors"
	"fmt"
	"image"
	"log"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/uniform"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/vulkan"
	vk "github.com/goki/vulkan"
)

// vulkanWindow is the part of a window the Vulkan renderer needs.
type vulkanWindow interface {
	Width() int
	Height() int
	VulkanProcAddr() unsafe.Pointer
	VulkanInstanceExtensions() []string
	CreateVulkanSurface(instance any) (uintptr, error)
}

type vulkanRenderer struct {
	clearState

	window vulkanWindow
	vsync  bool

	instance   *vulkan.Instance
	surface    *vulkan.Surface
	device     *vulkan.Device
	format     vk.SurfaceFormat
	renderPass *vulkan.RenderPass
	swapchain  *vulkan.Swapchain
	pool       *vulkan.CommandPool
	frames     []*vulkan.Frame

	frameIndex  int
	imageIndex  uint32
	lastImage   int
	recording   bool
	stale       bool
	viewportSet bool
	bound       *programVK
	readback    *vulkan.Buffer
	destroyed   bool
}

var _ Renderer = &vulkanRenderer{}

func newVulkanRenderer(w vulkanWindow, cfg rendererConfig) (r *vulkanRenderer, err error) {
	if err := vulkan.Init(w.VulkanProcAddr()); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedAPI)
	}

	r = &vulkanRenderer{
		clearState: newClearState(w.Width(), w.Height()),
		window:     w,
		vsync:      cfg.presentMode == PresentModeVSync,
		lastImage:  -1,
	}
	defer func() {
		if err != nil {
			r.Destroy()
			r = nil
		}
	}()

	r.instance, err = vulkan.NewInstance(vulkan.InstanceConfig{
		AppName:    "oxy-rad",
		Extensions: w.VulkanInstanceExtensions(),
		Validation: cfg.validation,
	})
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedAPI)
	}

	surfacePtr, err := w.CreateVulkanSurface(r.instance.Handle)
	if err != nil {
		return nil, fmt.Errorf("create surface: %v: %w", err, ErrError)
	}
	r.surface = vulkan.NewSurface(r.instance, surfacePtr)

	physical, err := vulkan.SelectPhysicalDevice(r.instance, r.surface, cfg.deviceType == DeviceLowPower)
	if err != nil {
		if errors.Is(err, vulkan.ErrUnavailable) {
			return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedAPI)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	log.Printf("[Vulkan] using %s", physical.Name)

	if r.device, err = vulkan.NewDevice(physical); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}

	if r.format, err = vulkan.ChooseSurfaceFormat(vulkan.SurfaceFormats(physical, r.surface)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	if r.renderPass, err = vulkan.NewRenderPass(r.device, r.format.Format); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	if err = r.createSwapchain(); err != nil {
		return nil, err
	}
	if r.pool, err = vulkan.NewCommandPool(r.device); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	if r.frames, err = vulkan.NewFrames(r.device, r.pool); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrError)
	}
	return r, nil
}

func (r *vulkanRenderer) createSwapchain() error {
	sc, err := vulkan.NewSwapchain(r.device, vulkan.SwapchainConfig{
		Surface:    r.surface,
		RenderPass: r.renderPass,
		Format:     r.format,
		Width:      uint32(r.window.Width()),
		Height:     uint32(r.window.Height()),
		VSync:      r.vsync,
	})
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrError)
	}
	r.swapchain = sc
	r.lastImage = -1
	if !r.viewportSet {
		r.viewportPos = [2]int32{}
		r.viewportSize = [2]int32{int32(sc.Extent.Width), int32(sc.Extent.Height)}
	}
	return nil
}

// rebuildSwapchain waits for the device to go idle and replaces the swapchain at the current window size.
func (r *vulkanRenderer) rebuildSwapchain() {
	r.device.WaitIdle()
	if r.swapchain != nil {
		r.swapchain.Destroy()
		r.swapchain = nil
	}
	if err := r.createSwapchain(); err != nil {
		log.Printf("[Vulkan] rebuild swapchain: %v", err)
	}
	r.stale = false
}

func (r *vulkanRenderer) extentMatchesWindow() bool {
	e := r.swapchain.Extent
	return int(e.Width) == r.window.Width() && int(e.Height) == r.window.Height()
}

func (r *vulkanRenderer) Name() string { return "Vulkan" }

func (r *vulkanRenderer) Type() RendererType { return Vulkan }

// frameStep is what BeginFrame does before acquiring a swapchain image.
type frameStep int

const (
	frameAcquire frameStep = iota
	frameSkip
	frameRebuild
)

// planFrame picks the frame step. A zero-area window (minimised) skips without rebuilding, since a
// swapchain cannot have an empty extent.
func planFrame(recording bool, width, height int, usable, stale, extentMatches bool) frameStep {
	switch {
	case recording, width <= 0, height <= 0:
		return frameSkip
	case !usable, stale, !extentMatches:
		return frameRebuild
	}
	return frameAcquire
}

// acquireStep is how BeginFrame proceeds after vkAcquireNextImageKHR.
type acquireStep int

const (
	acquireRecord acquireStep = iota
	acquireRecordStale
	acquireRebuild
	acquireDrop
)

func classifyAcquire(res vk.Result) acquireStep {
	switch res {
	case vk.Success:
		return acquireRecord
	case vk.Suboptimal:
		return acquireRecordStale
	case vk.ErrorOutOfDate:
		return acquireRebuild
	}
	return acquireDrop
}

// presentNeedsRebuild reports whether the swapchain must be replaced after a present.
func presentNeedsRebuild(res vk.Result, stale, extentMatches bool) bool {
	return res == vk.ErrorOutOfDate || res == vk.Suboptimal || stale || !extentMatches
}

func (r *vulkanRenderer) BeginFrame(clear ClearType) {
	usable := r.swapchain != nil && !r.swapchain.Empty()
	switch planFrame(r.recording, r.window.Width(), r.window.Height(), usable, r.stale, usable && r.extentMatchesWindow()) {
	case frameSkip:
		return
	case frameRebuild:
		r.rebuildSwapchain()
		if r.swapchain == nil || r.swapchain.Empty() {
			return
		}
	}

	frame := r.frames[r.frameIndex]
	frame.InFlight.Wait()

	res := vk.AcquireNextImage(r.device.Handle, r.swapchain.Handle, vk.MaxUint64, frame.ImageAvailable.Handle, vk.NullFence, &r.imageIndex)
	switch classifyAcquire(res) {
	case acquireRecordStale:
		r.stale = true
	case acquireRebuild:
		r.rebuildSwapchain()
		return
	case acquireDrop:
		log.Printf("[Vulkan] vkAcquireNextImageKHR failed: %d", res)
		return
	}

	cmd := frame.Command
	vk.ResetCommandBuffer(cmd, 0)
	beginInfo := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	if res := vk.BeginCommandBuffer(cmd, &beginInfo); res != vk.Success {
		log.Printf("[Vulkan] vkBeginCommandBuffer failed: %d", res)
		r.dropFrame(frame)
		return
	}

	c := r.clearColor
	passInfo := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  r.renderPass.Handle,
		Framebuffer: r.swapchain.Framebuffers[r.imageIndex],
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: r.swapchain.Extent,
		},
		ClearValueCount: 1,
		PClearValues:    []vk.ClearValue{vk.NewClearValue([]float32{c[0], c[1], c[2], c[3]})},
	}
	vk.CmdBeginRenderPass(cmd, &passInfo, vk.SubpassContentsInline)
	r.recording = true
	r.bound = nil
	r.applyViewport()
}

func (r *vulkanRenderer) EndFrame() {
	if !r.recording {
		r.frameIndex = (r.frameIndex + 1) % vulkan.MaxFramesInFlight
		return
	}
	r.recording = false
	frame := r.frames[r.frameIndex]
	r.frameIndex = (r.frameIndex + 1) % vulkan.MaxFramesInFlight

	vk.CmdEndRenderPass(frame.Command)
	if res := vk.EndCommandBuffer(frame.Command); res != vk.Success {
		log.Printf("[Vulkan] vkEndCommandBuffer failed: %d", res)
		r.dropFrame(frame)
		return
	}

	submit := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{frame.ImageAvailable.Handle},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{frame.Command},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{frame.RenderFinished.Handle},
	}
	slot := &vkFrameSlot{device: r.device, frame: frame, submit: submit}
	if !submitOrDrop(slot, true) {
		r.stale = true
		return
	}

	res := vk.QueuePresent(r.device.Queue, &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{frame.RenderFinished.Handle},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{r.swapchain.Handle},
		PImageIndices:      []uint32{r.imageIndex},
	})
	r.lastImage = int(r.imageIndex)

	switch {
	case presentNeedsRebuild(res, r.stale, r.extentMatchesWindow()):
		r.rebuildSwapchain()
	case res != vk.Success:
		log.Printf("[Vulkan] vkQueuePresentKHR failed: %d", res)
	}
}

// dropFrame abandons a frame after its image was acquired. The acquired image goes back to the
// presentation engine with the next swapchain rebuild.
func (r *vulkanRenderer) dropFrame(frame *vulkan.Frame) {
	r.stale = true
	submitOrDrop(&vkFrameSlot{device: r.device, frame: frame}, false)
}

// frameSlot is the synchronisation surface of one frame in flight.
type frameSlot interface {
	// ResetFence unsignals the in-flight fence.
	ResetFence()
	// Submit queues the recorded commands, signaling the fence.
	Submit() vk.Result
	// SubmitEmpty queues a batch that only waits on image-available and signals the fence.
	SubmitEmpty() vk.Result
	// Recreate replaces the slot's semaphore and fence, the fence signaled.
	Recreate() error
}

// submitOrDrop queues a frame's work and guarantees the slot's fence will signal, so the next wait
// on this slot returns. The fence is reset only immediately before a submission that signals it. A
// frame that was not recorded, or whose submission fails, is replaced by an empty batch that
// consumes the image-available wait; if that fails too the sync objects are recreated.
// Reports whether the recorded work was queued.
func submitOrDrop(slot frameSlot, recorded bool) bool {
	if recorded {
		slot.ResetFence()
		res := slot.Submit()
		if res == vk.Success {
			return true
		}
		log.Printf("[Vulkan] vkQueueSubmit failed: %d", res)
	}

	slot.ResetFence()
	if res := slot.SubmitEmpty(); res == vk.Success {
		return false
	}
	if err := slot.Recreate(); err != nil {
		log.Printf("[Vulkan] reset frame sync: %v", err)
	}
	return false
}

type vkFrameSlot struct {
	device *vulkan.Device
	frame  *vulkan.Frame
	submit vk.SubmitInfo
}

func (s *vkFrameSlot) ResetFence() { s.frame.InFlight.Reset() }

func (s *vkFrameSlot) Submit() vk.Result {
	return vk.QueueSubmit(s.device.Queue, 1, []vk.SubmitInfo{s.submit}, s.frame.InFlight.Handle)
}

func (s *vkFrameSlot) SubmitEmpty() vk.Result {
	empty := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{s.frame.ImageAvailable.Handle},
		PWaitDstStageMask:  []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageAllCommandsBit)},
	}
	return vk.QueueSubmit(s.device.Queue, 1, []vk.SubmitInfo{empty}, s.frame.InFlight.Handle)
}

func (s *vkFrameSlot) Recreate() error {
	s.device.WaitIdle()
	return s.frame.ResetSync(s.device)
}

func (r *vulkanRenderer) command() vk.CommandBuffer {
	return r.frames[r.frameIndex].Command
}

func (r *vulkanRenderer) Clear(clear ClearType) {
	if !r.recording || !clear.Has(ClearColor) {
		return
	}
	c := r.clearColor
	vk.CmdClearAttachments(r.command(), 1, []vk.ClearAttachment{{
		AspectMask:      vk.ImageAspectFlags(vk.ImageAspectColorBit),
		ColorAttachment: 0,
		ClearValue:      vk.NewClearValue([]float32{c[0], c[1], c[2], c[3]}),
	}}, 1, []vk.ClearRect{{
		Rect:       vk.Rect2D{Extent: r.swapchain.Extent},
		LayerCount: 1,
	}})
}

func (r *vulkanRenderer) SetClearColor(color [4]float32) { r.clearColor = color }

func (r *vulkanRenderer) SetClearDepth(depth float32) { r.clearDepth = depth }

func (r *vulkanRenderer) SetClearStencil(stencil int32) { r.clearStencil = stencil }

func (r *vulkanRenderer) SetViewport(pos, size [2]int32) {
	r.viewportPos, r.viewportSize = pos, size
	r.viewportSet = true
	if r.recording {
		r.applyViewport()
	}
}

func (r *vulkanRenderer) applyViewport() {
	cmd := r.command()
	vk.CmdSetViewport(cmd, 0, 1, []vk.Viewport{{
		X:        float32(r.viewportPos[0]),
		Y:        float32(r.viewportPos[1]),
		Width:    float32(r.viewportSize[0]),
		Height:   float32(r.viewportSize[1]),
		MinDepth: 0,
		MaxDepth: 1,
	}})
	vk.CmdSetScissor(cmd, 0, 1, []vk.Rect2D{{
		Offset: vk.Offset2D{X: r.viewportPos[0], Y: r.viewportPos[1]},
		Extent: vk.Extent2D{Width: uint32(r.viewportSize[0]), Height: uint32(r.viewportSize[1])},
	}})
}

func vkShaderStage(shaderType ShaderType) (vk.ShaderStageFlagBits, error) {
	switch shaderType {
	case ShaderVertex:
		return vk.ShaderStageVertexBit, nil
	case ShaderTesselationControl:
		return vk.ShaderStageTessellationControlBit, nil
	case ShaderTesselationEvaluation:
		return vk.ShaderStageTessellationEvaluationBit, nil
	case ShaderGeometry:
		return vk.ShaderStageGeometryBit, nil
	case ShaderFragment:
		return vk.ShaderStageFragmentBit, nil
	case ShaderCompute:
		return vk.ShaderStageComputeBit, nil
	}
	return 0, fmt.Errorf("shader type %d: %w", int(shaderType), ErrError)
}

// LoadShader accepts SPIR-V bytecode only.
func (r *vulkanRenderer) LoadShader(shaderType ShaderType, source []byte) (Shader, error) {
	stage, err := vkShaderStage(shaderType)
	if err != nil {
		return nil, err
	}
	module, err := vulkan.NewShaderModule(r.device, stage, source)
	if err != nil {
		log.Printf("[Vulkan] %s shader: %v", shaderType, err)
		return nil, fmt.Errorf("%s shader: %v: %w", shaderType, err, ErrShaderCompile)
	}
	return &shaderVK{module: module}, nil
}

func (r *vulkanRenderer) LoadProgramVertFrag(vert, frag Shader) (Program, error) {
	vs := downcast[*shaderVK](vert, Vulkan)
	fs := downcast[*shaderVK](frag, Vulkan)

	pipeline, err := vulkan.NewPipeline(r.device, r.renderPass, vs.module, fs.module)
	if err != nil {
		log.Printf("[Vulkan] create pipeline: %v", err)
		return nil, fmt.Errorf("create pipeline: %v: %w", err, ErrShaderCompile)
	}
	return &programVK{pipeline: pipeline}, nil
}

func (r *vulkanRenderer) GetUniform(program Program, name string) UniformShader {
	downcast[*programVK](program, Vulkan)
	return &uniformShaderVK{name: uniform.NewName(name)}
}

func (r *vulkanRenderer) GenBufferVertex(vertices []float32) Vertices {
	data := common.SliceToBytes(vertices)
	if len(data) == 0 {
		return &verticesVK{}
	}
	buffer, err := vulkan.NewBuffer(r.device, len(data), vk.BufferUsageVertexBufferBit)
	if err != nil {
		panic(fmt.Errorf("vertex buffer: %v: %w", err, ErrError))
	}
	if err := buffer.Write(data); err != nil {
		buffer.Destroy()
		panic(fmt.Errorf("vertex buffer: %v: %w", err, ErrError))
	}
	return &verticesVK{buffer: buffer, num: uint32(len(vertices) / floatsPerVertex)}
}

func (r *vulkanRenderer) GenGeometry(vertices Vertices) Geometry {
	v := downcast[*verticesVK](vertices, Vulkan)
	return &geometryVK{vertices: v}
}

func (r *vulkanRenderer) GenMesh(geometry Geometry, material Material) *Mesh {
	downcast[*geometryVK](geometry, Vulkan)
	return &Mesh{Geometry: geometry, Material: material}
}

func (r *vulkanRenderer) GenBufferTexture() Texture { return &textureVK{} }

func (r *vulkanRenderer) GenSampler(texture Texture) Sampler {
	return &samplerVK{texture: downcast[*textureVK](texture, Vulkan)}
}

// LoadTexture keeps the decoded pixels with the texture. Sampled textures are not bound by this backend.
func (r *vulkanRenderer) LoadTexture(img image.Image, texture Texture) {
	t := downcast[*textureVK](texture, Vulkan)
	staging, err := common.NewTextureStagingData(img)
	if err != nil {
		log.Printf("[Vulkan] load texture: %v", err)
		return
	}
	t.staging = staging
}

func (r *vulkanRenderer) UseProgram(program Program) {
	p := downcast[*programVK](program, Vulkan)
	if !r.recording || r.bound == p {
		return
	}
	vk.CmdBindPipeline(r.command(), vk.PipelineBindPointGraphics, p.pipeline.Handle)
	r.bound = p
}

func (r *vulkanRenderer) DrawGeometry(geometry Geometry) {
	g := downcast[*geometryVK](geometry, Vulkan)
	if !r.recording || g.vertices.buffer == nil {
		return
	}
	cmd := r.command()
	vk.CmdBindVertexBuffers(cmd, 0, 1, []vk.Buffer{g.vertices.buffer.Handle}, []vk.DeviceSize{0})
	vk.CmdDraw(cmd, g.vertices.num, 1, 0, 0)
}

// DrawMesh pushes the material's "u_mvp" uniform as a vertex push constant. Other uniforms are not uploaded.
func (r *vulkanRenderer) DrawMesh(cam camera.Camera, mesh *Mesh) {
	applyCamera(cam, mesh.Material)
	p := downcast[*programVK](mesh.Material.Program(), Vulkan)
	r.UseProgram(p)
	if !r.recording {
		return
	}

	for i := 0; i < mesh.Material.NumUniforms(); i++ {
		u := mesh.Material.Uniform(i)
		if !u.Name().Equal(mvpName) || u.Data().Type() != uniform.TypeOf[uniform.Mat4]() {
			continue
		}
		mvp := uniform.Get[uniform.Mat4](u.Data())
		vk.CmdPushConstants(r.command(), p.pipeline.Layout, vk.ShaderStageFlags(vk.ShaderStageVertexBit),
			0, vulkan.PushConstantSize, unsafe.Pointer(&mvp[0]))
	}
	r.DrawGeometry(mesh.Geometry)
}

// ReadRenderBuffer copies the most recently presented swapchain image.
func (r *vulkanRenderer) ReadRenderBuffer() Image {
	if r.lastImage < 0 || r.swapchain == nil || r.swapchain.Empty() || r.recording {
		return Image{}
	}
	r.device.WaitIdle()

	extent := r.swapchain.Extent
	img := Image{Width: extent.Width, Height: extent.Height, Pitch: extent.Width * 4}
	img.Pixels = make([]byte, int(img.Pitch)*int(img.Height))

	if r.readback == nil || r.readback.Size < len(img.Pixels) {
		if r.readback != nil {
			r.readback.Destroy()
		}
		buffer, err := vulkan.NewBuffer(r.device, len(img.Pixels), vk.BufferUsageTransferDstBit)
		if err != nil {
			log.Printf("[Vulkan] read-back buffer: %v", err)
			return Image{}
		}
		r.readback = buffer
	}

	if err := vulkan.CopyPresentedImage(r.pool, r.swapchain.Images[r.lastImage], extent, r.readback); err != nil {
		log.Printf("[Vulkan] read back: %v", err)
		return Image{}
	}
	if err := r.readback.Read(img.Pixels); err != nil {
		log.Printf("[Vulkan] read back: %v", err)
		return Image{}
	}
	if vulkan.IsBGRA(r.swapchain.Format) {
		common.SwapRedBlue(img.Pixels)
	}
	return img
}

func (r *vulkanRenderer) Resize(width, height int) {
	r.viewportPos = [2]int32{}
	r.viewportSize = [2]int32{int32(width), int32(height)}
	r.stale = true
}

// Destroy waits for the device to go idle and destroys every object in reverse creation order. The
// device, surface and instance outlive the renderer while programs or buffers still hold the device.
func (r *vulkanRenderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	if r.device != nil {
		r.device.WaitIdle()
	}
	if r.readback != nil {
		r.readback.Destroy()
	}
	vulkan.DestroyFrames(r.frames)
	if r.pool != nil {
		r.pool.Destroy()
	}
	if r.swapchain != nil {
		r.swapchain.Destroy()
	}
	if r.renderPass != nil {
		r.renderPass.Destroy()
	}

	surface, instance := r.surface, r.instance
	teardown := func() {
		if surface != nil {
			surface.Destroy()
		}
		if instance != nil {
			instance.Destroy()
		}
		log.Printf("[Vulkan] destroyed")
	}
	if r.device == nil {
		teardown()
		return
	}
	r.device.AfterDestroy(teardown)
	r.device.Release()
}

type shaderVK struct {
	module *vulkan.ShaderModule
}

func (s *shaderVK) Backend() RendererType { return Vulkan }
func (s *shaderVK) Release()              { s.module.Destroy() }

type programVK struct {
	pipeline *vulkan.Pipeline
}

func (p *programVK) Backend() RendererType { return Vulkan }
func (p *programVK) Release()              { p.pipeline.Destroy() }

func (p *programVK) GetUniform(name string, data uniform.Data) uniform.Uniform {
	return uniform.NewUniformMaterial(name, data)
}

type uniformShaderVK struct {
	name uniform.Name
}

func (u *uniformShaderVK) Backend() RendererType { return Vulkan }
func (u *uniformShaderVK) Release()              {}
func (u *uniformShaderVK) Name() uniform.Name    { return u.name }

type verticesVK struct {
	buffer *vulkan.Buffer
	num    uint32
}

func (v *verticesVK) Backend() RendererType { return Vulkan }

func (v *verticesVK) Release() {
	if v.buffer != nil {
		v.buffer.Destroy()
	}
}

// geometryVK shares the vertex buffer; the buffer is released with its Vertices handle.
type geometryVK struct {
	vertices *verticesVK
}

func (g *geometryVK) Backend() RendererType { return Vulkan }
func (g *geometryVK) Release()              {}

type textureVK struct {
	staging common.TextureStagingData
}

func (t *textureVK) Backend() RendererType { return Vulkan }
func (t *textureVK) Release()              { t.staging = common.TextureStagingData{} }

type samplerVK struct {
	name    string
	texture *textureVK
}

func (s *samplerVK) Backend() RendererType { return Vulkan }
func (s *samplerVK) Release()              {}
func (s *samplerVK) Name() string          { return s.name }
func (s *samplerVK) SetName(name string)   { s.name = name }
func (s *samplerVK) Texture() Texture      { return s.texture }
