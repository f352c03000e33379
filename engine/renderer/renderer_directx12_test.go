package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/directx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectXPreference(t *testing.T) {
	assert.Equal(t, directx.PreferenceUnspecified, dxPreference(DeviceDefault))
	assert.Equal(t, directx.PreferenceHighPerformance, dxPreference(DeviceHighPerformance))
	assert.Equal(t, directx.PreferenceMinimumPower, dxPreference(DeviceLowPower))
}

func TestDirectXScaffolding(t *testing.T) {
	released := 0
	r := &directXRenderer{clearState: newClearState(4, 4), release: func() { released++ }}

	assert.Equal(t, "DirectX12", r.Name())
	assert.Equal(t, DirectX, r.Type())

	r.SetClearColor([4]float32{1, 0, 0, 1})
	r.SetClearDepth(0.25)
	r.SetClearStencil(7)
	r.SetViewport([2]int32{2, 3}, [2]int32{10, 20})
	assert.Equal(t, [4]float32{1, 0, 0, 1}, r.ClearColor())
	assert.Equal(t, float32(0.25), r.ClearDepth())
	assert.Equal(t, int32(7), r.ClearStencil())
	assert.Equal(t, [2]int32{2, 3}, r.ViewportPos())
	assert.Equal(t, [2]int32{10, 20}, r.ViewportSize())

	_, err := r.LoadShader(ShaderVertex, []byte("float4 main() : SV_POSITION { return 0; }"))
	assert.ErrorIs(t, err, ErrUnimplemented)
	_, err = r.LoadProgramVertFrag(nil, nil)
	assert.ErrorIs(t, err, ErrUnimplemented)

	geometry := r.GenGeometry(r.GenBufferVertex([]float32{0, 0, 0, 0}))
	sampler := r.GenSampler(r.GenBufferTexture())
	sampler.SetName("u_color")
	assert.Equal(t, "u_color", sampler.Name())
	assert.Equal(t, "u_mvp", r.GetUniform(nil, "u_mvp").Name().String())

	mesh := r.GenMesh(geometry, nil)
	r.BeginFrame(ClearAll)
	r.DrawMesh(nil, mesh)
	r.EndFrame()
	assert.Empty(t, r.ReadRenderBuffer().Pixels)

	r.Destroy()
	r.Destroy()
	require.Equal(t, 1, released)
}

func TestDirectXRejectsOtherBackendHandles(t *testing.T) {
	r := &directXRenderer{}
	assert.PanicsWithError(t, "Vulkan handle passed to DirectX12: invalid cast", func() {
		r.GenSampler(&textureVK{})
	})

	gl, _, _ := newTestGLRenderer(false)
	program := &programGL{glHandle: gl.handle()}
	geometry := gl.GenGeometry(gl.GenBufferVertex([]float32{0, 0, 0, 0}))

	tests := map[string]func(){
		"GetUniform":   func() { r.GetUniform(program, "u_mvp") },
		"UseProgram":   func() { r.UseProgram(program) },
		"GenMesh":      func() { r.GenMesh(geometry, nil) },
		"DrawGeometry": func() { r.DrawGeometry(geometry) },
		"DrawMesh":     func() { r.DrawMesh(nil, &Mesh{Geometry: geometry}) },
		"LoadTexture":  func() { r.LoadTexture(nil, gl.GenBufferTexture()) },
	}
	for name, call := range tests {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, "OpenGL handle passed to DirectX12: invalid cast", call)
		})
	}
}
