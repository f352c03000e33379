//go:build !darwin

package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// esFunctions calls OpenGL ES 3.1 through go-gl.
type esFunctions struct{}

var _ Functions = esFunctions{}

// NewES loads OpenGL ES entry points from the current context.
//
// Parameters:
//   - getProcAddr: resolves a GL function name to its address in the current context
//
// Returns:
//   - Functions: OpenGL ES functions
//   - error: error if a required entry point is missing
func NewES(getProcAddr func(name string) unsafe.Pointer) (Functions, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, fmt.Errorf("load OpenGL ES functions: %w", err)
	}
	return esFunctions{}, nil
}

func (esFunctions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (esFunctions) ClearDepth(depth float32)      { gl.ClearDepthf(depth) }
func (esFunctions) ClearStencil(s int32)          { gl.ClearStencil(s) }
func (esFunctions) Clear(mask uint32)             { gl.Clear(mask) }
func (esFunctions) Viewport(x, y, w, h int32)     { gl.Viewport(x, y, w, h) }

func (esFunctions) CreateShader(shaderType uint32) uint32 { return gl.CreateShader(shaderType) }

func (esFunctions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (esFunctions) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (esFunctions) GetShaderi(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (f esFunctions) GetShaderInfoLog(shader uint32) string {
	n := f.GetShaderi(shader, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (esFunctions) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (esFunctions) CreateProgram() uint32               { return gl.CreateProgram() }
func (esFunctions) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (esFunctions) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (esFunctions) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (esFunctions) GetProgrami(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (f esFunctions) GetProgramInfoLog(program uint32) string {
	n := f.GetProgrami(program, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (esFunctions) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (esFunctions) UseProgram(program uint32)    { gl.UseProgram(program) }

func (esFunctions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (esFunctions) Uniform1fv(loc int32, v []float32) { gl.Uniform1fv(loc, 1, &v[0]) }
func (esFunctions) Uniform2fv(loc int32, v []float32) { gl.Uniform2fv(loc, 1, &v[0]) }
func (esFunctions) Uniform3fv(loc int32, v []float32) { gl.Uniform3fv(loc, 1, &v[0]) }
func (esFunctions) Uniform4fv(loc int32, v []float32) { gl.Uniform4fv(loc, 1, &v[0]) }

func (esFunctions) UniformMatrix2fv(loc int32, v []float32) {
	gl.UniformMatrix2fv(loc, 1, false, &v[0])
}

func (esFunctions) UniformMatrix3fv(loc int32, v []float32) {
	gl.UniformMatrix3fv(loc, 1, false, &v[0])
}

func (esFunctions) UniformMatrix4fv(loc int32, v []float32) {
	gl.UniformMatrix4fv(loc, 1, false, &v[0])
}

func (esFunctions) Uniform1i(loc, v int32)         { gl.Uniform1i(loc, v) }
func (esFunctions) Uniform1ui(loc int32, v uint32) { gl.Uniform1ui(loc, v) }

func (esFunctions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (esFunctions) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (esFunctions) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (esFunctions) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (esFunctions) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (esFunctions) BindVertexArray(vao uint32)           { gl.BindVertexArray(vao) }
func (esFunctions) DeleteVertexArray(vao uint32)         { gl.DeleteVertexArrays(1, &vao) }
func (esFunctions) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (esFunctions) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (esFunctions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (esFunctions) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (esFunctions) DeleteTexture(texture uint32)       { gl.DeleteTextures(1, &texture) }
func (esFunctions) ActiveTexture(unit uint32)          { gl.ActiveTexture(unit) }

func (esFunctions) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr)
}

func (esFunctions) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (esFunctions) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (esFunctions) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (esFunctions) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(pixels))
}

func (esFunctions) GetString(name uint32) string {
	if s := gl.GetString(name); s != nil {
		return gl.GoStr(s)
	}
	return ""
}
