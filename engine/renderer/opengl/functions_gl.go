package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// desktopFunctions calls OpenGL 3.3 core through go-gl.
type desktopFunctions struct{}

var _ Functions = desktopFunctions{}

// NewDesktop loads OpenGL entry points from the current context.
//
// Parameters:
//   - getProcAddr: resolves a GL function name to its address in the current context
//
// Returns:
//   - Functions: desktop OpenGL functions
//   - error: error if a required entry point is missing
func NewDesktop(getProcAddr func(name string) unsafe.Pointer) (Functions, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, fmt.Errorf("load OpenGL functions: %w", err)
	}
	return desktopFunctions{}, nil
}

func (desktopFunctions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (desktopFunctions) ClearDepth(depth float32)      { gl.ClearDepth(float64(depth)) }
func (desktopFunctions) ClearStencil(s int32)          { gl.ClearStencil(s) }
func (desktopFunctions) Clear(mask uint32)             { gl.Clear(mask) }
func (desktopFunctions) Viewport(x, y, w, h int32)     { gl.Viewport(x, y, w, h) }

func (desktopFunctions) CreateShader(shaderType uint32) uint32 { return gl.CreateShader(shaderType) }

func (desktopFunctions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (desktopFunctions) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (desktopFunctions) GetShaderi(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (f desktopFunctions) GetShaderInfoLog(shader uint32) string {
	n := f.GetShaderi(shader, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (desktopFunctions) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (desktopFunctions) CreateProgram() uint32               { return gl.CreateProgram() }
func (desktopFunctions) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (desktopFunctions) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (desktopFunctions) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (desktopFunctions) GetProgrami(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (f desktopFunctions) GetProgramInfoLog(program uint32) string {
	n := f.GetProgrami(program, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (desktopFunctions) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (desktopFunctions) UseProgram(program uint32)    { gl.UseProgram(program) }

func (desktopFunctions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (desktopFunctions) Uniform1fv(loc int32, v []float32) { gl.Uniform1fv(loc, 1, &v[0]) }
func (desktopFunctions) Uniform2fv(loc int32, v []float32) { gl.Uniform2fv(loc, 1, &v[0]) }
func (desktopFunctions) Uniform3fv(loc int32, v []float32) { gl.Uniform3fv(loc, 1, &v[0]) }
func (desktopFunctions) Uniform4fv(loc int32, v []float32) { gl.Uniform4fv(loc, 1, &v[0]) }

func (desktopFunctions) UniformMatrix2fv(loc int32, v []float32) {
	gl.UniformMatrix2fv(loc, 1, false, &v[0])
}

func (desktopFunctions) UniformMatrix3fv(loc int32, v []float32) {
	gl.UniformMatrix3fv(loc, 1, false, &v[0])
}

func (desktopFunctions) UniformMatrix4fv(loc int32, v []float32) {
	gl.UniformMatrix4fv(loc, 1, false, &v[0])
}

func (desktopFunctions) Uniform1i(loc, v int32)         { gl.Uniform1i(loc, v) }
func (desktopFunctions) Uniform1ui(loc int32, v uint32) { gl.Uniform1ui(loc, v) }

func (desktopFunctions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (desktopFunctions) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (desktopFunctions) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (desktopFunctions) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (desktopFunctions) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (desktopFunctions) BindVertexArray(vao uint32)           { gl.BindVertexArray(vao) }
func (desktopFunctions) DeleteVertexArray(vao uint32)         { gl.DeleteVertexArrays(1, &vao) }
func (desktopFunctions) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (desktopFunctions) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (desktopFunctions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (desktopFunctions) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (desktopFunctions) DeleteTexture(texture uint32)       { gl.DeleteTextures(1, &texture) }
func (desktopFunctions) ActiveTexture(unit uint32)          { gl.ActiveTexture(unit) }

func (desktopFunctions) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr)
}

func (desktopFunctions) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (desktopFunctions) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (desktopFunctions) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (desktopFunctions) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(pixels))
}

func (desktopFunctions) GetString(name uint32) string {
	if s := gl.GetString(name); s != nil {
		return gl.GoStr(s)
	}
	return ""
}
