// Package opengl wraps the OpenGL and OpenGL ES entry points used by the renderer behind a
// single Functions interface, so the renderer can drive either API and be exercised without a context.
package opengl

// Enum values shared by OpenGL 3.3 core and OpenGL ES 3.1.
const (
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	TRIANGLES = 0x0004

	UNSIGNED_BYTE = 0x1401
	FLOAT         = 0x1406
	RGBA          = 0x1908

	RENDERER = 0x1F01
	VERSION  = 0x1F02

	TEXTURE_2D           = 0x0DE1
	TEXTURE_MAG_FILTER   = 0x2800
	TEXTURE_MIN_FILTER   = 0x2801
	TEXTURE_WRAP_S       = 0x2802
	TEXTURE_WRAP_T       = 0x2803
	LINEAR               = 0x2601
	LINEAR_MIPMAP_LINEAR = 0x2703
	REPEAT               = 0x2901
	TEXTURE0             = 0x84C0

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4

	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	COMPILE_STATUS         = 0x8B81
	LINK_STATUS            = 0x8B82
	INFO_LOG_LENGTH        = 0x8B84
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9
)

// GLMaxMinor is the highest minor version of each desktop OpenGL major version, indexed by major.
var GLMaxMinor = []uint32{0, 5, 1, 3, 6}

// GLESMaxMinor is the highest minor version of each OpenGL ES major version, indexed by major.
var GLESMaxMinor = []uint32{0, 1, 0, 2}

// Functions is the subset of OpenGL used by the renderer. Go slices replace pointer and
// count pairs; strings are converted to C strings by the implementation.
type Functions interface {
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	ClearStencil(s int32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)

	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v []float32)
	Uniform3fv(location int32, v []float32)
	Uniform4fv(location int32, v []float32)
	UniformMatrix2fv(location int32, v []float32)
	UniformMatrix3fv(location int32, v []float32)
	UniformMatrix4fv(location int32, v []float32)
	Uniform1i(location, v int32)
	Uniform1ui(location int32, v uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	GenTexture() uint32
	BindTexture(target, texture uint32)
	DeleteTexture(texture uint32)
	ActiveTexture(unit uint32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte)
	TexParameteri(target, pname uint32, param int32)
	GenerateMipmap(target uint32)

	DrawArrays(mode uint32, first, count int32)
	ReadPixels(x, y, width, height int32, format, xtype uint32, pixels []byte)
	GetString(name uint32) string
}
