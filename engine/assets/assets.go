// Package assets loads shader sources and textures for a renderer from an fs.FS.
//
// Shader files follow a per-backend layout below the shader root (default "shaders"):
//
//	gl/<name>.<stage>            OpenGL GLSL
//	gles/<name>.<stage>          OpenGL ES GLSL
//	spirv/<name>.<stage>.spv     Vulkan SPIR-V
//	wgsl/<name>.<stage>.wgsl     Metal (WebGPU) WGSL
//	hlsl/<name>.<stage>.hlsl     DirectX12 HLSL
//
// where <stage> is renderer.ShaderType.Extension() (vert, frag, comp, ...).
package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
)

// spirvMagic is the first word of every SPIR-V module, in the module's byte order.
const spirvMagic uint32 = 0x07230203

var (
	// ErrEmptyShader is returned when a shader file has no contents.
	ErrEmptyShader = errors.New("assets: shader file is empty")

	// ErrInvalidSPIRV is returned when a SPIR-V binary is not a whole number of 32-bit words
	// or does not start with the SPIR-V magic number.
	ErrInvalidSPIRV = errors.New("assets: invalid SPIR-V binary")

	// ErrNoShaderLayout is returned for a renderer type without a shader directory.
	ErrNoShaderLayout = errors.New("assets: no shader layout for renderer")
)

type shaderLayout struct {
	dir    string
	suffix string
}

var shaderLayouts = map[renderer.RendererType]shaderLayout{
	renderer.OpenGL:   {dir: "gl"},
	renderer.OpenGLES: {dir: "gles"},
	renderer.Vulkan:   {dir: "spirv", suffix: ".spv"},
	renderer.Metal:    {dir: "wgsl", suffix: ".wgsl"},
	renderer.DirectX:  {dir: "hlsl", suffix: ".hlsl"},
}

// Loader reads shaders and images from a file system.
type Loader struct {
	fsys       fs.FS
	shaderRoot string
	workers    int
	pool       worker.DynamicWorkerPool
}

// LoaderOption is a functional option for configuring a Loader.
type LoaderOption func(*Loader)

// WithShaderRoot sets the directory below which the per-backend shader directories live.
//
// Parameters:
//   - root: slash-separated directory within the file system (default "shaders")
//
// Returns:
//   - LoaderOption: option function to apply
func WithShaderRoot(root string) LoaderOption {
	return func(l *Loader) {
		l.shaderRoot = path.Clean(root)
	}
}

// WithWorkers sets how many goroutines convert image rows in parallel. Values <= 0 keep the
// default of one less than the CPU count.
//
// Parameters:
//   - n: maximum number of conversion workers
//
// Returns:
//   - LoaderOption: option function to apply
func WithWorkers(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// NewLoader creates a Loader reading from fsys.
//
// Parameters:
//   - fsys: the file system holding the shader and image assets (os.DirFS, embed.FS, ...)
//   - options: functional options for the loader
//
// Returns:
//   - *Loader: the loader
func NewLoader(fsys fs.FS, options ...LoaderOption) *Loader {
	l := &Loader{
		fsys:       fsys,
		shaderRoot: "shaders",
		workers:    max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

// ShaderPath returns the path of a shader relative to the shader root.
//
// Parameters:
//   - rendererType: the backend the shader is written for
//   - name: the shader base name, e.g. "basic"
//   - stage: the pipeline stage
//
// Returns:
//   - string: slash-separated relative path, e.g. "spirv/basic.vert.spv"
//   - error: ErrNoShaderLayout if the backend has no shader directory
func ShaderPath(rendererType renderer.RendererType, name string, stage renderer.ShaderType) (string, error) {
	layout, ok := shaderLayouts[rendererType]
	if !ok {
		return "", fmt.Errorf("%s: %w", rendererType, ErrNoShaderLayout)
	}
	return layout.dir + "/" + name + "." + stage.Extension() + layout.suffix, nil
}

// ParseShaderPath is the inverse of ShaderPath. It reports false for paths outside the layout.
//
// Parameters:
//   - p: slash-separated path relative to the shader root
//
// Returns:
//   - renderer.RendererType: the backend directory the file lives in
//   - string: the shader base name
//   - renderer.ShaderType: the stage named by the file extension
//   - bool: true if p follows the layout
func ParseShaderPath(p string) (renderer.RendererType, string, renderer.ShaderType, bool) {
	dir, file, ok := strings.Cut(p, "/")
	if !ok || strings.Contains(file, "/") {
		return 0, "", 0, false
	}

	for rt, layout := range shaderLayouts {
		if layout.dir != dir {
			continue
		}
		base, ok := strings.CutSuffix(file, layout.suffix)
		if !ok {
			return 0, "", 0, false
		}
		dot := strings.LastIndexByte(base, '.')
		if dot <= 0 {
			return 0, "", 0, false
		}
		stage, ok := stageFromExtension(base[dot+1:])
		if !ok {
			return 0, "", 0, false
		}
		return rt, base[:dot], stage, true
	}
	return 0, "", 0, false
}

func stageFromExtension(ext string) (renderer.ShaderType, bool) {
	for s := renderer.ShaderVertex; s <= renderer.ShaderCompute; s++ {
		if s.Extension() == ext {
			return s, true
		}
	}
	return 0, false
}

// ReadShader reads the source (or SPIR-V binary) of one shader stage.
//
// Parameters:
//   - rendererType: the backend the shader is written for
//   - name: the shader base name
//   - stage: the pipeline stage
//
// Returns:
//   - []byte: the file contents
//   - error: a read error, ErrEmptyShader, or ErrInvalidSPIRV for malformed Vulkan binaries
func (l *Loader) ReadShader(rendererType renderer.RendererType, name string, stage renderer.ShaderType) ([]byte, error) {
	rel, err := ShaderPath(rendererType, name, stage)
	if err != nil {
		return nil, err
	}
	p := path.Join(l.shaderRoot, rel)

	source, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", p, err)
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("%s: %w", p, ErrEmptyShader)
	}
	if rendererType == renderer.Vulkan {
		if err := ValidateSPIRV(source); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return source, nil
}

// ValidateSPIRV checks that code is a whole number of 32-bit words starting with the SPIR-V
// magic number in either byte order.
//
// Parameters:
//   - code: the SPIR-V binary
//
// Returns:
//   - error: ErrInvalidSPIRV describing the problem, or nil
func ValidateSPIRV(code []byte) error {
	if len(code) == 0 || len(code)%4 != 0 {
		return fmt.Errorf("length %d is not a multiple of 4: %w", len(code), ErrInvalidSPIRV)
	}
	if binary.LittleEndian.Uint32(code) != spirvMagic && binary.BigEndian.Uint32(code) != spirvMagic {
		return fmt.Errorf("bad magic %#08x: %w", binary.LittleEndian.Uint32(code), ErrInvalidSPIRV)
	}
	return nil
}

// LoadShader reads a shader stage and compiles it with r.
//
// Parameters:
//   - r: the renderer to compile with; its Type selects the shader directory
//   - name: the shader base name
//   - stage: the pipeline stage
//
// Returns:
//   - renderer.Shader: the compiled shader
//   - error: a read error or the renderer's compile error
func (l *Loader) LoadShader(r renderer.Renderer, name string, stage renderer.ShaderType) (renderer.Shader, error) {
	source, err := l.ReadShader(r.Type(), name, stage)
	if err != nil {
		return nil, err
	}
	shader, err := r.LoadShader(stage, source)
	if err != nil {
		return nil, fmt.Errorf("shader %s.%s: %w", name, stage, err)
	}
	return shader, nil
}

// LoadProgram loads the vertex and fragment stages of name and links them.
//
// Parameters:
//   - r: the renderer to compile with
//   - name: the shader base name shared by both stages
//
// Returns:
//   - renderer.Program: the linked program
//   - error: the first read, compile, or link error
func (l *Loader) LoadProgram(r renderer.Renderer, name string) (renderer.Program, error) {
	vert, err := l.LoadShader(r, name, renderer.ShaderVertex)
	if err != nil {
		return nil, err
	}
	frag, err := l.LoadShader(r, name, renderer.ShaderFragment)
	if err != nil {
		vert.Release()
		return nil, err
	}

	program, err := r.LoadProgramVertFrag(vert, frag)
	if err != nil {
		vert.Release()
		frag.Release()
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	log.Printf("[Assets] loaded program %s for %s", name, r.Type())
	return program, nil
}
