package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/Carmen-Shannon/oxy-rad/engine"
	"github.com/Carmen-Shannon/oxy-rad/engine/assets"
	"github.com/Carmen-Shannon/oxy-rad/engine/camera"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer/material"
)

// quad is two triangles covering clip space, interleaved as x, y, u, v.
var quad = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	1, 1, 1, 1,
	1, 1, 1, 1,
	-1, 1, 0, 1,
	-1, -1, 0, 0,
}

// demo draws a textured full-screen quad and animates the clear colour. Its handles are only
// touched on the render thread.
type demo struct {
	eng    engine.Engine
	loader *assets.Loader
	cfg    Config
	cam    camera.Camera

	texture renderer.Texture
	sampler renderer.Sampler
	program renderer.Program
	mesh    *renderer.Mesh

	paused     atomic.Bool
	screenshot atomic.Bool
	red        float32
}

func newDemo(eng engine.Engine, loader *assets.Loader, cfg Config) *demo {
	cam := camera.NewCamera()
	size := common.Vec2{float32(cfg.Width), float32(cfg.Height)}
	cam.SetViewport(size, common.Vec2{}, size, common.Vec2{})

	return &demo{
		eng:    eng,
		loader: loader,
		cfg:    cfg,
		cam:    cam,
		red:    cfg.ClearColor[0],
	}
}

// flipTextures reports whether images must be stored bottom row first.
func flipTextures(rt renderer.RendererType) bool {
	return rt == renderer.OpenGL || rt == renderer.OpenGLES
}

// setup creates the quad resources. It runs as the first engine command.
func (d *demo) setup(r renderer.Renderer) {
	program, err := d.loader.LoadProgram(r, d.cfg.Shader)
	if err != nil {
		log.Printf("[Engine] %v", err)
		d.eng.Quit()
		return
	}
	d.program = program

	img, err := d.loader.LoadImage(d.cfg.Texture, flipTextures(r.Type()))
	if err != nil {
		log.Printf("[Assets] %v; using a checkerboard", err)
		img = d.loader.ToRGBA(checkerboard(64, 8), flipTextures(r.Type()))
	}

	d.texture = r.GenBufferTexture()
	r.LoadTexture(img, d.texture)
	d.sampler = r.GenSampler(d.texture)

	geometry := r.GenGeometry(r.GenBufferVertex(quad))
	d.mesh = r.GenMesh(geometry, material.NewMaterialBasic(program, d.sampler))

	r.SetClearColor(d.cfg.ClearColor)
	r.SetViewport([2]int32{0, 0}, [2]int32{int32(d.cfg.Width), int32(d.cfg.Height)})
}

// reload relinks the shader program and swaps it into the mesh material. A failed compile keeps
// the previous program.
func (d *demo) reload(r renderer.Renderer) {
	if d.mesh == nil {
		return
	}
	program, err := d.loader.LoadProgram(r, d.cfg.Shader)
	if err != nil {
		log.Printf("[Engine] reload %s: %v", d.cfg.Shader, err)
		return
	}

	d.mesh.Material = material.NewMaterialBasic(program, d.sampler)
	d.program.Release()
	d.program = program
	log.Printf("[Engine] reloaded %s", d.cfg.Shader)
}

// tick animates the clear colour from the logic goroutine through the command queue.
func (d *demo) tick(dt float32) {
	if d.paused.Load() {
		return
	}
	d.red += dt * 0.6
	if d.red > 1 {
		d.red = 0
	}

	c := d.cfg.ClearColor
	c[0] = d.red
	// A full queue only drops one animation step.
	_ = d.eng.Submit(func(r renderer.Renderer) { r.SetClearColor(c) })
}

func (d *demo) render(r renderer.Renderer, _ float32) {
	if d.mesh == nil {
		return
	}
	r.DrawMesh(d.cam, d.mesh)

	if d.screenshot.CompareAndSwap(true, false) {
		frame := r.ReadRenderBuffer()
		go saveScreenshot(d.cfg.Screenshot, frame)
	}
}

func (d *demo) onKeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyEsc:
		d.eng.Quit()
	case common.KeyR:
		if err := d.eng.Submit(d.reload); err != nil {
			log.Printf("[Engine] reload: %v", err)
		}
	case common.KeyP:
		d.screenshot.Store(true)
	case common.KeySpace:
		d.paused.Store(!d.paused.Load())
	case common.KeyC:
		_ = d.eng.Submit(func(r renderer.Renderer) { r.SetClearColor(d.cfg.ClearColor) })
	}
}

// release frees the quad resources before the renderer is destroyed.
func (d *demo) release(renderer.Renderer) {
	if d.mesh != nil {
		d.mesh.Release()
	}
	for _, h := range []renderer.Handle{d.sampler, d.texture, d.program} {
		if h != nil {
			h.Release()
		}
	}
}

// saveScreenshot writes a read-back frame as PNG. An empty frame (nothing presented yet) is skipped.
func saveScreenshot(path string, frame renderer.Image) {
	if len(frame.Pixels) == 0 {
		log.Printf("[Engine] screenshot: no frame available yet")
		return
	}
	img := &image.RGBA{
		Pix:    frame.Pixels,
		Stride: int(frame.Pitch),
		Rect:   image.Rect(0, 0, int(frame.Width), int(frame.Height)),
	}

	f, err := os.Create(path)
	if err != nil {
		log.Printf("[Engine] screenshot: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("[Engine] screenshot: %v", err)
		return
	}
	log.Printf("[Engine] saved %dx%d screenshot to %s", frame.Width, frame.Height, path)
}

func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{R: 230, G: 140, B: 30, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
