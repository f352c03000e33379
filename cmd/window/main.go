// Command window opens a window with the selected renderer backend and draws a textured quad.
//
// Keys: R reloads the shader, P saves a screenshot, Space pauses the clear colour animation,
// C resets the clear colour, Esc quits. Shader files edited on disk are reloaded automatically
// when hot_reload is enabled.
//
// SPIR-V binaries for the Vulkan backend are compiled from assets/shaders/vk with glslc:
//
//go:generate glslc -fshader-stage=vert assets/shaders/vk/basic.vert -o assets/shaders/spirv/basic.vert.spv
//go:generate glslc -fshader-stage=frag assets/shaders/vk/basic.frag -o assets/shaders/spirv/basic.frag.spv
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/oxy-rad/engine"
	"github.com/Carmen-Shannon/oxy-rad/engine/assets"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/window"
)

func init() {
	// GLFW and GL contexts must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	backend := flag.String("backend", "", "renderer backend override: opengl, opengles, vulkan, directx12, metal")
	flag.Parse()

	if err := run(*configPath, *backend); err != nil {
		log.Fatalf("[Engine] %v", err)
	}
}

func run(configPath, backendOverride string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if backendOverride != "" {
		cfg.Backend = backendOverride
	}

	rendererType, err := parseBackend(cfg.Backend)
	if err != nil {
		return err
	}
	rendererOptions, err := cfg.rendererOptions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	win, err := window.NewWindow(cfg.windowOptions()...)
	if err != nil {
		return err
	}
	eng := engine.NewEngine(append(cfg.engineOptions(),
		engine.WithWindow(win),
		engine.WithRenderer(rendererType, rendererOptions...),
	)...)

	d := newDemo(eng, assets.NewLoader(os.DirFS(cfg.AssetDir)), cfg)
	if err := eng.Submit(d.setup); err != nil {
		return err
	}
	eng.SetTickCallback(d.tick)
	eng.SetRenderCallback(d.render)
	eng.SetShutdownCallback(d.release)
	win.SetKeyDownCallback(d.onKeyDown)

	if cfg.HotReload {
		watcher, err := assets.NewShaderWatcher(filepath.Join(cfg.AssetDir, "shaders"))
		if err != nil {
			log.Printf("[Assets] hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			go forwardReloads(watcher, eng, d, rendererType)
		}
	}

	return eng.Run(ctx)
}

// forwardReloads submits a reload for each change to the demo shader of the active backend.
// It returns when the watcher is closed.
func forwardReloads(watcher *assets.ShaderWatcher, eng engine.Engine, d *demo, rendererType renderer.RendererType) {
	for p := range watcher.Changes() {
		rt, name, _, ok := assets.ParseShaderPath(p)
		if !ok || rt != rendererType || name != d.cfg.Shader {
			continue
		}
		if err := eng.Submit(d.reload); err != nil {
			log.Printf("[Assets] reload %s: %v", p, err)
		}
	}
}
