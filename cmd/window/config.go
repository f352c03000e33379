package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-rad/common"
	"github.com/Carmen-Shannon/oxy-rad/engine"
	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rad/engine/window"
)

// Config is the example's TOML configuration. Keys missing from the file keep the values from
// defaultConfig.
type Config struct {
	Backend    string     `toml:"backend"`
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Resizable  bool       `toml:"resizable"`
	Samples    int        `toml:"samples"`
	VSync      bool       `toml:"vsync"`
	Device     string     `toml:"device"`
	Validation bool       `toml:"validation"`
	MinVersion string     `toml:"min_version"`
	MaxVersion string     `toml:"max_version"`
	TickRate   float64    `toml:"tick_rate"`
	FrameLimit float64    `toml:"frame_limit"`
	Profiling  bool       `toml:"profiling"`
	AssetDir   string     `toml:"asset_dir"`
	Shader     string     `toml:"shader"`
	Texture    string     `toml:"texture"`
	Screenshot string     `toml:"screenshot"`
	ClearColor [4]float32 `toml:"clear_color"`
	HotReload  bool       `toml:"hot_reload"`
}

func defaultConfig() Config {
	return Config{
		Backend:    "opengl",
		Title:      "oxy-rad",
		Width:      800,
		Height:     600,
		Resizable:  true,
		VSync:      true,
		Device:     "default",
		TickRate:   60,
		AssetDir:   "cmd/window/assets",
		Shader:     "basic",
		Texture:    "textures/image.png",
		Screenshot: "screenshot.png",
		ClearColor: [4]float32{0, 0, 0, 1},
		HotReload:  true,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	// Keys set to an empty value fall back to the defaults.
	def := defaultConfig()
	cfg.Backend = common.Coalesce(cfg.Backend, def.Backend)
	cfg.Title = common.Coalesce(cfg.Title, def.Title)
	cfg.Width = common.Coalesce(cfg.Width, def.Width)
	cfg.Height = common.Coalesce(cfg.Height, def.Height)
	cfg.AssetDir = common.Coalesce(cfg.AssetDir, def.AssetDir)
	cfg.Shader = common.Coalesce(cfg.Shader, def.Shader)
	cfg.Screenshot = common.Coalesce(cfg.Screenshot, def.Screenshot)
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return err
	}
	return nil
}

var backends = map[string]renderer.RendererType{
	"opengl":    renderer.OpenGL,
	"gl":        renderer.OpenGL,
	"opengles":  renderer.OpenGLES,
	"gles":      renderer.OpenGLES,
	"vulkan":    renderer.Vulkan,
	"directx":   renderer.DirectX,
	"directx12": renderer.DirectX,
	"metal":     renderer.Metal,
}

func parseBackend(name string) (renderer.RendererType, error) {
	rt, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown backend %q", name)
	}
	return rt, nil
}

func parseDevice(name string) (renderer.DeviceType, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return renderer.DeviceDefault, nil
	case "high_performance", "discrete":
		return renderer.DeviceHighPerformance, nil
	case "low_power", "integrated":
		return renderer.DeviceLowPower, nil
	}
	return 0, fmt.Errorf("unknown device type %q", name)
}

// parseVersion reads "major[.minor[.patch]]"; missing components become fallback.
func parseVersion(s string, fallback renderer.VersionNum) (renderer.Version, error) {
	v := renderer.Version{Major: fallback, Minor: fallback, Patch: fallback}
	if s == "" {
		return v, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("version %q has more than three components", s)
	}
	nums := []*renderer.VersionNum{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return v, fmt.Errorf("version %q: %w", s, err)
		}
		*nums[i] = renderer.Value(uint32(n))
	}
	return v, nil
}

// rendererOptions maps the config onto renderer builder options.
func (c Config) rendererOptions() ([]renderer.RendererBuilderOption, error) {
	device, err := parseDevice(c.Device)
	if err != nil {
		return nil, err
	}
	minVersion, err := parseVersion(c.MinVersion, renderer.Lowest())
	if err != nil {
		return nil, err
	}
	maxVersion, err := parseVersion(c.MaxVersion, renderer.Highest())
	if err != nil {
		return nil, err
	}

	present := renderer.PresentModeVSync
	if !c.VSync {
		present = renderer.PresentModeUncapped
	}

	return []renderer.RendererBuilderOption{
		renderer.WithMinVersion(minVersion),
		renderer.WithMaxVersion(maxVersion),
		renderer.WithDeviceType(device),
		renderer.WithValidation(c.Validation),
		renderer.WithPresentMode(present),
	}, nil
}

func (c Config) windowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Title),
		window.WithSize(c.Width, c.Height),
		window.WithResizable(c.Resizable),
		window.WithSamples(c.Samples),
	}
}

func (c Config) engineOptions() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithTickRate(c.TickRate),
		engine.WithRenderFrameLimit(c.FrameLimit),
		engine.WithProfiling(c.Profiling),
	}
}
