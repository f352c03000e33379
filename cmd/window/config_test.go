package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rad/engine/renderer"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend = "vulkan"
title = ""
width = 1024
height = 0
vsync = false
min_version = "1.1"
clear_color = [0.25, 0.5, 0.75, 1.0]
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "vulkan", cfg.Backend)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "oxy-rad", cfg.Title)
	assert.False(t, cfg.VSync)
	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, cfg.ClearColor)
	assert.Equal(t, "basic", cfg.Shader)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("backnd = \"vulkan\"\n"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backnd")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name     string
		expected renderer.RendererType
	}{
		{"opengl", renderer.OpenGL},
		{"GLES", renderer.OpenGLES},
		{" vulkan ", renderer.Vulkan},
		{"directx12", renderer.DirectX},
		{"Metal", renderer.Metal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := parseBackend(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rt)
		})
	}

	_, err := parseBackend("glide")
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("", renderer.Highest())
	require.NoError(t, err)
	assert.Equal(t, renderer.Version{Major: renderer.Highest(), Minor: renderer.Highest(), Patch: renderer.Highest()}, v)

	v, err = parseVersion("3.3", renderer.Lowest())
	require.NoError(t, err)
	assert.Equal(t, renderer.Version{Major: renderer.Value(3), Minor: renderer.Value(3), Patch: renderer.Lowest()}, v)

	_, err = parseVersion("1.2.3.4", renderer.Lowest())
	assert.Error(t, err)
	_, err = parseVersion("three", renderer.Lowest())
	assert.Error(t, err)
}

func TestRendererOptions(t *testing.T) {
	cfg := defaultConfig()
	opts, err := cfg.rendererOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	cfg.Device = "quantum"
	_, err = cfg.rendererOptions()
	assert.Error(t, err)

	cfg = defaultConfig()
	cfg.MaxVersion = "x"
	_, err = cfg.rendererOptions()
	assert.Error(t, err)
}

func TestFlipTextures(t *testing.T) {
	assert.True(t, flipTextures(renderer.OpenGL))
	assert.True(t, flipTextures(renderer.OpenGLES))
	assert.False(t, flipTextures(renderer.Vulkan))
	assert.False(t, flipTextures(renderer.Metal))
}
