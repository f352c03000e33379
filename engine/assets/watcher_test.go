package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextChange(t *testing.T, w *ShaderWatcher) string {
	t.Helper()
	select {
	case p, ok := <-w.Changes():
		require.True(t, ok, "changes channel closed")
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("no shader change reported")
		return ""
	}
}

func TestShaderWatcherReportsRelativePaths(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "gl"), 0o755))
	file := filepath.Join(root, "gl", "basic.frag")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o644))

	w, err := NewShaderWatcher(root, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(file, []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("c"), 0o644))

	assert.Equal(t, "gl/basic.frag", nextChange(t, w))
}

func TestShaderWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := NewShaderWatcher(root, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Mkdir(filepath.Join(root, "wgsl"), 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "wgsl", "basic.vert.wgsl"), []byte("x"), 0o644))

	assert.Equal(t, "wgsl/basic.vert.wgsl", nextChange(t, w))
}

func TestShaderWatcherClose(t *testing.T) {
	w, err := NewShaderWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	assert.False(t, ok)
}

func TestNewShaderWatcherMissingRoot(t *testing.T) {
	_, err := NewShaderWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
