package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDecodeYAMLKeepsDefaults(t *testing.T) {
	defaults := Default("Lighting", 900, 600)
	cfg, err := Decode(".yaml", []byte("engine:\n  frame_limit: 30\n  profiling: true\nrenderer:\n  msaa: 1\n"), defaults)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Engine.FrameLimit)
	assert.True(t, cfg.Engine.Profiling)
	assert.Equal(t, 1, cfg.Renderer.MSAA)
	assert.Equal(t, 60.0, cfg.Engine.TickRate)
	assert.Equal(t, "vsync", cfg.Renderer.PresentMode)
	assert.Equal(t, WindowConfig{Title: "Lighting", Width: 900, Height: 600}, cfg.Window)

	// defaults are not modified
	assert.Equal(t, 4, defaults.Renderer.MSAA)
}

func TestDecodeTOML(t *testing.T) {
	body := `
[window]
width = 1024

[renderer]
present_mode = "uncapped"
clear_color = [0.1, 0.2, 0.3]

[scene]
build_workers = 3
`
	cfg, err := Decode(".toml", []byte(body), Default("Scene", 600, 600))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "uncapped", cfg.Renderer.PresentMode)
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, cfg.Renderer.ClearColor)
	assert.Equal(t, 3, cfg.Scene.BuildWorkers)
}

func TestDecodeEmptyYAML(t *testing.T) {
	defaults := Default("Objects", 600, 600)
	cfg, err := Decode(".yml", nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestDecodeErrors(t *testing.T) {
	defaults := Default("Lorenz", 800, 600)

	_, err := Decode(".json", []byte("{}"), defaults)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	cfg, err := Decode(".yaml", []byte("engine: [1, 2"), defaults)
	assert.Error(t, err)
	assert.Equal(t, defaults, cfg)

	_, err = Decode(".yaml", []byte("bogus: 1\n"), defaults)
	assert.Error(t, err)

	_, err = Decode(".toml", []byte("bogus = 1\n"), defaults)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), Default("x", 1, 1))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindOrder(t *testing.T) {
	root := t.TempDir()
	_, ok := Find(root, "lighting")
	assert.False(t, ok)

	writeFile(t, filepath.Join(root, Dir, "lighting.toml"), "")
	path, ok := Find(root, "lighting")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, Dir, "lighting.toml"), path)

	writeFile(t, filepath.Join(root, Dir, "lighting.yaml"), "")
	path, _ = Find(root, "lighting")
	assert.Equal(t, filepath.Join(root, Dir, "lighting.yaml"), path)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	writeFile(t, path, "engine:\n  frame_limit: 30\n")

	var latest atomic.Value
	w, err := Watch(path, Default("Scene", 600, 600), func(c Config) { latest.Store(c) })
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, 30.0, w.Current().Engine.FrameLimit)

	writeFile(t, path, "engine:\n  frame_limit: 120\n")
	assert.Eventually(t, func() bool {
		c, ok := latest.Load().(Config)
		return ok && c.Engine.FrameLimit == 120
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 120.0, w.Current().Engine.FrameLimit)

	// a broken edit keeps the last good config
	tmp := path + ".tmp"
	writeFile(t, tmp, "engine: [")
	require.NoError(t, os.Rename(tmp, path))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 120.0, w.Current().Engine.FrameLimit)
}

func TestWatchMissingFile(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "none.toml"), Default("x", 1, 1), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchRecoversFromBrokenStartupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lighting.yaml")
	writeFile(t, path, "engine: [")

	defaults := Default("Lighting", 600, 600)
	var latest atomic.Value
	w, err := Watch(path, defaults, func(c Config) { latest.Store(c) })
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, defaults, w.Current())

	writeFile(t, path, "engine:\n  frame_limit: 45\n")
	assert.Eventually(t, func() bool {
		c, ok := latest.Load().(Config)
		return ok && c.Engine.FrameLimit == 45
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	writeFile(t, path, "{}")
	_, err := Watch(path, Default("x", 1, 1), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
