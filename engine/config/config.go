package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dir is the directory, relative to the working directory, searched for demo config files.
const Dir = "config"

// Extensions lists the accepted config file extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// ErrUnsupportedFormat is returned when a config file extension is not YAML or TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the tunables of a demo that are not interactive state.
// Fields missing from a file keep their default value.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Engine   EngineConfig   `yaml:"engine" toml:"engine"`
	Renderer RendererConfig `yaml:"renderer" toml:"renderer"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
}

// WindowConfig configures the demo window.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// EngineConfig configures the engine loops. These fields apply live when the file changes.
type EngineConfig struct {
	// TickRate is the tick loop frequency in Hz.
	TickRate float64 `yaml:"tick_rate" toml:"tick_rate"`

	// FrameLimit caps the render loop in frames per second; 0 is uncapped.
	FrameLimit float64 `yaml:"frame_limit" toml:"frame_limit"`

	// Profiling logs FPS and memory statistics every second.
	Profiling bool `yaml:"profiling" toml:"profiling"`
}

// RendererConfig configures the GPU backend at startup.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode string `yaml:"present_mode" toml:"present_mode"`

	// MSAA is the sample count: 1, 4, 8 or 16.
	MSAA int `yaml:"msaa" toml:"msaa"`

	// Software forces the fallback adapter.
	Software bool `yaml:"software" toml:"software"`

	// ClearColor is the background color.
	ClearColor [3]float64 `yaml:"clear_color" toml:"clear_color"`
}

// SceneConfig configures the scene builder.
type SceneConfig struct {
	// BuildWorkers is the number of goroutines building objects; 0 picks one per spare CPU.
	BuildWorkers int `yaml:"build_workers" toml:"build_workers"`
}

// Default returns the built-in configuration of a demo window.
//
// Parameters:
//   - title: the window title
//   - width: the initial window width in pixels
//   - height: the initial window height in pixels
//
// Returns:
//   - Config: the defaults
func Default(title string, width, height int) Config {
	return Config{
		Window: WindowConfig{Title: title, Width: width, Height: height},
		Engine: EngineConfig{TickRate: 60},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAA:        4,
		},
	}
}

// Find returns the first existing config/<demo>.{yaml,yml,toml} under root.
//
// Parameters:
//   - root: the directory containing the config directory
//   - demo: the demo name
//
// Returns:
//   - string: the file path
//   - bool: false if no file exists
func Find(root, demo string) (string, bool) {
	for _, ext := range Extensions {
		path := filepath.Join(root, Dir, demo+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads the file at path over a deep copy of defaults. The format is
// chosen by extension.
//
// Parameters:
//   - path: the config file
//   - defaults: the values kept for fields the file omits
//
// Returns:
//   - Config: the merged configuration, or defaults on error
//   - error: the wrapped read or decode error, or ErrUnsupportedFormat
func Load(path string, defaults Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read config %s: %w", path, err)
	}
	return Decode(filepath.Ext(path), data, defaults)
}

// Decode parses data in the format named by ext (".yaml", ".yml" or ".toml")
// over a deep copy of defaults.
//
// Parameters:
//   - ext: the file extension
//   - data: the file contents
//   - defaults: the values kept for fields the data omits
//
// Returns:
//   - Config: the merged configuration, or defaults on error
//   - error: the wrapped decode error, or ErrUnsupportedFormat
func Decode(ext string, data []byte, defaults Config) (Config, error) {
	var out Config
	if err := copier.CopyWithOption(&out, &defaults, copier.Option{DeepCopy: true}); err != nil {
		return defaults, fmt.Errorf("copy defaults: %w", err)
	}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
			return defaults, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&out); err != nil {
			return defaults, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return defaults, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return out, nil
}
