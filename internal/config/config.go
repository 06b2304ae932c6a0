package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given, relative to the
// working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds viewer settings. Fields missing from the file keep their Default() values.
type Config struct {
	Window  Window  `yaml:"window"`
	Asset   Asset   `yaml:"asset"`
	Render  Render  `yaml:"render"`
	Capture Capture `yaml:"capture"`
	UI      UI      `yaml:"ui"`
	Log     Log     `yaml:"log"`
}

// Window sizes the drawing surface. Zero width or height means "primary monitor size".
// The size is fixed at start; the window is not resizable.
type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Asset is the model loaded into the scene. Copies independent loads are issued.
type Asset struct {
	Path   string `yaml:"path"`
	Copies int    `yaml:"copies"`
}

// Render holds camera and drawing preferences. Colors are #RGB or #RRGGBB.
type Render struct {
	FOV        float32    `yaml:"fov"`
	Camera     [3]float32 `yaml:"camera"`
	Background string     `yaml:"background"`
	CubeColor  string     `yaml:"cube_color"`
	ShowGrid   bool       `yaml:"show_grid"`
	ShowFPS    bool       `yaml:"show_fps"`
}

// Capture controls F12 screenshots.
type Capture struct {
	Dir   string  `yaml:"dir"`
	Scale float64 `yaml:"scale"`
}

// UI overrides the overlay look. Font is a file path or a family name searched under
// assets/fonts; Stylesheet is a CSS file replacing the built-in one. Empty keeps the defaults.
type UI struct {
	Font       string `yaml:"font"`
	Stylesheet string `yaml:"stylesheet"`
}

// Log configures the log file.
type Log struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "transform viewer",
			TargetFPS: 60,
		},
		Asset: Asset{
			Path:   "assets/gandhi/scene.gltf",
			Copies: 2,
		},
		Render: Render{
			FOV:        75,
			Camera:     [3]float32{0, 0, 10},
			Background: "#000000",
			CubeColor:  "#000000",
		},
		Capture: Capture{
			Dir:   "captures",
			Scale: 1,
		},
		Log: Log{
			File: "logs/viewer.txt",
		},
	}
}

// Load reads path over Default(). A missing file is reported with an error wrapping
// os.ErrNotExist so callers can fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load that treats a missing file as "use defaults".
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
