package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/phanxgames/nodeboard"
)

// Config holds nodeboard configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Window WindowConfig `toml:"window"`
	Debug  DebugConfig  `toml:"debug"`
}

// CanvasConfig controls the camera, grid, and HUD.
type CanvasConfig struct {
	MinScale     float64 `toml:"min_scale"`
	MaxScale     float64 `toml:"max_scale"`
	ZoomRate     float64 `toml:"zoom_rate"`
	WheelStep    float64 `toml:"wheel_step"`
	GridSize     float64 `toml:"grid_size"`
	Background   string  `toml:"background"`
	GridColor    string  `toml:"grid_color"`
	CameraX      float64 `toml:"camera_x"`
	CameraY      float64 `toml:"camera_y"`
	Scale        float64 `toml:"scale"`
	SnapToGrid   bool    `toml:"snap_to_grid"`
	SnapDuration float64 `toml:"snap_duration"` // seconds, negative snaps instantly
	HideHUD      bool    `toml:"hide_hud"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	ShowFPS   bool   `toml:"show_fps"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			MinScale:     nodeboard.DefaultMinScale,
			MaxScale:     nodeboard.DefaultMaxScale,
			ZoomRate:     nodeboard.DefaultZoomRate,
			WheelStep:    nodeboard.DefaultWheelStep,
			GridSize:     nodeboard.DefaultGridSize,
			Background:   nodeboard.DefaultBackground.String(),
			GridColor:    nodeboard.DefaultGridColor.String(),
			CameraX:      nodeboard.DefaultCamera.X,
			CameraY:      nodeboard.DefaultCamera.Y,
			Scale:        1,
			SnapDuration: nodeboard.DefaultSnapDuration,
		},
		Window: WindowConfig{Title: "nodeboard", Width: 1280, Height: 720, Resizable: true},
		Debug:  DebugConfig{ScreenshotDir: "screenshots"},
	}
}

// ConfigDir returns the nodeboard config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nodeboard")
}

// DefaultPath returns the config file used when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(cfg, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(cfg *Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Options converts the canvas and debug sections to editor options.
func (c *Config) Options() (nodeboard.Options, error) {
	opts := nodeboard.Options{
		MinScale:      c.Canvas.MinScale,
		MaxScale:      c.Canvas.MaxScale,
		GridSize:      c.Canvas.GridSize,
		ZoomRate:      c.Canvas.ZoomRate,
		WheelStep:     c.Canvas.WheelStep,
		InitialCamera: &nodeboard.Vec2{X: c.Canvas.CameraX, Y: c.Canvas.CameraY},
		InitialScale:  c.Canvas.Scale,
		SnapToGrid:    c.Canvas.SnapToGrid,
		SnapDuration:  float32(c.Canvas.SnapDuration),
		HideHUD:       c.Canvas.HideHUD,
		ShowFPS:       c.Window.ShowFPS,
		Debug:         c.Debug.Enabled,
	}
	if c.Canvas.Background != "" {
		bg, err := nodeboard.ParseColor(c.Canvas.Background)
		if err != nil {
			return opts, fmt.Errorf("canvas.background: %w", err)
		}
		opts.Background = bg
	}
	if c.Canvas.GridColor != "" {
		gc, err := nodeboard.ParseColor(c.Canvas.GridColor)
		if err != nil {
			return opts, fmt.Errorf("canvas.grid_color: %w", err)
		}
		opts.GridColor = gc
	}
	return opts, nil
}
