// Package config loads the gridview demo configuration from YAML.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/gridgen"
)

// Config holds the full demo configuration.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Grid     GridConfig     `yaml:"grid"`
	Viewport ViewportConfig `yaml:"viewport"`
	Log      LogConfig      `yaml:"log"`
	Headless HeadlessConfig `yaml:"headless"`
}

// CanvasConfig sets the initial canvas size in pixels. In window mode the
// width follows the window.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig selects the grid source: an image file when Image is set,
// otherwise a random grid.
type GridConfig struct {
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
	Image       string `yaml:"image"`
	Fit         bool   `yaml:"fit"`  // resample Image to columns × rows
	Seed        uint64 `yaml:"seed"` // 0 = different every run
	Marker      string `yaml:"marker"`
	MarkerColor string `yaml:"marker_color"`
}

// ViewportConfig sets the initial viewport and the input step sizes.
type ViewportConfig struct {
	Scale       float64 `yaml:"scale"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	MinScale    float64 `yaml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale"`
	PanStep     float64 `yaml:"pan_step"`
	ScaleStep   float64 `yaml:"scale_step"`
	WheelFactor float64 `yaml:"wheel_factor"`
}

// LogConfig configures the slog handler of the binary.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// HeadlessConfig configures replay without a window.
type HeadlessConfig struct {
	Hz int `yaml:"hz"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Viewport: ViewportConfig{
			Scale:   gridview.DefaultScale,
			OffsetX: gridview.DefaultOffset.X,
			OffsetY: gridview.DefaultOffset.Y,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads and parses a YAML config file on top of Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.Canvas.Width == 0 {
		c.Canvas.Width = 800
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = 500
	}
	if c.Grid.Columns == 0 {
		c.Grid.Columns = 100
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 100
	}
	if c.Grid.Marker == "" {
		c.Grid.Marker = "first"
	}
	if c.Grid.MarkerColor == "" {
		c.Grid.MarkerColor = "#ff0000"
	}
	if c.Viewport.Scale == 0 {
		c.Viewport.Scale = gridview.DefaultScale
	}
	if c.Viewport.PanStep == 0 {
		c.Viewport.PanStep = 1
	}
	if c.Viewport.ScaleStep == 0 {
		c.Viewport.ScaleStep = 0.1
	}
	if c.Viewport.WheelFactor == 0 {
		c.Viewport.WheelFactor = 1.1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Headless.Hz == 0 {
		c.Headless.Hz = 60
	}
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("canvas: size must be >= 0, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Grid.Columns < 0 || c.Grid.Rows < 0 {
		return fmt.Errorf("grid: size must be positive, got %dx%d", c.Grid.Columns, c.Grid.Rows)
	}
	if _, err := gridgen.ParseMarker(c.Grid.Marker); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if _, ok := gridview.Hex(c.Grid.MarkerColor); !ok {
		return fmt.Errorf("grid: invalid marker_color %q", c.Grid.MarkerColor)
	}
	v := c.Viewport
	if !positive(v.Scale) {
		return fmt.Errorf("viewport: scale must be > 0, got %v", v.Scale)
	}
	if !finite(v.OffsetX) || !finite(v.OffsetY) {
		return fmt.Errorf("viewport: offset must be finite")
	}
	if v.MinScale < 0 || v.MaxScale < 0 || (v.MaxScale > 0 && v.MaxScale < v.MinScale) {
		return fmt.Errorf("viewport: invalid scale limits [%v, %v]", v.MinScale, v.MaxScale)
	}
	if !positive(v.PanStep) || !positive(v.ScaleStep) {
		return fmt.Errorf("viewport: pan_step and scale_step must be > 0")
	}
	if !(v.WheelFactor > 1) || math.IsInf(v.WheelFactor, 0) {
		return fmt.Errorf("viewport: wheel_factor must be > 1, got %v", v.WheelFactor)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log: unsupported format %q (use text or json)", c.Log.Format)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("headless: hz must be > 0, got %d", c.Headless.Hz)
	}
	return nil
}

// ViewportOptions converts the viewport section to gridview options.
func (c *Config) ViewportOptions() []gridview.ViewportOption {
	v := c.Viewport
	return []gridview.ViewportOption{
		gridview.WithScale(v.Scale),
		gridview.WithOffset(gridview.Pt(v.OffsetX, v.OffsetY)),
		gridview.WithScaleLimits(v.MinScale, v.MaxScale),
	}
}

// BuildGrid loads the configured image or generates a random grid.
func (c *Config) BuildGrid() (*gridview.Grid, error) {
	g := c.Grid
	if g.Image != "" {
		var opts []gridview.LoadOption
		if g.Fit {
			opts = append(opts, gridview.WithFit(g.Columns, g.Rows))
		}
		return gridview.LoadGrid(g.Image, opts...)
	}

	marker, err := gridgen.ParseMarker(g.Marker)
	if err != nil {
		return nil, err
	}
	color, _ := gridview.Hex(g.MarkerColor)
	opts := []gridgen.Option{gridgen.WithMarker(marker), gridgen.WithMarkerColor(color)}
	if g.Seed != 0 {
		opts = append(opts, gridgen.WithSeed(g.Seed))
	}
	return gridgen.Random(g.Columns, g.Rows, opts...)
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log: %w", err)
	}
	return level, nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
