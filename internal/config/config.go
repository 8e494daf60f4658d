// Package config handles brickatlas configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"io"

	"go.uber.org/multierr"

	"github.com/Faultbox/brickatlas/internal/colorspace"
	"github.com/Faultbox/brickatlas/internal/logger"
	"github.com/Faultbox/brickatlas/internal/scene"
	"github.com/Faultbox/brickatlas/pkg/formats"
)

// Config holds all settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds vertex buffer build settings.
type RenderConfig struct {
	Fills      bool   `yaml:"fills"`
	Outlines   bool   `yaml:"outlines"`
	Heightmap  bool   `yaml:"heightmap"` // shade fills by height instead of brick color
	Buckets    int    `yaml:"buckets"`
	ColorSpace string `yaml:"color_space"` // srgb or linear
}

// PreviewConfig holds image preview settings.
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       float32 `yaml:"scale"` // pixels per unit; 0 fits the map
	Margin      float32 `yaml:"margin"`
	Rotation    float32 `yaml:"rotation"` // degrees
	MinBucket   int     `yaml:"min_bucket"`
	MaxBucket   int     `yaml:"max_bucket"` // negative means the last bucket
	Supersample int     `yaml:"supersample"`
	Background  string  `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	file := logger.DefaultFileConfig("")
	return &Config{
		Render: RenderConfig{
			Fills:      true,
			Outlines:   true,
			Heightmap:  false,
			Buckets:    scene.DefaultBuckets,
			ColorSpace: "srgb",
		},
		Preview: PreviewConfig{
			Width:       1024,
			Height:      1024,
			Scale:       0,
			Margin:      16,
			Rotation:    0,
			MinBucket:   0,
			MaxBucket:   -1,
			Supersample: 2,
			Background:  "#303038",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogFile:    "",
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	}
}

// MaxBuckets caps the height index resolution.
const MaxBuckets = 1 << 16

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Render.Buckets <= 0 || c.Render.Buckets > MaxBuckets {
		err = multierr.Append(err, fmt.Errorf("render.buckets must be between 1 and %d, got %d", MaxBuckets, c.Render.Buckets))
	}
	if _, cerr := colorspace.ByName(c.Render.ColorSpace); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("render.color_space: %w", cerr))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height))
	}
	if c.Preview.Scale < 0 {
		err = multierr.Append(err, fmt.Errorf("preview.scale must not be negative, got %v", c.Preview.Scale))
	}
	if c.Preview.MaxBucket >= 0 && c.Preview.MinBucket > c.Preview.MaxBucket {
		err = multierr.Append(err, fmt.Errorf("preview.min_bucket %d is above preview.max_bucket %d", c.Preview.MinBucket, c.Preview.MaxBucket))
	}
	if c.Preview.Supersample < 0 || c.Preview.Supersample > 8 {
		err = multierr.Append(err, fmt.Errorf("preview.supersample must be between 0 and 8, got %d", c.Preview.Supersample))
	}
	if _, berr := c.Preview.BackgroundColor(); berr != nil {
		err = multierr.Append(err, fmt.Errorf("preview.background: %w", berr))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return err
}

// SceneOptions converts render settings into build options.
func (r RenderConfig) SceneOptions() scene.Options {
	return scene.Options{Fills: r.Fills, Outlines: r.Outlines, Buckets: r.Buckets}
}

// Converter returns the configured color converter.
func (r RenderConfig) Converter() (colorspace.Converter, error) {
	return colorspace.ByName(r.ColorSpace)
}

// BackgroundColor parses the background hex color.
func (p PreviewConfig) BackgroundColor() (color.RGBA, error) {
	return formats.ParseHexColor(p.Background)
}

// Window resolves the bucket window against an index with n buckets.
func (p PreviewConfig) Window(n int) (lo, hi int) {
	lo, hi = max(p.MinBucket, 0), p.MaxBucket
	if hi < 0 || hi >= n {
		hi = n - 1
	}
	return lo, hi
}

// LoggerOptions converts logging settings for logger.InitWithOptions.
func (l LoggingConfig) LoggerOptions(console io.Writer) logger.Options {
	opts := logger.Options{Level: l.Level, Format: l.Format, Console: console}
	if l.LogFile != "" {
		opts.File = logger.FileConfig{
			Path:       l.LogFile,
			MaxSizeMB:  l.MaxSizeMB,
			MaxBackups: l.MaxBackups,
			MaxAgeDays: l.MaxAgeDays,
			Compress:   l.Compress,
		}
	}
	return opts
}
