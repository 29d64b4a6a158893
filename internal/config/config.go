package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/phanxgames/arbor"
)

// Config holds the demo host configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Render   RenderConfig   `mapstructure:"render"`
	Debug    DebugConfig    `mapstructure:"debug"`
	Style    StyleConfig    `mapstructure:"style"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title     string `mapstructure:"title"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Resizable bool   `mapstructure:"resizable"`
	ShowFPS   bool   `mapstructure:"show_fps"`
}

// RenderConfig selects the traversal and raster settings.
type RenderConfig struct {
	Mode       string  `mapstructure:"mode"`
	Background string  `mapstructure:"background"`
	FontSize   float64 `mapstructure:"font_size"`
}

// DebugConfig controls tree checks and logging.
type DebugConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	LogLevel string `mapstructure:"log_level"`
}

// StyleConfig points at an optional YAML color table.
type StyleConfig struct {
	Path string `mapstructure:"path"`
}

// SnapshotConfig holds headless output settings.
type SnapshotConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from file and env. Env var overrides use prefix ARBOR_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.title", "arbor")
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.resizable", false)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("render.mode", "clipped")
	v.SetDefault("render.background", "")
	v.SetDefault("render.font_size", 14.0)
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.log_level", "warn")
	v.SetDefault("style.path", "")
	v.SetDefault("snapshot.dir", "snapshots")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ARBOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "arbor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ARBOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that Unmarshal cannot.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := arbor.ParseRenderMode(c.Render.Mode); err != nil {
		return fmt.Errorf("render.mode: %w", err)
	}
	if c.Render.Background != "" {
		if _, err := arbor.ParseColor(c.Render.Background); err != nil {
			return fmt.Errorf("render.background: %w", err)
		}
	}
	if _, err := parseLevel(c.Debug.LogLevel); err != nil {
		return fmt.Errorf("debug.log_level: %w", err)
	}
	return nil
}

// RenderMode returns the parsed render mode. Call after Validate.
func (c Config) RenderMode() arbor.RenderMode {
	m, _ := arbor.ParseRenderMode(c.Render.Mode)
	return m
}

// Background returns the configured background color, or fallback when
// none is set.
func (c Config) Background(fallback arbor.Color) arbor.Color {
	if c.Render.Background == "" {
		return fallback
	}
	col, err := arbor.ParseColor(c.Render.Background)
	if err != nil {
		return fallback
	}
	return col
}

// LogLevel returns the parsed log level. Call after Validate.
func (c Config) LogLevel() slog.Level {
	l, _ := parseLevel(c.Debug.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}
