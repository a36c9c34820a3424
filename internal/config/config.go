// Package config loads the radial bar host configuration.
// It supports YAML/JSON/TOML files with RADIALBAR_* environment overrides.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/iburimskiy/radial-bar/internal/chart"
)

const (
	WindowWidth  = 640
	WindowHeight = 480
	TPS          = 60

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	EnvPrefix = "RADIALBAR"
)

// Config is the complete host configuration.
type Config struct {
	Chart   chart.Config      `mapstructure:"chart"`
	Window  WindowConfig      `mapstructure:"window"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Data    []chart.DataPoint `mapstructure:"data"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads the configuration. An empty path searches, in order:
//  1. ./config/radialbar.yaml
//  2. ~/.radialbar/radialbar.yaml
//
// A missing file is fine; defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	} else {
		v.SetConfigName("radialbar")
		v.AddConfigPath("./config")
		v.AddConfigPath(filepath.Join(homeDir(), ".radialbar"))
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// LoadData reads the data list of a data file, as delivered to the chart's
// data property.
func LoadData(path string) ([]chart.DataPoint, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading data file %s", path)
	}
	if !v.IsSet("data") {
		return nil, errors.Errorf("data file %s has no data list", path)
	}
	var data []chart.DataPoint
	if err := v.UnmarshalKey("data", &data); err != nil {
		return nil, errors.Wrapf(err, "decoding data in %s", path)
	}
	return data, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.width", chart.DefaultWidth)
	v.SetDefault("chart.height", chart.DefaultHeight)
	v.SetDefault("chart.colors", chart.DefaultColors)
	v.SetDefault("chart.num_ticks", chart.DefaultNumTicks)

	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Radial Bar - R: replay, Esc/Q: quit")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// NewLogger builds the slog logger described by l, writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if l.Level != "" {
		if err := level.UnmarshalText([]byte(l.Level)); err != nil {
			return nil, errors.Wrapf(err, "logging level %q", l.Level)
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(l.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errors.Errorf("logging format %q: want text or json", l.Format)
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
