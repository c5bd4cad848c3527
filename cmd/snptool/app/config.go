package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdwhitten/microwave-networks/touchstone"
)

// Config is the tool configuration loaded from a yaml file. Every
// field has a default, so running without a config file is fine.
type Config struct {
	Settings Settings     `yaml:"settings"`
	Output   OutputConfig `yaml:"output"`
}

// Settings represents global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// OutputConfig selects how re-encoded files are written.
type OutputConfig struct {
	Version      string `yaml:"version"`      // "1.0" or "2.0"
	Unit         string `yaml:"unit"`         // Hz, kHz, MHz, GHz
	Format       string `yaml:"format"`       // MA, DB, RI
	FieldWidth   int    `yaml:"fieldWidth"`   // 0 disables padding
	MatrixFormat string `yaml:"matrixFormat"` // Full, Upper, Lower
}

// DefaultConfig returns the configuration used when no file is given:
// info-level logging, Version-1.0 output in the decoder's defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{LogLevel: "info"},
		Output:   OutputConfig{Version: "1.0", Unit: "GHz", Format: "MA"},
	}
}

// LoadConfig reads and unmarshals a yaml configuration file on top of
// the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	return config, nil
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.Settings.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EncoderSettings resolves the output section into encoder settings.
func (c *OutputConfig) EncoderSettings() (touchstone.Options, touchstone.Keywords, error) {
	opts := touchstone.DefaultOptions()
	kw := touchstone.Keywords{}

	switch c.Version {
	case "", "1.0":
		opts.Version = touchstone.Version1
	case "2.0":
		opts.Version = touchstone.Version2
	default:
		return opts, kw, fmt.Errorf("unknown output version %q", c.Version)
	}

	if c.Unit != "" {
		unit, ok := touchstone.ParseFrequencyUnit(c.Unit)
		if !ok {
			return opts, kw, fmt.Errorf("unknown frequency unit %q", c.Unit)
		}
		opts.Unit = unit
	}
	if c.Format != "" {
		format, ok := touchstone.ParseFormatType(c.Format)
		if !ok {
			return opts, kw, fmt.Errorf("unknown data format %q", c.Format)
		}
		opts.Format = format
	}
	if c.FieldWidth < 0 {
		return opts, kw, fmt.Errorf("negative field width %d", c.FieldWidth)
	}
	opts.FieldWidth = c.FieldWidth

	if c.MatrixFormat != "" {
		format, ok := touchstone.ParseMatrixFormat(c.MatrixFormat)
		if !ok {
			return opts, kw, fmt.Errorf("unknown matrix format %q", c.MatrixFormat)
		}
		if format != touchstone.FullFormat && opts.Version != touchstone.Version2 {
			return opts, kw, fmt.Errorf("matrix format %s needs version 2.0 output", format)
		}
		kw.MatrixFormat = format
	}

	return opts, kw, nil
}
