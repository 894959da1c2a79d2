// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads qrgen settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrgen"
)

// Output formats.
var Formats = []string{"utf8", "utf8i", "ascii", "asciii", "pbm", "png"}

type Config struct {
	Level     string `yaml:"level"`     // error correction level, l|m|q|h
	Format    string `yaml:"format"`    // output format, empty for automatic
	Scale     int    `yaml:"scale"`     // image pixels per module
	Border    int    `yaml:"border"`    // quiet zone modules
	Width     int    `yaml:"width"`     // PNG width in pixels, 0 to use scale
	Uppercase bool   `yaml:"uppercase"` // convert input to upper case
	Normalize bool   `yaml:"normalize"` // apply NFKC to input
	LogLevel  string `yaml:"loglevel"`  // debug|info|warn|error
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		Level:    qr.DefaultLevel.String(),
		Scale:    4,
		Border:   qr.QuietZone,
		LogLevel: "warn",
	}
}

// DefaultPath returns the path of the per-user configuration file,
// qrgen/config.yaml under the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qrgen", "config.yaml"), nil
}

// Load reads the configuration from path.  Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the configuration from DefaultPath.  If the file
// does not exist, LoadDefault returns Defaults.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Defaults(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Save writes cfg to path in YAML format, creating parent directories
// as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate reports the first invalid setting in cfg.
func (cfg *Config) Validate() error {
	if _, err := qr.ParseLevel(cfg.Level); err != nil {
		return err
	}
	if cfg.Format != "" && !isFormat(cfg.Format) {
		return fmt.Errorf("format %q: not one of %v", cfg.Format, Formats)
	}
	switch {
	case cfg.Scale < 1:
		return fmt.Errorf("scale %d: must be positive", cfg.Scale)
	case cfg.Border < 0:
		return fmt.Errorf("border %d: must not be negative", cfg.Border)
	case cfg.Width < 0:
		return fmt.Errorf("width %d: must not be negative", cfg.Width)
	}
	_, err := cfg.SlogLevel()
	return err
}

// SlogLevel returns the log level named by cfg.LogLevel.
func (cfg *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("loglevel %q: %w", cfg.LogLevel, err)
	}
	return l, nil
}

func isFormat(s string) bool {
	for _, f := range Formats {
		if s == f {
			return true
		}
	}
	return false
}
