package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// ConfigFileName is looked up by FindConfig
const ConfigFileName = "glox.toml"

const defaultMaxCallDepth = 10000

// Config holds interpreter settings read from glox.toml
type Config struct {
	LogLevel     string `toml:"log_level"`
	Color        bool   `toml:"color"`
	MaxCallDepth int    `toml:"max_call_depth"`

	// Path is the file the config was loaded from, empty for defaults
	Path string `toml:"-"`
}

// DefaultConfig returns the settings used when no glox.toml exists
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warn",
		Color:        true,
		MaxCallDepth: defaultMaxCallDepth,
	}
}

// LoadConfig parses a TOML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig walks up from startDir looking for glox.toml. Defaults are
// returned when none is found.
func FindConfig(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultConfig(), nil
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxCallDepth <= 0 {
		return errors.New("max_call_depth must be positive")
	}
	return nil
}

func (c *Config) level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
