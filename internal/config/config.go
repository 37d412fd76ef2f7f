// Package config loads ars settings from defaults, an optional .ars.yaml file
// and ARS_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".ars.yaml"

// Config holds every setting the commands read.
type Config struct {
	SourceExt   string   `yaml:"source_ext" mapstructure:"source_ext"`       // extension of Rust sources
	ModelExt    string   `yaml:"model_ext" mapstructure:"model_ext"`         // extension of persisted models
	Workers     int      `yaml:"workers" mapstructure:"workers"`             // 0 means GOMAXPROCS
	MaxFileSize int64    `yaml:"max_file_size" mapstructure:"max_file_size"` // bytes; larger files are skipped
	Exclude     []string `yaml:"exclude" mapstructure:"exclude"`             // glob patterns on slash paths
	Gitignore   bool     `yaml:"gitignore" mapstructure:"gitignore"`         // honor .gitignore in directory mode
	LogLevel    string   `yaml:"log_level" mapstructure:"log_level"`         // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceExt:   ".rs",
		ModelExt:    ".ars",
		Workers:     0,
		MaxFileSize: 1 << 20,
		Exclude:     []string{},
		Gitignore:   true,
		LogLevel:    "info",
	}
}

// YAML renders the configuration in the format read back by Load.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Level returns the slog level named by LogLevel. Unknown names map to info;
// Validate rejects them first.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
