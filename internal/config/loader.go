package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader reads configuration for one working directory.
type Loader struct {
	// Dir is searched for FileName when File is empty.
	Dir string
	// File, when set, is read instead and must exist.
	File string
}

// Load resolves the configuration with this priority (highest first):
// ARS_* environment variables, the config file, Default.
func (l Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if l.File != "" {
		v.SetConfigFile(l.File)
	} else {
		v.SetConfigFile(filepath.Join(l.Dir, FileName))
	}

	v.SetEnvPrefix("ARS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// An explicit --config must exist; the implicit .ars.yaml is optional.
		if l.File != "" || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("source_ext", defaults.SourceExt)
	v.SetDefault("model_ext", defaults.ModelExt)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("max_file_size", defaults.MaxFileSize)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("gitignore", defaults.Gitignore)
	v.SetDefault("log_level", defaults.LogLevel)
}

// isNotFound reports whether err means the config file does not exist.
// SetConfigFile surfaces a missing file as an fs error rather than
// viper.ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
