package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidExtension indicates a missing or malformed file extension.
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidFileSize indicates a negative size limit.
	ErrInvalidFileSize = errors.New("invalid max file size")

	// ErrInvalidPattern indicates an exclude pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid exclude pattern")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks that the configuration is usable. All problems are
// reported together.
func Validate(cfg *Config) error {
	var errs []error

	for _, ext := range []struct{ key, value string }{
		{"source_ext", cfg.SourceExt},
		{"model_ext", cfg.ModelExt},
	} {
		if len(ext.value) < 2 || ext.value[0] != '.' || strings.ContainsAny(ext.value, `/\ `) {
			errs = append(errs, fmt.Errorf("%w: %s must look like \".rs\", got %q", ErrInvalidExtension, ext.key, ext.value))
		}
	}
	if cfg.SourceExt == cfg.ModelExt {
		errs = append(errs, fmt.Errorf("%w: source_ext and model_ext are both %q", ErrInvalidExtension, cfg.SourceExt))
	}

	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidWorkers, cfg.Workers))
	}
	if cfg.MaxFileSize < 0 {
		errs = append(errs, fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidFileSize, cfg.MaxFileSize))
	}

	for _, p := range cfg.Exclude {
		if _, err := glob.Compile(p, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err))
		}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel))
	}

	return errors.Join(errs...)
}
