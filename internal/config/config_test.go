package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(Default()))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"no dot", func(c *Config) { c.SourceExt = "rs" }, ErrInvalidExtension},
		{"empty model ext", func(c *Config) { c.ModelExt = "" }, ErrInvalidExtension},
		{"same extensions", func(c *Config) { c.ModelExt = ".rs" }, ErrInvalidExtension},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidWorkers},
		{"negative size", func(c *Config) { c.MaxFileSize = -5 }, ErrInvalidFileSize},
		{"bad glob", func(c *Config) { c.Exclude = []string{"target/[abc"} }, ErrInvalidPattern},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Workers = -1
	cfg.LogLevel = "chatty"

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkers)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, err := Loader{Dir: t.TempDir()}.Load()
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.SourceExt, cfg.SourceExt)
	assert.Equal(t, want.ModelExt, cfg.ModelExt)
	assert.Equal(t, want.Workers, cfg.Workers)
	assert.Equal(t, want.MaxFileSize, cfg.MaxFileSize)
	assert.Empty(t, cfg.Exclude)
	assert.True(t, cfg.Gitignore)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "source_ext: .rust\nworkers: 3\nexclude:\n  - \"vendor/**\"\ngitignore: false\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	cfg, err := Loader{Dir: dir}.Load()
	require.NoError(t, err)
	assert.Equal(t, ".rust", cfg.SourceExt)
	assert.Equal(t, ".ars", cfg.ModelExt)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	assert.False(t, cfg.Gitignore)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_ext: .model\n"), 0o644))

	cfg, err := Loader{File: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, ".model", cfg.ModelExt)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Parallel()

	_, err := Loader{File: filepath.Join(t.TempDir(), "nope.yaml")}.Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("workers: -2\n"), 0o644))

	_, err := Loader{Dir: dir}.Load()
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("workers: 3\n"), 0o644))
	t.Setenv("ARS_WORKERS", "7")
	t.Setenv("ARS_LOG_LEVEL", "warn")

	cfg, err := Loader{Dir: dir}.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	want := Default()
	want.Workers = 2
	want.Exclude = []string{"**/generated/**"}

	data, err := want.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "source_ext: .rs")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o644))
	got, err := Loader{Dir: dir}.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
