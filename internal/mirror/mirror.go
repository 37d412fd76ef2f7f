// Package mirror converts single files and whole directory trees between
// Rust sources and persisted models.
package mirror

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phobologic/ars/internal/syntax"
	"github.com/phobologic/ars/internal/wire"
)

// FileError records which file and step failed during a conversion.
type FileError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// EncodeFile extracts the Rust source at src and writes its model to dst.
func EncodeFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return &FileError{Path: src, Op: "encode", Err: err}
	}
	if err := wire.WriteFile(dst, syntax.Extract(string(data))); err != nil {
		return &FileError{Path: src, Op: "encode", Err: err}
	}
	return nil
}

// DecodeFile reads the model at src and writes the reconstructed source to dst.
func DecodeFile(src, dst string) error {
	f, err := wire.ReadFile(src)
	if err != nil {
		return &FileError{Path: src, Op: "decode", Err: err}
	}
	if err := writeText(dst, syntax.Reconstruct(f)); err != nil {
		return &FileError{Path: src, Op: "decode", Err: err}
	}
	return nil
}

func writeText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
