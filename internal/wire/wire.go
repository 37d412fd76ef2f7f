// Package wire reads and writes the persisted form of a model.File.
//
// The format is YAML with snake_case keys. Optional fields are omitted and
// unknown keys are rejected on decode.
package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/phobologic/ars/internal/model"
)

// DecodeError is returned when persisted data cannot be turned back into a
// model.File.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decoding model: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrEmpty is wrapped by DecodeError when the input holds no document.
var ErrEmpty = errors.New("empty document")

// Marshal encodes f as YAML.
func Marshal(f *model.File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding model: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding model: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML document produced by Marshal. Errors are
// *DecodeError.
func Unmarshal(data []byte) (*model.File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f model.File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmpty
		}
		return nil, &DecodeError{Err: err}
	}
	return &f, nil
}

// ReadFile reads and decodes the model stored at path.
func ReadFile(path string) (*model.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Unmarshal(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return f, nil
}

// WriteFile encodes f and writes it to path, creating parent directories.
func WriteFile(path string, f *model.File) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
