package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phobologic/ars/internal/lang"
	"github.com/phobologic/ars/internal/model"
	"github.com/phobologic/ars/internal/syntax"
	"github.com/phobologic/ars/internal/toon"
	"github.com/phobologic/ars/internal/wire"
)

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a TOON inventory of one source or model file",
		Long: `Print the constructs and function statements of one file in TOON format.

A file with the model extension is read as a persisted model; a Rust source
file is extracted as Rust source on the fly.
Other file types are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			f, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.stdout, toon.Encode(filepath.ToSlash(args[0]), f))
			return nil
		},
	}
}

func (a *app) loadModel(path string) (*model.File, error) {
	ext := filepath.Ext(path)
	if ext == a.cfg.ModelExt {
		return wire.ReadFile(path)
	}
	if ext != a.cfg.SourceExt && lang.ForExtension(ext) == "" {
		return nil, fmt.Errorf("%s: unsupported file type %q", path, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return syntax.Extract(string(data)), nil
}
