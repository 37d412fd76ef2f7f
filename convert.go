package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/ars/internal/mirror"
)

func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <in> <out>",
		Short: "Extract Rust source into .ars models",
		Long: `Extract a Rust source file into an .ars model file, or every source file
under a directory into a mirrored tree of model files.

Files that fail are reported and skipped; the command still exits non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return a.convert(cmd.Context(), args[0], args[1], "encode")
		},
	}
}

func (a *app) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <in> <out>",
		Short: "Reconstruct Rust source from .ars models",
		Long: `Reconstruct a Rust source file from an .ars model file, or every model
file under a directory into a mirrored tree of source files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return a.convert(cmd.Context(), args[0], args[1], "decode")
		},
	}
}

func (a *app) convert(ctx context.Context, in, out, op string) error {
	info, err := os.Stat(in)
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}

	if !info.IsDir() {
		convertFile := mirror.EncodeFile
		if op == "decode" {
			convertFile = mirror.DecodeFile
		}
		if err := convertFile(in, out); err != nil {
			return err
		}
		a.logger.Debug("converted", "op", op, "in", in, "out", out)
		return nil
	}

	convertTree := mirror.EncodeTree
	description := "Encoding"
	if op == "decode" {
		convertTree = mirror.DecodeTree
		description = "Decoding"
	}
	stats, err := convertTree(ctx, in, out, a.mirrorOptions(description))
	a.logger.Info(op+" finished",
		"files", stats.Files,
		"written", stats.Written,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	if err != nil {
		return err
	}
	if stats.Files == 0 {
		a.logger.Warn("no input files found", "root", in)
	}
	return nil
}
