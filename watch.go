package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/phobologic/ars/internal/mirror"
	"github.com/phobologic/ars/internal/watch"
)

func (a *app) watchCommand() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <in-dir> <out-dir>",
		Short: "Keep a model tree in sync with a source tree",
		Long: `Encode every source file under in-dir, then re-encode files as they change.
Removing a source file removes its mirrored model. Runs until interrupted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			inDir, outDir := args[0], args[1]

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stats, err := mirror.EncodeTree(ctx, inDir, outDir, a.mirrorOptions("Encoding"))
			if err != nil && stats.Files == 0 {
				return err
			}
			a.logger.Info("initial encode finished", "files", stats.Files, "written", stats.Written, "failed", stats.Failed)

			w, err := watch.New(inDir, a.cfg.SourceExt, debounce, a.logger)
			if err != nil {
				return err
			}
			defer w.Close()

			a.logger.Info("watching", "dir", inDir)
			return w.Run(ctx, func(paths []string) {
				syncBatch(inDir, outDir, a.cfg.SourceExt, a.cfg.ModelExt, paths, a.logger)
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before a batch of changes is processed")
	return cmd
}

// syncBatch re-encodes each changed source path and removes the mirrored
// model of each path that no longer exists. It returns the number of files
// written and removed.
func syncBatch(inDir, outDir, sourceExt, modelExt string, paths []string, logger *slog.Logger) (written, removed int) {
	for _, path := range paths {
		rel, err := filepath.Rel(inDir, path)
		if err != nil {
			logger.Warn("path outside watched tree", "path", path, "err", err)
			continue
		}
		dst := mirror.MirrorPath(outDir, rel, sourceExt, modelExt)

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("removing model", "path", dst, "err", err)
				continue
			}
			logger.Debug("removed", "path", dst)
			removed++
			continue
		}

		if err := mirror.EncodeFile(path, dst); err != nil {
			logger.Warn("encode failed", "err", err)
			continue
		}
		logger.Debug("encoded", "path", path, "out", dst)
		written++
	}
	if written+removed > 0 {
		logger.Info(fmt.Sprintf("synced %d file(s)", written+removed), "written", written, "removed", removed)
	}
	return written, removed
}
