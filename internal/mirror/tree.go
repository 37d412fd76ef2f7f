package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/phobologic/ars/internal/discover"
)

// Options controls a tree conversion.
type Options struct {
	SourceExt   string
	ModelExt    string
	Workers     int   // 0 means GOMAXPROCS
	MaxFileSize int64 // 0 disables the limit
	Exclude     []string
	Gitignore   bool
	Logger      *slog.Logger
	Reporter    Reporter
}

// Stats summarizes a tree conversion.
type Stats struct {
	Files   int // inputs discovered
	Written int
	Skipped int // over the size limit
	Failed  int
}

// direction describes one way through the codec.
type direction struct {
	op      string
	fromExt string
	toExt   string
	convert func(src, dst string) error
}

// EncodeTree encodes every source file under inRoot into a model file at the
// mirrored path under outRoot.
func EncodeTree(ctx context.Context, inRoot, outRoot string, opts Options) (Stats, error) {
	return convertTree(ctx, inRoot, outRoot, opts, direction{
		op:      "encode",
		fromExt: opts.SourceExt,
		toExt:   opts.ModelExt,
		convert: EncodeFile,
	})
}

// DecodeTree decodes every model file under inRoot into a source file at the
// mirrored path under outRoot.
func DecodeTree(ctx context.Context, inRoot, outRoot string, opts Options) (Stats, error) {
	return convertTree(ctx, inRoot, outRoot, opts, direction{
		op:      "decode",
		fromExt: opts.ModelExt,
		toExt:   opts.SourceExt,
		convert: DecodeFile,
	})
}

// MirrorPath maps a path relative to the input root onto the output root,
// swapping fromExt for toExt.
func MirrorPath(outRoot, rel, fromExt, toExt string) string {
	return filepath.Join(outRoot, strings.TrimSuffix(rel, fromExt)+toExt)
}

func convertTree(ctx context.Context, inRoot, outRoot string, opts Options, dir direction) (Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	files, err := discover.Files(inRoot, discover.Options{
		Extension: dir.fromExt,
		Exclude:   opts.Exclude,
		Gitignore: opts.Gitignore,
		Logger:    logger,
	})
	if err != nil {
		return Stats{}, fmt.Errorf("discovering files: %w", err)
	}

	stats := Stats{Files: len(files)}
	files = filterBySize(files, opts.MaxFileSize, logger)
	stats.Skipped = stats.Files - len(files)

	logger.Debug("converting tree", "op", dir.op, "root", inRoot, "files", len(files))

	reporter.Start(len(files))
	errs := processConcurrent(ctx, files, opts.Workers, func(f discover.FileEntry) error {
		return dir.convert(filepath.Join(inRoot, f.Path), MirrorPath(outRoot, f.Path, dir.fromExt, dir.toExt))
	}, reporter)
	reporter.Finish()

	var failures []error
	for i, err := range errs {
		if err == nil {
			stats.Written++
			logger.Debug("converted", "op", dir.op, "path", files[i].Path)
			continue
		}
		stats.Failed++
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("conversion failed", "op", dir.op, "path", files[i].Path, "err", err)
		}
		failures = append(failures, err)
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, errors.Join(failures...)
}

func filterBySize(files []discover.FileEntry, maxSize int64, logger *slog.Logger) []discover.FileEntry {
	if maxSize <= 0 {
		return files
	}
	var kept []discover.FileEntry
	for _, f := range files {
		if f.Size > maxSize {
			logger.Warn("skipped", "path", f.Path, "size", f.Size, "limit", maxSize)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// processConcurrent runs fn over files on a bounded pool of workers and
// returns each file's error at the file's index. Files not started before ctx
// is cancelled get ctx's error.
func processConcurrent(ctx context.Context, files []discover.FileEntry, workers int, fn func(discover.FileEntry) error, reporter Reporter) []error {
	type result struct {
		index int
		err   error
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make(chan result, len(files))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				if err := ctx.Err(); err != nil {
					results <- result{index: idx, err: err}
					continue
				}
				results <- result{index: idx, err: fn(files[idx])}
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results in original order
	errs := make([]error, len(files))
	for r := range results {
		errs[r.index] = r.err
		reporter.Advance(files[r.index].Path)
	}
	return errs
}
