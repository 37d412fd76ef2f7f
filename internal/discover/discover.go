// Package discover finds the files a directory-mode command should process.
package discover

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileEntry represents a discovered file.
type FileEntry struct {
	Path string // Relative to root
	Size int64
}

// Options selects which files Files returns.
type Options struct {
	// Extension keeps only files with this extension, e.g. ".rs".
	Extension string
	// Exclude holds glob patterns matched against slash-separated relative
	// paths. A matching directory is not descended into.
	Exclude []string
	// Gitignore drops files ignored by git (git ls-files inside a work tree,
	// the root .gitignore otherwise).
	Gitignore bool
	// Logger receives a debug record for every directory not descended into.
	// Nil discards them.
	Logger *slog.Logger
}

// skipDirs holds cargo's output directory and VCS metadata. Anything else may
// be a module directory and is walked.
var skipDirs = map[string]struct{}{
	"target": {},
	".git":   {},
	".hg":    {},
	".svn":   {},
}

// SkipDir reports whether a directory with this base name is never
// descended into: hidden directories and cargo's target directory.
func SkipDir(name string) bool {
	_, skip := skipDirs[name]
	return skip || strings.HasPrefix(name, ".")
}

// Files walks root and returns the matching files sorted by relative path.
// Hidden entries, symlinks and the target directory are skipped.
func Files(root string, opts Options) ([]FileEntry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var (
		gitFiles map[string]struct{}
		gi       *ignore.GitIgnore
	)
	if opts.Gitignore {
		gitFiles = gitLsFiles(root)
		if gitFiles == nil {
			gi = loadGitignore(root)
		}
	}

	var results []FileEntry

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if SkipDir(name) {
				logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			if rel, err := filepath.Rel(root, path); err == nil && excluded(excludes, rel) {
				logger.Debug("skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if opts.Extension != "" && filepath.Ext(name) != opts.Extension {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gitFiles != nil {
			if _, ok := gitFiles[filepath.ToSlash(rel)]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		if excluded(excludes, rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		results = append(results, FileEntry{Path: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func excluded(globs []glob.Glob, rel string) bool {
	slash := filepath.ToSlash(rel)
	for _, g := range globs {
		if g.Match(slash) {
			return true
		}
	}
	return false
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
