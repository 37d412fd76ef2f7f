package mirror

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/ars/internal/model"
	"github.com/phobologic/ars/internal/wire"
)

const pointSource = `use std::fmt;

struct Point {
    x: i32,
    y: i32,
}

fn main() {
    let p = Point { x: 1, y: 2 };
    println!("{}", p.x);
}
`

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaultOptions() Options {
	return Options{SourceExt: ".rs", ModelExt: ".ars", Workers: 2}
}

func TestEncodeDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "main.rs", pointSource)
	modelPath := filepath.Join(dir, "out", "main.ars")
	back := filepath.Join(dir, "back", "main.rs")

	require.NoError(t, EncodeFile(src, modelPath))
	f, err := wire.ReadFile(modelPath)
	require.NoError(t, err)
	require.Len(t, f.Structs, 1)
	assert.Equal(t, "Point", f.Structs[0].Name)
	require.Len(t, f.Functions, 1)

	require.NoError(t, DecodeFile(modelPath, back))
	data, err := os.ReadFile(back)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "use std::fmt;")
	assert.Contains(t, text, "struct Point {\n    x: i32,\n    y: i32,\n}")
	assert.Contains(t, text, "fn main() {\n")
}

func TestEncodeFileMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := EncodeFile(filepath.Join(dir, "nope.rs"), filepath.Join(dir, "nope.ars"))

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "encode", fe.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeFileInvalidModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "bad.ars", "not_a_field: true\n")

	err := DecodeFile(src, filepath.Join(dir, "bad.rs"))
	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "decode", fe.Op)
	var de *wire.DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestEncodeTreeMirrorsLayout(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "models")
	writeFile(t, in, "main.rs", pointSource)
	writeFile(t, in, "src/lib.rs", "pub mod util;\n")
	writeFile(t, in, "src/util/mod.rs", "pub const N: u8 = 1;\n")
	writeFile(t, in, "README.md", "# readme\n")

	rep := &countingReporter{}
	opts := defaultOptions()
	opts.Reporter = rep

	stats, err := EncodeTree(context.Background(), in, out, opts)
	require.NoError(t, err)
	assert.Equal(t, Stats{Files: 3, Written: 3}, stats)
	assert.Equal(t, 3, rep.total)
	assert.Len(t, rep.advanced, 3)
	assert.True(t, rep.finished)

	for _, rel := range []string{"main.ars", "src/lib.ars", "src/util/mod.ars"} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
	assert.NoFileExists(t, filepath.Join(out, "README.ars"))

	back := filepath.Join(t.TempDir(), "src")
	stats, err = DecodeTree(context.Background(), out, back, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Written)

	data, err := os.ReadFile(filepath.Join(back, "src", "util", "mod.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub const N: u8 = 1;\n", string(data))
}

func TestEncodeTreeIncludesModuleDirsNamedLikeBuildOutput(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "lib.rs", "mod build;\nmod vendor;\nmod dist;\n")
	writeFile(t, in, "build/mod.rs", "pub fn step() {}\n")
	writeFile(t, in, "vendor/mod.rs", "pub const V: u8 = 1;\n")
	writeFile(t, in, "dist/mod.rs", "pub type D = u8;\n")
	writeFile(t, in, "target/debug/gen.rs", "fn generated() {}\n")

	stats, err := EncodeTree(context.Background(), in, out, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Stats{Files: 4, Written: 4}, stats)

	for _, rel := range []string{"lib.ars", "build/mod.ars", "vendor/mod.ars", "dist/mod.ars"} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
	assert.NoDirExists(t, filepath.Join(out, "target"))
}

func TestEncodeTreeSkipsLargeFiles(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "small.rs", "const A: u8 = 1;\n")
	writeFile(t, in, "big.rs", "// "+strings.Repeat("x", 200)+"\n")

	opts := defaultOptions()
	opts.MaxFileSize = 100

	stats, err := EncodeTree(context.Background(), in, out, opts)
	require.NoError(t, err)
	assert.Equal(t, Stats{Files: 2, Written: 1, Skipped: 1}, stats)
	assert.NoFileExists(t, filepath.Join(out, "big.ars"))
}

func TestDecodeTreeContinuesPastFailures(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := t.TempDir()
	good, err := wire.Marshal(&model.File{})
	require.NoError(t, err)
	writeFile(t, in, "a.ars", string(good))
	writeFile(t, in, "b.ars", "structs: [broken\n")
	writeFile(t, in, "c.ars", string(good))

	stats, err := DecodeTree(context.Background(), in, out, defaultOptions())
	require.Error(t, err)
	assert.Equal(t, Stats{Files: 3, Written: 2, Failed: 1}, stats)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, filepath.Join(in, "b.ars"), fe.Path)
	assert.FileExists(t, filepath.Join(out, "a.rs"))
	assert.FileExists(t, filepath.Join(out, "c.rs"))
}

func TestEncodeTreeCancelled(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writeFile(t, in, "a.rs", "fn a() {}\n")
	writeFile(t, in, "b.rs", "fn b() {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := EncodeTree(ctx, in, t.TempDir(), defaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.Written)
	assert.Equal(t, 2, stats.Failed)
}

func TestEncodeTreeMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := EncodeTree(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir(), defaultOptions())
	require.Error(t, err)
	var fe *FileError
	assert.False(t, errors.As(err, &fe), "walk errors are not per-file errors")
}

func TestMirrorPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("out", "src", "lib.ars"), MirrorPath("out", filepath.Join("src", "lib.rs"), ".rs", ".ars"))
	assert.Equal(t, filepath.Join("out", "main.rs"), MirrorPath("out", "main.ars", ".ars", ".rs"))
}

type countingReporter struct {
	total    int
	advanced []string
	finished bool
}

func (r *countingReporter) Start(total int)     { r.total = total }
func (r *countingReporter) Advance(path string) { r.advanced = append(r.advanced, path) }
func (r *countingReporter) Finish()             { r.finished = true }
