// ars converts Rust source files to a structured model and back.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/ars/internal/config"
	"github.com/phobologic/ars/internal/mirror"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the writers and global flags of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	verbose    bool
	workers    int
	progress   bool

	cfg    *config.Config
	logger *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(context.Background())
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ars",
		Short: "Convert Rust sources to .ars models and back",
		Long: `ars extracts the top-level constructs of Rust source files (attributes,
imports, constants, statics, type aliases, macros, structs, enums, traits,
impl blocks, modules and functions) into a YAML model, and reconstructs
equivalent Rust source from that model.

Directory arguments are processed recursively and mirrored 1:1.

Examples:
  ars encode src/ models/       # every .rs file under src/
  ars decode models/ rebuilt/   # back to .rs
  ars inspect src/main.rs       # TOON inventory of one file`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("ars {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./"+config.FileName+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.IntVar(&a.workers, "workers", 0, "parallel workers in directory mode (default from config)")
	flags.BoolVar(&a.progress, "progress", false, "show a progress bar in directory mode")

	root.AddCommand(
		a.encodeCommand(),
		a.decodeCommand(),
		a.inspectCommand(),
		a.watchCommand(),
		a.initCommand(),
	)
	return root
}

// setup loads configuration and builds the logger. Commands that read
// configuration call it first.
func (a *app) setup(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Loader{Dir: wd, File: a.configFile}.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		if a.workers < 0 {
			return fmt.Errorf("--workers must be >= 0, got %d", a.workers)
		}
		cfg.Workers = a.workers
	}

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) mirrorOptions(description string) mirror.Options {
	opts := mirror.Options{
		SourceExt:   a.cfg.SourceExt,
		ModelExt:    a.cfg.ModelExt,
		Workers:     a.cfg.Workers,
		MaxFileSize: a.cfg.MaxFileSize,
		Exclude:     a.cfg.Exclude,
		Gitignore:   a.cfg.Gitignore,
		Logger:      a.logger,
	}
	if a.progress {
		opts.Reporter = mirror.NewBarReporter(a.stderr, description)
	}
	return opts
}
