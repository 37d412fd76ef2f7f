package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/ars/internal/config"
)

const configHeader = `# ars configuration.
# Every key can also be set with an ARS_ environment variable,
# e.g. ARS_WORKERS=4.
`

func (a *app) initCommand() *cobra.Command {
	var dryRun, force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default " + config.FileName + " file",
		Long: `Write a configuration file containing every setting at its default value.

path defaults to ./` + config.FileName + `. An existing file is left untouched
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) > 0 {
				path = args[0]
			}
			return a.runInit(path, dryRun, force)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the file instead of writing it")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (a *app) runInit(path string, dryRun, force bool) error {
	content, err := defaultConfigFile()
	if err != nil {
		return err
	}

	if dryRun {
		_, _ = fmt.Fprint(a.stdout, content)
		return nil
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(a.stderr, "wrote %s\n", path)
	return nil
}

// defaultConfigFile renders the default configuration with a short header.
func defaultConfigFile() (string, error) {
	data, err := config.Default().YAML()
	if err != nil {
		return "", fmt.Errorf("rendering default config: %w", err)
	}
	return configHeader + string(data), nil
}
