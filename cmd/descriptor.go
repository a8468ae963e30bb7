package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conneroisu/templar-breakpoints/internal/plugins"
	"github.com/conneroisu/templar-breakpoints/internal/toolbar"
)

var descriptorCmd = &cobra.Command{
	Use:     "descriptor",
	Aliases: []string{"d"},
	Short:   "Print the dev toolbar app descriptor",
	Long: `Print the descriptor the host toolbar registers: id, name, icon and
entrypoint.

Examples:
  breakpoints descriptor                        # JSON to stdout
  breakpoints descriptor -f yaml                # YAML to stdout
  breakpoints descriptor -o dist/app.json --write-entrypoint
                                                # Also write dist/app.js`,
	RunE: runDescriptor,
}

var (
	descriptorFlags           *StandardFlags
	descriptorWriteEntrypoint bool
)

func init() {
	rootCmd.AddCommand(descriptorCmd)

	descriptorFlags = AddStandardFlags(descriptorCmd, "json", "yaml")
	descriptorCmd.Flags().BoolVar(&descriptorWriteEntrypoint, "write-entrypoint", false,
		"Write the app runtime module next to the descriptor file")
}

func runDescriptor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := loadEnvironment(ctx)
	if err != nil {
		return err
	}

	// The manager validated the app on registration
	app, _ := env.manager.GetApp(env.result.App.ID)

	data, err := encode(descriptorFlags.Format, app)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, descriptorFlags.Output, data); err != nil {
		return err
	}

	if descriptorWriteEntrypoint {
		path := entrypointPath(descriptorFlags.Output, app)
		if err := writeOutput(cmd, path, toolbar.EntrypointSource()); err != nil {
			return err
		}
		env.logger.Info(ctx, "Entrypoint written", "path", path)
	}
	return nil
}

// entrypointPath resolves the app entrypoint relative to the descriptor file.
func entrypointPath(descriptorPath string, app plugins.DevToolbarApp) string {
	if filepath.IsAbs(app.Entrypoint) {
		return app.Entrypoint
	}
	return filepath.Join(filepath.Dir(descriptorPath), app.Entrypoint)
}
