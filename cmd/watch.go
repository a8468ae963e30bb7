package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Regenerate the icon whenever the config file changes",
	Long: `Watch the configuration file and write a fresh icon after every change.
Each change triggers a complete reload; an invalid configuration is reported
and the last good icon is left in place.

Examples:
  breakpoints watch -o public/breakpoints.svg
  breakpoints watch --config site/.breakpoints.yml -o site/icon.svg`,
	RunE: runWatch,
}

var (
	watchFlags    *StandardFlags
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddStandardFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond,
		"Wait this long after the last change before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger().WithComponent("watch")

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		err := errors.NewConfigError(errors.ErrCodeFileNotFound,
			"watch needs a config file: create .breakpoints.yml or pass --config")
		reportError(ctx, logger, err)
		return err
	}

	// A broken file at startup is reported like any later edit
	_ = regenerate(ctx, cmd)

	fileWatcher, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	path, err := fileWatcher.AddFile(configFile)
	if err != nil {
		return errors.WrapIO(err, errors.ErrCodeFileNotFound, "failed to watch config file").WithFile(configFile)
	}

	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, event := range events {
			logger.Debug(ctx, "Config file changed", "path", event.Path, "type", event.Type.String())
		}
		return regenerate(ctx, cmd)
	})

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	logger.Info(ctx, "Watching for changes", "path", path)

	<-ctx.Done()
	logger.Info(context.Background(), "Stopping file watcher")
	return nil
}

// regenerate re-reads the config file and writes the icon. Errors are
// logged by loadEnvironment.
func regenerate(ctx context.Context, cmd *cobra.Command) error {
	// Parse errors resurface, with context, from config.Load
	_ = viper.ReadInConfig()

	env, err := loadEnvironment(ctx)
	if err != nil {
		return nil
	}

	if err := writeOutput(cmd, watchFlags.Output, []byte(env.result.App.Icon+"\n")); err != nil {
		return err
	}
	env.logger.Info(ctx, "Icon regenerated",
		"breakpoints", len(env.result.Breakpoints),
		"output", watchFlags.Output)
	return nil
}
