// Package cmd provides the command-line interface for the Tailwind CSS
// breakpoint toolbar app.
//
// Configuration System:
//
//	The CLI reads configuration from several sources with clear precedence:
//	1. Command-line flags (--config, --log-level, etc.) - highest priority
//	2. BREAKPOINTS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (BREAKPOINTS_TOOLBAR_NAME, etc.)
//	4. Configuration file (.breakpoints.yml) - lowest priority
//
// Environment Variables:
//
//	BREAKPOINTS_CONFIG_FILE: Path to custom configuration file
//	BREAKPOINTS_TOOLBAR_ID: Override the toolbar app id
//	BREAKPOINTS_TOOLBAR_NAME: Override the toolbar app name
//	BREAKPOINTS_TOOLBAR_ENTRYPOINT: Override the app entrypoint
//	BREAKPOINTS_LOG_LEVEL, BREAKPOINTS_LOG_FORMAT: Logging
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/templar-breakpoints/internal/config"
	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/logging"
	"github.com/conneroisu/templar-breakpoints/internal/plugins"
	"github.com/conneroisu/templar-breakpoints/internal/toolbar"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "breakpoints",
	Short: "Dev toolbar app that shows the active Tailwind CSS breakpoint",
	Long: `breakpoints builds the icon and descriptor of a dev toolbar app that shows
which Tailwind CSS breakpoint is active. The icon is a self-contained SVG whose
embedded media queries switch the visible label as the viewport is resized, so
nothing runs in the browser.

Quick Start:
  breakpoints icon                Print the SVG icon
  breakpoints descriptor          Print the toolbar app descriptor
  breakpoints list                List breakpoints in ascending order
  breakpoints validate            Check the configuration and the icon
  breakpoints preview             Write an HTML page to inspect the icon
  breakpoints watch               Regenerate when the config file changes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .breakpoints.yml, can also use BREAKPOINTS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	AddFlagValidation(rootCmd.PersistentFlags(), "log-format", func(format string) error {
		return ValidateFormatWithSuggestion(format, []string{"text", "json"})
	})
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. BREAKPOINTS_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .breakpoints.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("BREAKPOINTS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.DefaultConfigName)
	}

	// BREAKPOINTS_TOOLBAR_NAME and friends
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"toolbar.id", "toolbar.name", "toolbar.entrypoint", "log.level", "log.format"} {
		_ = viper.BindEnv(key)
	}

	// A missing file means defaults; a broken one surfaces on config.Load
	_ = viper.ReadInConfig()
}

// newLogger builds a logger from flags and environment before the config
// file has been validated.
func newLogger() logging.Logger {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(viper.GetString("log.level")); err == nil {
		cfg.Level = level
	}
	if viper.GetString("log.format") == "json" {
		cfg.Format = "json"
	}
	return logging.NewLogger(cfg)
}

// environment is everything a command needs after one configuration load.
type environment struct {
	cfg     *config.Config
	logger  logging.Logger
	manager *plugins.Manager
	result  *toolbar.Result
}

// loadEnvironment loads the configuration, runs the toolbar integration and
// registers its app. Errors have already been logged when returned.
func loadEnvironment(ctx context.Context) (*environment, error) {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		reportError(ctx, logger, err)
		return nil, err
	}
	base := logging.NewLogger(cfg.LoggerConfig())
	op := base.StartOperation("load")
	logger = base

	manager := plugins.NewManager(logger)
	integration := toolbar.NewIntegration(toolbarOptions(cfg), logger.WithComponent("toolbar"))
	if err := manager.RegisterPlugin(ctx, integration); err != nil {
		reportError(ctx, logger, err)
		return nil, err
	}
	op.End(ctx)

	return &environment{
		cfg:     cfg,
		logger:  logger,
		manager: manager,
		result:  integration.Result(),
	}, nil
}

func toolbarOptions(cfg *config.Config) toolbar.Options {
	return toolbar.Options{
		Breakpoints: cfg.Breakpoints,
		ID:          cfg.Toolbar.ID,
		Name:        cfg.Toolbar.Name,
		Entrypoint:  cfg.Toolbar.Entrypoint,
	}
}

func reportError(ctx context.Context, logger logging.Logger, err error) {
	errors.NewErrorHandler(logger).Handle(ctx, err)
}
