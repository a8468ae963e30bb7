// Package config loads the breakpoint toolbar configuration using Viper for
// file, environment and flag sources.
//
// Viper lower-cases every key it reads, which would merge "SM" and "sm" and
// rename "2XL". Breakpoint names in YAML and JSON files are therefore read a
// second time with gopkg.in/yaml.v2, which keeps keys exactly as written and
// in file order. Other formats Viper reads (TOML, HCL, INI, dotenv) and
// breakpoints set only through Viper fall back to Viper's lower-cased view of
// the map.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/logging"
	"github.com/conneroisu/templar-breakpoints/internal/plugins"
)

// EnvPrefix is prepended to every environment override, e.g.
// BREAKPOINTS_TOOLBAR_NAME.
const EnvPrefix = "BREAKPOINTS"

// DefaultConfigName is the file searched for in the working directory.
const DefaultConfigName = ".breakpoints"

type Config struct {
	// Breakpoints is nil when the configuration does not mention them and
	// empty when it lists none.
	Breakpoints map[string]breakpoint.Value `mapstructure:"-" yaml:"breakpoints,omitempty"`
	Toolbar     ToolbarConfig               `mapstructure:"toolbar" yaml:"toolbar"`
	Log         LogConfig                   `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

type ToolbarConfig struct {
	ID         string `mapstructure:"id" yaml:"id"`
	Name       string `mapstructure:"name" yaml:"name"`
	Entrypoint string `mapstructure:"entrypoint" yaml:"entrypoint"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load reads the configuration Viper currently holds.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}
	config.File = viper.ConfigFileUsed()

	breakpoints, err := loadBreakpoints(config.File)
	if err != nil {
		return nil, err
	}
	config.Breakpoints = breakpoints

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoggerConfig translates the log section for logging.NewLogger.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	cfg := logging.DefaultConfig()
	// Validated in Load
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format = c.Log.Format
	return cfg
}

func loadBreakpoints(file string) (map[string]breakpoint.Value, error) {
	if file != "" && preservesNames(file) {
		raw, found, err := readBreakpointsFile(file)
		if err != nil {
			return nil, err
		}
		if found {
			return convertBreakpoints(raw)
		}
	}

	if !viper.IsSet("breakpoints") {
		return nil, nil
	}
	values := viper.GetStringMap("breakpoints")
	raw := make(yaml.MapSlice, 0, len(values))
	for name, value := range values {
		raw = append(raw, yaml.MapItem{Key: name, Value: value})
	}
	// Map iteration is random; keep conversion errors deterministic
	sort.Slice(raw, func(i, j int) bool { return raw[i].Key.(string) < raw[j].Key.(string) })
	return convertBreakpoints(raw)
}

// preservesNames reports whether file is YAML or JSON and can be decoded
// again with its breakpoint names intact. The extensionless default file is
// always read as YAML.
func preservesNames(file string) bool {
	if filepath.Base(file) == DefaultConfigName {
		return true
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml", ".json":
		return true
	}
	return false
}

// readBreakpointsFile extracts the breakpoints mapping from a YAML file.
// found is false when the file has no breakpoints key or leaves it blank.
func readBreakpointsFile(file string) (yaml.MapSlice, bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false, errors.WrapIO(err, errors.ErrCodeFileNotFound, "failed to read config file").
			WithFile(file)
	}
	return DecodeBreakpoints(data)
}

// DecodeBreakpoints returns the breakpoints mapping of a YAML document with
// keys as written.
func DecodeBreakpoints(data []byte) (yaml.MapSlice, bool, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, false, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	for _, item := range doc {
		if key, ok := item.Key.(string); !ok || key != "breakpoints" {
			continue
		}
		switch value := item.Value.(type) {
		case nil:
			return nil, false, nil
		case yaml.MapSlice:
			if value == nil {
				value = yaml.MapSlice{}
			}
			return value, true, nil
		default:
			return nil, false, errors.NewConfigError(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("breakpoints must be a mapping of names to values, got %T", value)).
				WithContext("field", "breakpoints")
		}
	}
	return nil, false, nil
}

func convertBreakpoints(raw yaml.MapSlice) (map[string]breakpoint.Value, error) {
	breakpoints := make(map[string]breakpoint.Value, len(raw))
	for _, item := range raw {
		name := fmt.Sprint(item.Key)
		if _, exists := breakpoints[name]; exists {
			return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("breakpoint %s is defined more than once", name)).
				WithContext("name", name)
		}

		value, err := breakpoint.FromAny(name, item.Value)
		if err != nil {
			return nil, errors.WrapValidation(err, errors.ErrCodeBreakpointInvalid, "invalid breakpoints").
				WithComponent("config").
				WithContext("name", name)
		}
		breakpoints[name] = value
	}
	return breakpoints, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	collection := &errors.ValidationErrorCollection{}

	if id := config.Toolbar.ID; id != "" {
		for _, char := range id {
			if !plugins.IsIDChar(char) {
				collection.AddField("toolbar.id", id, "contains invalid character "+string(char),
					"use letters, digits, dashes and underscores")
				break
			}
		}
	}

	if entrypoint := config.Toolbar.Entrypoint; entrypoint != "" {
		if err := validatePath(entrypoint); err != nil {
			collection.AddField("toolbar.entrypoint", entrypoint, err.Error(),
				"point at a module inside the project, e.g. ./app.js")
		}
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		collection.AddField("log.level", config.Log.Level, err.Error())
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		collection.AddField("log.format", config.Log.Format, "unknown log format",
			"supported formats: text, json")
	}

	if collection.HasErrors() {
		return errors.WrapConfig(collection.ToTemplarError(errors.ErrCodeValidationFailed),
			errors.ErrCodeConfigInvalid, "invalid configuration")
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	// Clean the path
	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	// Reject dangerous characters
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
