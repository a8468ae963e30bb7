package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeConfigNamed(t, ".breakpoints.yml", content)
}

func writeConfigNamed(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	viper.Reset()
	viper.SetConfigFile(file)
	require.NoError(t, viper.ReadInConfig())
	t.Cleanup(viper.Reset)
	return file
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		expected map[string]breakpoint.Value
		toolbar  ToolbarConfig
	}{
		{
			name:     "nothing set leaves breakpoints to the integration defaults",
			setup:    func() { viper.Reset() },
			expected: nil,
		},
		{
			name: "breakpoints set through viper",
			setup: func() {
				viper.Reset()
				viper.Set("breakpoints", map[string]interface{}{"sm": "40rem", "md": 768})
			},
			expected: map[string]breakpoint.Value{
				"sm": breakpoint.String("40rem"),
				"md": breakpoint.Number(768),
			},
		},
		{
			name: "empty breakpoints stay empty",
			setup: func() {
				viper.Reset()
				viper.Set("breakpoints", map[string]interface{}{})
			},
			expected: map[string]breakpoint.Value{},
		},
		{
			name: "toolbar overrides",
			setup: func() {
				viper.Reset()
				viper.Set("toolbar.id", "breakpoints")
				viper.Set("toolbar.name", "Breakpoints")
				viper.Set("toolbar.entrypoint", "./dist/app.js")
			},
			toolbar: ToolbarConfig{ID: "breakpoints", Name: "Breakpoints", Entrypoint: "./dist/app.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer viper.Reset()

			config, err := Load()
			require.NoError(t, err)
			require.NotNil(t, config)

			assert.Equal(t, tt.expected, config.Breakpoints)
			assert.Equal(t, tt.toolbar, config.Toolbar)
			assert.Equal(t, "info", config.Log.Level)
			assert.Equal(t, "text", config.Log.Format)
		})
	}
}

func TestLoadFromFilePreservesNames(t *testing.T) {
	file := writeConfig(t, `breakpoints:
  SM: 40rem
  sm: 30rem
  2XL: 1536
toolbar:
  name: Breakpoints
log:
  level: debug
  format: json
`)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, file, config.File)
	assert.Equal(t, map[string]breakpoint.Value{
		"SM":  breakpoint.String("40rem"),
		"sm":  breakpoint.String("30rem"),
		"2XL": breakpoint.Number(1536),
	}, config.Breakpoints)
	assert.Equal(t, "Breakpoints", config.Toolbar.Name)

	logCfg := config.LoggerConfig()
	assert.Equal(t, logging.LevelDebug, logCfg.Level)
	assert.Equal(t, "json", logCfg.Format)
}

func TestLoadFromOtherFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "toml",
			file:    "site.toml",
			content: "[toolbar]\nname = \"Site\"\n\n[breakpoints]\nsm = \"40rem\"\nmd = 768\n",
		},
		{
			name:    "json",
			file:    "site.json",
			content: `{"toolbar": {"name": "Site"}, "breakpoints": {"sm": "40rem", "md": 768}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigNamed(t, tt.file, tt.content)

			config, err := Load()
			require.NoError(t, err)
			assert.Equal(t, "Site", config.Toolbar.Name)
			require.Len(t, config.Breakpoints, 2)
			assert.Equal(t, breakpoint.String("40rem"), config.Breakpoints["sm"])

			magnitude, ok := config.Breakpoints["md"].Magnitude()
			require.True(t, ok)
			assert.Equal(t, 768.0, magnitude)
		})
	}
}

func TestPreservesNames(t *testing.T) {
	assert.True(t, preservesNames("site/.breakpoints.yml"))
	assert.True(t, preservesNames("site/app.YAML"))
	assert.True(t, preservesNames("app.json"))
	assert.True(t, preservesNames(filepath.Join("site", DefaultConfigName)))
	assert.False(t, preservesNames("site.toml"))
	assert.False(t, preservesNames("site.hcl"))
	assert.False(t, preservesNames("site.ini"))
}

func TestLoadFromFileEmptyBreakpoints(t *testing.T) {
	writeConfig(t, "breakpoints: {}\n")

	config, err := Load()
	require.NoError(t, err)
	require.NotNil(t, config.Breakpoints)
	assert.Empty(t, config.Breakpoints)
}

func TestLoadFromFileWithoutBreakpoints(t *testing.T) {
	writeConfig(t, "toolbar:\n  name: Sizes\n")

	config, err := Load()
	require.NoError(t, err)
	assert.Nil(t, config.Breakpoints)
	assert.Equal(t, "Sizes", config.Toolbar.Name)
}

func TestLoadRejectsInvalidBreakpointType(t *testing.T) {
	writeConfig(t, "breakpoints:\n  sm: true\n")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBreakpointInvalid))

	var invalid *breakpoint.InvalidValueError
	require.True(t, stderrors.As(err, &invalid))
	assert.Equal(t, "sm", invalid.Name)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"traversing entrypoint", "toolbar.entrypoint", "../../etc/app.js"},
		{"entrypoint with shell characters", "toolbar.entrypoint", "./app.js;rm"},
		{"toolbar id with spaces", "toolbar.id", "my app"},
		{"unknown log level", "log.level", "loud"},
		{"unknown log format", "log.format", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			viper.Set(tt.key, tt.value)

			config, err := Load()
			require.Error(t, err)
			assert.Nil(t, config)
			assert.True(t, errors.HasCode(err, errors.ErrCodeConfigInvalid))
		})
	}
}

func TestDecodeBreakpoints(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		found     bool
		keys      []interface{}
		expectErr bool
	}{
		{name: "absent", input: "toolbar: {}\n"},
		{name: "blank", input: "breakpoints:\n"},
		{name: "empty", input: "breakpoints: {}\n", found: true, keys: []interface{}{}},
		{
			name:  "file order kept",
			input: "breakpoints:\n  xl: 80rem\n  Sm: 40rem\n",
			found: true,
			keys:  []interface{}{"xl", "Sm"},
		},
		{name: "not a mapping", input: "breakpoints: [40rem]\n", expectErr: true},
		{name: "malformed", input: "breakpoints: [\n", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, found, err := DecodeBreakpoints([]byte(tt.input))
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			if !tt.found {
				return
			}
			keys := make([]interface{}, 0, len(raw))
			for _, item := range raw {
				keys = append(keys, item.Key)
			}
			assert.Equal(t, tt.keys, keys)
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path        string
		expectError bool
	}{
		{"./app.js", false},
		{"dist/toolbar/app.js", false},
		{"/srv/app.js", false},
		{"../app.js", true},
		{"./a/../../app.js", true},
		{"app.js|cat", true},
		{"$(app).js", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
