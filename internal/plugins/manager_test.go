package plugins

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/templar-breakpoints/internal/errors"
)

// MockPlugin registers a fixed set of apps, then optionally fails.
type MockPlugin struct {
	name    string
	apps    []DevToolbarApp
	failErr error
}

func (p *MockPlugin) Name() string        { return p.name }
func (p *MockPlugin) Version() string     { return "1.0.0" }
func (p *MockPlugin) Description() string { return "Mock plugin for testing" }

func (p *MockPlugin) Setup(_ context.Context, registrar Registrar) error {
	for _, app := range p.apps {
		if err := registrar.AddDevToolbarApp(app); err != nil {
			return err
		}
	}
	return p.failErr
}

func validApp(id string) DevToolbarApp {
	return DevToolbarApp{
		ID:         id,
		Name:       "Breakpoints",
		Icon:       `<svg viewBox="-10 -10 20 20"></svg>`,
		Entrypoint: "./app.js",
	}
}

func TestManagerRegisterPlugin(t *testing.T) {
	manager := NewManager(nil)
	ctx := context.Background()

	plugin := &MockPlugin{name: "breakpoints", apps: []DevToolbarApp{validApp("b"), validApp("a")}}
	require.NoError(t, manager.RegisterPlugin(ctx, plugin))

	apps := manager.Apps()
	require.Len(t, apps, 2)
	assert.Equal(t, "a", apps[0].ID)
	assert.Equal(t, "b", apps[1].ID)

	infos := manager.ListPlugins()
	require.Len(t, infos, 1)
	assert.Equal(t, "breakpoints", infos[0].Name)
	assert.Equal(t, "1.0.0", infos[0].Version)
	assert.Equal(t, []string{"b", "a"}, infos[0].Apps)
	assert.False(t, infos[0].SetupAt.IsZero())

	err := manager.RegisterPlugin(ctx, &MockPlugin{name: "breakpoints"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestManagerRollsBackFailedSetup(t *testing.T) {
	manager := NewManager(nil)

	plugin := &MockPlugin{
		name:    "broken",
		apps:    []DevToolbarApp{validApp("first")},
		failErr: stderrors.New("boom"),
	}
	err := manager.RegisterPlugin(context.Background(), plugin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set up plugin broken")
	assert.ErrorIs(t, err, plugin.failErr)

	_, ok := manager.GetApp("first")
	assert.False(t, ok)
	assert.Empty(t, manager.ListPlugins())
}

func TestManagerRejectsDuplicateApp(t *testing.T) {
	manager := NewManager(nil)

	require.NoError(t, manager.AddDevToolbarApp(validApp("breakpoints")))
	err := manager.AddDevToolbarApp(validApp("breakpoints"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAppExists, errors.GetCode(err))

	// A failing plugin must not remove an app it did not add
	plugin := &MockPlugin{name: "second", apps: []DevToolbarApp{validApp("breakpoints")}}
	require.Error(t, manager.RegisterPlugin(context.Background(), plugin))
	_, ok := manager.GetApp("breakpoints")
	assert.True(t, ok)
}

func TestValidateApp(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DevToolbarApp)
		field  string
	}{
		{"valid", func(*DevToolbarApp) {}, ""},
		{"empty id", func(a *DevToolbarApp) { a.ID = "" }, "id"},
		{"id with space", func(a *DevToolbarApp) { a.ID = "my app" }, "id"},
		{"id with slash", func(a *DevToolbarApp) { a.ID = "../app" }, "id"},
		{"empty name", func(a *DevToolbarApp) { a.Name = "" }, "name"},
		{"empty icon", func(a *DevToolbarApp) { a.Icon = "" }, "icon"},
		{"empty entrypoint", func(a *DevToolbarApp) { a.Entrypoint = "" }, "entrypoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApp("astro-tailwind-breakpoints-dev-toolbar-app")
			tt.modify(&app)

			err := ValidateApp(app)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeAppInvalid, errors.GetCode(err))

			var te *errors.TemplarError
			require.True(t, stderrors.As(err, &te))
			assert.Contains(t, te.Context, tt.field)
		})
	}
}

func TestIsIDChar(t *testing.T) {
	for _, char := range "azAZ09-_" {
		assert.True(t, IsIDChar(char), "%q", char)
	}
	for _, char := range " ./:é " {
		assert.False(t, IsIDChar(char), "%q", char)
	}
}
