package plugins

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/logging"
)

// Manager runs plugin setup hooks and keeps the toolbar apps they register.
type Manager struct {
	plugins map[string]PluginInfo
	apps    map[string]DevToolbarApp
	logger  logging.Logger
	mu      sync.RWMutex
}

// NewManager creates a new plugin manager. A nil logger disables logging.
func NewManager(logger logging.Logger) *Manager {
	if logger != nil {
		logger = logger.WithComponent("plugins")
	}
	return &Manager{
		plugins: make(map[string]PluginInfo),
		apps:    make(map[string]DevToolbarApp),
		logger:  logger,
	}
}

// RegisterPlugin runs the plugin's setup hook. Apps added by a failing hook
// are discarded.
func (m *Manager) RegisterPlugin(ctx context.Context, plugin Plugin) error {
	name := plugin.Name()

	m.mu.RLock()
	_, exists := m.plugins[name]
	m.mu.RUnlock()
	if exists {
		return fmt.Errorf("plugin %s already registered", name)
	}

	scoped := &scopedRegistrar{manager: m}
	if err := plugin.Setup(ctx, scoped); err != nil {
		m.remove(scoped.added)
		if m.logger != nil {
			m.logger.Error(ctx, err, "Plugin setup failed", "plugin", name)
		}
		return fmt.Errorf("failed to set up plugin %s: %w", name, err)
	}

	m.mu.Lock()
	m.plugins[name] = PluginInfo{
		Name:        name,
		Version:     plugin.Version(),
		Description: plugin.Description(),
		Apps:        scoped.added,
		SetupAt:     time.Now(),
	}
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info(ctx, "Plugin registered", "plugin", name, "apps", len(scoped.added))
	}
	return nil
}

// AddDevToolbarApp validates and stores an app. Ids are unique.
func (m *Manager) AddDevToolbarApp(app DevToolbarApp) error {
	if err := ValidateApp(app); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.apps[app.ID]; exists {
		return errors.NewValidationError(errors.ErrCodeAppExists,
			fmt.Sprintf("toolbar app %s already registered", app.ID)).
			WithContext("id", app.ID)
	}
	m.apps[app.ID] = app
	return nil
}

// GetApp retrieves a registered app by id.
func (m *Manager) GetApp(id string) (DevToolbarApp, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	app, ok := m.apps[id]
	return app, ok
}

// Apps returns every registered app ordered by id.
func (m *Manager) Apps() []DevToolbarApp {
	m.mu.RLock()
	defer m.mu.RUnlock()

	apps := make([]DevToolbarApp, 0, len(m.apps))
	for _, app := range m.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

// ListPlugins returns all registered plugins ordered by name.
func (m *Manager) ListPlugins() []PluginInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plugins := make([]PluginInfo, 0, len(m.plugins))
	for _, info := range m.plugins {
		plugins = append(plugins, info)
	}
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	return plugins
}

func (m *Manager) remove(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.apps, id)
	}
}

// scopedRegistrar records which apps one plugin added.
type scopedRegistrar struct {
	manager *Manager
	added   []string
}

func (s *scopedRegistrar) AddDevToolbarApp(app DevToolbarApp) error {
	if err := s.manager.AddDevToolbarApp(app); err != nil {
		return err
	}
	s.added = append(s.added, app.ID)
	return nil
}

// ValidateApp checks a descriptor before it reaches the host.
func ValidateApp(app DevToolbarApp) error {
	collection := &errors.ValidationErrorCollection{}

	if app.ID == "" {
		collection.AddField("id", app.ID, "must not be empty")
	}
	for _, char := range app.ID {
		if !IsIDChar(char) {
			collection.AddField("id", app.ID, "contains invalid character "+string(char),
				"use letters, digits, dashes and underscores")
			break
		}
	}
	if app.Name == "" {
		collection.AddField("name", app.Name, "must not be empty")
	}
	if app.Icon == "" {
		collection.AddField("icon", "", "must not be empty")
	}
	if app.Entrypoint == "" {
		collection.AddField("entrypoint", app.Entrypoint, "must not be empty")
	}

	if err := collection.ToTemplarError(errors.ErrCodeAppInvalid); err != nil {
		return err
	}
	return nil
}

// IsIDChar reports whether char may appear in an app id: ASCII letters,
// digits, dashes and underscores.
func IsIDChar(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == '-' || char == '_'
}
