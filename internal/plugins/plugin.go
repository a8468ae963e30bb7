// Package plugins holds the host side of dev toolbar registration: the app
// descriptor, the Registrar that receives it and a Manager that runs plugin
// setup hooks and keeps the registered apps.
package plugins

import (
	"context"
	"time"
)

// Plugin is a build-time integration.
type Plugin interface {
	// Name returns the unique name of the plugin
	Name() string

	// Version returns the version of the plugin
	Version() string

	// Description returns a description of what the plugin does
	Description() string

	// Setup runs once per configuration load. The plugin registers what it
	// contributes through the registrar.
	Setup(ctx context.Context, registrar Registrar) error
}

// Registrar receives dev toolbar apps from plugins.
type Registrar interface {
	AddDevToolbarApp(app DevToolbarApp) error
}

// DevToolbarApp is the immutable descriptor of a toolbar app. The host
// renders Icon in its toolbar and loads Entrypoint when the app is opened.
type DevToolbarApp struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Icon       string `json:"icon" yaml:"icon"`
	Entrypoint string `json:"entrypoint" yaml:"entrypoint"`
}

// PluginInfo contains information about a plugin
type PluginInfo struct {
	Name        string    `json:"name" yaml:"name"`
	Version     string    `json:"version" yaml:"version"`
	Description string    `json:"description" yaml:"description"`
	Apps        []string  `json:"apps" yaml:"apps"`
	SetupAt     time.Time `json:"setup_at" yaml:"setup_at"`
}
