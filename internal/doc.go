// Package internal contains the implementation packages of the breakpoints
// CLI.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - breakpoint: Validation and ordering of named breakpoint values
//   - icon: SVG icon synthesis, label ids and markup audit
//   - toolbar: Dev toolbar app descriptor built from a configuration
//   - plugins: App registration, descriptor type and plugin manager
//   - preview: HTML page for inspecting an icon
//   - config: Configuration loading with Viper and validation
//   - watcher: Debounced file change notifications
//   - errors: Structured error types and wrapping helpers
//   - logging: Structured logging on log/slog
//   - version: Build information
//
// # Data Flow
//
// A command loads the configuration, the toolbar integration normalizes the
// breakpoints and synthesizes the icon, and the resulting descriptor is
// registered with the plugin manager before being printed or written. Each
// configuration load builds everything from scratch; nothing is cached
// between loads.
package internal
