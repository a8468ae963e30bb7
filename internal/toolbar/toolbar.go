// Package toolbar turns a breakpoint configuration into the dev toolbar app
// descriptor and registers it with the host.
package toolbar

import (
	"context"
	_ "embed"
	stderrors "errors"
	"fmt"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/errors"
	"github.com/conneroisu/templar-breakpoints/internal/icon"
	"github.com/conneroisu/templar-breakpoints/internal/logging"
	"github.com/conneroisu/templar-breakpoints/internal/plugins"
	"github.com/conneroisu/templar-breakpoints/internal/version"
)

const (
	// DefaultID identifies the app in the host toolbar.
	DefaultID = "astro-tailwind-breakpoints-dev-toolbar-app"
	// DefaultName is shown as the app tooltip.
	DefaultName = "Tailwind CSS Breakpoint"
	// DefaultEntrypoint is where the runtime module is expected next to the
	// generated descriptor.
	DefaultEntrypoint = "./app.js"

	// PluginName is the integration name reported to the plugin manager.
	PluginName = "tailwind-breakpoints"
)

//go:embed app/app.js
var entrypointSource []byte

// EntrypointSource returns the runtime module loaded by the toolbar.
func EntrypointSource() []byte {
	return append([]byte(nil), entrypointSource...)
}

// Options configures the integration. Zero fields take defaults; a nil
// Breakpoints map means the default Tailwind scale, an empty non-nil map is
// an error.
type Options struct {
	Breakpoints map[string]breakpoint.Value
	ID          string
	Name        string
	Entrypoint  string
}

func (o Options) withDefaults() Options {
	if o.Breakpoints == nil {
		o.Breakpoints = breakpoint.Defaults()
	}
	if o.ID == "" {
		o.ID = DefaultID
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Entrypoint == "" {
		o.Entrypoint = DefaultEntrypoint
	}
	return o
}

// Result is everything one configuration load produces.
type Result struct {
	App         plugins.DevToolbarApp
	Breakpoints breakpoint.List
}

// Setup validates the breakpoints and builds the toolbar app descriptor.
// Nothing is produced when validation fails.
func Setup(opts Options) (*Result, error) {
	opts = opts.withDefaults()

	list, err := breakpoint.Normalize(opts.Breakpoints)
	if err != nil {
		return nil, wrapBreakpointError(err)
	}

	return &Result{
		App: plugins.DevToolbarApp{
			ID:         opts.ID,
			Name:       opts.Name,
			Icon:       icon.Synthesize(list),
			Entrypoint: opts.Entrypoint,
		},
		Breakpoints: list,
	}, nil
}

// Register runs Setup and hands the descriptor to the registrar.
func Register(registrar plugins.Registrar, opts Options) (*Result, error) {
	result, err := Setup(opts)
	if err != nil {
		return nil, err
	}
	if err := registrar.AddDevToolbarApp(result.App); err != nil {
		return nil, fmt.Errorf("failed to register toolbar app %s: %w", result.App.ID, err)
	}
	return result, nil
}

func wrapBreakpointError(err error) error {
	var (
		empty     *breakpoint.EmptySetError
		invalid   *breakpoint.InvalidValueError
		duplicate *breakpoint.DuplicateValueError
	)

	switch {
	case stderrors.As(err, &empty):
		return errors.WrapValidation(err, errors.ErrCodeBreakpointsEmpty, "invalid breakpoints").
			WithComponent("normalizer")
	case stderrors.As(err, &invalid):
		return errors.WrapValidation(err, errors.ErrCodeBreakpointInvalid, "invalid breakpoints").
			WithComponent("normalizer").
			WithContext("name", invalid.Name).
			WithContext("value", fmt.Sprint(invalid.Raw))
	case stderrors.As(err, &duplicate):
		return errors.WrapValidation(err, errors.ErrCodeBreakpointDuplicate, "invalid breakpoints").
			WithComponent("normalizer").
			WithContext("name", duplicate.Name).
			WithContext("conflict", duplicate.Conflict).
			WithContext("value", duplicate.Value.String())
	default:
		return errors.NewInternalError(errors.ErrCodeInternalError, "unexpected normalizer failure", err)
	}
}

// Integration adapts the toolbar setup to the plugin manager.
type Integration struct {
	opts   Options
	logger logging.Logger
	result *Result
}

// NewIntegration creates the integration for one configuration load.
func NewIntegration(opts Options, logger logging.Logger) *Integration {
	return &Integration{opts: opts, logger: logger}
}

// Name returns the plugin name
func (i *Integration) Name() string { return PluginName }

// Version returns the plugin version
func (i *Integration) Version() string { return version.GetVersion() }

// Description returns a description of what the plugin does
func (i *Integration) Description() string {
	return "Shows the active Tailwind CSS breakpoint in the dev toolbar"
}

// Setup registers the breakpoint app.
func (i *Integration) Setup(ctx context.Context, registrar plugins.Registrar) error {
	result, err := Register(registrar, i.opts)
	if err != nil {
		return err
	}
	i.result = result

	if i.logger != nil {
		i.logger.Debug(ctx, "Breakpoint icon generated",
			"breakpoints", len(result.Breakpoints),
			"smallest", result.Breakpoints[0].Name,
			"icon_bytes", len(result.App.Icon))
	}
	return nil
}

// Result returns what the last successful Setup produced, or nil.
func (i *Integration) Result() *Result {
	return i.result
}
