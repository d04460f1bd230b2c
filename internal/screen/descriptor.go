// Package screen holds the per-route registration record for one screen:
// its registered route, navigation-bar template, dynamic-title hook and
// default button handler. Registration state lives in an explicit
// Registry object passed by reference, never in package-level globals, so
// "set once, read everywhere" survives without hidden mutable state.
package screen

import (
	"context"
	"fmt"

	"github.com/navrail/navrail/internal/host"
	"github.com/navrail/navrail/internal/navbar"
	"github.com/navrail/navrail/internal/payload"
	"github.com/navrail/navrail/internal/routeid"
)

// Handler reacts to a button press that has already been decoded to its
// local, unqualified id.
type Handler func(localID string)

// DynamicTitleFunc derives a bar title from the current payload. An empty
// result means "use the static template title".
type DynamicTitleFunc func(p payload.Payload) string

// TitleResolver resolves a title key to a localized string, falling back
// to the literal when no message matches.
type TitleResolver interface {
	Resolve(key, fallback string) string
}

// UpdateChannel is the slice of the host boundary a descriptor needs to
// push bar updates through.
type UpdateChannel interface {
	Update(ctx context.Context, req host.UpdateRequest) error
}

// Descriptor is the registration and configuration unit for one screen.
//
// The route is set exactly once: the first SetRoute wins and later
// attempts are ignored with a warning. Everything else is static
// configuration captured at construction.
type Descriptor struct {
	name     string
	template navbar.NavigationBar

	route string

	titleKey       string
	titles         TitleResolver
	dynamicTitle   DynamicTitleFunc
	defaultHandler Handler
	autoReset      bool

	updates UpdateChannel
	logger  Logger
}

// Logger is the minimal logging surface a descriptor uses. It matches
// the logging package's Logger.
type Logger interface {
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
}

// New creates a Descriptor for the given screen name and bar template.
// The route is attached separately with SetRoute.
func New(name string, template navbar.NavigationBar, opts ...Option) *Descriptor {
	d := &Descriptor{
		name:      name,
		template:  template.Clone(),
		autoReset: true,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the screen name this descriptor registers under.
func (d *Descriptor) Name() string { return d.name }

// Route returns the registered route, or the empty string before SetRoute.
func (d *Descriptor) Route() string { return d.route }

// AutoReset reports whether the bar is re-sent automatically on mount.
func (d *Descriptor) AutoReset() bool { return d.autoReset }

// DefaultHandler returns the screen-level press handler, which may be nil.
func (d *Descriptor) DefaultHandler() Handler { return d.defaultHandler }

// Template returns a copy of the static bar template.
func (d *Descriptor) Template() navbar.NavigationBar { return d.template.Clone() }

// SetRoute registers the route for this screen. The route is immutable
// once set: the first call wins, later calls are ignored with a warning.
// An invalid route is also ignored with a warning.
func (d *Descriptor) SetRoute(route string) {
	if d.route != "" {
		d.logger.Warn("route already registered, ignoring",
			"screen", d.name, "route", d.route, "ignored", route)
		return
	}
	if err := routeid.ValidateRoute(route); err != nil {
		d.logger.Warn("invalid route, ignoring", "screen", d.name, "error", err)
		return
	}
	d.route = route
}

// BuildBar merges the static template with the dynamic title for the
// given payload. Resolution order: template title, then title key against
// the active locale, then the dynamic-title hook.
func (d *Descriptor) BuildBar(p payload.Payload) navbar.NavigationBar {
	bar := d.template.Clone()

	if d.titles != nil {
		bar.Title = d.titles.Resolve(d.titleKey, bar.Title)
	}
	if d.dynamicTitle != nil {
		if t := d.dynamicTitle(p); t != "" {
			bar.Title = t
		}
	}

	return bar
}

// BuildLocalizedBar builds the bar for the payload and qualifies every
// button id against this screen's route.
func (d *Descriptor) BuildLocalizedBar(p payload.Payload) navbar.NavigationBar {
	bar := d.BuildBar(p)
	return navbar.Localize(d.route, &bar)
}

// UpdateBar strips the navigate-only overlay flag, localizes the rest
// against this screen's route and pushes the result through the host
// update channel. Channel failures pass through unchanged.
func (d *Descriptor) UpdateBar(ctx context.Context, bar navbar.NavigationBar) error {
	if d.updates == nil {
		return fmt.Errorf("screen %q has no update channel", d.name)
	}

	stripped := bar.WithoutOverlay()
	localized := navbar.Localize(d.route, &stripped)

	d.logger.Debug("updating navigation bar", "screen", d.name, "route", d.route)
	return d.updates.Update(ctx, host.UpdateRequest{
		RequestID:     host.NewRequestID(),
		Path:          d.route,
		NavigationBar: localized,
	})
}

// ResetBar rebuilds the bar from the template and the given payload and
// feeds the unlocalized result into the update path, which localizes at
// the boundary. Invoked automatically on mount unless AutoReset is off.
func (d *Descriptor) ResetBar(ctx context.Context, p payload.Payload) error {
	return d.UpdateBar(ctx, d.BuildBar(p))
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
