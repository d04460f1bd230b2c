// Package gateway issues navigation requests to the host runtime on
// behalf of a screen. Internal navigation validates the shared screen
// registry fully before touching any channel: a precondition failure is
// returned synchronously and leaves no side effect on the host.
//
// The validation order is fixed: attached navigator, navigator type,
// non-empty registry, supplied screen name, known screen name.
package gateway

import (
	"context"

	"github.com/navrail/navrail/internal/errors"
	"github.com/navrail/navrail/internal/host"
	"github.com/navrail/navrail/internal/logging"
	"github.com/navrail/navrail/internal/navbar"
	"github.com/navrail/navrail/internal/payload"
	"github.com/navrail/navrail/internal/screen"
)

// AppNavigator owns the shared screen registry. The registry is read-only
// from the gateway's perspective.
type AppNavigator interface {
	Screens() *screen.Registry
}

// Navigator is the canonical AppNavigator: a thin owner of one registry.
type Navigator struct {
	registry *screen.Registry
}

// NewNavigator creates a Navigator over the given registry.
func NewNavigator(registry *screen.Registry) *Navigator {
	return &Navigator{registry: registry}
}

// Screens returns the registry.
func (n *Navigator) Screens() *screen.Registry { return n.registry }

// Gateway validates navigation requests and forwards them to the host
// channel. The navigator is attached after construction; anything other
// than an AppNavigator is rejected at validation time rather than at
// attach time, mirroring the late-binding contract screens rely on.
type Gateway struct {
	channel host.Channel
	logger  *logging.Logger
	nav     any
}

// New creates a Gateway over the given host channel.
// The channel must be non-nil; passing nil panics early to surface wiring
// bugs immediately.
func New(channel host.Channel, opts ...Option) *Gateway {
	if channel == nil {
		panic("gateway: host channel must not be nil")
	}

	cfg := &config{logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}

	return &Gateway{channel: channel, logger: cfg.logger}
}

// SetNavigator attaches the app navigator. The value is accepted as-is;
// validation happens on each internal-navigation call.
func (g *Gateway) SetNavigator(nav any) {
	g.nav = nav
}

// Navigator returns the attached navigator, if any.
func (g *Gateway) Navigator() any {
	return g.nav
}

// validate runs the shared precondition block and resolves the target
// descriptor. It never touches the host channel.
func (g *Gateway) validate(screenName string) (*screen.Descriptor, error) {
	if g.nav == nil {
		return nil, errors.ErrMissingNavigator
	}

	nav, ok := g.nav.(AppNavigator)
	if !ok {
		return nil, errors.ErrInvalidNavigator
	}

	registry := nav.Screens()
	if registry == nil || registry.Len() == 0 {
		return nil, errors.ErrNoScreens
	}

	if screenName == "" {
		return nil, errors.ErrMissingScreenName
	}

	desc, ok := registry.Get(screenName)
	if !ok {
		return nil, errors.NewUnknownScreenError(screenName)
	}

	return desc, nil
}

// NavigateInternal presents the named screen. The target's bar is built
// for the payload, its overlay flag is lifted out of the bar and
// forwarded separately, every button id is qualified against the target's
// route, and the payload is serialized once at the boundary.
func (g *Gateway) NavigateInternal(ctx context.Context, screenName string, p payload.Payload) error {
	desc, err := g.validate(screenName)
	if err != nil {
		return err
	}

	bar := desc.BuildBar(p)
	overlay := bar.Overlay
	stripped := bar.WithoutOverlay()
	localized := navbar.Localize(desc.Route(), &stripped)

	jsonPayload, err := payload.Marshal(p)
	if err != nil {
		return err
	}

	g.logger.Info("navigating to internal screen",
		"screen", screenName, "route", desc.Route(), "overlay", overlay)

	return g.channel.Navigate(ctx, host.NavigateRequest{
		RequestID:     host.NewRequestID(),
		Path:          desc.Route(),
		Overlay:       overlay,
		NavigationBar: localized,
		JSONPayload:   jsonPayload,
	})
}

// Navigate forwards a prepared navigation request as-is. No validation:
// the caller owns the request, and like Back and Finish the call goes
// straight to the host. A missing request id is filled in.
func (g *Gateway) Navigate(ctx context.Context, req host.NavigateRequest) error {
	if req.RequestID == "" {
		req.RequestID = host.NewRequestID()
	}

	g.logger.Info("navigating to prepared route", "route", req.Path, "overlay", req.Overlay)

	return g.channel.Navigate(ctx, req)
}

// BackTo pops the host stack back to the named screen, after the same
// validation as NavigateInternal.
func (g *Gateway) BackTo(ctx context.Context, screenName string) error {
	desc, err := g.validate(screenName)
	if err != nil {
		return err
	}

	g.logger.Info("navigating back to screen", "screen", screenName, "route", desc.Route())

	return g.channel.Back(ctx, &host.BackRequest{
		RequestID: host.NewRequestID(),
		Path:      desc.Route(),
	})
}

// Back pops one entry off the host stack. No validation: an unqualified
// back is always legal.
func (g *Gateway) Back(ctx context.Context) error {
	return g.channel.Back(ctx, nil)
}

// Finish dismisses the whole flow, returning the serialized payload to
// the presenter. No validation.
func (g *Gateway) Finish(ctx context.Context, p payload.Payload) error {
	jsonPayload, err := payload.Marshal(p)
	if err != nil {
		return err
	}

	return g.channel.Finish(ctx, host.FinishRequest{
		RequestID:   host.NewRequestID(),
		JSONPayload: jsonPayload,
	})
}
