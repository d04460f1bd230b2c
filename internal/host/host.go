// Package host defines the asynchronous boundary to the platform's native
// navigation implementation. The navigation layer builds a payload, hands
// it to exactly one outbound call and awaits its outcome opaquely: no
// retries, no timeouts, no interpretation of channel failures. Any timeout
// policy belongs to the channel implementation.
package host

import (
	"context"

	"github.com/google/uuid"
	"github.com/navrail/navrail/internal/navbar"
)

// UpdateRequest replaces the navigation bar of an already-presented
// screen. The bar is route-qualified and carries no overlay flag.
type UpdateRequest struct {
	RequestID     string               `json:"requestId"`
	Path          string               `json:"path"`
	NavigationBar navbar.NavigationBar `json:"navigationBar"`
}

// NavigateRequest presents an internal screen. Overlay travels here and
// only here; the bar itself is stripped of it before localization.
type NavigateRequest struct {
	RequestID     string               `json:"requestId"`
	Path          string               `json:"path"`
	Overlay       bool                 `json:"overlay,omitempty"`
	NavigationBar navbar.NavigationBar `json:"navigationBar"`
	JSONPayload   string               `json:"jsonPayload"`
}

// BackRequest pops back to the screen registered under Path. A nil
// *BackRequest on the channel means an unqualified back.
type BackRequest struct {
	RequestID string `json:"requestId"`
	Path      string `json:"path"`
}

// FinishRequest dismisses the whole flow, returning the serialized
// payload to whoever presented it.
type FinishRequest struct {
	RequestID   string `json:"requestId"`
	JSONPayload string `json:"jsonPayload"`
}

// Channel is the transport to the host runtime. Every call blocks until
// the host acknowledges or fails the request; errors pass through to the
// caller unchanged.
type Channel interface {
	// Update replaces the navigation bar of the screen at req.Path.
	Update(ctx context.Context, req UpdateRequest) error

	// Navigate presents the screen at req.Path.
	Navigate(ctx context.Context, req NavigateRequest) error

	// Back pops the host navigation stack. A nil req pops one entry;
	// a non-nil req pops back to req.Path.
	Back(ctx context.Context, req *BackRequest) error

	// Finish dismisses the flow with the given payload.
	Finish(ctx context.Context, req FinishRequest) error
}

// NewRequestID returns a fresh correlation id for an outbound request.
func NewRequestID() string {
	return uuid.NewString()
}
