// Package errors provides centralized error definitions for the navigation
// layer. It defines the precondition failures raised by the navigation
// gateway before any host channel is touched, plus re-exports of the
// standard helpers so callers can import a single package.
//
// Gateway precondition failures are development-time defects: callers are
// expected to pre-validate or let them surface, not to catch and retry
// them in production flow. Failures from the host channels themselves are
// never wrapped by this layer and propagate unchanged.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Gateway precondition sentinel errors, in validation order.
var (
	// ErrMissingNavigator indicates no app navigator has been attached.
	ErrMissingNavigator = New("no app navigator attached")
	// ErrInvalidNavigator indicates the attached object is not an app navigator.
	ErrInvalidNavigator = New("attached object is not an app navigator")
	// ErrNoScreens indicates the navigator's screen registry is empty or absent.
	ErrNoScreens = New("app navigator has no registered screens")
	// ErrMissingScreenName indicates no target screen name was supplied.
	ErrMissingScreenName = New("no screen name supplied")
)

// UnknownScreenError indicates the supplied screen name is not present in
// the navigator's registry. It carries the name for diagnostics.
type UnknownScreenError struct {
	ScreenName string
}

// NewUnknownScreenError creates an UnknownScreenError for the given name.
func NewUnknownScreenError(screenName string) *UnknownScreenError {
	return &UnknownScreenError{ScreenName: screenName}
}

// Error returns the formatted error message.
func (e *UnknownScreenError) Error() string {
	return fmt.Sprintf("unknown screen %q", e.ScreenName)
}

// Is reports whether target is also an UnknownScreenError, so callers can
// match with errors.Is against a zero-value instance.
func (e *UnknownScreenError) Is(target error) bool {
	_, ok := target.(*UnknownScreenError)
	return ok
}

// IsPrecondition reports whether err is one of the gateway's synchronous
// validation failures, as opposed to an error surfaced by a host channel.
func IsPrecondition(err error) bool {
	if err == nil {
		return false
	}

	var unknown *UnknownScreenError
	return Is(err, ErrMissingNavigator) ||
		Is(err, ErrInvalidNavigator) ||
		Is(err, ErrNoScreens) ||
		Is(err, ErrMissingScreenName) ||
		As(err, &unknown)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
