// Package navbar models the declarative navigation-bar description that is
// sent to the host runtime, and localizes it against the route that owns it.
//
// Localization here means route-qualification: every button id in a bar is
// rewritten from its local form ("exit") to its qualified form
// ("checkout.exit") so the host can echo presses back onto the shared
// stream without losing ownership information. Qualified ids are always
// derived on the fly and never stored in a template.
package navbar

import "github.com/navrail/navrail/internal/routeid"

// Button locations recognized by the host runtime. Every entry in
// NavigationBar.Buttons is forced to the right side during localization;
// the left slot is reserved for the dedicated LeftButton.
const LocationRight = "right"

// Button describes a single navigation-bar button. The ID is local and
// unqualified within its owning screen and must not contain the route
// delimiter.
type Button struct {
	ID                 string `json:"id,omitempty" mapstructure:"id"`
	Title              string `json:"title,omitempty" mapstructure:"title"`
	Icon               string `json:"icon,omitempty" mapstructure:"icon"`
	AccessibilityLabel string `json:"accessibilityLabel,omitempty" mapstructure:"accessibility_label"`
	Location           string `json:"location,omitempty" mapstructure:"-"`
}

// NavigationBar is the declarative header description for one screen.
//
// Overlay is only meaningful on navigate requests; update payloads strip
// it before localizing (see WithoutOverlay).
//
// A LeftButton without an ID is a sentinel meaning "no app-level handler,
// default back behavior": it is forwarded as-is and never qualified.
type NavigationBar struct {
	Title      string   `json:"title" mapstructure:"title"`
	Overlay    bool     `json:"overlay,omitempty" mapstructure:"overlay"`
	Buttons    []Button `json:"buttons" mapstructure:"buttons"`
	LeftButton *Button  `json:"leftButton,omitempty" mapstructure:"left_button"`
}

// Localize returns a route-qualified copy of the bar. A nil bar is legal
// and means "no bar": the result is the empty description.
//
// Every entry in Buttons is shallow-copied, pinned to the right location
// and has its id qualified against the route. The left button is qualified
// only when it carries an id.
func Localize(route string, bar *NavigationBar) NavigationBar {
	if bar == nil {
		return NavigationBar{}
	}

	out := *bar

	if len(bar.Buttons) > 0 {
		out.Buttons = make([]Button, len(bar.Buttons))
		for i, b := range bar.Buttons {
			b.Location = LocationRight
			b.ID = routeid.Encode(route, b.ID)
			out.Buttons[i] = b
		}
	}

	if bar.LeftButton != nil {
		left := *bar.LeftButton
		if left.ID != "" {
			left.ID = routeid.Encode(route, left.ID)
		}
		out.LeftButton = &left
	}

	return out
}

// WithoutOverlay returns a copy of the bar with the navigate-only overlay
// flag cleared. Callers building an update payload strip the flag before
// localizing.
func (b NavigationBar) WithoutOverlay() NavigationBar {
	b.Overlay = false
	return b
}

// Clone returns a copy of the bar with its own button slice and left
// button, so template bars can be handed out without aliasing.
func (b NavigationBar) Clone() NavigationBar {
	out := b
	if len(b.Buttons) > 0 {
		out.Buttons = make([]Button, len(b.Buttons))
		copy(out.Buttons, b.Buttons)
	}
	if b.LeftButton != nil {
		left := *b.LeftButton
		out.LeftButton = &left
	}
	return out
}

// Validate checks that every right button carries a usable local id and
// that a present left-button id is well formed. Right-side ids are
// mandatory; the left id may be absent.
func (b NavigationBar) Validate() error {
	for _, btn := range b.Buttons {
		if err := routeid.ValidateLocalID(btn.ID); err != nil {
			return err
		}
	}
	if b.LeftButton != nil && b.LeftButton.ID != "" {
		if err := routeid.ValidateLocalID(b.LeftButton.ID); err != nil {
			return err
		}
	}
	return nil
}
