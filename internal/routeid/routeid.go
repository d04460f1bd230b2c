// Package routeid qualifies navigation-bar button identifiers with the
// route that owns them. A single global press stream carries events for
// every screen; qualifying each button id as "route.localID" lets the
// dispatcher hand a press back to exactly one screen.
//
// Route names may themselves be hierarchical and contain the delimiter
// ("settings.profile"), so the local id is always the segment after the
// last delimiter, never the first.
package routeid

import (
	"fmt"
	"strings"
)

// Delimiter separates the owning route from the local button id in a
// qualified id.
const Delimiter = "."

// Encode qualifies a local button id with its owning route.
// The local id must not contain the delimiter; see ValidateLocalID.
func Encode(route, localID string) string {
	return route + Delimiter + localID
}

// Decode strips the "route." prefix from a qualified id. It is purely
// length-based: callers must confirm ownership with OwnerRoute before
// decoding. Input that does not actually start with "route." yields a
// garbage local id.
func Decode(qualifiedID, route string) string {
	if len(qualifiedID) <= len(route)+len(Delimiter) {
		return ""
	}
	return qualifiedID[len(route)+len(Delimiter):]
}

// OwnerRoute returns everything before the last delimiter of a qualified
// id, or the empty string if the id carries no delimiter at all.
func OwnerRoute(qualifiedID string) string {
	idx := strings.LastIndex(qualifiedID, Delimiter)
	if idx < 0 {
		return ""
	}
	return qualifiedID[:idx]
}

// ValidateLocalID reports whether a local button id is usable. Local ids
// must be non-empty and must not contain the delimiter, otherwise the
// owner of the qualified form would be ambiguous.
func ValidateLocalID(localID string) error {
	if localID == "" {
		return fmt.Errorf("button id must not be empty")
	}
	if strings.Contains(localID, Delimiter) {
		return fmt.Errorf("button id %q must not contain %q", localID, Delimiter)
	}
	return nil
}

// ValidateRoute reports whether a route name is usable as a registration
// key. Routes may contain the delimiter but must be non-empty.
func ValidateRoute(route string) error {
	if route == "" {
		return fmt.Errorf("route must not be empty")
	}
	return nil
}
