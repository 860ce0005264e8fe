package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAuthMode is returned by [ParseAuthMode] for a mode name that
// does not correspond to any [AuthMode].
var ErrUnsupportedAuthMode = errors.New("authentication type not supported")

// AuthMode selects the request gate applied to a route family.
type AuthMode int

const (
	// AuthModeNone lets every request through.
	AuthModeNone AuthMode = iota

	// AuthModeBearer requires the "Authorization" header to contain
	// "Bearer <token>" with the configured token.
	AuthModeBearer

	// AuthModePKI requires the "Auth" header to end with a Unix timestamp
	// close enough to the server clock.
	AuthModePKI
)

// Header names read by the auth gate.
const (
	AuthorizationHeader = "Authorization"
	PKIAuthHeader       = "Auth"
)

// String returns the configuration name of the mode.
func (m AuthMode) String() string {
	switch m {
	case AuthModeNone:
		return "none"
	case AuthModeBearer:
		return "bearer"
	case AuthModePKI:
		return "pki"
	default:
		return fmt.Sprintf("AuthMode(%d)", int(m))
	}
}

// ParseAuthMode maps a configuration value to an [AuthMode].
// Matching is case-insensitive; "null" and the empty string are accepted as
// aliases of "none".
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null":
		return AuthModeNone, nil
	case "bearer":
		return AuthModeBearer, nil
	case "pki":
		return AuthModePKI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAuthMode, s)
	}
}
