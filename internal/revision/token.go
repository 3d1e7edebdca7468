// SPDX-License-Identifier: MPL-2.0

package revision

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// shortLen is the number of characters Short keeps.
const shortLen = 12

// ErrInvalidToken is the sentinel error wrapped by InvalidTokenError.
var ErrInvalidToken = errors.New("invalid version token")

type (
	// Token identifies the source revision binaries were built from.
	// It becomes the last segment of a binary file name, so it must be a
	// single path element: non-empty, no separators, no whitespace, not "." or "..".
	Token string

	// InvalidTokenError is returned when a Token cannot be used in a file name.
	InvalidTokenError struct {
		Value  Token
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid version token %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidToken so callers can use errors.Is for programmatic detection.
func (e *InvalidTokenError) Unwrap() error { return ErrInvalidToken }

// Validate returns an error if the token cannot be embedded in a file name.
func (t Token) Validate() error {
	s := string(t)
	switch {
	case s == "":
		return &InvalidTokenError{Value: t, Reason: "must not be empty"}
	case s == "." || s == "..":
		return &InvalidTokenError{Value: t, Reason: "must not be a relative path element"}
	case strings.ContainsAny(s, `/\`):
		return &InvalidTokenError{Value: t, Reason: "must not contain path separators"}
	case strings.IndexFunc(s, unicode.IsSpace) >= 0:
		return &InvalidTokenError{Value: t, Reason: "must not contain whitespace"}
	}
	return nil
}

// String returns the token as a plain string.
func (t Token) String() string { return string(t) }

// Short returns an abbreviated form for log output.
func (t Token) Short() string {
	if len(t) <= shortLen {
		return string(t)
	}
	return string(t[:shortLen])
}
