// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"

	"github.com/invowk/binlaunch/pkg/platform"
)

var (
	// ErrUnsupportedPlatform is the sentinel error wrapped by UnsupportedPlatformError.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrChildExitIndeterminate is matched by ChildExitIndeterminateError.
	ErrChildExitIndeterminate = errors.New("child exit status indeterminate")

	// ErrInvalidTemplate is returned when a Template does not expand to a file name.
	ErrInvalidTemplate = errors.New("invalid binary name template")
)

type (
	// UnsupportedPlatformError is returned when no table entry matches the host.
	UnsupportedPlatformError struct {
		Platform platform.Key
	}

	// ChildExitIndeterminateError is returned when the child produced no usable
	// numeric exit status, either because it never started or because it was
	// terminated by a signal.
	ChildExitIndeterminateError struct {
		// Reason is a short human-readable description (e.g. "terminated by signal SIGKILL").
		Reason string
		// Cause is the underlying error, if any.
		Cause error
	}
)

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("Unsupported platform (%s) and architecture (%s)", e.Platform.OS, e.Platform.Arch)
}

// Unwrap returns ErrUnsupportedPlatform so callers can use errors.Is for programmatic detection.
func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// Error implements the error interface.
func (e *ChildExitIndeterminateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("child exit status indeterminate: %s: %v", e.Reason, e.Cause)
	}
	return "child exit status indeterminate: " + e.Reason
}

// Is reports whether target is ErrChildExitIndeterminate.
func (e *ChildExitIndeterminateError) Is(target error) bool {
	return target == ErrChildExitIndeterminate
}

// Unwrap returns the underlying cause.
func (e *ChildExitIndeterminateError) Unwrap() error { return e.Cause }
