// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is the status of a process that completed normally.
	ExitSuccess ExitCode = 0

	// ExitFailure is the status used whenever no more specific code is known.
	ExitFailure ExitCode = 1

	// maxPOSIXExitCode is the largest status a POSIX process can report.
	maxPOSIXExitCode = 255
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Negative values mean the process did not report a numeric status.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode cannot be passed to os.Exit
	// on the current platform.
	InvalidExitCodeError struct {
		Value ExitCode
		Max   ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("invalid exit code %d (must be in range 0-%d)", e.Value, e.Max)
	}
	return fmt.Sprintf("invalid exit code %d (must not be negative)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is not a status a process on goos
// could have reported. POSIX systems are limited to 0-255; Windows reports
// any non-negative 32-bit value.
func (c ExitCode) Validate(goos string) error {
	if c < 0 {
		return &InvalidExitCodeError{Value: c}
	}
	if goos != "windows" && c > maxPOSIXExitCode {
		return &InvalidExitCodeError{Value: c, Max: maxPOSIXExitCode}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
