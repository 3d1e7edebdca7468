// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrInvalidKey is the sentinel error wrapped by InvalidKeyError.
var ErrInvalidKey = errors.New("invalid platform key")

type (
	// Key is the (operating system, CPU architecture) pair identifying a host.
	// The zero value is not a valid key.
	Key struct {
		OS   string
		Arch string
	}

	// InvalidKeyError is returned when a string cannot be parsed as "os/arch".
	InvalidKeyError struct {
		Value string
	}
)

// supported lists the pairs with pre-built binaries, in lookup table order.
var supported = []Key{
	{OS: Linux, Arch: AMD64},
	{OS: Linux, Arch: ARM64},
	{OS: Windows, Arch: AMD64},
	{OS: Windows, Arch: ARM64},
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid platform %q (expected os/arch, e.g. linux/amd64)", e.Value)
}

// Unwrap returns ErrInvalidKey so callers can use errors.Is for programmatic detection.
func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }

// Host returns the key of the platform this process is running on.
func Host() Key {
	return Key{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Supported returns the platform keys that have pre-built binaries.
// The returned slice is a copy and may be modified by the caller.
func Supported() []Key {
	return slices.Clone(supported)
}

// ParseKey parses the "os/arch" form produced by Key.String.
func ParseKey(s string) (Key, error) {
	osName, arch, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || osName == "" || arch == "" || strings.Contains(arch, "/") {
		return Key{}, &InvalidKeyError{Value: s}
	}
	return Key{OS: osName, Arch: arch}, nil
}

// IsSupported reports whether k is one of the Supported pairs.
func (k Key) IsSupported() bool {
	return slices.Contains(supported, k)
}

// String returns the "os/arch" form of the key.
func (k Key) String() string {
	return k.OS + "/" + k.Arch
}

// Compare orders keys by OS, then by architecture.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.OS, other.OS); c != 0 {
		return c
	}
	return strings.Compare(k.Arch, other.Arch)
}
