// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"strings"

	"github.com/invowk/binlaunch/internal/revision"
	"github.com/invowk/binlaunch/pkg/platform"

	"mvdan.cc/sh/v3/shell"
)

// Template variables available to a binary name template.
const (
	VarOS      = "OS"
	VarArch    = "ARCH"
	VarVersion = "VERSION"
)

// DefaultTemplate yields "{os}-{arch}-{version}".
const DefaultTemplate Template = "${OS}-${ARCH}-${VERSION}"

type (
	// Template is a binary file name pattern using shell parameter expansion.
	// Only OS, ARCH and VERSION are defined; other variables expand to "".
	// Command substitution is not supported.
	Template string

	// BinaryName is the file name of a pre-built binary inside the output directory.
	BinaryName string
)

// Expand renders the template for the given platform and version token.
// The result must be a single non-empty path element, and on Windows it
// must not be a reserved device name.
func (t Template) Expand(key platform.Key, version revision.Token) (BinaryName, error) {
	env := func(name string) string {
		switch name {
		case VarOS:
			return key.OS
		case VarArch:
			return key.Arch
		case VarVersion:
			return string(version)
		}
		return ""
	}

	out, err := shell.Expand(string(t), env)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidTemplate, t, err)
	}

	switch {
	case out == "":
		return "", fmt.Errorf("%w %q: expands to an empty name", ErrInvalidTemplate, t)
	case out == "." || out == "..":
		return "", fmt.Errorf("%w %q: expands to %q", ErrInvalidTemplate, t, out)
	case strings.ContainsAny(out, `/\`):
		return "", fmt.Errorf("%w %q: %q contains a path separator", ErrInvalidTemplate, t, out)
	case key.OS == platform.Windows && platform.IsWindowsReservedName(out):
		return "", fmt.Errorf("%w %q: %q is a reserved name on Windows", ErrInvalidTemplate, t, out)
	}
	return BinaryName(out), nil
}

// String returns the template source.
func (t Template) String() string { return string(t) }

// String returns the binary name as a plain string.
func (n BinaryName) String() string { return string(n) }
