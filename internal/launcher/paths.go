// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputDir is where pre-built binaries live, relative to the install dir.
const DefaultOutputDir = "_output/bin"

// executable is a test seam for os.Executable.
//
//nolint:gochecknoglobals // Test seam requires a package-level variable.
var executable = os.Executable

// InstallDir returns the directory holding the running launcher executable,
// with symlinks resolved so a linked launcher still finds its own tree.
func InstallDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve launcher executable %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

// BinaryPath joins the output directory and a binary name.
func BinaryPath(outputDir string, name BinaryName) string {
	return filepath.Join(outputDir, string(name))
}
