// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Architecture name constants for runtime.GOARCH comparisons.
const (
	AMD64 = "amd64"
	ARM64 = "arm64"
)
