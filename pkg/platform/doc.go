// SPDX-License-Identifier: MPL-2.0

// Package platform identifies the host a launcher runs on.
//
// A Key pairs an operating system name with a CPU architecture name, using
// the same spelling as runtime.GOOS and runtime.GOARCH. Only the pairs
// returned by Supported have pre-built binaries.
package platform
