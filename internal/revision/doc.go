// SPDX-License-Identifier: MPL-2.0

// Package revision computes the version token that names pre-built binaries.
//
// The token is the current source-control revision, read once at startup by
// running `git rev-parse HEAD`, unless a pinned value is configured.
package revision
