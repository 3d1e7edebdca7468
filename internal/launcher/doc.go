// SPDX-License-Identifier: MPL-2.0

// Package launcher selects the pre-built binary for the host platform and runs it.
//
// Selection is a lookup in a Table keyed by platform.Key; the matching Template
// expands to the binary's file name using the platform and the version token.
// Launch runs the binary as a child process with the caller's standard streams
// and reports the child's exit status, collapsing every case without a numeric
// status to 1.
package launcher
