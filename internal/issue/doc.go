// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. The issue catalog holds longer Markdown explanations that
// the CLI renders with glamour when running in verbose mode.
package issue
