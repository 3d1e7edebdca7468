// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on setup errors,
// for environment variables (MustSetenv, SetHomeDir) and fixture files
// (MustWriteFile, MustMkdirAll).
package testutil
