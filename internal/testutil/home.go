// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetHomeDir points the home directory at dir (USERPROFILE on Windows, HOME
// elsewhere) and returns a cleanup function restoring the original value.
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}
