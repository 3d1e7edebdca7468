// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "BINLAUNCH_TESTUTIL_VAR"

	t.Run("previously unset", func(t *testing.T) {
		_ = os.Unsetenv(key)
		cleanup := MustSetenv(t, key, "value")
		if got := os.Getenv(key); got != "value" {
			t.Errorf("%s = %q, want value", key, got)
		}
		cleanup()
		if _, ok := os.LookupEnv(key); ok {
			t.Errorf("%s should be unset after cleanup", key)
		}
	})

	t.Run("previously set", func(t *testing.T) {
		t.Setenv(key, "original")
		cleanup := MustSetenv(t, key, "changed")
		cleanup()
		if got := os.Getenv(key); got != "original" {
			t.Errorf("%s = %q, want original", key, got)
		}
	})
}

func TestSetHomeDir(t *testing.T) {
	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	t.Setenv(key, "before")

	dir := t.TempDir()
	cleanup := SetHomeDir(t, dir)
	if got := os.Getenv(key); got != dir {
		t.Errorf("%s = %q, want %q", key, got, dir)
	}
	cleanup()
	if got := os.Getenv(key); got != "before" {
		t.Errorf("after cleanup %s = %q, want before", key, got)
	}
}

func TestMustWriteExecutable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "tool")
	MustWriteExecutable(t, path, "#!/bin/sh\n")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		t.Errorf("mode = %v, want executable bits", info.Mode())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "#!/bin/sh\n" {
		t.Errorf("content = %q", data)
	}
}
