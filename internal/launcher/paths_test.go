// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func withExecutable(t *testing.T, fn func() (string, error)) {
	t.Helper()
	orig := executable
	executable = fn
	t.Cleanup(func() { executable = orig })
}

func TestBinaryPath(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("opt", "app", "_output", "bin")
	got := BinaryPath(dir, "linux-amd64-abc123")
	want := filepath.Join(dir, "linux-amd64-abc123")
	if got != want {
		t.Errorf("BinaryPath() = %q, want %q", got, want)
	}
}

func TestInstallDir(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "binlaunch")
	if err := os.WriteFile(exe, nil, 0o755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
	withExecutable(t, func() (string, error) { return exe, nil })

	got, err := InstallDir()
	if err != nil {
		t.Fatalf("InstallDir() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("InstallDir() = %q, want %q", got, want)
	}
}

func TestInstallDir_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}

	root := t.TempDir()
	realDir := filepath.Join(root, "opt", "app")
	linkDir := filepath.Join(root, "usr", "local", "bin")
	for _, d := range []string{realDir, linkDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	exe := filepath.Join(realDir, "binlaunch")
	if err := os.WriteFile(exe, nil, 0o755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
	link := filepath.Join(linkDir, "binlaunch")
	if err := os.Symlink(exe, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	withExecutable(t, func() (string, error) { return link, nil })

	got, err := InstallDir()
	if err != nil {
		t.Fatalf("InstallDir() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(realDir)
	if got != want {
		t.Errorf("InstallDir() = %q, want %q", got, want)
	}
}

func TestInstallDir_Errors(t *testing.T) {
	errLookup := errors.New("no executable")

	tests := []struct {
		name string
		fn   func() (string, error)
	}{
		{"executable lookup fails", func() (string, error) { return "", errLookup }},
		{"executable vanished", func() (string, error) {
			return filepath.Join(t.TempDir(), "gone"), nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withExecutable(t, tt.fn)
			if _, err := InstallDir(); err == nil {
				t.Error("InstallDir() expected error")
			}
		})
	}
}
