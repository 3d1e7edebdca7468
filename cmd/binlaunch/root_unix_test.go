// SPDX-License-Identifier: MPL-2.0

//go:build unix

package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

// TestRun_TerminalReceivesOnlyChildOutput checks that a failing child on a
// terminal leaves nothing but its own bytes behind. The launcher must not
// query the terminal (color or device attributes) on its way out.
func TestRun_TerminalReceivesOnlyChildOutput(t *testing.T) {
	// Not parallel: os.Stdin and os.Stdout are replaced for the duration.

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptmx.Close()

	origStdin, origStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = tty, tty
	t.Cleanup(func() { os.Stdin, os.Stdout = origStdin, origStdout })

	var got bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = io.Copy(&got, ptmx)
	}()

	h := newHarness(t)
	h.writeChild(t, linuxAMD64, "printf child\nexit 7\n")

	start := time.Now()
	code := run(context.Background(), nil, Dependencies{
		Config:     h.config,
		Revision:   h.revision.Resolve,
		InstallDir: func() (string, error) { return h.installDir, nil },
		Getenv:     func(string) string { return "" },
		Platform:   h.platform,
		Stdin:      tty,
		Stdout:     tty,
		Stderr:     &h.stderr,
	})
	elapsed := time.Since(start)

	os.Stdin, os.Stdout = origStdin, origStdout
	if err := tty.Close(); err != nil {
		t.Fatalf("closing tty: %v", err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out draining the terminal")
	}

	if code != 7 {
		t.Errorf("exit code = %d, want 7 (stderr: %s)", code, h.stderr.String())
	}
	if got.String() != "child" {
		t.Errorf("terminal received %q, want %q", got.String(), "child")
	}
	if elapsed >= 2*time.Second {
		t.Errorf("run took %v; the launcher should not wait on the terminal", elapsed)
	}
}
