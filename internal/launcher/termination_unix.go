// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// describeTermination explains why a child has no numeric exit status.
func describeTermination(exitErr *exec.ExitError) string {
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return "no exit status reported"
	}
	name := unix.SignalName(ws.Signal())
	if name == "" {
		name = ws.Signal().String()
	}
	if ws.CoreDump() {
		return "terminated by signal " + name + " (core dumped)"
	}
	return "terminated by signal " + name
}
