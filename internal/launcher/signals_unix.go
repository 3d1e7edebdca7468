// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"os"

	"golang.org/x/sys/unix"
)

// relayedSignals are forwarded to the child while it runs.
// os.Interrupt is caught but not forwarded: a terminal already delivers it to
// the whole foreground process group, which includes the child.
//
//nolint:gochecknoglobals // Fixed signal set.
var relayedSignals = []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}
