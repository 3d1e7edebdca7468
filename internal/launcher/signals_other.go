// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

import "os"

// relayedSignals are caught while the child runs. On Windows the console
// delivers Ctrl+C to every attached process, so nothing needs forwarding.
//
//nolint:gochecknoglobals // Fixed signal set.
var relayedSignals = []os.Signal{os.Interrupt}
