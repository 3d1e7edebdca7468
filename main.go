// SPDX-License-Identifier: MPL-2.0

// Binlaunch runs the pre-built binary matching the host operating system and
// CPU architecture, forwarding arguments, standard streams and exit status.
package main

import cmd "github.com/invowk/binlaunch/cmd/binlaunch"

func main() {
	cmd.Execute()
}
