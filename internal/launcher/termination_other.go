// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

import "os/exec"

// describeTermination explains why a child has no numeric exit status.
func describeTermination(_ *exec.ExitError) string {
	return "no exit status reported"
}
