// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/invowk/binlaunch/pkg/types"
)

// ExtractExitCode maps the error returned by running a child process to the
// status the launcher should exit with.
//
// A nil error is status 0. An *exec.ExitError carrying a numeric status yields
// that status unchanged. Anything else (signal death, start failure) yields
// types.ExitFailure together with a *ChildExitIndeterminateError.
func ExtractExitCode(err error) (types.ExitCode, error) {
	if err == nil {
		return types.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := types.ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(runtime.GOOS); validateErr != nil {
			return types.ExitFailure, &ChildExitIndeterminateError{
				Reason: describeTermination(exitErr),
				Cause:  validateErr,
			}
		}
		return code, nil
	}

	return types.ExitFailure, &ChildExitIndeterminateError{Reason: "failed to start", Cause: err}
}
