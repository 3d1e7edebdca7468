// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/binlaunch/pkg/types"
)

// ExitError carries the launcher's exit status out of RunE. Any diagnostic has
// already been written when it is returned.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
