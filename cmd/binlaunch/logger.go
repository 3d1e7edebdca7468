// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger. Only warnings and errors are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "binlaunch",
		Level:  level,
	})
}
