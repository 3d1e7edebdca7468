// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/invowk/binlaunch/internal/config"
	"github.com/invowk/binlaunch/internal/issue"
	"github.com/invowk/binlaunch/internal/launcher"
)

// diagnosticRenderer writes failure messages to stderr. Verbose mode appends
// the error chain and the rendered catalog entry for the failure.
type diagnosticRenderer struct {
	w           io.Writer
	verbose     bool
	colorScheme config.ColorScheme
	styles      styles
}

func newDiagnosticRenderer(w io.Writer, verbose bool, colorScheme config.ColorScheme) *diagnosticRenderer {
	return &diagnosticRenderer{
		w:           w,
		verbose:     verbose,
		colorScheme: colorScheme,
		styles:      newStyles(w),
	}
}

// Render writes a diagnostic for err. A child terminated by a signal produces
// no output; the shell reports that itself.
func (r *diagnosticRenderer) Render(err error) {
	var (
		unsupported *launcher.UnsupportedPlatformError
		actionable  *issue.ActionableError
	)

	switch {
	case errors.As(err, &unsupported):
		fmt.Fprintln(r.w, r.styles.Error.Render(unsupported.Error()))
		r.renderIssue(issue.Get(issue.HostNotSupportedId))
	case errors.As(err, &actionable):
		fmt.Fprintln(r.w, r.styles.Error.Render("Error:")+" "+actionable.Format(r.verbose))
		r.renderIssue(actionable.CatalogIssue())
	case errors.Is(err, launcher.ErrChildExitIndeterminate):
		return
	default:
		fmt.Fprintln(r.w, r.styles.Error.Render("Error:")+" "+err.Error())
	}
}

func (r *diagnosticRenderer) renderIssue(entry *issue.Issue) {
	if !r.verbose || entry == nil {
		return
	}
	md, err := entry.Render(r.colorScheme.String())
	if err != nil {
		fmt.Fprintln(r.w, r.styles.Muted.Render("(could not render details: "+err.Error()+")"))
		return
	}
	fmt.Fprint(r.w, md)
}
