// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all diagnostics.
const (
	// ColorMuted is gray, for suggestions and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red, for error headlines.
	ColorError = lipgloss.Color("#EF4444")
)

// styles are bound to the writer they render for, so color is only emitted
// when that writer is a terminal.
type styles struct {
	Error lipgloss.Style
	Muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Error: r.NewStyle().Bold(true).Foreground(ColorError),
		Muted: r.NewStyle().Foreground(ColorMuted),
	}
}
