// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose   bool
		wantLevel log.Level
		wantDebug bool
	}{
		{false, log.WarnLevel, false},
		{true, log.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.wantLevel.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbose)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}

			logger.Debug("probe", "key", "value")
			if got := strings.Contains(buf.String(), "probe"); got != tt.wantDebug {
				t.Errorf("debug record written = %v, want %v (%q)", got, tt.wantDebug, buf.String())
			}

			logger.Warn("careful")
			if !strings.Contains(buf.String(), "binlaunch") {
				t.Errorf("records should carry the binlaunch prefix: %q", buf.String())
			}
		})
	}
}
