// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestIsWindowsReservedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"con", true},
		{"CON", true},
		{"Con", true},
		{"prn", true},
		{"aux", true},
		{"nul", true},
		{"com1", true},
		{"COM9", true},
		{"lpt1", true},
		{"LPT9", true},
		{"con.txt", true},
		{"NUL.exe", true},
		{"con.tar.gz", true},

		{"myfile", false},
		{"confile", false},
		{"windows-amd64-con", false},
		{"com0", false},
		{"com10", false},
		{"lpt10", false},
		{"comx", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsWindowsReservedName(tt.input); got != tt.want {
				t.Errorf("IsWindowsReservedName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
