// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// IsWindowsReservedName reports whether Windows refuses name as a file name
// because it is a device name (CON, PRN, AUX, NUL, COM1-COM9, LPT1-LPT9).
// Case is ignored, as is everything from the first dot on.
func IsWindowsReservedName(name string) bool {
	base, _, _ := strings.Cut(strings.ToUpper(name), ".")
	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}
