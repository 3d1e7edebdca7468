// SPDX-License-Identifier: MPL-2.0

package revision

import (
	"errors"
	"testing"
)

func TestTokenValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     Token
		wantValid bool
	}{
		{name: "full sha", value: "0123456789abcdef0123456789abcdef01234567", wantValid: true},
		{name: "short sha", value: "abc123", wantValid: true},
		{name: "tag-like", value: "v1.2.3", wantValid: true},
		{name: "empty", value: "", wantValid: false},
		{name: "dot", value: ".", wantValid: false},
		{name: "dot dot", value: "..", wantValid: false},
		{name: "slash", value: "../../etc/passwd", wantValid: false},
		{name: "backslash", value: `..\evil`, wantValid: false},
		{name: "trailing newline", value: "abc123\n", wantValid: false},
		{name: "inner space", value: "abc 123", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if tt.wantValid {
				if err != nil {
					t.Errorf("Token(%q).Validate() returned error for valid value: %v", tt.value, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Token(%q).Validate() returned nil for invalid value", tt.value)
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("error does not wrap ErrInvalidToken: %v", err)
			}
		})
	}
}

func TestTokenShort(t *testing.T) {
	t.Parallel()

	if got := Token("0123456789abcdef0123").Short(); got != "0123456789ab" {
		t.Errorf("Short() = %q, want %q", got, "0123456789ab")
	}
	if got := Token("abc").Short(); got != "abc" {
		t.Errorf("Short() = %q, want %q", got, "abc")
	}
}
