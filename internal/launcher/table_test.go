// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"testing"

	"github.com/invowk/binlaunch/internal/revision"
	"github.com/invowk/binlaunch/pkg/platform"
)

func TestDefaultTable_ResolveSupported(t *testing.T) {
	t.Parallel()

	const version revision.Token = "9f8e7d6c5b4a39281706f5e4d3c2b1a098765432"

	tests := []struct {
		key  platform.Key
		want BinaryName
	}{
		{platform.Key{OS: "linux", Arch: "amd64"}, "linux-amd64-" + BinaryName(version)},
		{platform.Key{OS: "linux", Arch: "arm64"}, "linux-arm64-" + BinaryName(version)},
		{platform.Key{OS: "windows", Arch: "amd64"}, "windows-amd64-" + BinaryName(version)},
		{platform.Key{OS: "windows", Arch: "arm64"}, "windows-arm64-" + BinaryName(version)},
	}

	table := DefaultTable()
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			t.Parallel()

			got, err := table.Resolve(tt.key, version)
			if err != nil {
				t.Fatalf("Resolve(%v) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDefaultTable_ResolveUnsupported(t *testing.T) {
	t.Parallel()

	unsupported := []platform.Key{
		{OS: "darwin", Arch: "amd64"},
		{OS: "darwin", Arch: "arm64"},
		{OS: "linux", Arch: "386"},
		{OS: "linux", Arch: "x64"},
		{OS: "freebsd", Arch: "amd64"},
		{OS: "Linux", Arch: "amd64"},
		{},
	}

	table := DefaultTable()
	for _, key := range unsupported {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()

			got, err := table.Resolve(key, "abc")
			if err == nil {
				t.Fatalf("Resolve(%v) = %q, want error", key, got)
			}
			if !errors.Is(err, ErrUnsupportedPlatform) {
				t.Errorf("error does not wrap ErrUnsupportedPlatform: %v", err)
			}

			var upErr *UnsupportedPlatformError
			if !errors.As(err, &upErr) {
				t.Fatalf("error should be *UnsupportedPlatformError, got %T", err)
			}
			if upErr.Platform != key {
				t.Errorf("Platform = %v, want %v", upErr.Platform, key)
			}
		})
	}
}

func TestUnsupportedPlatformErrorMessage(t *testing.T) {
	t.Parallel()

	err := &UnsupportedPlatformError{Platform: platform.Key{OS: "darwin", Arch: "amd64"}}
	want := "Unsupported platform (darwin) and architecture (amd64)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEmptyTable_AlwaysUnsupported(t *testing.T) {
	t.Parallel()

	table := NewTable(nil, DefaultTemplate)
	for _, key := range platform.Supported() {
		if _, err := table.Resolve(key, "abc"); !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("Resolve(%v) on empty table error = %v, want ErrUnsupportedPlatform", key, err)
		}
	}
}

func TestNewTable_Subset(t *testing.T) {
	t.Parallel()

	linuxOnly := NewTable([]platform.Key{{OS: "linux", Arch: "amd64"}}, "app-${VERSION}")

	got, err := linuxOnly.Resolve(platform.Key{OS: "linux", Arch: "amd64"}, "abc")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if got != "app-abc" {
		t.Errorf("Resolve() = %q, want %q", got, "app-abc")
	}

	if _, err := linuxOnly.Resolve(platform.Key{OS: "windows", Arch: "amd64"}, "abc"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("Resolve(windows/amd64) error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestTableKeys(t *testing.T) {
	t.Parallel()

	keys := DefaultTable().Keys()
	want := platform.Supported()
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %v, want %v", i, keys[i], want[i])
		}
	}

	if got := NewTable(nil, DefaultTemplate).Keys(); len(got) != 0 {
		t.Errorf("empty table Keys() = %v, want none", got)
	}
}

func TestTableCheck(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	for _, k := range platform.Supported() {
		if err := table.Check(k); err != nil {
			t.Errorf("Check(%s) = %v, want nil", k, err)
		}
	}

	err := table.Check(platform.Key{OS: platform.Darwin, Arch: platform.ARM64})
	var unsupported *UnsupportedPlatformError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Check(darwin/arm64) = %v, want *UnsupportedPlatformError", err)
	}
	if unsupported.Platform.OS != platform.Darwin || unsupported.Platform.Arch != platform.ARM64 {
		t.Errorf("error carries %v", unsupported.Platform)
	}
}
