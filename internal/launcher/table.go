// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"github.com/invowk/binlaunch/internal/revision"
	"github.com/invowk/binlaunch/pkg/platform"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table maps each supported platform to the template naming its binary.
// A key that is absent is unsupported; an empty table supports nothing.
type Table map[platform.Key]Template

// DefaultTable returns a table with every platform.Supported pair mapped to DefaultTemplate.
func DefaultTable() Table {
	return NewTable(platform.Supported(), DefaultTemplate)
}

// NewTable returns a table mapping each key to tmpl.
func NewTable(keys []platform.Key, tmpl Template) Table {
	t := make(Table, len(keys))
	for _, k := range keys {
		t[k] = tmpl
	}
	return t
}

// Resolve returns the binary name for key. It does not touch the filesystem.
// An *UnsupportedPlatformError is returned when key has no entry.
func (t Table) Resolve(key platform.Key, version revision.Token) (BinaryName, error) {
	if err := t.Check(key); err != nil {
		return "", err
	}
	return t[key].Expand(key, version)
}

// Check returns an *UnsupportedPlatformError when key has no entry, so callers
// can reject a host before computing the version token.
func (t Table) Check(key platform.Key) error {
	if _, ok := t[key]; !ok {
		return &UnsupportedPlatformError{Platform: key}
	}
	return nil
}

// Keys returns the table's platforms in a stable order.
func (t Table) Keys() []platform.Key {
	keys := maps.Keys(t)
	slices.SortFunc(keys, platform.Key.Compare)
	return keys
}
