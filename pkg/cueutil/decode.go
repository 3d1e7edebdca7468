// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of a CUE document accepted by DecodeMap.
const DefaultMaxFileSize int64 = 1 << 20

type (
	// Option configures DecodeMap.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
	}
)

// WithFilename sets the file name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}

// DecodeMap compiles schema and data, unifies data with the schema's
// definition, validates the result and decodes it into a map.
// Optional fields the document leaves out are omitted from the map.
func DecodeMap(schema string, data []byte, definition string, opts ...Option) (map[string]any, error) {
	o := options{filename: "<input>", maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath(definition))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", definition, def.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), o.filename)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return values, nil
}
