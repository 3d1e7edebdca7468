// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user-supplied CUE documents against an embedded
// schema definition and turns CUE errors into path-prefixed messages.
//
//	//go:embed config_schema.cue
//	var schema string
//
//	values, err := cueutil.DecodeMap(schema, data, "#Config", cueutil.WithFilename(path))
package cueutil
