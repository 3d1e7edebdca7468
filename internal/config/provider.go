// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/invowk/binlaunch/pkg/types"
)

// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions defines explicit configuration loading inputs.
	// Zero values fall back to the default lookup.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath types.FilesystemPath
		// InstallDir is the launcher's install dir, searched for binlaunch.cue.
		InstallDir types.FilesystemPath
		// ConfigDirPath overrides the user config directory when set.
		ConfigDirPath types.FilesystemPath
	}

	// InvalidLoadOptionsError is returned when a set LoadOptions field is
	// whitespace-only.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Loaded, error)
	}

	// Loaded is a configuration together with the file it was read from.
	Loaded struct {
		*Config
		// Path is the config file used, empty when only defaults and env applied.
		Path string
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Path: path}, nil
}

// Validate checks every non-empty path field.
func (o LoadOptions) Validate() error {
	var errs []error
	for _, p := range []types.FilesystemPath{o.ConfigFilePath, o.InstallDir, o.ConfigDirPath} {
		if p == "" {
			continue
		}
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
