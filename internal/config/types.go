// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/binlaunch/internal/launcher"
	"github.com/invowk/binlaunch/pkg/platform"
	"github.com/invowk/binlaunch/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// every field-level error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the launcher settings.
	Config struct {
		// OutputDir is the binary directory. Relative paths are resolved
		// against the launcher's install dir.
		OutputDir types.FilesystemPath `json:"output_dir" mapstructure:"output_dir"`
		// Version pins the version token; empty means ask git.
		Version string `json:"version" mapstructure:"version"`
		// GitDir is where git runs; empty means the working directory.
		GitDir string `json:"git_dir" mapstructure:"git_dir"`
		// NameTemplate names the binary for a platform and version.
		NameTemplate launcher.Template `json:"name_template" mapstructure:"name_template"`
		// Platforms lists the enabled "os/arch" pairs.
		Platforms []string `json:"platforms" mapstructure:"platforms"`
		// Verbose enables debug logging and detailed diagnostics.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme sets the color scheme for rendered diagnostics.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	supported := platform.Supported()
	platforms := make([]string, len(supported))
	for i, k := range supported {
		platforms[i] = k.String()
	}

	return &Config{
		OutputDir:    launcher.DefaultOutputDir,
		NameTemplate: launcher.DefaultTemplate,
		Platforms:    platforms,
		ColorScheme:  ColorSchemeAuto,
	}
}

// PlatformKeys parses Platforms. Pairs outside the supported four are rejected
// rather than dropped, since the environment can bypass the file schema.
func (c *Config) PlatformKeys() ([]platform.Key, error) {
	keys := make([]platform.Key, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		k, err := platform.ParseKey(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if !k.IsSupported() {
			return nil, fmt.Errorf("platforms: %s is not a supported platform", k)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Table builds the launcher table for the enabled platforms.
func (c *Config) Table() (launcher.Table, error) {
	keys, err := c.PlatformKeys()
	if err != nil {
		return nil, err
	}
	return launcher.NewTable(keys, c.NameTemplate), nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.OutputDir.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output_dir: %w", err))
	}
	if strings.TrimSpace(string(c.NameTemplate)) == "" {
		errs = append(errs, fmt.Errorf("name_template: %w", launcher.ErrInvalidTemplate))
	}
	if _, err := c.PlatformKeys(); err != nil {
		errs = append(errs, err)
	}
	if err := c.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns nil for auto, dark and light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}
