// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/invowk/binlaunch/internal/issue"
	"github.com/invowk/binlaunch/pkg/cueutil"
	"github.com/invowk/binlaunch/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "binlaunch"
	// EnvPrefix prefixes every environment override (BINLAUNCH_OUTPUT_DIR, ...).
	EnvPrefix = "BINLAUNCH"
	// EnvConfigFile names an explicit config file.
	EnvConfigFile = EnvPrefix + "_CONFIG"
	// ConfigFileName is the name of the user config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// InstallConfigFileName is the config file looked up next to the launcher.
	InstallConfigFileName = AppName + "." + ConfigFileExt

	schemaDefinition = "#Config"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the binlaunch configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions builds a fresh Viper instance per call, so loading has no
// package-level state. It returns the config and the file it came from, if any.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir.String())
	v.SetDefault("version", defaults.Version)
	v.SetDefault("git_dir", defaults.GitDir)
	v.SetDefault("name_template", string(defaults.NameTemplate))
	v.SetDefault("platforms", defaults.Platforms)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("color_scheme", defaults.ColorScheme.String())

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", loadError(path, err,
				"Check that the file contains valid CUE syntax",
				"Verify the values match the schema (e.g. platforms must be linux/amd64, linux/arm64, windows/amd64 or windows/arm64)",
			)
		}
	}

	// Environment beats the file. Empty variables count as unset.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", loadError(path, fmt.Errorf("failed to parse config: %w", err),
			"Check the BINLAUNCH_* environment variables for malformed values",
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check the BINLAUNCH_* environment variables and the config file").
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// findConfigFile returns the first config file in lookup order, or "" if there
// is none. An explicitly requested file must exist.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath.String()
		if !fileExists(path) {
			return "", loadError(path, fmt.Errorf("config file not found: %s: %w", path, fs.ErrNotExist),
				"Verify the path in "+EnvConfigFile+" is correct",
				"Unset "+EnvConfigFile+" to use the default lookup",
			)
		}
		return path, nil
	}

	var candidates []string
	if opts.InstallDir != "" {
		candidates = append(candidates, filepath.Join(opts.InstallDir.String(), InstallConfigFileName))
	}

	cfgDir := opts.ConfigDirPath.String()
	if cfgDir == "" {
		dir, err := ConfigDir()
		// Without a home directory there is simply no user config.
		if err == nil {
			cfgDir = dir
		}
	}
	if cfgDir != "" {
		candidates = append(candidates, filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt))
	}

	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into
// Viper. Fields the file leaves out keep their defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, schemaDefinition, cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func loadError(path string, err error, suggestions ...string) error {
	ctx := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId)
	for _, s := range suggestions {
		ctx.WithSuggestion(s)
	}
	return ctx.Wrap(err).BuildError()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}
