// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/binlaunch/internal/config"
	"github.com/invowk/binlaunch/internal/launcher"
	"github.com/invowk/binlaunch/internal/revision"
	"github.com/invowk/binlaunch/pkg/platform"
	"github.com/invowk/binlaunch/pkg/types"
)

type (
	// App wires the launcher to its configuration, version source and
	// process streams. It is the composition root of the CLI.
	App struct {
		Config     ConfigProvider
		Revision   RevisionResolver
		InstallDir func() (string, error)
		Getenv     func(string) string
		Platform   platform.Key
		stdin      io.Reader
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil and
	// zero fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     ConfigProvider
		Revision   RevisionResolver
		InstallDir func() (string, error)
		Getenv     func(string) string
		Platform   platform.Key
		Stdin      io.Reader
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// RevisionResolver computes the version token.
	RevisionResolver func(ctx context.Context, opts revision.Options) (revision.Token, error)
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Revision == nil {
		deps.Revision = revision.Resolve
	}
	if deps.InstallDir == nil {
		deps.InstallDir = launcher.InstallDir
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.Platform == (platform.Key{}) {
		deps.Platform = platform.Host()
	}

	return &App{
		Config:     deps.Config,
		Revision:   deps.Revision,
		InstallDir: deps.InstallDir,
		Getenv:     deps.Getenv,
		Platform:   deps.Platform,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// Run launches the binary for a.Platform with args. It returns nil when the
// child exited 0 and an *ExitError carrying the status otherwise.
// Diagnostics are written to stderr before Run returns.
func (a *App) Run(ctx context.Context, args []string) error {
	installDir, err := a.InstallDir()
	if err != nil {
		return a.fail(err, newDiagnosticRenderer(a.stderr, false, config.ColorSchemeAuto))
	}

	loaded, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.Getenv(config.EnvConfigFile)),
		InstallDir:     types.FilesystemPath(installDir),
	})
	if err != nil {
		return a.fail(err, newDiagnosticRenderer(a.stderr, false, config.ColorSchemeAuto))
	}

	diag := newDiagnosticRenderer(a.stderr, loaded.Verbose, loaded.ColorScheme)
	logger := newLogger(a.stderr, loaded.Verbose)
	if loaded.Path != "" {
		logger.Debug("configuration loaded", "file", loaded.Path)
	}
	logger.Debug("starting", "launcher", getVersionString(), "platform", a.Platform, "install_dir", installDir)

	table, err := loaded.Table()
	if err != nil {
		return a.fail(err, diag)
	}
	logger.Debug("platform table", "platforms", table.Keys())
	// An unsupported host is reported before git is consulted.
	if err := table.Check(a.Platform); err != nil {
		return a.fail(err, diag)
	}

	token, err := a.Revision(ctx, revision.Options{
		Pinned: revision.Token(loaded.Version),
		Dir:    loaded.GitDir,
	})
	if err != nil {
		return a.fail(err, diag)
	}

	l := &launcher.Launcher{
		OutputDir: loaded.OutputDir.Resolve(installDir).String(),
		Table:     table,
		Logger:    logger,
		Stdin:     a.stdin,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
	}
	result := l.Launch(ctx, launcher.Request{Platform: a.Platform, Version: token, Args: args})
	if result.Error != nil {
		diag.Render(result.Error)
	}
	if result.ExitCode.IsSuccess() && result.Error == nil {
		return nil
	}
	return &ExitError{Code: result.ExitCode, Err: result.Error}
}

func (a *App) fail(err error, diag *diagnosticRenderer) error {
	diag.Render(err)
	return &ExitError{Code: types.ExitFailure, Err: err}
}
