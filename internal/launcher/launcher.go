// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"

	"github.com/invowk/binlaunch/internal/issue"
	"github.com/invowk/binlaunch/internal/revision"
	"github.com/invowk/binlaunch/pkg/platform"
	"github.com/invowk/binlaunch/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Launcher runs the binary matching a platform from OutputDir.
	Launcher struct {
		// OutputDir is the absolute directory holding pre-built binaries.
		OutputDir string
		// Table decides which platforms are supported and how binaries are named.
		Table Table
		// Logger receives debug records. Nil discards them.
		Logger *log.Logger

		// Stdin, Stdout and Stderr are handed to the child. When they are
		// *os.File values the child inherits the descriptors directly.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Request describes one launch.
	Request struct {
		// Platform selects the table entry, normally platform.Host().
		Platform platform.Key
		// Version is the token embedded in the binary name.
		Version revision.Token
		// Args are passed to the child unchanged.
		Args []string
	}

	// Result is the outcome of a launch.
	Result struct {
		// ExitCode is the status the launcher should exit with.
		ExitCode types.ExitCode
		// Binary is the path that was executed, empty if resolution failed.
		Binary string
		// Error is set for UnsupportedPlatform and ChildExitIndeterminate outcomes.
		// A child that exits non-zero is not an error.
		Error error
	}
)

// Launch resolves the binary for req, runs it, and waits for it to exit.
// Exactly one child is started on success and none on an unsupported platform.
// The wait is unconditional: ctx cancellation does not kill the child.
func (l *Launcher) Launch(ctx context.Context, req Request) *Result {
	logger := l.logger()

	name, err := l.Table.Resolve(req.Platform, req.Version)
	if err != nil {
		return &Result{ExitCode: types.ExitFailure, Error: err}
	}

	path := BinaryPath(l.OutputDir, name)
	logger.Debug("launching binary", "platform", req.Platform, "version", req.Version.Short(), "path", path, "args", len(req.Args))

	cmd := exec.CommandContext(context.WithoutCancel(ctx), path, req.Args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		code, startErr := ExtractExitCode(err)
		return &Result{ExitCode: code, Binary: path, Error: startFailure(path, startErr)}
	}

	r := startRelay(cmd.Process, logger)
	waitErr := cmd.Wait()
	r.stop()

	code, exitErr := ExtractExitCode(waitErr)
	if exitErr != nil {
		logger.Debug("child exit status unavailable", "path", path, "err", exitErr)
	} else {
		logger.Debug("child exited", "path", path, "code", code)
	}
	return &Result{ExitCode: code, Binary: path, Error: exitErr}
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// startFailure attaches remediation hints to an error from starting the child.
func startFailure(path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("launch binary").
		WithResource(path)

	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		ctx.WithIssue(issue.BinaryNotFoundId).
			WithSuggestion("Build the binaries for the current revision into the output directory").
			WithSuggestion("Set BINLAUNCH_VERSION if the binaries were built from a different revision")
	case errors.Is(err, fs.ErrPermission):
		ctx.WithIssue(issue.PermissionDeniedId).
			WithSuggestion("Make the binary executable (chmod +x)")
	}

	return ctx.Wrap(err).BuildError()
}
