// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/binlaunch/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// argsGuard is prepended to the proxied arguments so cobra never dispatches
// them to its built-in commands such as __complete.
const argsGuard = "--"

// newRootCommand returns the proxy command. Flag parsing is disabled so that
// --help, --version and everything else reach the child untouched. The
// child's status is stored in status; RunE only fails for errors that were
// not already reported by App.Run.
func newRootCommand(app *App, status *types.ExitCode) *cobra.Command {
	return &cobra.Command{
		Use:                "binlaunch [args...]",
		Short:              "Run the pre-built binary for this platform",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Run(cmd.Context(), trimArgsGuard(args))
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				*status = exitErr.Code
				return nil
			}
			return err
		},
	}
}

func trimArgsGuard(args []string) []string {
	if len(args) > 0 && args[0] == argsGuard {
		return args[1:]
	}
	return args
}

// Execute runs binlaunch with the process arguments and exits with the
// launched binary's status. It is called by main.main().
func Execute() {
	os.Exit(int(run(context.Background(), os.Args[1:], Dependencies{})))
}

// run executes the root command with args and returns the exit status.
// fang only ever sees errors App.Run did not handle: its error path probes
// the terminal, which would write to the child's stdout.
func run(ctx context.Context, args []string, deps Dependencies) types.ExitCode {
	app := NewApp(deps)

	status := types.ExitSuccess
	root := newRootCommand(app, &status)
	root.SetArgs(append([]string{argsGuard}, args...))
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	if err := fang.Execute(ctx, root,
		fang.WithoutVersion(),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	); err != nil {
		return types.ExitFailure
	}
	return status
}
