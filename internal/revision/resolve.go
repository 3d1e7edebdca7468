// SPDX-License-Identifier: MPL-2.0

package revision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/invowk/binlaunch/internal/issue"
)

// DefaultGit is the version-control executable looked up on PATH.
const DefaultGit = "git"

// Options controls how the version token is obtained.
type Options struct {
	// Pinned, when set, is returned as-is (after validation) and git is not run.
	Pinned Token
	// Dir is the directory git runs in. Empty means the current working directory.
	Dir string
	// Git overrides the git executable. Empty means DefaultGit.
	Git string
}

// runGit is a test seam for invoking git. It returns the command's standard output.
//
//nolint:gochecknoglobals // Test seam requires a package-level variable.
var runGit = func(ctx context.Context, git, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, git, "rev-parse", "HEAD")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// Resolve returns the version token for this process. It is meant to be
// called once at startup; the result is passed explicitly to whatever needs it.
func Resolve(ctx context.Context, opts Options) (Token, error) {
	if opts.Pinned != "" {
		if err := opts.Pinned.Validate(); err != nil {
			return "", issue.NewErrorContext().
				WithOperation("use pinned version").
				WithSuggestion("Set BINLAUNCH_VERSION to a single revision string such as a commit hash").
				WithIssue(issue.RevisionUnavailableId).
				Wrap(err).
				BuildError()
		}
		return opts.Pinned, nil
	}

	git := opts.Git
	if git == "" {
		git = DefaultGit
	}

	resource := opts.Dir
	if resource == "" {
		resource = "current directory"
	}

	out, err := runGit(ctx, git, opts.Dir)
	if err != nil {
		ctxErr := issue.NewErrorContext().
			WithOperation("resolve source revision").
			WithResource(resource).
			WithIssue(issue.RevisionUnavailableId)
		if errors.Is(err, exec.ErrNotFound) {
			ctxErr.WithSuggestion("Install git or add it to your PATH")
		} else {
			ctxErr.WithSuggestion("Run the launcher from inside the repository checkout")
		}
		return "", ctxErr.
			WithSuggestion("Set BINLAUNCH_VERSION to pin the revision").
			Wrap(err).
			BuildError()
	}

	token := Token(strings.TrimSpace(string(out)))
	if err := token.Validate(); err != nil {
		return "", issue.NewErrorContext().
			WithOperation("resolve source revision").
			WithResource(resource).
			WithIssue(issue.RevisionUnavailableId).
			Wrap(err).
			BuildError()
	}
	return token, nil
}
