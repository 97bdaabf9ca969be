// Package git executes the external git binary on behalf of gitie, either
// capturing its output or handing it the terminal. gitie never implements
// version-control semantics itself.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/logger"
	"github.com/phravins/gitie/pkg/utils"
)

// Output is an immutable snapshot of one captured git invocation.
// A non-zero ExitCode is data, not an error.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the captured invocation exited zero.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Bridge runs the external git binary. The zero streams default to the
// process's own; tests override them together with the executor.
type Bridge struct {
	executor Executor
	log      *logger.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewBridge creates a Bridge backed by the real git binary.
func NewBridge(log *logger.Logger) *Bridge {
	return &Bridge{
		executor: NewExecExecutor(),
		log:      log,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// NewBridgeWithExecutor creates a Bridge with a custom executor, used by
// tests to avoid spawning real processes.
func NewBridgeWithExecutor(executor Executor, log *logger.Logger) *Bridge {
	return &Bridge{executor: executor, log: log}
}

// orHelp guarantees git is never invoked with zero arguments.
func orHelp(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	return args
}

// Capture runs git with the given arguments and captures both streams.
// A non-zero exit status is reported inside Output; the returned error is
// reserved for spawn failures (git missing, context canceled).
func (b *Bridge) Capture(ctx context.Context, args ...string) (Output, error) {
	args = orHelp(args)
	b.log.Debug("capturing git command", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := b.executor.Run(cmd)
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, apperrors.Wrapf(err, "failed to run '%s'", utils.CommandString(args))
	}
	return out, nil
}

// Passthrough runs git with the calling process's standard streams so the
// user sees live output. A non-zero exit becomes a PassthroughError
// carrying the reconstructed command and the child's exit code.
func (b *Bridge) Passthrough(ctx context.Context, args ...string) error {
	args = orHelp(args)
	b.log.Debug("passing through git command", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdin = b.Stdin
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr

	if err := b.executor.Run(cmd); err != nil {
		code := 128
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			code = exitErr.ExitCode()
		}
		return &apperrors.PassthroughError{
			Command:  utils.CommandString(args),
			ExitCode: code,
		}
	}
	return nil
}

// InsideWorkTree reports whether the working directory is inside a git
// repository.
func (b *Bridge) InsideWorkTree(ctx context.Context) bool {
	out, err := b.Capture(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out.Success()
}

// StagedDiff returns the staged diff, used as the basis for AI commit
// message generation.
func (b *Bridge) StagedDiff(ctx context.Context) (string, error) {
	out, err := b.Capture(ctx, "diff", "--staged")
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDiff, err.Error())
	}
	if !out.Success() {
		return "", &apperrors.GitError{
			Command:  "git diff --staged",
			ExitCode: out.ExitCode,
			Stdout:   out.Stdout,
			Stderr:   out.Stderr,
			Err:      apperrors.ErrDiff,
		}
	}
	return out.Stdout, nil
}
