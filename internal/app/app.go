// Package app drives one gitie invocation: it classifies the argument
// vector and composes the git bridge and the AI client in the sequence the
// selected path requires. Every error propagates unmodified to main; the
// orchestrator performs no retries.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phravins/gitie/internal/cli"
	"github.com/phravins/gitie/internal/config"
	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/git"
	"github.com/phravins/gitie/internal/logger"
	"github.com/phravins/gitie/internal/prompt"
	"github.com/phravins/gitie/internal/ui"
	"github.com/phravins/gitie/pkg/utils"
)

// GitRunner is the subset of the git bridge the orchestrator needs.
type GitRunner interface {
	Capture(ctx context.Context, args ...string) (git.Output, error)
	Passthrough(ctx context.Context, args ...string) error
	InsideWorkTree(ctx context.Context) bool
	StagedDiff(ctx context.Context) (string, error)
}

// Completer is the subset of the AI client the orchestrator needs.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CommitMessage(ctx context.Context, diff string) (string, error)
}

// App wires one invocation's collaborators together.
type App struct {
	Config *config.Config
	Git    GitRunner
	AI     Completer
	Out    io.Writer
	Log    *logger.Logger

	// Render turns model markdown into terminal output.
	Render func(string) string
}

// New builds an App with the default output and renderer.
func New(cfg *config.Config, bridge GitRunner, completer Completer, log *logger.Logger) *App {
	return &App{
		Config: cfg,
		Git:    bridge,
		AI:     completer,
		Out:    os.Stdout,
		Log:    log,
		Render: ui.RenderMarkdown,
	}
}

// Run classifies args and executes the selected path.
func (a *App) Run(ctx context.Context, args []string) error {
	c := cli.Classify(args)
	a.Log.Debug("classified invocation", "kind", c.Kind.String())

	switch c.Kind {
	case cli.KindHelpPassthrough, cli.KindPassthrough:
		return a.Git.Passthrough(ctx, c.Args...)
	case cli.KindHelpWithExplain:
		return a.explainOutput(ctx, c.Args)
	case cli.KindGlobalExplain:
		return a.explainCommand(ctx, c.Args)
	case cli.KindCommit:
		return a.runCommit(ctx, c.Commit)
	default:
		return a.Git.Passthrough(ctx, c.Args...)
	}
}

const nothingToExplain = "The command produced no output for the AI to explain. " +
	"It might be a command that doesn't print to stdout/stderr on success, " +
	"or it requires specific conditions to produce output."

// explainOutput captures the git invocation and asks the model to explain
// what came back.
func (a *App) explainOutput(ctx context.Context, args []string) error {
	out, err := a.Git.Capture(ctx, args...)
	if err != nil {
		return err
	}

	command := utils.CommandString(args)
	empty := strings.TrimSpace(out.Stdout) == "" &&
		(out.Success() || strings.TrimSpace(out.Stderr) == "")
	if empty {
		fmt.Fprintln(a.Out, ui.Subtle(nothingToExplain))
		return nil
	}

	user := prompt.ExplainOutputUser(command, out.Stdout, out.Stderr, !out.Success())
	text, err := a.AI.Complete(ctx, prompt.ExplainOutputSystem, user)
	if err != nil {
		return err
	}

	fmt.Fprint(a.Out, a.Render(text))
	return nil
}

// explainCommand asks the model to explain a git command without running it.
func (a *App) explainCommand(ctx context.Context, args []string) error {
	text, err := a.AI.Complete(ctx, prompt.ExplainCommandSystem, prompt.ExplainCommandUser(args))
	if err != nil {
		return err
	}

	fmt.Fprint(a.Out, a.Render(text))
	return nil
}

// runCommit executes the enhancer-native commit flow.
func (a *App) runCommit(ctx context.Context, intent *cli.CommitIntent) error {
	if !a.Git.InsideWorkTree(ctx) {
		return apperrors.ErrNotARepository
	}

	if !intent.UseAI {
		return a.plainCommit(ctx, intent)
	}

	if intent.AutoStage {
		out, err := a.Git.Capture(ctx, "add", "-u")
		if err != nil {
			return err
		}
		if !out.Success() {
			return &apperrors.GitError{
				Command:  "git add -u",
				ExitCode: out.ExitCode,
				Stdout:   out.Stdout,
				Stderr:   out.Stderr,
			}
		}
	}

	diff, err := a.Git.StagedDiff(ctx)
	if err != nil {
		return err
	}
	a.Log.Debug("staged diff acquired", "preview", utils.Truncate(diff, 120))

	if strings.TrimSpace(diff) == "" {
		if contains(intent.Passthrough, "--allow-empty") {
			a.Log.Info("no staged changes, falling back to plain commit (--allow-empty)")
			return a.plainCommit(ctx, intent)
		}
		return apperrors.ErrNoStagedChanges
	}

	message, err := a.AI.CommitMessage(ctx, diff)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s\n%s\n\n", ui.Heading("AI-generated commit message:"), message)

	args := append([]string{"commit", "-m", message}, filterStagingFlags(intent.Passthrough)...)
	return a.Git.Passthrough(ctx, args...)
}

// plainCommit forwards the commit to git, translating auto-stage into -a
// and deduplicating staging flags already spelled in the tail.
func (a *App) plainCommit(ctx context.Context, intent *cli.CommitIntent) error {
	args := []string{"commit"}
	tail := intent.Passthrough
	if intent.AutoStage {
		args = append(args, "-a")
		tail = filterStagingFlags(tail)
	}
	if intent.Message != "" {
		args = append(args, "-m", intent.Message)
	}
	args = append(args, tail...)
	return a.Git.Passthrough(ctx, args...)
}

func contains(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// filterStagingFlags drops -a/--all so staging is never applied twice.
func filterStagingFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-a" || a == "--all" {
			continue
		}
		out = append(out, a)
	}
	return out
}
