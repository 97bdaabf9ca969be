package cli

import (
	"io"

	"github.com/spf13/pflag"
)

// CommitIntent holds the parsed flags of the enhancer-native commit
// subcommand. Passthrough carries everything after the "--" separator,
// forwarded verbatim to git commit.
type CommitIntent struct {
	UseAI       bool
	AutoStage   bool
	Message     string
	Passthrough []string
}

// parseCommit attempts to parse args under the commit grammar:
//
//	commit [--ai] [-a|--all] [-m|--message <text>] [-- <git flags...>]
//
// The short alias "ci" is accepted. Unknown flags or positional arguments
// before the separator mean args do not belong to this grammar and
// classification falls through to the later rules.
func parseCommit(args []string) (*CommitIntent, bool) {
	if len(args) == 0 {
		return nil, false
	}
	if args[0] != "commit" && args[0] != "ci" {
		return nil, false
	}

	fs := pflag.NewFlagSet("commit", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	useAI := fs.Bool("ai", false, "generate the commit message with AI")
	autoStage := fs.BoolP("all", "a", false, "stage tracked, modified files before committing")
	message := fs.StringP("message", "m", "", "commit message")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, false
	}

	positional := fs.Args()
	dash := fs.ArgsLenAtDash()

	var passthrough []string
	switch {
	case dash < 0:
		if len(positional) > 0 {
			// Positionals without a separator are git's business.
			return nil, false
		}
	case dash > 0:
		return nil, false
	default:
		passthrough = positional
	}

	return &CommitIntent{
		UseAI:       *useAI,
		AutoStage:   *autoStage,
		Message:     *message,
		Passthrough: passthrough,
	}, true
}
