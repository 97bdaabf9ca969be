// Package cli classifies a raw argument vector into exactly one execution
// path. Classification is a pure function: no I/O, no environment access,
// and every possible argument vector maps to exactly one result.
package cli

// Kind tags the classification of one invocation.
type Kind int

const (
	// KindHelpPassthrough forwards a help invocation to git untouched.
	KindHelpPassthrough Kind = iota
	// KindHelpWithExplain captures git help output and explains it.
	KindHelpWithExplain
	// KindCommit is the enhancer-native commit subcommand.
	KindCommit
	// KindGlobalExplain explains a git command without running it.
	KindGlobalExplain
	// KindPassthrough forwards the invocation to git untouched.
	KindPassthrough
)

func (k Kind) String() string {
	switch k {
	case KindHelpPassthrough:
		return "help-passthrough"
	case KindHelpWithExplain:
		return "help-with-explain"
	case KindCommit:
		return "commit"
	case KindGlobalExplain:
		return "global-explain"
	default:
		return "passthrough"
	}
}

// Classification is the result of classifying one argument vector.
// Args holds the effective arguments for the selected path; Commit is
// populated only when Kind is KindCommit.
type Classification struct {
	Kind   Kind
	Args   []string
	Commit *CommitIntent
}

// aiFlag is the global flag requesting an AI explanation.
const aiFlag = "--ai"

// Classify maps args to exactly one Classification. Rules are applied in
// priority order and the first match wins:
//
//  1. A help flag routes to git, with AI explanation when --ai is present.
//  2. The enhancer-native commit grammar.
//  3. A bare --ai asks for an explanation of the remaining command.
//  4. Everything else passes through verbatim.
//
// Flag detection and stripping never cross the first "--" token: anything
// after the separator belongs to git.
func Classify(args []string) Classification {
	head, rest := splitAtSeparator(args)

	if containsAny(head, "-h", "--help") {
		if contains(head, aiFlag) {
			effective := append(stripAll(head, aiFlag), rest...)
			return Classification{Kind: KindHelpWithExplain, Args: effective}
		}
		return Classification{Kind: KindHelpPassthrough, Args: args}
	}

	if intent, ok := parseCommit(args); ok {
		return Classification{Kind: KindCommit, Args: args, Commit: intent}
	}

	if contains(head, aiFlag) {
		effective := append(stripAll(head, aiFlag), rest...)
		if len(effective) == 0 {
			// Give the explainer something concrete to describe.
			effective = []string{"--help"}
		}
		return Classification{Kind: KindGlobalExplain, Args: effective}
	}

	return Classification{Kind: KindPassthrough, Args: args}
}

// splitAtSeparator splits args at the first "--" token. The separator and
// everything after it are returned verbatim in rest.
func splitAtSeparator(args []string) (head, rest []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func contains(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func containsAny(args []string, flags ...string) bool {
	for _, f := range flags {
		if contains(args, f) {
			return true
		}
	}
	return false
}

// stripAll removes every occurrence of flag, so repeated flags are
// stripped idempotently.
func stripAll(args []string, flag string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}
