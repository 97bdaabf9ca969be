// Package prompt holds the built-in system prompts and the user-prompt
// builders for the AI round trips. The commit-message system prompt is not
// here: it is loaded from the commit-prompt document by the config resolver.
package prompt

import (
	"fmt"
	"strings"
)

// ExplainOutputSystem instructs the model to explain captured git output.
const ExplainOutputSystem = `You are a helpful assistant integrated into a Git command-line enhancer.
The user has executed a Git command and received the following output.
Please explain this output clearly and concisely.
If the output indicates an error or a common misunderstanding, clarify it.
Focus on what the output means and what the user might want to do next.
Do not include any conversational pleasantries or self-references like "As an AI...".
Just provide the explanation directly.`

// ExplainCommandSystem instructs the model to explain a git command
// without running it.
const ExplainCommandSystem = `You are a helpful assistant integrated into a Git command-line enhancer.
The user wants to understand a specific Git command.
Please explain the Git command provided by the user clearly and concisely.
Describe its purpose, common options (if any are apparent or highly relevant), and typical use cases.
If the command seems incomplete or potentially problematic, you can briefly note that.
Do not include any conversational pleasantries or self-references like "As an AI...".
Just provide the explanation for the command directly.
The user's command will follow.`

const (
	// maxDiffChars bounds the diff embedded in a commit-message prompt.
	maxDiffChars = 8000

	// truncationMarker is appended whenever a diff was cut. Content is
	// never dropped silently.
	truncationMarker = "\n... (diff truncated)"
)

// ExplainCommandUser builds the user prompt asking for an explanation of
// a git command reconstructed from its parts.
func ExplainCommandUser(parts []string) string {
	return fmt.Sprintf("Explain the following git command: git %s", strings.Join(parts, " "))
}

// ExplainOutputUser builds the user prompt embedding captured command
// output. Stderr is included under a labeled section only when the
// command failed.
func ExplainOutputUser(command, stdout, stderr string, failed bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Explain the following git command output:\n\nCommand: %s\n\nOutput:\n%s", command, stdout)
	if failed && strings.TrimSpace(stderr) != "" {
		fmt.Fprintf(&sb, "\n\n--- stderr ---\n%s", stderr)
	}
	return sb.String()
}

// CommitUser builds the user prompt embedding the staged diff. Diffs over
// the size bound are truncated with an explicit marker.
func CommitUser(diff string) string {
	return fmt.Sprintf("Generate a commit message for these changes:\n\n%s", TruncateDiff(diff))
}

// TruncateDiff bounds diff to maxDiffChars, marking any cut explicitly.
// The result never exceeds maxDiffChars.
func TruncateDiff(diff string) string {
	if len(diff) <= maxDiffChars {
		return diff
	}
	return diff[:maxDiffChars-len(truncationMarker)] + truncationMarker
}
