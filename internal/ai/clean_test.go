package ai

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "fix: update parser", "fix: update parser"},
		{"leading whitespace", "  \nfix: update parser\n", "fix: update parser"},
		{
			"think block",
			"<think>let me reason about this diff</think>\nfix: update parser",
			"fix: update parser",
		},
		{
			"multiline think block",
			"<think>\nline one\nline two\n</think>\nfeat: add cache",
			"feat: add cache",
		},
		{
			"surrounding fence",
			"```\nfix: update parser\n```",
			"fix: update parser",
		},
		{
			"fence with language tag",
			"```text\nfix: update parser\n```",
			"fix: update parser",
		},
		{
			"inner fence preserved",
			"Use this:\n```\ngit rebase -i\n```\nto edit history.",
			"Use this:\n```\ngit rebase -i\n```\nto edit history.",
		},
		{
			"think then fence",
			"<think>hm</think>\n```\nchore: tidy\n```",
			"chore: tidy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractCodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"no blocks", "just prose", nil},
		{
			"single block",
			"Run:\n```sh\ngit log --oneline\n```\nDone.",
			[]string{"git log --oneline"},
		},
		{
			"multiple blocks in order",
			"```\nfirst\n```\ntext\n```go\nsecond\nline\n```",
			[]string{"first", "second\nline"},
		},
		{"empty block skipped", "```\n\n```", nil},
		{"unclosed block", "```\ndangling", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCodeBlocks(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCodeBlocks(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
