package ai

import (
	"regexp"
	"strings"
)

// Reasoning models wrap their chain of thought in think tags; nothing in
// there is part of the answer.
var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Clean strips model scaffolding from a completion: reasoning tags and a
// single surrounding code fence pair. The set of patterns is fixed and
// small on purpose.
func Clean(s string) string {
	s = thinkBlock.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = stripSurroundingFence(s)
	return strings.TrimSpace(s)
}

// stripSurroundingFence removes one fence pair that wraps the entire
// text. Fences inside the text are left alone.
func stripSurroundingFence(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if strings.HasPrefix(first, "```") && last == "```" {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return s
}

// ExtractCodeBlocks returns each fenced region of a markdown-like
// response as a separate string, in order of appearance. Used only when a
// caller explicitly wants code rather than prose.
func ExtractCodeBlocks(content string) []string {
	var blocks []string
	var current strings.Builder
	inBlock := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inBlock {
				inBlock = false
				if block := strings.TrimSpace(current.String()); block != "" {
					blocks = append(blocks, block)
				}
				current.Reset()
			} else {
				inBlock = true
			}
			continue
		}
		if inBlock {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}

	return blocks
}
