// Package ui renders gitie's user-facing output: AI explanations as
// terminal markdown and error lines with consistent styling.
package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed  = lipgloss.Color("#FF5555")
	colorCyan = lipgloss.Color("#8BE9FD")
	colorGray = lipgloss.Color("#6272A4")
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// Error styles an error line for stderr.
func Error(msg string) string {
	return errorStyle.Render(msg)
}

// Heading styles a section heading.
func Heading(msg string) string {
	return headingStyle.Render(msg)
}

// Subtle styles secondary information.
func Subtle(msg string) string {
	return subtleStyle.Render(msg)
}

// RenderMarkdown renders a model response as terminal markdown. When the
// renderer cannot be built (e.g. no usable terminal profile), the raw
// text is returned unchanged rather than failing the invocation.
func RenderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
