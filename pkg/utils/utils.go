package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the given path exists and is a file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists returns true if the given path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates a directory (and any parents) if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFileString writes contents to path, creating parent directories
// as needed.
func WriteFileString(path, contents string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(contents), 0644)
}

// Truncate shortens s to at most max characters, appending an ellipsis
// when anything was cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// CommandString reconstructs a shell-like representation of a git
// invocation for error messages and prompts.
func CommandString(args []string) string {
	return strings.TrimSpace("git " + strings.Join(args, " "))
}
