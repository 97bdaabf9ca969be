package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrConfigRead indicates a configuration source could not be read
	ErrConfigRead = errors.New("failed to read configuration")

	// ErrConfigParse indicates a configuration source exists but does not parse
	ErrConfigParse = errors.New("failed to parse configuration")

	// ErrConfigWrite indicates the copy-up to the user config directory failed
	ErrConfigWrite = errors.New("failed to write configuration")

	// ErrFieldMissing indicates a required configuration field is empty after merging
	ErrFieldMissing = errors.New("required configuration field missing")

	// ErrPromptMissing indicates no commit-prompt document exists at any precedence level
	ErrPromptMissing = errors.New("commit prompt file missing")

	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository (or any of the parent directories)")

	// ErrNoStagedChanges indicates an AI commit was requested with an empty staged diff
	ErrNoStagedChanges = errors.New("no changes staged for commit")

	// ErrDiff indicates the staged diff could not be obtained
	ErrDiff = errors.New("failed to get git diff")

	// ErrRequestFailed indicates the AI request never produced an HTTP response
	ErrRequestFailed = errors.New("AI API request failed")

	// ErrResponseParse indicates a success response whose body did not match the schema
	ErrResponseParse = errors.New("failed to parse AI API response")

	// ErrNoChoice indicates a well-formed response with an empty choices array
	ErrNoChoice = errors.New("AI API response contained no choices")

	// ErrEmptyMessage indicates the first choice carried only whitespace
	ErrEmptyMessage = errors.New("AI returned an empty message")
)

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ConfigError describes a failure tied to one configuration or prompt file.
// Path names the file the user has to fix.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError wrapping one of the config sentinels.
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// GitError represents a captured git invocation that failed.
// It carries the reconstructed command and both output streams.
type GitError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git command '%s' failed", e.Command)
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s with exit code %d", msg, e.ExitCode)
	}
	if e.Stdout != "" {
		msg = fmt.Sprintf("%s\nStdout:\n%s", msg, e.Stdout)
	}
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s\nStderr:\n%s", msg, e.Stderr)
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// PassthroughError represents a passthrough git invocation that exited
// non-zero. The exit code is propagated to the process boundary.
type PassthroughError struct {
	Command  string
	ExitCode int
}

func (e *PassthroughError) Error() string {
	return fmt.Sprintf("command '%s' exited with code %d", e.Command, e.ExitCode)
}

// APIError represents a non-success HTTP status from the AI backend.
// Body holds the raw response text, best effort.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("AI API responded with error %d: %s", e.Status, e.Body)
}

// ExitCode maps an error to the process exit code: passthrough and commit
// failures propagate the child's code, everything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pe *PassthroughError
	if errors.As(err, &pe) {
		return pe.ExitCode
	}
	return 1
}
