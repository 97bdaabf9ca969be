package git

import "os/exec"

// Executor abstracts running a prepared command so that tests can
// substitute a mock for the real git binary.
type Executor interface {
	Run(cmd *exec.Cmd) error
}

// ExecExecutor is the default Executor backed by os/exec.
type ExecExecutor struct{}

// Run implements Executor.
func (ExecExecutor) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// NewExecExecutor creates the default executor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}
