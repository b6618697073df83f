// Package process spawns external programs for git-util.
//
// Every subprocess the tool starts, git itself or a pipeline filter, is
// described by a Command and started through an Invoker. Production code uses
// ExecInvoker; tests substitute processtest.Recorder.
package process

import (
	"context"
	"os"
	"os/exec"
	"time"

	"al.essio.dev/pkg/shellescape"
)

// Command describes one external program invocation.
type Command struct {
	// Name is the executable, resolved through PATH when it has no separator.
	Name string

	// Args are passed to the executable verbatim.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command as a line that can be pasted into a shell.
func (c Command) String() string {
	return shellescape.QuoteCommand(c.Argv())
}

// Argv returns the full argument vector including the executable name.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// CancelGrace is how long a canceled process has to exit after it is
// interrupted before it is killed.
const CancelGrace = 3 * time.Second

// Cmd builds the exec.Cmd for c. Standard streams are left unset.
//
// When ctx is canceled the process is sent an interrupt, the same signal a
// terminal Ctrl-C delivers, so git can remove its lock files. It is killed if
// it is still running CancelGrace later.
func (c Command) Cmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //#nosec G204 -- argv is assembled from configured tools and user arguments
	cmd.Dir = c.Dir
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = CancelGrace
	return cmd
}
