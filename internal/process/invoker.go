package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	guerrors "github.com/mrz1836/git-util/internal/errors"
)

// Invoker starts external programs and reports their exit status.
type Invoker interface {
	// Run starts cmd with the caller's standard streams and waits for it.
	// A nonzero exit is reported through the returned code, not the error.
	Run(ctx context.Context, cmd Command) (int, error)

	// Output starts cmd, captures its standard output and waits for it.
	// Standard error still reaches the caller's diagnostic stream.
	Output(ctx context.Context, cmd Command) ([]byte, int, error)
}

// ExecInvoker runs commands with os/exec.
type ExecInvoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecInvoker returns an ExecInvoker bound to the process's own streams.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Invoker.
func (e *ExecInvoker) Run(ctx context.Context, cmd Command) (int, error) {
	c := cmd.Cmd(ctx)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	return wait(ctx, cmd, c)
}

// Output implements Invoker.
func (e *ExecInvoker) Output(ctx context.Context, cmd Command) ([]byte, int, error) {
	var stdout bytes.Buffer
	c := cmd.Cmd(ctx)
	c.Stdout = &stdout
	c.Stderr = e.Stderr

	code, err := wait(ctx, cmd, c)
	if err != nil {
		return nil, code, err
	}
	return stdout.Bytes(), code, nil
}

func wait(ctx context.Context, cmd Command, c *exec.Cmd) (int, error) {
	zerolog.Ctx(ctx).Debug().
		Str("command", cmd.String()).
		Str("dir", cmd.Dir).
		Msg("spawning process")

	if err := c.Start(); err != nil {
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		return -1, &guerrors.ProcessSpawnError{CommandLine: cmd.String(), Err: err}
	}

	err := c.Wait()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		zerolog.Ctx(ctx).Debug().
			Str("command", cmd.String()).
			Int("exit_code", code).
			Msg("process exited with failure")
		// A signal-terminated process reports -1, which still maps to failure.
		return code, nil
	}

	// Stream copy failures surface here after the process already ran.
	return -1, guerrors.Wrapf(err, "wait for `%s`", cmd.String())
}
