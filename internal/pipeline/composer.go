// Package pipeline runs chains of external filters connected by OS pipes.
//
// All stages are started before any output is consumed, so the chain behaves
// like a shell pipeline: upstream stages block on a full pipe rather than
// being buffered in memory, and only the final stage's output is read.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/process"
)

// Stage is one external tool in a pipeline.
type Stage struct {
	Tool string
	Args []string
}

func (s Stage) command(dir string) process.Command {
	return process.Command{Name: s.Tool, Args: s.Args, Dir: dir}
}

// Result holds the captured output of the final stage and every stage's
// exit status, in pipeline order.
type Result struct {
	Output    []byte
	ExitCodes []int
}

// Success reports whether the final stage exited with status 0.
// Upstream statuses are ignored, as a shell without pipefail does.
func (r Result) Success() bool {
	return len(r.ExitCodes) > 0 && r.ExitCodes[len(r.ExitCodes)-1] == 0
}

// Reporter receives the rendered pipeline when commands are echoed.
type Reporter interface {
	Command(commandLine string)
}

// Composer starts pipelines.
type Composer struct {
	dir           string
	stderr        io.Writer
	printCommands bool
	reporter      Reporter
}

// Option configures a Composer.
type Option func(*Composer)

// WithDir sets the working directory of every stage.
func WithDir(dir string) Option {
	return func(c *Composer) { c.dir = dir }
}

// WithStderr sets where every stage's standard error goes.
func WithStderr(w io.Writer) Option {
	return func(c *Composer) { c.stderr = w }
}

// WithCommandEcho reports every pipeline to r before it runs.
func WithCommandEcho(r Reporter) Option {
	return func(c *Composer) {
		c.printCommands = true
		c.reporter = r
	}
}

// NewComposer creates a Composer.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{stderr: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render returns the pipeline as a shell command line.
func Render(stages []Stage) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = s.command("").String()
	}
	return strings.Join(parts, " | ")
}

// Run starts every stage in order with each stage's standard output connected
// to the next stage's standard input, then waits for all of them. If any
// stage cannot be started, the stages already running are killed and reaped
// and a *PipelineStageError names the tool.
func (c *Composer) Run(ctx context.Context, stages []Stage) (Result, error) {
	if len(stages) == 0 {
		return Result{}, guerrors.Wrap(guerrors.ErrInvalidArgument, "pipeline has no stages")
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	line := Render(stages)
	if c.printCommands && c.reporter != nil {
		c.reporter.Command(line)
	}
	log := zerolog.Ctx(ctx)
	log.Debug().Str("pipeline", line).Int("stages", len(stages)).Msg("starting pipeline")

	cmds := make([]*exec.Cmd, len(stages))
	for i, s := range stages {
		cmds[i] = s.command(c.dir).Cmd(ctx)
		cmds[i].Stderr = c.stderr
	}

	// The parent's copies of every pipe end are closed once the children
	// hold them, so EOF propagates when a stage exits.
	var ends []*os.File
	closeEnds := func() {
		for _, f := range ends {
			_ = f.Close()
		}
		ends = nil
	}

	for i := 0; i < len(cmds)-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			closeEnds()
			return Result{}, guerrors.Wrap(err, "create pipe")
		}
		ends = append(ends, r, w)
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
	}

	var out bytes.Buffer
	cmds[len(cmds)-1].Stdout = &out

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			closeEnds()
			reap(cmds[:i])
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			log.Debug().Str("tool", stages[i].Tool).Int("stage", i).Err(err).Msg("pipeline stage failed to start")
			return Result{}, &guerrors.PipelineStageError{Tool: stages[i].Tool, Index: i, Err: err}
		}
	}
	closeEnds()

	codes := make([]int, len(cmds))
	var g errgroup.Group
	for i, cmd := range cmds {
		g.Go(func() error {
			code, err := exitCode(cmd.Wait())
			codes[i] = code
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, guerrors.Wrapf(err, "wait for `%s`", line)
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	log.Debug().Ints("exit_codes", codes).Msg("pipeline finished")
	return Result{Output: out.Bytes(), ExitCodes: codes}, nil
}

func reap(started []*exec.Cmd) {
	for _, cmd := range started {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
