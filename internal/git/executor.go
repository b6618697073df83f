package git

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/process"
)

// DefaultBinary is the git executable used when ExecContext.GitBinary is empty.
const DefaultBinary = "git"

// Subcommands that accept --color directly. Every other subcommand is
// colored through a -c color.ui=always override placed before it.
//
//nolint:gochecknoglobals // read-only lookup table
var colorFlagSubcommands = []string{"branch", "diff", "grep", "log", "show"}

// ExecContext carries the settings that every invocation is executed under.
// It is built once at startup and only read afterwards.
type ExecContext struct {
	// GitBinary is the git executable. Empty means DefaultBinary.
	GitBinary string

	// WorkDir is the directory git runs in. Empty means the current directory.
	WorkDir string

	// DryRun reports commands instead of running them.
	DryRun bool

	// PrintCommands echoes every command before it runs.
	PrintCommands bool

	// ColorOutput forces color in git's output. Set it only when the
	// process's standard output is a terminal.
	ColorOutput bool
}

func (c ExecContext) binary() string {
	if c.GitBinary == "" {
		return DefaultBinary
	}
	return c.GitBinary
}

// Reporter receives the diagnostic lines the Executor emits.
// *tui.Printer implements it.
type Reporter interface {
	DryRun(commandLine string)
	Command(commandLine string)
}

// Executor runs invocations through a process.Invoker.
type Executor struct {
	ec       ExecContext
	invoker  process.Invoker
	reporter Reporter
}

// NewExecutor creates an Executor. A nil reporter discards diagnostics.
func NewExecutor(ec ExecContext, invoker process.Invoker, reporter Reporter) *Executor {
	return &Executor{ec: ec, invoker: invoker, reporter: reporter}
}

// Context returns the ExecContext the executor was built with.
func (e *Executor) Context() ExecContext {
	return e.ec
}

// Command assembles the process command for inv, including color forcing.
func (e *Executor) Command(inv Invocation) process.Command {
	return process.Command{
		Name: e.ec.binary(),
		Args: e.assemble(inv, e.ec.ColorOutput),
		Dir:  e.ec.WorkDir,
	}
}

func (e *Executor) assemble(inv Invocation, color bool) []string {
	args := inv.Args()
	if !color {
		return args
	}
	if slices.Contains(colorFlagSubcommands, inv.Subcommand()) {
		return slices.Insert(args, 1, "--color=always")
	}
	return slices.Insert(args, 0, "-c", "color.ui=always")
}

// Execute runs inv with the caller's standard streams and maps its exit
// status to an Outcome. In dry-run mode nothing is spawned and the
// assembled command line is reported instead.
func (e *Executor) Execute(ctx context.Context, inv Invocation) (Outcome, error) {
	cmd := e.Command(inv)
	line := cmd.String()

	if e.ec.PrintCommands {
		e.reportCommand(line)
	}
	if e.ec.DryRun {
		zerolog.Ctx(ctx).Debug().Str("command", line).Msg("dry run, not executing")
		if e.reporter != nil {
			e.reporter.DryRun(line)
		}
		return Success, nil
	}

	code, err := e.invoker.Run(ctx, cmd)
	if err != nil {
		return Error, err
	}

	outcome := OutcomeFromExitCode(code)
	zerolog.Ctx(ctx).Debug().
		Str("command", line).
		Int("exit_code", code).
		Stringer("outcome", outcome).
		Msg("git command finished")
	return outcome, nil
}

// Query runs a read-only inv and captures its standard output. Queries are
// never colored and run even in dry-run mode, since the guards and the
// pre-commit policy depend on their answers. A nonzero exit status is
// returned as the code, not as an error.
func (e *Executor) Query(ctx context.Context, inv Invocation) ([]byte, int, error) {
	cmd := process.Command{
		Name: e.ec.binary(),
		Args: e.assemble(inv, false),
		Dir:  e.ec.WorkDir,
	}
	if e.ec.PrintCommands {
		e.reportCommand(cmd.String())
	}

	out, code, err := e.invoker.Output(ctx, cmd)
	if err != nil {
		return nil, code, err
	}
	return out, code, nil
}

// Output is like Query but treats a nonzero exit status as ErrGitQuery.
func (e *Executor) Output(ctx context.Context, inv Invocation) ([]byte, error) {
	out, code, err := e.Query(ctx, inv)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, guerrors.Wrapf(guerrors.ErrGitQuery, "`git %s` exited with status %d", inv.String(), code)
	}
	return out, nil
}

func (e *Executor) reportCommand(line string) {
	if e.reporter != nil {
		e.reporter.Command(line)
	}
}
