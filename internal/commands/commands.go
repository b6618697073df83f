// Package commands implements the git-util verbs on top of the git,
// pipeline and hook packages. Every verb returns the git.Outcome of the
// step that decides it, or an error when it could not run.
package commands

import (
	"io"
	"os"

	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/hook"
	"github.com/mrz1836/git-util/internal/pipeline"
)

// Options configures Commands.
type Options struct {
	// Tools are the executables used by the listing pipelines.
	Tools pipeline.Tools

	// Stdout receives listing output. Defaults to os.Stdout.
	Stdout io.Writer

	// OnelineCount is the default --max-count of the l verb.
	OnelineCount uint16

	// PolicyDelimiter separates the disallowed strings of the pre-commit policy.
	PolicyDelimiter string

	// Diagnostics receives offending lines from the pre-commit policy.
	Diagnostics hook.LineReporter

	// LookupEnv replaces os.LookupEnv for the pre-commit policy.
	LookupEnv hook.LookupEnvFunc
}

// Commands holds the collaborators every verb needs.
type Commands struct {
	exec     *git.Executor
	guard    *git.Guard
	runner   *git.CompositeRunner
	composer *pipeline.Composer
	opts     Options
}

// New creates Commands.
func New(exec *git.Executor, composer *pipeline.Composer, opts Options) *Commands {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.OnelineCount == 0 {
		opts.OnelineCount = constants.DefaultOnelineCount
	}
	if opts.Tools == (pipeline.Tools{}) {
		opts.Tools = pipeline.DefaultTools()
	}

	guard := git.NewGuard(exec)
	return &Commands{
		exec:     exec,
		guard:    guard,
		runner:   git.NewCompositeRunner(exec, guard),
		composer: composer,
		opts:     opts,
	}
}
