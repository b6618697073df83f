package commands

import (
	"context"
	"strconv"

	"github.com/mrz1836/git-util/internal/constants"
	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/pipeline"
)

// OnelinePretty is the --pretty format of the l verb.
const OnelinePretty = "%C(yellow)%h %C(magenta)%as %C(blue)%aL %C(cyan)%s%C(reset)"

// SplitCount takes a leading commit count off args. If the first argument
// parses as an unsigned 16-bit integer it is the count and the rest are
// returned; otherwise def is the count and args are returned unchanged.
func SplitCount(args []string, def uint16) (uint16, []string) {
	if len(args) == 0 {
		return def, args
	}
	n, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return def, args
	}
	return uint16(n), args[1:]
}

// ParseCount parses an explicit commit count argument. An empty string
// yields the default of one.
func ParseCount(s string) (uint16, error) {
	if s == "" {
		return constants.DefaultCommitCount, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, guerrors.Wrapf(guerrors.ErrInvalidArgument, "%q is not a commit count", s)
	}
	return uint16(n), nil
}

func maxCount(n uint16) string {
	return "--max-count=" + strconv.FormatUint(uint64(n), 10)
}

// OnelineLog shows one colored line per commit. args may start with a count.
func (c *Commands) OnelineLog(ctx context.Context, args []string) (git.Outcome, error) {
	n, rest := SplitCount(args, c.opts.OnelineCount)
	return c.exec.Execute(ctx, git.NewInvocation("log").
		WithDefaultArgs("--pretty="+OnelinePretty, maxCount(n)).
		WithUserArgs(rest...))
}

// Last shows the last commits with a compact file summary.
func (c *Commands) Last(ctx context.Context, args []string) (git.Outcome, error) {
	n, rest := SplitCount(args, constants.DefaultCommitCount)
	return c.exec.Execute(ctx, git.NewInvocation("log").
		WithDefaultArgs("--compact-summary", maxCount(n)).
		WithUserArgs(rest...))
}

// Show shows the last commits with tabs expanded to four columns.
func (c *Commands) Show(ctx context.Context, args []string) (git.Outcome, error) {
	n, rest := SplitCount(args, constants.DefaultCommitCount)
	return c.exec.Execute(ctx, git.NewInvocation("show").
		WithDefaultArgs("--expand-tabs=4", maxCount(n)).
		WithUserArgs(rest...))
}

// Files lists the names of the files changed by the last n commits.
func (c *Commands) Files(ctx context.Context, n uint16) (git.Outcome, error) {
	return c.exec.Execute(ctx, git.NewInvocation("show").
		WithDefaultArgs("--pretty=", "--name-only", maxCount(n)))
}

// Aliases lists the configured aliases, keeping only lines that contain
// filter when it is not empty.
func (c *Commands) Aliases(ctx context.Context, filter string, opts pipeline.ConfigQueryOptions) (git.Outcome, error) {
	return c.listing(ctx, pipeline.AliasListing(c.opts.Tools, opts, filter))
}

// Config lists every configuration entry except aliases.
func (c *Commands) Config(ctx context.Context, filter string, opts pipeline.ConfigQueryOptions) (git.Outcome, error) {
	return c.listing(ctx, pipeline.ConfigListing(c.opts.Tools, opts, filter))
}

func (c *Commands) listing(ctx context.Context, stages []pipeline.Stage) (git.Outcome, error) {
	res, err := c.composer.Run(ctx, stages)
	if err != nil {
		return git.Error, err
	}
	if _, err := c.opts.Stdout.Write(res.Output); err != nil {
		return git.Error, guerrors.Wrap(err, "write listing")
	}
	if !res.Success() {
		return git.Error, nil
	}
	return git.Success, nil
}
