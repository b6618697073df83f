package commands

import (
	"context"

	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/hook"
)

// PreCommit evaluates the pre-commit policy against the staged changes.
func (c *Commands) PreCommit(ctx context.Context) (git.Outcome, error) {
	opts := []hook.Option{hook.WithDelimiter(c.opts.PolicyDelimiter)}
	if c.opts.Diagnostics != nil {
		opts = append(opts, hook.WithReporter(c.opts.Diagnostics))
	}
	if c.opts.LookupEnv != nil {
		opts = append(opts, hook.WithLookupEnv(c.opts.LookupEnv))
	}
	return hook.NewPolicyEngine(c.exec, opts...).Run(ctx)
}

// CheckStaged reports Success when the index is empty.
func (c *Commands) CheckStaged(ctx context.Context) (git.Outcome, error) {
	return c.guard.VerifyStagingAreaIsEmpty(ctx)
}

// CheckUnstaged reports Success when every worktree change is staged.
func (c *Commands) CheckUnstaged(ctx context.Context) (git.Outcome, error) {
	return c.guard.VerifyNoUnstagedChanges(ctx)
}
