package commands

import (
	"context"
	"fmt"

	"github.com/mrz1836/git-util/internal/constants"
	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/git"
)

const resetAuthorCommand = "git commit --amend --no-edit --reset-author"

func addAll() git.Invocation {
	return git.NewInvocation("add").WithDefaultArgs("--all")
}

func addUpdated() git.Invocation {
	return git.NewInvocation("add").WithDefaultArgs("--update")
}

func shortStatus() git.Invocation {
	return git.NewInvocation("status").WithDefaultArgs("--short")
}

func headAncestor(n uint16) string {
	return fmt.Sprintf("HEAD~%d", n)
}

// Add runs `git add ARGS`. Without arguments it behaves like AddUpdated.
func (c *Commands) Add(ctx context.Context, args []string) (git.Outcome, error) {
	if len(args) == 0 {
		return c.AddUpdated(ctx, false)
	}
	return c.exec.Execute(ctx, git.NewInvocation("add").WithUserArgs(args...))
}

// AddAll stages everything, including untracked files, and shows a short
// status. Unless forced it refuses to run when something is already staged.
func (c *Commands) AddAll(ctx context.Context, forced bool) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              verbName("aa", forced),
		RequireEmptyIndex: !forced,
		Staging:           addAll(),
		Terminal:          shortStatus(),
	})
}

// AddUpdated stages modified and deleted tracked files and shows a short
// status. Unless forced it refuses to run when something is already staged.
func (c *Commands) AddUpdated(ctx context.Context, forced bool) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              verbName("au", forced),
		RequireEmptyIndex: !forced,
		Staging:           addUpdated(),
		Terminal:          shortStatus(),
	})
}

// AddAllCommit stages everything and commits. args go to git commit.
func (c *Commands) AddAllCommit(ctx context.Context, forced bool, args []string) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              verbName("aac", forced),
		RequireEmptyIndex: !forced,
		Staging:           addAll(),
		Terminal:          git.NewInvocation("commit").WithUserArgs(args...),
	})
}

// AddAllAmend stages everything and amends the last commit.
func (c *Commands) AddAllAmend(ctx context.Context, args []string) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              "aamend",
		RequireEmptyIndex: true,
		Staging:           addAll(),
		Terminal:          git.NewInvocation("commit").WithDefaultArgs("--amend").WithUserArgs(args...),
	})
}

// CommitUpdated runs `git commit --all`. Unlike a separate add step,
// aborting the commit leaves the index untouched.
func (c *Commands) CommitUpdated(ctx context.Context, args []string) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              "auc",
		RequireEmptyIndex: true,
		Terminal:          git.NewInvocation("commit").WithDefaultArgs("--all").WithUserArgs(args...),
	})
}

// CommitUpdatedAmend runs `git commit --all --amend`.
func (c *Commands) CommitUpdatedAmend(ctx context.Context, args []string) (git.Outcome, error) {
	return c.runner.Run(ctx, git.Operation{
		Name:              "aumend",
		RequireEmptyIndex: true,
		Terminal:          git.NewInvocation("commit").WithDefaultArgs("--all", "--amend").WithUserArgs(args...),
	})
}

// ChangeAuthor resets the author of the last n commits to the current user.
// n is passed through unvalidated; git rejects values it cannot resolve.
func (c *Commands) ChangeAuthor(ctx context.Context, n uint16) (git.Outcome, error) {
	return c.exec.Execute(ctx, git.NewInvocation("rebase").
		WithDefaultArgs(headAncestor(n), "-x", resetAuthorCommand))
}

// Undo runs `git reset --mixed HEAD~n`, keeping the changes in the worktree.
func (c *Commands) Undo(ctx context.Context, n uint16) (git.Outcome, error) {
	return c.exec.Execute(ctx, git.NewInvocation("reset").WithDefaultArgs("--mixed", headAncestor(n)))
}

// Restore discards worktree changes to paths, or to every file when all is
// set. Selecting all ignores paths.
func (c *Commands) Restore(ctx context.Context, all bool, paths []string) (git.Outcome, error) {
	inv := git.NewInvocation("restore")
	if all {
		return c.exec.Execute(ctx, inv.WithDefaultArgs(constants.AllFilesPathspec))
	}
	return c.exec.Execute(ctx, inv.WithUserArgs(paths...))
}

// Unstage removes paths from the index, or every file when all is set.
// Without all, at least one path is required.
func (c *Commands) Unstage(ctx context.Context, all bool, paths []string) (git.Outcome, error) {
	inv := git.NewInvocation("restore")
	if all {
		return c.exec.Execute(ctx, inv.WithDefaultArgs("--staged", constants.AllFilesPathspec))
	}
	if len(paths) == 0 {
		return git.Error, guerrors.Wrap(guerrors.ErrMissingArgument, "unstage requires at least one path, or 'all'")
	}
	return c.exec.Execute(ctx, inv.WithDefaultArgs("--staged").WithUserArgs(paths...))
}

// UpdateBranch fast-forwards a local branch from origin without checking it out.
func (c *Commands) UpdateBranch(ctx context.Context, branch string) (git.Outcome, error) {
	if branch == "" {
		return git.Error, guerrors.Wrap(guerrors.ErrEmptyValue, "branch name")
	}
	return c.exec.Execute(ctx, git.NewInvocation("fetch").
		WithDefaultArgs("--verbose", "origin").
		WithUserArgs(branch+":"+branch))
}

func verbName(base string, forced bool) string {
	if forced {
		return base + "f"
	}
	return base
}
