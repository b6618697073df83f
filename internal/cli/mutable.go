package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/git-util/internal/commands"
	"github.com/mrz1836/git-util/internal/git"
)

// passThrough marks a command whose arguments are forwarded to git verbatim,
// including ones that look like flags.
func passThrough(cmd *cobra.Command) *cobra.Command {
	cmd.DisableFlagParsing = true
	return cmd
}

// AddMutableCommands adds the verbs that change the index, the worktree or history.
func AddMutableCommands(root *cobra.Command) {
	root.AddCommand(
		passThrough(&cobra.Command{
			Use:   "a [args...]",
			Short: "git add; with no arguments, add updated files",
			Long: `Wrapper around git add.

With arguments they are passed to git add unchanged. Without arguments it
behaves like 'au': updated files are staged if the staging area is empty.`,
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.Add(ctx, args)
			}),
		}),
		newAddCmd("aa", "Add updated and untracked files, then show the short status", false,
			(*commands.Commands).AddAll),
		newAddCmd("aaf", "Like aa, but also when files are already staged", true,
			(*commands.Commands).AddAll),
		newAddCmd("au", "Add updated (but not untracked) files, then show the short status", false,
			(*commands.Commands).AddUpdated),
		newAddCmd("auf", "Like au, but also when files are already staged", true,
			(*commands.Commands).AddUpdated),
		passThrough(&cobra.Command{
			Use:   "aac [commit args...]",
			Short: "Add updated and untracked files, then commit",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.AddAllCommit(ctx, false, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:   "aacf [commit args...]",
			Short: "Like aac, but also when files are already staged",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.AddAllCommit(ctx, true, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "aamend [commit args...]",
			Aliases: []string{"aam"},
			Short:   "Add updated and untracked files, then amend the last commit",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.AddAllAmend(ctx, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "auc [commit args...]",
			Aliases: []string{"ac"},
			Short:   "Commit updated files",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.CommitUpdated(ctx, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "aumend [commit args...]",
			Aliases: []string{"aum"},
			Short:   "Commit updated files into the last commit",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.CommitUpdatedAmend(ctx, args)
			}),
		}),
		newCountCmd("author [N]", nil, "Reset the author of the last N commits to the current identity",
			(*commands.Commands).ChangeAuthor),
		newCountCmd("undo [N]", nil, "Undo the last N commits, keeping their changes in the worktree",
			(*commands.Commands).Undo),
		passThrough(&cobra.Command{
			Use:     "restore [all] [paths...]",
			Aliases: []string{"rest"},
			Short:   "Discard worktree changes to paths, or to every file with 'all'",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				all, paths := splitAll(args)
				return app.Commands.Restore(ctx, all, paths)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "unstage [all] [paths...]",
			Aliases: []string{"u"},
			Short:   "Move staged paths, or every file with 'all', out of the staging area",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				all, paths := splitAll(args)
				return app.Commands.Unstage(ctx, all, paths)
			}),
		}),
		&cobra.Command{
			Use:     "update BRANCH",
			Aliases: []string{"unwind"},
			Short:   "Update a local branch from origin without checking it out",
			Args:    cobra.ExactArgs(1),
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.UpdateBranch(ctx, args[0])
			}),
		},
	)
}

// newAddCmd builds one of the staging verbs that end with a short status.
func newAddCmd(use, short string, forced bool, fn func(*commands.Commands, context.Context, bool) (git.Outcome, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: runVerb(func(ctx context.Context, app *App, _ []string) (git.Outcome, error) {
			return fn(app.Commands, ctx, forced)
		}),
	}
}

// newCountCmd builds a verb that takes an optional commit count, default 1.
func newCountCmd(use string, aliases []string, short string, fn func(*commands.Commands, context.Context, uint16) (git.Outcome, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Args:    cobra.MaximumNArgs(1),
		RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
			n, err := commands.ParseCount(firstArg(args))
			if err != nil {
				return git.Error, err
			}
			return fn(app.Commands, ctx, n)
		}),
	}
}

// splitAll reports whether args select every file, and returns the paths otherwise.
func splitAll(args []string) (bool, []string) {
	if len(args) > 0 && args[0] == "all" {
		return true, nil
	}
	return false, args
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
