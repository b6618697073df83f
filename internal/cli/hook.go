package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/git-util/internal/git"
)

// AddHookCommand adds the hook command group.
func AddHookCommand(root *cobra.Command) {
	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Run a git hook",
	}

	hookCmd.AddCommand(&cobra.Command{
		Use:   "pre-commit",
		Short: "Check the commit identity and the staged changes",
		Long: `Pre-commit policy. Install it as .git/hooks/pre-commit:

  #!/bin/sh
  exec git-util hook pre-commit

Environment:
  GIT_UTIL_USER_EMAIL          required; the only email commits may be authored with
  GIT_UTIL_DISALLOWED_STRINGS  optional; strings that must not be added, separated by
                               policy.delimiter ("|" by default) and matched ignoring case`,
		Args: cobra.NoArgs,
		RunE: runVerb(func(ctx context.Context, app *App, _ []string) (git.Outcome, error) {
			return app.Commands.PreCommit(ctx)
		}),
	})

	root.AddCommand(hookCmd)
}

// AddCheckCommand adds the repository state checks. They print nothing and
// report through the exit status, for use in scripts.
func AddCheckCommand(root *cobra.Command) {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check the repository state through the exit status",
	}

	checkCmd.AddCommand(
		&cobra.Command{
			Use:   "staged",
			Short: "Exit 0 when the staging area is empty",
			Args:  cobra.NoArgs,
			RunE: runVerb(func(ctx context.Context, app *App, _ []string) (git.Outcome, error) {
				return app.Commands.CheckStaged(ctx)
			}),
		},
		&cobra.Command{
			Use:   "unstaged",
			Short: "Exit 0 when every change in the worktree is staged",
			Args:  cobra.NoArgs,
			RunE: runVerb(func(ctx context.Context, app *App, _ []string) (git.Outcome, error) {
				return app.Commands.CheckUnstaged(ctx)
			}),
		},
	)

	root.AddCommand(checkCmd)
}
