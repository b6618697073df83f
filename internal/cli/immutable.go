package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/git-util/internal/commands"
	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/pipeline"
)

// AddImmutableCommands adds the read-only verbs.
func AddImmutableCommands(root *cobra.Command) {
	root.AddCommand(
		passThrough(&cobra.Command{
			Use:   "l [N] [log args...]",
			Short: "One line per commit for the last N commits (default from log.oneline_count)",
			Long: `One colored line per commit: hash, date, author and subject.

If the first argument is a number it is the commit count. Everything else is
passed to git log.`,
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.OnelineLog(ctx, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "last [N] [log args...]",
			Aliases: []string{"la"},
			Short:   "Message and changed files of the last N commits",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.Last(ctx, args)
			}),
		}),
		passThrough(&cobra.Command{
			Use:     "show [N] [show args...]",
			Aliases: []string{"sh"},
			Short:   "git show for the last N commits",
			RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
				return app.Commands.Show(ctx, args)
			}),
		}),
		newCountCmd("files [N]", []string{"shf"}, "List the files changed in the last N commits",
			(*commands.Commands).Files),
		newListingCmd("alias [FILTER]", "List configured aliases", (*commands.Commands).Aliases),
		newListingCmd("conf [FILTER]", "List configuration settings, excluding aliases", (*commands.Commands).Config),
	)
}

type listingFunc func(*commands.Commands, context.Context, string, pipeline.ConfigQueryOptions) (git.Outcome, error)

// newListingCmd builds a verb that prints a filtered configuration table.
func newListingCmd(use, short string, fn listingFunc) *cobra.Command {
	var opts pipeline.ConfigQueryOptions

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

FILTER keeps only lines that contain it, ignoring case. It is matched as
plain text, not as a pattern.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerb(func(ctx context.Context, app *App, args []string) (git.Outcome, error) {
			return fn(app.Commands, ctx, firstArg(args), opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.ShowOrigin, "show-origin", false, "show the file each entry comes from")
	cmd.Flags().BoolVar(&opts.ShowScope, "show-scope", false, "show the scope (system, global, local) of each entry")
	return cmd
}
