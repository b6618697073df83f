package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/git-util/internal/config"
	"github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/logging"
	"github.com/mrz1836/git-util/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// errNotInitialized is returned by a verb that runs without the root
// command's setup, which only happens when a command is wired incorrectly.
var errNotInitialized = stderrors.New("command runtime was not initialized") //nolint:gochecknoglobals // sentinel

// newRootCmd creates and returns the root command for the git-util CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo, deps Dependencies) *cobra.Command {
	v := viper.New()
	redactor := logging.NewRedactor()

	cmd := &cobra.Command{
		Use:   "git-util",
		Short: "Guarded shortcuts for everyday git",
		Long: `git-util wraps the git commands you type all day in short verbs.

Verbs that stage and commit refuse to run when the staging area already holds
files, so a half-prepared commit is never swept into a bigger one. Use the
forced variants (aaf, aacf, auf) to skip that check.

Global flags go before the verb:
  git-util --dry-run aac -m "message"
  git-util -p l 10 --author=me`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupRun(cmd, args, v, flags, redactor, deps)
		},
		// Errors are printed once, styled, by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddMutableCommands(cmd)
	AddImmutableCommands(cmd)
	AddHookCommand(cmd)
	AddCheckCommand(cmd)
	AddSettingsCommand(cmd)
	AddDoctorCommand(cmd)

	return cmd
}

// setupRun resolves flags, starts the logger, loads configuration and
// attaches the App to the command's context.
func setupRun(cmd *cobra.Command, args []string, v *viper.Viper, flags *GlobalFlags, redactor *logging.Redactor, deps Dependencies) error {
	if cmd.DisableFlagParsing {
		// Cobra hands a pass-through verb the global flags that preceded it
		// as ordinary arguments.
		n := min(leadingFlagCount(cmd.Context()), len(args))
		if err := cmd.InheritedFlags().Parse(args[:n]); err != nil {
			return errors.NewExitCode2Error(err)
		}
		cmd.SetContext(withVerbArgs(cmd.Context(), args[n:]))
	}

	if err := BindGlobalFlags(v, cmd, flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	// Cobra only enforces the group for flags it parsed itself.
	if flags.Verbose && flags.Quiet {
		return errors.NewExitCode2Error(fmt.Errorf("%w: --verbose and --quiet cannot be combined", errors.ErrInvalidArgument))
	}

	logger := InitLogger(flags, cmd.ErrOrStderr(), redactor)
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()

	ctx := logger.WithContext(cmd.Context())
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	registerPolicySecrets(redactor, deps.LookupEnv, cfg.Policy.Delimiter)

	app := newApp(cfg, flags, cmd.OutOrStdout(), cmd.ErrOrStderr(), deps)
	cmd.SetContext(WithApp(ctx, app))

	logger.Debug().
		Str("verb", cmd.CommandPath()).
		Bool("dry_run", flags.DryRun).
		Bool("print_commands", flags.PrintCommands).
		Msg("run started")
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// verbFunc is the body of a verb. It returns the outcome of the git command
// that decides the verb, or an error when the verb could not run.
type verbFunc func(ctx context.Context, app *App, args []string) (git.Outcome, error)

// runVerb adapts a verbFunc to cobra. An Error outcome becomes the silent
// ErrOutcomeFailure: git has already said what went wrong.
func runVerb(fn verbFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app := GetApp(ctx)
		if app == nil {
			return errNotInitialized
		}
		if cmd.DisableFlagParsing {
			args = verbArgs(ctx, args)
		}

		outcome, err := fn(ctx, app, args)
		zerolog.Ctx(ctx).Debug().
			Str("verb", cmd.Name()).
			Stringer("outcome", outcome).
			Err(err).
			Msg("verb finished")
		if err != nil {
			return err
		}
		if outcome == git.Error {
			return errors.ErrOutcomeFailure
		}
		return nil
	}
}

type (
	verbArgsKey     struct{}
	leadingFlagsKey struct{}
)

func withLeadingFlagCount(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, leadingFlagsKey{}, n)
}

func leadingFlagCount(ctx context.Context) int {
	n, _ := ctx.Value(leadingFlagsKey{}).(int)
	return n
}

func withVerbArgs(ctx context.Context, args []string) context.Context {
	return context.WithValue(ctx, verbArgsKey{}, args)
}

// verbArgs returns a pass-through verb's arguments without the leading
// global flags, or args when setupRun did not run.
func verbArgs(ctx context.Context, args []string) []string {
	if rest, ok := ctx.Value(verbArgsKey{}).([]string); ok {
		return rest
	}
	return args
}

// reportError prints err once, with a suggested action when one is known.
// Verb failures and interrupts are not reported: git already spoke.
func reportError(w io.Writer, err error) {
	if err == nil ||
		stderrors.Is(err, errors.ErrOutcomeFailure) ||
		stderrors.Is(err, context.Canceled) {
		return
	}

	_, action := errors.Actionable(err)
	if action == "" && ExitCodeForError(err) == ExitInvalidInput {
		action = "Run 'git-util --help' for usage."
	}
	tui.NewPrinter(w).Error(err.Error(), action)
}

// execute runs root with args and prints the resulting error, if any.
func execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(args)
	ctx = withLeadingFlagCount(ctx, countLeadingGlobalFlags(root.PersistentFlags(), args))
	err := root.ExecuteContext(ctx)
	reportError(root.ErrOrStderr(), err)
	return err
}

// Execute runs the root command with the process arguments.
// Errors have already been printed when it returns; use ExitCodeForError to
// pick the process exit status.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info, Dependencies{})
	return execute(ctx, cmd, os.Args[1:])
}
