// Package cli provides the command-line interface for git-util.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a failed verb or any other error.
	ExitError = 1
	// ExitInvalidInput indicates a command line that could not be parsed.
	ExitInvalidInput = 2
)

// Global flag names. The viper keys use underscores so they map onto
// GIT_UTIL_DRY_RUN and friends.
const (
	flagDryRun        = "dry-run"
	flagPrintCommands = "print-commands"
	flagVerbose       = "verbose"
	flagQuiet         = "quiet"
)

// GlobalFlags holds flags available to all commands. They are read once at
// startup and never change during a run.
type GlobalFlags struct {
	// DryRun prints the git commands that would run instead of running them.
	DryRun bool
	// PrintCommands echoes every command before it runs.
	PrintCommands bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet limits logging to errors.
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVar(&flags.DryRun, flagDryRun, false, "print the git commands instead of running them")
	cmd.PersistentFlags().BoolVarP(&flags.PrintCommands, flagPrintCommands, "p", false, "print each command before running it")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, flagVerbose, "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, flagQuiet, "q", false, "log errors only")
	cmd.MarkFlagsMutuallyExclusive(flagVerbose, flagQuiet)
}

// BindGlobalFlags binds global flags to Viper so they can also be set from the
// environment with the GIT_UTIL_ prefix (e.g., GIT_UTIL_DRY_RUN=true), then
// resolves the effective values back into flags. An explicit flag wins.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{flagDryRun, flagPrintCommands, flagVerbose, flagQuiet} {
		if err := v.BindPFlag(viperKey(name), rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	flags.DryRun = v.GetBool(viperKey(flagDryRun))
	flags.PrintCommands = v.GetBool(viperKey(flagPrintCommands))
	flags.Verbose = v.GetBool(viperKey(flagVerbose))
	flags.Quiet = v.GetBool(viperKey(flagQuiet))
	return nil
}

func viperKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// countLeadingGlobalFlags returns how many arguments at the front of a raw
// command line are global flags. For a verb that forwards its arguments to
// git these are the only ones git-util keeps, so `git-util -p a -p` prints
// commands and runs `git add -p`.
func countLeadingGlobalFlags(fs *pflag.FlagSet, args []string) int {
	for i, arg := range args {
		if !isGlobalFlag(fs, arg) {
			return i
		}
	}
	return len(args)
}

func isGlobalFlag(fs *pflag.FlagSet, arg string) bool {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		f := fs.Lookup(name)
		return f != nil && isGlobalFlagName(f.Name)
	case len(arg) == 2 && arg[0] == '-':
		f := fs.ShorthandLookup(arg[1:])
		return f != nil && isGlobalFlagName(f.Name)
	default:
		return false
	}
}

func isGlobalFlagName(name string) bool {
	switch name {
	case flagDryRun, flagPrintCommands, flagVerbose, flagQuiet:
		return true
	default:
		return false
	}
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for command
// lines that could not be parsed, and ExitError (1) for everything else,
// including a verb whose git command reported failure.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if stderrors.Is(err, errors.ErrOutcomeFailure) {
		return ExitError
	}

	if errors.IsExitCode2Error(err) || stderrors.Is(err, errors.ErrInvalidArgument) {
		return ExitInvalidInput
	}

	// Cobra flag and argument validation errors
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"unknown command",
		"accepts at most",
		"accepts 1 arg",
		"requires at least",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
