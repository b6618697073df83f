package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mrz1836/git-util/internal/commands"
	"github.com/mrz1836/git-util/internal/config"
	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/git"
	"github.com/mrz1836/git-util/internal/logging"
	"github.com/mrz1836/git-util/internal/pipeline"
	"github.com/mrz1836/git-util/internal/process"
	"github.com/mrz1836/git-util/internal/tui"
)

// Dependencies are the collaborators the CLI builds its runtime from.
// Zero values select the production implementations.
type Dependencies struct {
	// Invoker spawns git. Defaults to a process.ExecInvoker on the command's streams.
	Invoker process.Invoker

	// LookupEnv reads the pre-commit policy variables. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// WorkDir is the directory git and the pipelines run in. Empty means the
	// current directory.
	WorkDir string

	// ToolProbe looks up and runs the tools the doctor verb checks.
	// Defaults to config.DefaultCommandExecutor.
	ToolProbe config.CommandExecutor
}

// App is the runtime of one git-util invocation. It is built once, after
// flags and configuration are resolved, and shared by every verb.
type App struct {
	Config   *config.Config
	Printer  *tui.Printer
	Executor *git.Executor
	Commands *commands.Commands
	Tools    *config.ToolDetector
	Stdout   io.Writer
}

type appKey struct{}

// WithApp returns a new context with the App attached.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// GetApp retrieves the App from the context. Returns nil if none was set.
func GetApp(ctx context.Context) *App {
	app, _ := ctx.Value(appKey{}).(*App)
	return app
}

// newApp wires configuration, flags and streams into the executor, the
// pipeline composer and the verb set.
func newApp(cfg *config.Config, flags *GlobalFlags, stdout, stderr io.Writer, deps Dependencies) *App {
	printer := tui.NewPrinter(stderr)

	invoker := deps.Invoker
	if invoker == nil {
		invoker = &process.ExecInvoker{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
	}

	executor := git.NewExecutor(git.ExecContext{
		GitBinary:     cfg.Git.Binary,
		WorkDir:       deps.WorkDir,
		DryRun:        flags.DryRun,
		PrintCommands: flags.PrintCommands,
		ColorOutput:   isTerminal(stdout),
	}, invoker, printer)

	composerOpts := []pipeline.Option{
		pipeline.WithDir(deps.WorkDir),
		pipeline.WithStderr(stderr),
	}
	if flags.PrintCommands {
		composerOpts = append(composerOpts, pipeline.WithCommandEcho(printer))
	}

	opts := commands.Options{
		Tools: pipeline.Tools{
			Git:    cfg.Git.Binary,
			Sed:    cfg.Tools.Sed,
			Filter: cfg.Tools.Filter,
			Column: cfg.Tools.Column,
		},
		Stdout:          stdout,
		OnelineCount:    cfg.Log.OnelineCount,
		PolicyDelimiter: cfg.Policy.Delimiter,
		Diagnostics:     printer,
		LookupEnv:       deps.LookupEnv,
	}

	tools := config.NewToolDetector()
	if deps.ToolProbe != nil {
		tools = config.NewToolDetectorWithExecutor(deps.ToolProbe)
	}

	return &App{
		Config:   cfg,
		Printer:  printer,
		Executor: executor,
		Commands: commands.New(executor, pipeline.NewComposer(composerOpts...), opts),
		Tools:    tools,
		Stdout:   stdout,
	}
}

// registerPolicySecrets adds the configured disallowed strings to the
// redactor so they never reach a log.
func registerPolicySecrets(redactor *logging.Redactor, lookupEnv func(string) (string, bool), delimiter string) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	raw, ok := lookupEnv(constants.EnvDisallowedStrings)
	if !ok || raw == "" || delimiter == "" {
		return
	}
	redactor.AddLiterals(strings.Split(raw, delimiter)...)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
