package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/process/processtest"
)

// cliResult is what one run of the command tree produced.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree against deps with an isolated home
// directory. Git never runs: deps.Invoker defaults to a fresh recorder.
func runCLI(t *testing.T, deps Dependencies, args ...string) cliResult {
	t.Helper()

	t.Setenv(constants.AppHomeEnvVar, t.TempDir())
	t.Cleanup(CloseLogFile)

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	if deps.Invoker == nil {
		deps.Invoker = processtest.New()
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = func(string) (string, bool) { return "", false }
	}

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"}, deps)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := execute(context.Background(), cmd, args)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func envLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
