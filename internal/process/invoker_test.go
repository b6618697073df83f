package process

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guerrors "github.com/mrz1836/git-util/internal/errors"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestExecInvoker_Run(t *testing.T) {
	requireTool(t, "sh")

	var stdout, stderr bytes.Buffer
	inv := &ExecInvoker{Stdout: &stdout, Stderr: &stderr}

	t.Run("success streams output", func(t *testing.T) {
		stdout.Reset()
		code, err := inv.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello"}})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "hello\n", stdout.String())
	})

	t.Run("nonzero exit is not an error", func(t *testing.T) {
		code, err := inv.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}})
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})
}

func TestExecInvoker_Output(t *testing.T) {
	requireTool(t, "sh")

	var stderr bytes.Buffer
	inv := &ExecInvoker{Stderr: &stderr}

	out, code, err := inv.Output(context.Background(), Command{Name: "sh", Args: []string{"-c", "printf out; printf err >&2"}})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out", string(out))
	assert.Equal(t, "err", stderr.String())
}

func TestExecInvoker_SpawnFailure(t *testing.T) {
	inv := &ExecInvoker{}
	cmd := Command{Name: "git-util-definitely-missing-binary", Args: []string{"status"}}

	_, err := inv.Run(context.Background(), cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, guerrors.ErrProcessSpawn)

	var spawnErr *guerrors.ProcessSpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, "git-util-definitely-missing-binary status", spawnErr.CommandLine)

	_, _, err = inv.Output(context.Background(), cmd)
	require.ErrorIs(t, err, guerrors.ErrProcessSpawn)
}

func TestExecInvoker_ContextCanceled(t *testing.T) {
	requireTool(t, "sleep")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&ExecInvoker{}).Run(ctx, Command{Name: "sleep", Args: []string{"5"}})
	require.ErrorIs(t, err, context.Canceled)
}
