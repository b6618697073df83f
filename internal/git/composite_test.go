package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guerrors "github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/process/processtest"
)

type transition struct{ from, to Stage }

func newTestRunner(rec *processtest.Recorder) (*CompositeRunner, *[]transition) {
	exec := NewExecutor(ExecContext{}, rec, nil)
	r := NewCompositeRunner(exec, NewGuard(exec))
	var seen []transition
	r.observe = func(_ string, from, to Stage) {
		seen = append(seen, transition{from, to})
	}
	return r, &seen
}

func addAllAndCommit(forced bool) Operation {
	return Operation{
		Name:              "aac",
		RequireEmptyIndex: !forced,
		Staging:           NewInvocation("add").WithDefaultArgs("--all"),
		Terminal:          NewInvocation("commit"),
	}
}

func TestCompositeRunner_HappyPath(t *testing.T) {
	rec := processtest.New()
	r, seen := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), addAllAndCommit(false))

	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, [][]string{
		{"diff", "--staged", "--name-only"},
		{"add", "--all"},
		{"commit"},
	}, rec.Args())
	assert.Equal(t, []transition{
		{StageStart, StagePreconditionChecked},
		{StagePreconditionChecked, StageStep1Executed},
		{StageStep1Executed, StageStep2Executed},
		{StageStep2Executed, StageDone},
	}, *seen)
}

func TestCompositeRunner_StagedFilesAbortBeforeAnyStep(t *testing.T) {
	rec := processtest.New().On(processtest.Response{Stdout: []byte("already.txt\n")}, "diff", "--staged")
	r, seen := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), addAllAndCommit(false))

	require.ErrorIs(t, err, guerrors.ErrStagedFiles)
	assert.Equal(t, Error, outcome)
	assert.False(t, rec.Called("add"), "staging step must not run")
	assert.False(t, rec.Called("commit"), "commit step must not run")
	assert.Equal(t, []transition{{StageStart, StageAborted}}, *seen)
}

func TestCompositeRunner_ForcedSkipsGuard(t *testing.T) {
	rec := processtest.New().On(processtest.Response{Stdout: []byte("already.txt\n")}, "diff", "--staged")
	r, _ := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), addAllAndCommit(true))

	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.False(t, rec.Called("diff"), "forced variant must not query the index")
	assert.Equal(t, [][]string{{"add", "--all"}, {"commit"}}, rec.Args())
}

func TestCompositeRunner_StagingFailureStopsCommit(t *testing.T) {
	rec := processtest.New().On(processtest.Response{ExitCode: 1}, "add")
	r, seen := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), addAllAndCommit(false))

	require.ErrorIs(t, err, guerrors.ErrStagingStep)
	var stepErr *guerrors.StagingStepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "git add --all", stepErr.Step)
	assert.Equal(t, Error, outcome)
	assert.False(t, rec.Called("commit"))
	assert.Equal(t, StageAborted, (*seen)[len(*seen)-1].to)
}

func TestCompositeRunner_TerminalOutcomeIsVerbOutcome(t *testing.T) {
	rec := processtest.New().On(processtest.Response{ExitCode: 1}, "commit")
	r, _ := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), addAllAndCommit(false))

	require.NoError(t, err)
	assert.Equal(t, Error, outcome)
}

func TestCompositeRunner_SingleStep(t *testing.T) {
	rec := processtest.New()
	r, seen := newTestRunner(rec)

	outcome, err := r.Run(context.Background(), Operation{
		Name:     "undo",
		Terminal: NewInvocation("reset").WithDefaultArgs("--mixed", "HEAD~1"),
	})

	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, [][]string{{"reset", "--mixed", "HEAD~1"}}, rec.Args())
	assert.Equal(t, []transition{
		{StageStart, StageStep2Executed},
		{StageStep2Executed, StageDone},
	}, *seen)
}

func TestCompositeRunner_DryRunStillChecksGuard(t *testing.T) {
	rec := processtest.New().On(processtest.Response{Stdout: []byte("x\n")}, "diff")
	exec := NewExecutor(ExecContext{DryRun: true}, rec, nil)
	r := NewCompositeRunner(exec, NewGuard(exec))

	_, err := r.Run(context.Background(), addAllAndCommit(false))

	require.ErrorIs(t, err, guerrors.ErrStagedFiles)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "start", StageStart.String())
	assert.Equal(t, "aborted", StageAborted.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
