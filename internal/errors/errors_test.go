package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guerrors "github.com/mrz1836/git-util/internal/errors"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		guerrors.ErrStagedFiles,
		guerrors.ErrStagingStep,
		guerrors.ErrMissingArgument,
		guerrors.ErrEmptyValue,
		guerrors.ErrInvalidArgument,
		guerrors.ErrProcessSpawn,
		guerrors.ErrPipelineStage,
		guerrors.ErrGitQuery,
		guerrors.ErrPolicyConfig,
		guerrors.ErrIdentityMismatch,
		guerrors.ErrDisallowedContent,
		guerrors.ErrOutcomeFailure,
	}

	for i, a := range allErrors {
		for j, b := range allErrors {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b, "%v should not match %v", a, b)
		}
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, guerrors.Wrap(nil, "context"))

	wrapped := guerrors.Wrap(guerrors.ErrGitQuery, "checking staging area")
	require.ErrorIs(t, wrapped, guerrors.ErrGitQuery)
	assert.Equal(t, "checking staging area: git query failed", wrapped.Error())
}

func TestWrapf(t *testing.T) {
	assert.NoError(t, guerrors.Wrapf(nil, "stage %d", 1))

	wrapped := guerrors.Wrapf(guerrors.ErrEmptyValue, "branch %q", "")
	require.ErrorIs(t, wrapped, guerrors.ErrEmptyValue)
	assert.Equal(t, `branch "": value cannot be empty`, wrapped.Error())
}

func TestTypedErrors_MatchTheirSentinels(t *testing.T) {
	cause := fmt.Errorf("exec: \"gti\": executable file not found in $PATH")

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "process spawn",
			err:      &guerrors.ProcessSpawnError{CommandLine: "gti status", Err: cause},
			sentinel: guerrors.ErrProcessSpawn,
			contains: "gti status",
		},
		{
			name:     "pipeline stage",
			err:      &guerrors.PipelineStageError{Tool: "column", Index: 3, Err: cause},
			sentinel: guerrors.ErrPipelineStage,
			contains: "column (pipeline stage 4)",
		},
		{
			name:     "staging step",
			err:      &guerrors.StagingStepError{Step: "git add --all"},
			sentinel: guerrors.ErrStagingStep,
			contains: "git add --all returned an error",
		},
		{
			name:     "policy config",
			err:      &guerrors.PolicyConfigError{Variable: "GIT_UTIL_USER_EMAIL", Reason: "environment variable not found"},
			sentinel: guerrors.ErrPolicyConfig,
			contains: "GIT_UTIL_USER_EMAIL",
		},
		{
			name:     "identity mismatch",
			err:      &guerrors.IdentityMismatchError{Variable: "GIT_AUTHOR_EMAIL", Expected: "a@example.com", Actual: "b@example.com"},
			sentinel: guerrors.ErrIdentityMismatch,
			contains: `"b@example.com". Expected: "a@example.com"`,
		},
		{
			name:     "disallowed content",
			err:      &guerrors.DisallowedContentError{Line: "+ the secretKey = 1"},
			sentinel: guerrors.ErrDisallowedContent,
			contains: "disallowed string found in commit changes",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("running verb: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
			assert.Contains(t, wrapped.Error(), tc.contains)
		})
	}
}

func TestProcessSpawnError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := &guerrors.ProcessSpawnError{CommandLine: "git status", Err: cause}

	require.ErrorIs(t, err, cause)

	var target *guerrors.ProcessSpawnError
	require.ErrorAs(t, fmt.Errorf("wrap: %w", err), &target)
	assert.Equal(t, "git status", target.CommandLine)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, guerrors.UserMessage(nil))
	assert.Equal(t, "There are already files in the staging area.",
		guerrors.UserMessage(fmt.Errorf("aac: %w", guerrors.ErrStagedFiles)))
	assert.Equal(t, "The commit author email is not the allowed email.",
		guerrors.UserMessage(&guerrors.IdentityMismatchError{Expected: "a", Actual: "b"}))
	assert.Equal(t, "something odd", guerrors.UserMessage(stderrors.New("something odd")))
}

func TestActionable(t *testing.T) {
	msg, action := guerrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)

	msg, action = guerrors.Actionable(&guerrors.PipelineStageError{Tool: "rg", Err: stderrors.New("not found")})
	assert.Equal(t, "A listing pipeline could not be started.", msg)
	assert.Contains(t, action, "tools.*")

	msg, action = guerrors.Actionable(guerrors.ErrConfigNil)
	assert.Equal(t, "Configuration could not be loaded.", msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	inner := stderrors.New("bad count")
	err := guerrors.NewExitCode2Error(inner)

	assert.Equal(t, "bad count", err.Error())
	require.ErrorIs(t, err, inner)
	assert.True(t, guerrors.IsExitCode2Error(fmt.Errorf("wrap: %w", err)))
	assert.False(t, guerrors.IsExitCode2Error(inner))
	assert.False(t, guerrors.IsExitCode2Error(nil))
}
