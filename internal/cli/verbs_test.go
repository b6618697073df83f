package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/git-util/internal/commands"
	"github.com/mrz1836/git-util/internal/errors"
	"github.com/mrz1836/git-util/internal/process/processtest"
)

var guardQuery = []string{"diff", "--staged", "--name-only"} //nolint:gochecknoglobals // test fixture

func TestVerbs_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want [][]string
	}{
		{
			name: "aa",
			args: []string{"aa"},
			want: [][]string{guardQuery, {"add", "--all"}, {"status", "--short"}},
		},
		{
			name: "aaf skips the guard",
			args: []string{"aaf"},
			want: [][]string{{"add", "--all"}, {"status", "--short"}},
		},
		{
			name: "au",
			args: []string{"au"},
			want: [][]string{guardQuery, {"add", "--update"}, {"status", "--short"}},
		},
		{
			name: "a with arguments",
			args: []string{"a", "main.go", "-p"},
			want: [][]string{{"add", "main.go", "-p"}},
		},
		{
			name: "a without arguments behaves like au",
			args: []string{"a"},
			want: [][]string{guardQuery, {"add", "--update"}, {"status", "--short"}},
		},
		{
			name: "aac forwards commit flags",
			args: []string{"aac", "-m", "msg"},
			want: [][]string{guardQuery, {"add", "--all"}, {"commit", "-m", "msg"}},
		},
		{
			name: "aacf",
			args: []string{"aacf"},
			want: [][]string{{"add", "--all"}, {"commit"}},
		},
		{
			name: "aam alias",
			args: []string{"aam"},
			want: [][]string{guardQuery, {"add", "--all"}, {"commit", "--amend"}},
		},
		{
			name: "ac alias",
			args: []string{"ac", "-v"},
			want: [][]string{guardQuery, {"commit", "--all", "-v"}},
		},
		{
			name: "aumend",
			args: []string{"aumend"},
			want: [][]string{guardQuery, {"commit", "--all", "--amend"}},
		},
		{
			name: "author with count",
			args: []string{"author", "3"},
			want: [][]string{{"rebase", "HEAD~3", "-x", "git commit --amend --no-edit --reset-author"}},
		},
		{
			name: "undo defaults to one commit",
			args: []string{"undo"},
			want: [][]string{{"reset", "--mixed", "HEAD~1"}},
		},
		{
			name: "restore all",
			args: []string{"restore", "all"},
			want: [][]string{{"restore", ":/"}},
		},
		{
			name: "rest alias with paths",
			args: []string{"rest", "a", "b"},
			want: [][]string{{"restore", "a", "b"}},
		},
		{
			name: "unstage path",
			args: []string{"u", "a"},
			want: [][]string{{"restore", "--staged", "a"}},
		},
		{
			name: "update branch",
			args: []string{"update", "main"},
			want: [][]string{{"fetch", "--verbose", "origin", "main:main"}},
		},
		{
			name: "files with count",
			args: []string{"shf", "2"},
			want: [][]string{{"show", "--pretty=", "--name-only", "--max-count=2"}},
		},
		{
			name: "oneline log with count and git args",
			args: []string{"l", "5", "--author=me"},
			want: [][]string{{"log", "--pretty=" + commands.OnelinePretty, "--max-count=5", "--author=me"}},
		},
		{
			name: "last",
			args: []string{"la"},
			want: [][]string{{"log", "--compact-summary", "--max-count=1"}},
		},
		{
			name: "show",
			args: []string{"sh"},
			want: [][]string{{"show", "--expand-tabs=4", "--max-count=1"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := processtest.New()
			res := runCLI(t, Dependencies{Invoker: rec}, tc.args...)

			require.NoError(t, res.err)
			assert.Equal(t, tc.want, rec.Args())
		})
	}
}

func TestVerbs_LeadingGlobalFlags(t *testing.T) {
	t.Run("print-commands before a pass-through verb", func(t *testing.T) {
		rec := processtest.New()
		res := runCLI(t, Dependencies{Invoker: rec}, "-p", "l", "5")

		require.NoError(t, res.err)
		assert.Equal(t, [][]string{{"log", "--pretty=" + commands.OnelinePretty, "--max-count=5"}}, rec.Args())
		assert.Contains(t, res.stderr, "command: `git log")
	})

	t.Run("dry-run before a pass-through verb", func(t *testing.T) {
		rec := processtest.New()
		res := runCLI(t, Dependencies{Invoker: rec}, "--dry-run", "aac", "-m", "x")

		require.NoError(t, res.err)
		assert.Equal(t, [][]string{guardQuery}, rec.Args(), "only the read-only guard query runs")
		assert.Contains(t, res.stderr, "command that would be run: `git add --all`")
		assert.Contains(t, res.stderr, "command that would be run: `git commit -m x`")
	})

	t.Run("dry-run before a parsed verb", func(t *testing.T) {
		rec := processtest.New()
		res := runCLI(t, Dependencies{Invoker: rec}, "--dry-run", "undo", "2")

		require.NoError(t, res.err)
		assert.Empty(t, rec.Calls())
		assert.Contains(t, res.stderr, "git reset --mixed 'HEAD~2'")
	})

	t.Run("flags after a pass-through verb belong to git", func(t *testing.T) {
		rec := processtest.New()
		res := runCLI(t, Dependencies{Invoker: rec}, "a", "-p")

		require.NoError(t, res.err)
		assert.Equal(t, [][]string{{"add", "-p"}}, rec.Args())
		assert.NotContains(t, res.stderr, "command:")
	})
}

func TestVerbs_DryRunFromEnvironment(t *testing.T) {
	t.Setenv("GIT_UTIL_DRY_RUN", "true")

	rec := processtest.New()
	res := runCLI(t, Dependencies{Invoker: rec}, "update", "main")

	require.NoError(t, res.err)
	assert.Empty(t, rec.Calls())
	assert.Contains(t, res.stderr, "git fetch --verbose origin main:main")
}

func TestVerbs_InvalidCount(t *testing.T) {
	for _, args := range [][]string{
		{"undo", "abc"},
		{"author", "-1"},
		{"files", "70000"},
	} {
		t.Run(args[0]+" "+args[1], func(t *testing.T) {
			rec := processtest.New()
			res := runCLI(t, Dependencies{Invoker: rec}, args...)

			require.Error(t, res.err)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
			assert.Empty(t, rec.Calls())
		})
	}
}

func TestVerbs_ArgumentCounts(t *testing.T) {
	tests := [][]string{
		{"update"},
		{"update", "a", "b"},
		{"undo", "1", "2"},
		{"aa", "extra"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			rec := processtest.New()
			res := runCLI(t, Dependencies{Invoker: rec}, args...)

			require.Error(t, res.err)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
			assert.Empty(t, rec.Calls())
		})
	}
}

func TestVerbs_StagingFailureStopsCommit(t *testing.T) {
	rec := processtest.New().On(processtest.Response{ExitCode: 1}, "add")

	res := runCLI(t, Dependencies{Invoker: rec}, "aacf", "-m", "x")

	require.Error(t, res.err)
	require.ErrorIs(t, res.err, errors.ErrStagingStep)
	assert.False(t, rec.Called("commit"))
}
