package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigQueryOptions_Args(t *testing.T) {
	tests := []struct {
		name string
		opts ConfigQueryOptions
		want []string
	}{
		{name: "none", opts: ConfigQueryOptions{}, want: nil},
		{name: "origin", opts: ConfigQueryOptions{ShowOrigin: true}, want: []string{"--show-origin"}},
		{name: "scope", opts: ConfigQueryOptions{ShowScope: true}, want: []string{"--show-scope"}},
		{name: "both keep order", opts: ConfigQueryOptions{ShowOrigin: true, ShowScope: true}, want: []string{"--show-origin", "--show-scope"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.opts.Args())
		})
	}
}

func TestAliasListing(t *testing.T) {
	tools := DefaultTools()

	t.Run("without filter", func(t *testing.T) {
		stages := AliasListing(tools, ConfigQueryOptions{ShowScope: true}, "")
		assert.Equal(t, []Stage{
			{Tool: "git", Args: []string{"config", "--show-scope", "--get-regexp", `^alias\.`}},
			{Tool: "sed", Args: []string{"s/^\\(\\([^\t]*\t\\)*\\)alias\\./\\1/"}},
			{Tool: "sed", Args: []string{"s/ /;/"}},
			{Tool: "column", Args: []string{"-t", "-s", ";"}},
		}, stages)
	})

	t.Run("with filter", func(t *testing.T) {
		stages := AliasListing(tools, ConfigQueryOptions{}, "Log")
		require.Len(t, stages, 5)
		assert.Equal(t, Stage{Tool: "rg", Args: []string{"--fixed-strings", "--ignore-case", "--", "Log"}}, stages[2])
	})
}

func TestConfigListing(t *testing.T) {
	tools := Tools{Git: "/opt/git", Sed: "gsed", Filter: "grep", Column: "column"}

	stages := ConfigListing(tools, ConfigQueryOptions{ShowOrigin: true}, "user")
	assert.Equal(t, []Stage{
		{Tool: "/opt/git", Args: []string{"config", "--list", "--show-origin"}},
		{Tool: "grep", Args: []string{"--invert-match", "-e", `^alias\.`, "-e", "^[^=]*\talias\\."}},
		{Tool: "grep", Args: []string{"--fixed-strings", "--ignore-case", "--", "user"}},
		{Tool: "column", Args: []string{"-t", "-s", "="}},
	}, stages)
}

// isolateGitConfig points git at a private global config file and hides the
// system config, so listings only see what the test wrote.
func isolateGitConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitconfig")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("GIT_CONFIG_GLOBAL", path)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

func TestConfigListing_RealTools(t *testing.T) {
	requireTools(t, "git", "grep", "column")
	isolateGitConfig(t, `[user]
	name = Test User
	email = test@example.com
[alias]
	showuser = log --author
	co = checkout
[core]
	pager = less
`)

	tools := DefaultTools()
	tools.Filter = "grep"

	res, err := NewComposer(WithDir(t.TempDir())).Run(context.Background(), ConfigListing(tools, ConfigQueryOptions{}, "USER"))
	require.NoError(t, err)
	require.True(t, res.Success())

	lines := strings.Split(strings.TrimRight(string(res.Output), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, strings.ToLower(line), "user")
		assert.False(t, strings.HasPrefix(line, "alias."), "alias entries are excluded: %q", line)
	}
	assert.Contains(t, string(res.Output), "Test User")
	assert.NotContains(t, string(res.Output), "pager")
}

func TestAliasListing_RealTools(t *testing.T) {
	requireTools(t, "git", "sed", "grep", "column")
	isolateGitConfig(t, `[alias]
	co = checkout
	last = log -1 HEAD
`)

	tools := DefaultTools()
	tools.Filter = "grep"

	res, err := NewComposer(WithDir(t.TempDir())).Run(context.Background(), AliasListing(tools, ConfigQueryOptions{}, ""))
	require.NoError(t, err)

	out := string(res.Output)
	assert.Contains(t, out, "co")
	assert.Contains(t, out, "checkout")
	assert.Contains(t, out, "log -1 HEAD")
	assert.NotContains(t, out, "alias.")
}

// runWithoutColumn runs stages up to, but not including, the final column stage.
func runWithoutColumn(t *testing.T, stages []Stage) string {
	t.Helper()
	require.Equal(t, "column", stages[len(stages)-1].Tool)

	res, err := NewComposer(WithDir(t.TempDir())).Run(context.Background(), stages[:len(stages)-1])
	require.NoError(t, err)
	require.True(t, res.Success())
	return string(res.Output)
}

func TestListings_ProvenanceColumns(t *testing.T) {
	requireTools(t, "git", "sed", "grep")
	isolateGitConfig(t, `[user]
	name = Test User
[alias]
	co = checkout
	lg = log --oneline
`)

	tools := DefaultTools()
	tools.Filter = "grep"

	for name, opts := range map[string]ConfigQueryOptions{
		"origin":           {ShowOrigin: true},
		"scope":            {ShowScope: true},
		"origin and scope": {ShowOrigin: true, ShowScope: true},
	} {
		t.Run(name, func(t *testing.T) {
			conf := runWithoutColumn(t, ConfigListing(tools, opts, ""))
			assert.Contains(t, conf, "user.name=Test User")
			assert.NotContains(t, conf, "alias.", "alias entries are excluded")
			assert.NotContains(t, conf, "checkout")

			aliases := runWithoutColumn(t, AliasListing(tools, opts, ""))
			assert.NotContains(t, aliases, "alias.", "the prefix is stripped after the provenance columns")
			assert.Contains(t, aliases, "\tco;checkout")
			assert.Contains(t, aliases, "\tlg;log --oneline")
			if opts.ShowScope {
				assert.Contains(t, aliases, "global\t")
			}
		})
	}
}
