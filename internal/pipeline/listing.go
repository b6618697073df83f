package pipeline

import (
	"regexp"

	"github.com/mrz1836/git-util/internal/constants"
)

// With --show-origin or --show-scope, git prints tab-separated provenance
// columns before the key, so the alias key is matched at the start of the
// line or after the last such column. The filter patterns are valid both as
// POSIX basic regular expressions and as rg patterns.
//
//nolint:gochecknoglobals // derived from constants
var (
	aliasKey = regexp.QuoteMeta(constants.AliasKeyPrefix)

	// aliasKeyAtStart and aliasKeyAfterColumn select config lines whose key is an alias.
	aliasKeyAtStart     = "^" + aliasKey
	aliasKeyAfterColumn = "^[^=]*\t" + aliasKey

	// stripAliasPrefix removes the alias prefix from a key, keeping any provenance columns.
	stripAliasPrefix = "s/^\\(\\([^\t]*\t\\)*\\)" + aliasKey + "/\\1/"
)

// Tools names the executables used by the listing pipelines.
type Tools struct {
	Git    string
	Sed    string
	Filter string // rg, or any grep-compatible filter
	Column string
}

// DefaultTools returns the stock tool names.
func DefaultTools() Tools {
	return Tools{
		Git:    constants.ToolGit,
		Sed:    constants.ToolSed,
		Filter: constants.ToolFilter,
		Column: constants.ToolColumn,
	}
}

// ConfigQueryOptions adds provenance columns to a config listing.
type ConfigQueryOptions struct {
	ShowOrigin bool
	ShowScope  bool
}

// Args returns the git config flags for o, --show-origin before --show-scope.
func (o ConfigQueryOptions) Args() []string {
	var args []string
	if o.ShowOrigin {
		args = append(args, "--show-origin")
	}
	if o.ShowScope {
		args = append(args, "--show-scope")
	}
	return args
}

// AliasListing returns the stages that list git aliases as a table of name
// and expansion, optionally keeping only lines that contain filter.
func AliasListing(tools Tools, opts ConfigQueryOptions, filter string) []Stage {
	gitArgs := append([]string{"config"}, opts.Args()...)
	gitArgs = append(gitArgs, "--get-regexp", `^alias\.`)

	stages := []Stage{
		{Tool: tools.Git, Args: gitArgs},
		{Tool: tools.Sed, Args: []string{stripAliasPrefix}},
	}
	if filter != "" {
		stages = append(stages, filterStage(tools, filter))
	}
	return append(stages,
		Stage{Tool: tools.Sed, Args: []string{"s/ /;/"}},
		Stage{Tool: tools.Column, Args: []string{"-t", "-s", ";"}},
	)
}

// ConfigListing returns the stages that list every config entry except
// aliases as a key/value table, optionally keeping only lines that contain
// filter.
func ConfigListing(tools Tools, opts ConfigQueryOptions, filter string) []Stage {
	gitArgs := append([]string{"config", "--list"}, opts.Args()...)

	stages := []Stage{
		{Tool: tools.Git, Args: gitArgs},
		{Tool: tools.Filter, Args: []string{"--invert-match", "-e", aliasKeyAtStart, "-e", aliasKeyAfterColumn}},
	}
	if filter != "" {
		stages = append(stages, filterStage(tools, filter))
	}
	return append(stages, Stage{Tool: tools.Column, Args: []string{"-t", "-s", "="}})
}

func filterStage(tools Tools, filter string) Stage {
	return Stage{Tool: tools.Filter, Args: []string{"--fixed-strings", "--ignore-case", "--", filter}}
}
