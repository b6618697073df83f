package constants

import "time"

// Default executables. Each one can be overridden in the tools section of the config.
const (
	// ToolGit is the Git version control system.
	ToolGit = "git"

	// ToolSed is the stream editor used to rewrite listing output.
	ToolSed = "sed"

	// ToolFilter is the pattern filter used by the listing pipelines.
	// Any grep-compatible tool that accepts --fixed-strings, --ignore-case and
	// --invert-match works.
	ToolFilter = "rg"

	// ToolColumn formats delimiter-separated text into a table.
	ToolColumn = "column"
)

// ToolDetectionTimeout bounds the version probes of the doctor command.
const ToolDetectionTimeout = 5 * time.Second

// MinVersionGit is the oldest git that has `git restore`, which the
// restore and unstage verbs depend on.
const MinVersionGit = "2.23.0"

// VersionFlagStandard is the version flag understood by every probed tool
// that reports a version.
const VersionFlagStandard = "--version"
