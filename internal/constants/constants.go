// Package constants provides centralized constant values used throughout git-util.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by git-util.
const (
	// AppHome is the hidden directory name where git-util stores its config and logs.
	// This directory is created in the user's home directory.
	AppHome = ".git-util"

	// AppHomeEnvVar overrides the location of AppHome.
	AppHomeEnvVar = "GIT_UTIL_HOME"

	// EnvPrefix is the prefix for environment variables that override configuration keys.
	EnvPrefix = "GIT_UTIL"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before a log file is rotated.
	LogMaxSizeMB = 5

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Default counts used by the numeric-count verbs.
const (
	// DefaultCommitCount is the N used by undo, author, last, show and files when none is given.
	DefaultCommitCount uint16 = 1

	// DefaultOnelineCount is the N used by the one-line log verb when none is given.
	DefaultOnelineCount uint16 = 25
)
