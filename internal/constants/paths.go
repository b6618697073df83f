package constants

// Log and configuration file names.
const (
	// CLILogFileName is the name of the CLI log file.
	// This file is located in ~/.git-util/logs/git-util.log
	CLILogFileName = "git-util.log"

	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the git-util home directory.
	GlobalConfigName = "config.yaml"
)

// AllFilesPathspec is git's magic pathspec for "every path from the repository root".
const AllFilesPathspec = ":/"

// EmptyTreeHash is the object name of git's empty tree. The pre-commit diff is
// taken against it when the repository has no HEAD yet.
const EmptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// AliasKeyPrefix is the config-key prefix git uses for aliases.
const AliasKeyPrefix = "alias."
