package constants

// Environment variables read by the pre-commit policy.
const (
	// EnvAllowedEmail holds the only email address commits may be authored with.
	EnvAllowedEmail = "GIT_UTIL_USER_EMAIL"

	// EnvDisallowedStrings holds a delimiter-separated list of strings that must
	// not appear in staged additions.
	EnvDisallowedStrings = "GIT_UTIL_DISALLOWED_STRINGS"

	// DefaultDisallowedDelimiter separates the entries of EnvDisallowedStrings.
	DefaultDisallowedDelimiter = "|"
)

// Environment variables exported by git itself.
const (
	// EnvGitAuthorEmail is the author email git exposes for the commit in progress.
	EnvGitAuthorEmail = "GIT_AUTHOR_EMAIL"
)
