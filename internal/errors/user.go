package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Preconditions
	// ===================
	{
		err: ErrStagedFiles,
		info: ErrorInfo{
			Message: "There are already files in the staging area.",
			Action:  "Commit or unstage them first, or use the forced variant of the command.",
		},
	},
	{
		err: ErrStagingStep,
		info: ErrorInfo{
			Message: "Staging files failed, so nothing was committed.",
			Action:  "Check the git output above and retry.",
		},
	},
	{
		err: ErrMissingArgument,
		info: ErrorInfo{
			Message: "A required argument was not supplied.",
			Action:  "Check the command help for required arguments.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was empty.",
			Action:  "Check the command help for required arguments.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},

	// ===================
	// Processes
	// ===================
	{
		err: ErrProcessSpawn,
		info: ErrorInfo{
			Message: "An external command could not be started.",
			Action:  "Make sure the executable is installed and on your PATH.",
		},
	},
	{
		err: ErrPipelineStage,
		info: ErrorInfo{
			Message: "A listing pipeline could not be started.",
			Action:  "Install the missing tool or point tools.* in ~/.git-util/config.yaml at it.",
		},
	},
	{
		err: ErrGitQuery,
		info: ErrorInfo{
			Message: "Git could not report the repository state.",
			Action:  "Make sure you are inside a git repository.",
		},
	},

	// ===================
	// Pre-commit policy
	// ===================
	{
		err: ErrPolicyConfig,
		info: ErrorInfo{
			Message: "The pre-commit policy is not configured.",
			Action:  "Export GIT_UTIL_USER_EMAIL with the email you commit with.",
		},
	},
	{
		err: ErrIdentityMismatch,
		info: ErrorInfo{
			Message: "The commit author email is not the allowed email.",
			Action:  "Set user.email for this repository, then retry the commit.",
		},
	},
	{
		err: ErrDisallowedContent,
		info: ErrorInfo{
			Message: "The staged changes contain a disallowed string.",
			Action:  "Remove the offending line from the staged changes and retry.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration could not be loaded.",
		},
	},
	{
		err: ErrConfigInvalidTools,
		info: ErrorInfo{
			Message: "An external tool setting is invalid.",
			Action:  "Fix the tools section of ~/.git-util/config.yaml.",
		},
	},
	{
		err: ErrConfigInvalidPolicy,
		info: ErrorInfo{
			Message: "A policy setting is invalid.",
			Action:  "Fix the policy section of ~/.git-util/config.yaml.",
		},
	},
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "A log setting is invalid.",
			Action:  "Fix the log section of ~/.git-util/config.yaml.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries a direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped and typed errors.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve the issue.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
