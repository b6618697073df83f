package git

// Outcome is the result of a git process that ran to completion.
// It reflects the exit status only; failures that prevent a process from
// running are reported as errors instead.
type Outcome int

const (
	// Success means the process exited with status 0.
	Success Outcome = iota
	// Error means the process exited with a nonzero or abnormal status.
	Error
)

// OutcomeFromExitCode maps an exit status to an Outcome.
func OutcomeFromExitCode(code int) Outcome {
	if code == 0 {
		return Success
	}
	return Error
}

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
