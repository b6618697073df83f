package errors

import (
	"errors"
	"fmt"
)

// ProcessSpawnError reports an external process that could not be started.
// CommandLine is the rendered command that was attempted.
type ProcessSpawnError struct {
	CommandLine string
	Err         error
}

// Error implements the error interface.
func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("failed to execute `%s`: %v", e.CommandLine, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ProcessSpawnError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrProcessSpawn.
func (e *ProcessSpawnError) Is(target error) bool {
	return target == ErrProcessSpawn
}

// PipelineStageError reports the pipeline stage whose tool could not be started.
type PipelineStageError struct {
	Tool  string
	Index int
	Err   error
}

// Error implements the error interface.
func (e *PipelineStageError) Error() string {
	return fmt.Sprintf("failed to spawn %s (pipeline stage %d): %v", e.Tool, e.Index+1, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PipelineStageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPipelineStage.
func (e *PipelineStageError) Is(target error) bool {
	return target == ErrPipelineStage
}

// StagingStepError reports that the staging step of a composite verb failed.
type StagingStepError struct {
	// Step is the rendered staging invocation, e.g. "git add --all".
	Step string
}

// Error implements the error interface.
func (e *StagingStepError) Error() string {
	return e.Step + " returned an error"
}

// Is reports whether target is ErrStagingStep.
func (e *StagingStepError) Is(target error) bool {
	return target == ErrStagingStep
}

// PolicyConfigError reports a policy variable that is missing or unreadable.
type PolicyConfigError struct {
	Variable string
	Reason   string
}

// Error implements the error interface.
func (e *PolicyConfigError) Error() string {
	return fmt.Sprintf("failed to get env variable %s: %s", e.Variable, e.Reason)
}

// Is reports whether target is ErrPolicyConfig.
func (e *PolicyConfigError) Is(target error) bool {
	return target == ErrPolicyConfig
}

// IdentityMismatchError carries both emails of a failed identity check.
type IdentityMismatchError struct {
	Variable string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("invalid commit email; %s value is %q. Expected: %q", e.Variable, e.Actual, e.Expected)
}

// Is reports whether target is ErrIdentityMismatch.
func (e *IdentityMismatchError) Is(target error) bool {
	return target == ErrIdentityMismatch
}

// DisallowedContentError carries the first staged addition that matched a
// disallowed string. The configured list itself is never included. The line
// is reported separately, so Error does not repeat it.
type DisallowedContentError struct {
	Line string
}

// Error implements the error interface.
func (e *DisallowedContentError) Error() string {
	return ErrDisallowedContent.Error()
}

// Is reports whether target is ErrDisallowedContent.
func (e *DisallowedContentError) Is(target error) bool {
	return target == ErrDisallowedContent
}

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
