// Package errors provides centralized error handling for git-util.
//
// This package defines sentinel errors used for programmatic error categorization
// and the typed failures raised by the execution and policy core. All of them can
// be checked using errors.Is() and errors.As().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrStagedFiles indicates that a composite verb refused to run because
	// the staging area already contains files.
	ErrStagedFiles = errors.New("there are already staged files")

	// ErrStagingStep indicates that the staging step of a composite verb failed,
	// so the terminal step was never run.
	ErrStagingStep = errors.New("staging step failed")

	// ErrMissingArgument indicates that a verb was called without an argument it requires.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProcessSpawn indicates that an external executable could not be launched.
	ErrProcessSpawn = errors.New("failed to start process")

	// ErrPipelineStage indicates that one stage of a filter pipeline could not be started.
	ErrPipelineStage = errors.New("pipeline stage failed to start")

	// ErrGitQuery indicates that a read-only git query exited with a nonzero status.
	ErrGitQuery = errors.New("git query failed")

	// ErrPolicyConfig indicates that the pre-commit policy configuration is missing or unreadable.
	ErrPolicyConfig = errors.New("invalid policy configuration")

	// ErrIdentityMismatch indicates that the commit author email is not the allowed one.
	ErrIdentityMismatch = errors.New("commit author email mismatch")

	// ErrDisallowedContent indicates that staged additions contain a disallowed string.
	ErrDisallowedContent = errors.New("disallowed string found in commit changes")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidTools indicates an invalid external tool configuration value.
	ErrConfigInvalidTools = errors.New("invalid tools configuration")

	// ErrConfigInvalidPolicy indicates an invalid policy configuration value.
	ErrConfigInvalidPolicy = errors.New("invalid policy configuration value")

	// ErrConfigInvalidLog indicates an invalid log verb configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrOutcomeFailure indicates that the wrapped tool ran and reported failure
	// through its exit status. The tool has already written its own diagnostics,
	// so commands should not print this error again.
	ErrOutcomeFailure = errors.New("command exited with failure status")
)

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
// The wrapped error keeps the original chain for errors.Is() checks.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
