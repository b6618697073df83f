package git

import (
	"context"

	"github.com/rs/zerolog"

	guerrors "github.com/mrz1836/git-util/internal/errors"
)

// Stage is a state of a composite operation.
type Stage int

// Composite operation states, in the order they are reached.
const (
	StageStart Stage = iota
	StagePreconditionChecked
	StageStep1Executed
	StageStep2Executed
	StageDone
	StageAborted
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StagePreconditionChecked:
		return "precondition_checked"
	case StageStep1Executed:
		return "step1_executed"
	case StageStep2Executed:
		return "step2_executed"
	case StageDone:
		return "done"
	case StageAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Operation is a verb built from up to two invocations.
type Operation struct {
	// Name identifies the verb in logs.
	Name string

	// RequireEmptyIndex refuses to run when anything is already staged.
	// Forced variants leave it false and never query the index.
	RequireEmptyIndex bool

	// Staging runs first. The zero Invocation means there is no staging step.
	Staging Invocation

	// Terminal runs last, and its outcome is the operation's outcome.
	Terminal Invocation
}

// CompositeRunner executes Operations, stopping at the first failed step.
type CompositeRunner struct {
	exec  *Executor
	guard *Guard

	// observe, when set, is called on every state transition.
	observe func(op string, from, to Stage)
}

// NewCompositeRunner creates a CompositeRunner.
func NewCompositeRunner(exec *Executor, guard *Guard) *CompositeRunner {
	return &CompositeRunner{exec: exec, guard: guard}
}

// Run executes op.
//
//   - If op requires an empty index and something is staged, Run returns
//     ErrStagedFiles without running any step.
//   - If the staging step reports Error, Run returns a *StagingStepError and
//     the terminal step never runs.
//   - Otherwise the terminal step's outcome is returned.
func (r *CompositeRunner) Run(ctx context.Context, op Operation) (Outcome, error) {
	stage := StageStart
	advance := func(to Stage) {
		zerolog.Ctx(ctx).Debug().
			Str("operation", op.Name).
			Stringer("from", stage).
			Stringer("to", to).
			Msg("composite operation transition")
		if r.observe != nil {
			r.observe(op.Name, stage, to)
		}
		stage = to
	}

	if op.RequireEmptyIndex {
		outcome, err := r.guard.VerifyStagingAreaIsEmpty(ctx)
		if err != nil {
			advance(StageAborted)
			return Error, err
		}
		if outcome == Error {
			advance(StageAborted)
			return Error, guerrors.ErrStagedFiles
		}
		advance(StagePreconditionChecked)
	}

	if !op.Staging.IsZero() {
		outcome, err := r.exec.Execute(ctx, op.Staging)
		if err != nil {
			advance(StageAborted)
			return Error, err
		}
		if outcome == Error {
			advance(StageAborted)
			return Error, &guerrors.StagingStepError{Step: "git " + op.Staging.String()}
		}
		advance(StageStep1Executed)
	}

	outcome, err := r.exec.Execute(ctx, op.Terminal)
	if err != nil {
		advance(StageAborted)
		return Error, err
	}
	advance(StageStep2Executed)
	advance(StageDone)
	return outcome, nil
}
