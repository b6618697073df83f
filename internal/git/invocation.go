// Package git turns git-util verbs into git invocations.
//
// An Invocation describes one git subcommand call. The Executor assembles it
// into an argument vector, applies color forcing and dry-run handling from an
// ExecContext, and runs it. The Guard and CompositeRunner build multi-step
// verbs on top of the Executor.
package git

import (
	"slices"
	"strings"
)

// Invocation is an immutable description of a single git subcommand call.
// The zero value is an empty invocation that IsZero reports.
type Invocation struct {
	subcommand  string
	defaultArgs []string
	userArgs    []string
}

// NewInvocation returns an invocation of subcommand with no arguments.
func NewInvocation(subcommand string) Invocation {
	return Invocation{subcommand: subcommand}
}

// WithDefaultArgs returns a copy of i whose default arguments are args.
func (i Invocation) WithDefaultArgs(args ...string) Invocation {
	i.defaultArgs = slices.Clone(args)
	return i
}

// WithUserArgs returns a copy of i whose user arguments are args.
func (i Invocation) WithUserArgs(args ...string) Invocation {
	i.userArgs = slices.Clone(args)
	return i
}

// Subcommand returns the git subcommand.
func (i Invocation) Subcommand() string {
	return i.subcommand
}

// DefaultArgs returns a copy of the preset arguments.
func (i Invocation) DefaultArgs() []string {
	return slices.Clone(i.defaultArgs)
}

// UserArgs returns a copy of the caller-supplied arguments.
func (i Invocation) UserArgs() []string {
	return slices.Clone(i.userArgs)
}

// IsZero reports whether i has no subcommand.
func (i Invocation) IsZero() bool {
	return i.subcommand == ""
}

// Args returns the subcommand followed by the default arguments and then the
// user arguments, in that order and without deduplication.
func (i Invocation) Args() []string {
	args := make([]string, 0, 1+len(i.defaultArgs)+len(i.userArgs))
	args = append(args, i.subcommand)
	args = append(args, i.defaultArgs...)
	return append(args, i.userArgs...)
}

// String returns the invocation's arguments joined by spaces, for logs.
func (i Invocation) String() string {
	return strings.Join(i.Args(), " ")
}
