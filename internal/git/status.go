package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// StatusInvariantError is the panic value raised when porcelain status output
// contains a line this package cannot classify. Treating such a line as
// either clean or dirty could let a destructive verb run against the wrong
// tree, so parsing stops instead.
type StatusInvariantError struct {
	Line   string
	Reason string
}

// Error implements the error interface.
func (e *StatusInvariantError) Error() string {
	return fmt.Sprintf("invalid porcelain status entry %q: %s", e.Line, e.Reason)
}

func invariantViolation(line, format string, args ...any) {
	panic(&StatusInvariantError{Line: line, Reason: fmt.Sprintf(format, args...)})
}

// ParsePorcelain parses `git status --porcelain` output.
// A single trailing newline is expected and ignored. Any line that is not in
// the "XY PATH" shape panics with *StatusInvariantError.
func ParsePorcelain(output string) []StatusEntry {
	if output == "" {
		return nil
	}

	lines := strings.Split(output, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	entries := make([]StatusEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseStatusLine(line))
	}
	return entries
}

func parseStatusLine(line string) StatusEntry {
	// XY PATH or XY ORIG -> PATH
	if len(line) < 4 || line[2] != ' ' {
		invariantViolation(line, "expected two status codes, a space and a path")
	}

	entry := StatusEntry{
		Index:    StatusCode(line[0]),
		Worktree: StatusCode(line[1]),
		Path:     line[3:],
	}
	if entry.Index == StatusRenamed || entry.Index == StatusCopied {
		if orig, path, ok := strings.Cut(entry.Path, " -> "); ok {
			entry.OrigPath = orig
			entry.Path = path
		}
	}
	return entry
}

// Classify reports whether e is fully staged or leaves the worktree dirty.
// A fully staged entry has a content code in the index column and a space in
// the worktree column. An entry with a space in the index column, or a
// content code in the worktree column, is dirty. Any other combination panics
// with *StatusInvariantError.
func Classify(e StatusEntry) EntryState {
	if e.Index.IsContent() && e.Worktree == StatusUnchanged {
		return EntryStaged
	}
	if e.Index == StatusUnchanged || e.Worktree.IsContent() {
		return EntryDirty
	}

	line := fmt.Sprintf("%c%c %s", e.Index, e.Worktree, e.Path)
	if !e.Index.IsContent() {
		invariantViolation(line, "invalid index status code %q", rune(e.Index))
	}
	invariantViolation(line, "invalid worktree status code %q", rune(e.Worktree))
	return EntryDirty // unreachable
}

// Guard answers the working-tree questions that composite verbs depend on.
type Guard struct {
	exec *Executor
}

// NewGuard creates a Guard that queries git through exec.
func NewGuard(exec *Executor) *Guard {
	return &Guard{exec: exec}
}

// VerifyStagingAreaIsEmpty reports Success when nothing is staged.
// Any staged path, however small, gives Error.
func (g *Guard) VerifyStagingAreaIsEmpty(ctx context.Context) (Outcome, error) {
	out, err := g.exec.Output(ctx, NewInvocation("diff").WithDefaultArgs("--staged", "--name-only"))
	if err != nil {
		return Error, err
	}

	if len(out) == 0 {
		return Success, nil
	}
	zerolog.Ctx(ctx).Debug().Int("bytes", len(out)).Msg("staging area is not empty")
	return Error, nil
}

// VerifyNoUnstagedChanges reports Success when every change in the working
// tree is already staged. Untracked files count as unstaged.
func (g *Guard) VerifyNoUnstagedChanges(ctx context.Context) (Outcome, error) {
	out, err := g.exec.Output(ctx, NewInvocation("status").WithDefaultArgs("--porcelain"))
	if err != nil {
		return Error, err
	}

	for _, entry := range ParsePorcelain(string(out)) {
		if Classify(entry) == EntryDirty {
			zerolog.Ctx(ctx).Debug().
				Str("path", entry.Path).
				Str("xy", string([]byte{byte(entry.Index), byte(entry.Worktree)})).
				Msg("unstaged change found")
			return Error, nil
		}
	}
	return Success, nil
}
