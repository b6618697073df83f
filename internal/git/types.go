package git

// StatusCode is one of the two status letters of a porcelain status line.
type StatusCode byte

// Status codes reported by `git status --porcelain`.
const (
	StatusUnchanged   StatusCode = ' '
	StatusModified    StatusCode = 'M'
	StatusTypeChanged StatusCode = 'T'
	StatusAdded       StatusCode = 'A'
	StatusDeleted     StatusCode = 'D'
	StatusRenamed     StatusCode = 'R'
	StatusCopied      StatusCode = 'C'
	StatusUnmerged    StatusCode = 'U'
	StatusUntracked   StatusCode = '?'
)

// IsContent reports whether c describes a change, as opposed to "unchanged"
// or a code this package does not know.
func (c StatusCode) IsContent() bool {
	switch c {
	case StatusModified, StatusTypeChanged, StatusAdded, StatusDeleted,
		StatusRenamed, StatusCopied, StatusUnmerged, StatusUntracked:
		return true
	default:
		return false
	}
}

// StatusEntry is one parsed line of porcelain status output.
type StatusEntry struct {
	Index    StatusCode // X: state of the index
	Worktree StatusCode // Y: state of the working tree
	Path     string     // Path relative to the repository root
	OrigPath string     // For renames and copies, the source path
}

// EntryState classifies a StatusEntry for the unstaged-changes check.
type EntryState int

const (
	// EntryStaged means the change is fully staged and the worktree matches the index.
	EntryStaged EntryState = iota
	// EntryDirty means the worktree differs from the index.
	EntryDirty
)

// String returns a human-readable name for the state.
func (s EntryState) String() string {
	switch s {
	case EntryStaged:
		return "staged"
	case EntryDirty:
		return "dirty"
	default:
		return "unknown"
	}
}
