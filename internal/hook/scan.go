package hook

import (
	"bufio"
	"bytes"
	"strings"

	"golang.org/x/text/cases"

	guerrors "github.com/mrz1836/git-util/internal/errors"
)

// maxDiffLine bounds a single scanned diff line.
const maxDiffLine = 16 * 1024 * 1024

// FindDisallowed scans the added lines of a unified diff and returns the
// first one that contains any of substrings, ignoring case. Matching is
// literal. File headers such as "+++ b/path" are not additions and are skipped.
func FindDisallowed(diff []byte, substrings []string) (string, bool, error) {
	fold := cases.Fold()
	needles := make([]string, 0, len(substrings))
	for _, s := range substrings {
		if s != "" {
			needles = append(needles, fold.String(s))
		}
	}
	if len(needles) == 0 {
		return "", false, nil
	}

	found := ""
	err := forEachAddedLine(diff, func(line string) bool {
		folded := fold.String(line[1:])
		for _, n := range needles {
			if strings.Contains(folded, n) {
				found = line
				return false
			}
		}
		return true
	})
	if err != nil {
		return "", false, guerrors.Wrap(err, "scan staged diff")
	}
	return found, found != "", nil
}

// forEachAddedLine calls fn with every "+" line inside a hunk until fn returns false.
func forEachAddedLine(diff []byte, fn func(line string) bool) error {
	sc := bufio.NewScanner(bytes.NewReader(diff))
	sc.Buffer(make([]byte, 0, 64*1024), maxDiffLine)

	inHunk := false
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "diff "):
			inHunk = false
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case inHunk && strings.HasPrefix(line, "+"):
			if !fn(line) {
				return nil
			}
		}
	}
	return sc.Err()
}
