// Package refs turns branch names into issue-tracker reference trailers.
//
// It holds the pure part of the redmine-ref hook: extracting candidate IDs
// from a branch name and deciding which trailer values to append. Nothing
// in this package performs I/O.
package refs

import "regexp"

// digitRun matches maximal runs of ASCII decimal digits.
var digitRun = regexp.MustCompile(`[0-9]+`)

// Bounds restricts which digit runs count as candidate IDs.
type Bounds struct {
	// MinLength is the shortest accepted run, inclusive.
	MinLength int
	// MaxLength is the longest accepted run, inclusive.
	MaxLength int
	// MaxCount caps the number of IDs returned.
	MaxCount int
}

// ExtractIDs scans the branch name left to right and returns the digit runs
// whose length lies within the bounds, in order of appearance, keeping at
// most MaxCount of them.
func ExtractIDs(branch string, b Bounds) []string {
	if b.MaxCount <= 0 {
		return nil
	}

	var ids []string
	for _, run := range digitRun.FindAllString(branch, -1) {
		if len(run) < b.MinLength || len(run) > b.MaxLength {
			continue
		}
		ids = append(ids, run)
		if len(ids) == b.MaxCount {
			break
		}
	}
	return ids
}
