package repo

import (
	"fmt"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// LogEntry is one rendered step of a history walk. Merged marks the
// second parent of a merge commit, disclosed once and not expanded.
type LogEntry struct {
	ID     object.ObjectID
	Commit *object.Commit
	Merged bool
}

// Log walks the commit history from start, following first-parent
// links, and returns up to limit mainline commits (limit <= 0 means
// unbounded). Each mainline step emits one entry; when a step is a
// merge commit, its second parent is additionally emitted right after
// it with Merged set — that parent's own ancestry is not walked, so
// the result is first-parent history with one-level merge disclosure,
// not a full topological traversal.
//
// Any load or decode failure aborts the walk with that error; there is
// no partial-result recovery.
func (r *Repo) Log(start object.ObjectID, limit int) ([]LogEntry, error) {
	var entries []LogEntry
	mainline := 0
	current := start

	for limit <= 0 || mainline < limit {
		c, err := r.Store.ReadCommit(current)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		entries = append(entries, LogEntry{ID: current, Commit: c})
		mainline++

		if len(c.ParentIDs) == 2 {
			mergedID := c.ParentIDs[1]
			merged, err := r.Store.ReadCommit(mergedID)
			if err != nil {
				return nil, fmt.Errorf("log: merged parent of %s: %w", current, err)
			}
			entries = append(entries, LogEntry{ID: mergedID, Commit: merged, Merged: true})
		}

		if len(c.ParentIDs) == 0 {
			break
		}
		current = c.ParentIDs[0]
	}

	return entries, nil
}
