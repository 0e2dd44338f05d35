package repo

import (
	"fmt"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// FlattenTree expands the tree at id into repository-relative file
// paths: depth-first, pre-order by directory, entries in the order
// the tree object stores them (not re-sorted).
//
// The object graph for trees is a DAG in a correct store, so no cycle
// detection is done; a corrupt store with a tree cycle would recurse
// without bound.
func (r *Repo) FlattenTree(id object.ObjectID) ([]string, error) {
	return r.flattenTreeRec(id, "")
}

// FlattenCommitTree expands the root tree referenced by the commit at id.
func (r *Repo) FlattenCommitTree(id object.ObjectID) ([]string, error) {
	c, err := r.Store.ReadCommit(id)
	if err != nil {
		return nil, fmt.Errorf("flatten commit tree: %w", err)
	}
	return r.FlattenTree(c.TreeID)
}

func (r *Repo) flattenTreeRec(id object.ObjectID, prefix string) ([]string, error) {
	entries, err := r.Store.ReadTree(id)
	if err != nil {
		return nil, fmt.Errorf("flatten tree: read %s: %w", id, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			sub, err := r.flattenTreeRec(entry.ID, prefix+entry.Name+"/")
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		} else {
			paths = append(paths, prefix+entry.Name)
		}
	}
	return paths, nil
}
