// Package repo reconstructs branch, history, and file-tree views over
// a Git object directory by following hash references between decoded
// objects. Everything here is read-only: no ref is written, no object
// is created, and no lock is taken.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// Repo is an opened repository.
type Repo struct {
	RootDir string        // working directory root
	GitDir  string        // .git/ directory
	Store   *object.Store // loose object reader
}

// Open searches upward from path for a .git/ directory and opens the
// repository. Returns an error if none is found.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		gitDir := filepath.Join(cur, ".git")
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			return &Repo{
				RootDir: cur,
				GitDir:  gitDir,
				Store:   object.NewStore(gitDir),
			}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open: not a git repository (or any parent up to /)")
		}
		cur = parent
	}
}
