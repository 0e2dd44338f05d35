package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// Branch pairs a branch name with the commit its head points at.
type Branch struct {
	Name    string
	Head    object.ObjectID
	Current bool
}

// Head reads .git/HEAD. If the content starts with "ref: ", it returns
// the ref path (e.g. "refs/heads/main"). Otherwise it returns the raw
// content as a detached hash string.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")

	if strings.HasPrefix(content, "ref: ") {
		return strings.TrimPrefix(content, "ref: "), nil
	}
	return content, nil
}

// CurrentBranch returns the branch name HEAD points at, or "" when
// HEAD is detached.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}

	const prefix = "refs/heads/"
	if strings.HasPrefix(head, prefix) {
		return strings.TrimPrefix(head, prefix), nil
	}
	return "", nil
}

// ResolveRef resolves a ref name to an object id.
//
// Resolution order:
//  1. "HEAD" reads HEAD; a symbolic HEAD resolves its target ref.
//  2. Names starting with "refs/" read .git/<name>.
//  3. Anything else tries "refs/heads/<name>".
func (r *Repo) ResolveRef(name string) (object.ObjectID, error) {
	if name == "HEAD" {
		head, err := r.Head()
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(head, "refs/") {
			return r.ResolveRef(head)
		}
		// Detached HEAD: the value is a hash.
		id, err := object.ParseID(strings.TrimSpace(head))
		if err != nil {
			return "", fmt.Errorf("resolve HEAD: %w", err)
		}
		return id, nil
	}

	var refPath string
	if strings.HasPrefix(name, "refs/") {
		refPath = filepath.Join(r.GitDir, name)
	} else {
		refPath = filepath.Join(r.GitDir, "refs", "heads", name)
	}

	data, err := os.ReadFile(refPath)
	if err != nil {
		return "", fmt.Errorf("resolve ref %q: %w", name, err)
	}

	// A ref file left empty or truncated by an interrupted write must
	// surface as an error here, not as a bad id handed to the store.
	id, err := object.ParseID(strings.TrimSpace(string(data)))
	if err != nil {
		return "", fmt.Errorf("resolve ref %q: %w", name, err)
	}
	return id, nil
}

// ListBranches reads .git/refs/heads/ and returns the branches sorted
// by name, each with its head commit id. The branch HEAD points at is
// marked current.
func (r *Repo) ListBranches() ([]Branch, error) {
	headsDir := filepath.Join(r.GitDir, "refs", "heads")

	entries, err := os.ReadDir(headsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}

	current, _ := r.CurrentBranch()

	var branches []Branch
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		head, err := r.ResolveRef(e.Name())
		if err != nil {
			return nil, fmt.Errorf("list branches: %w", err)
		}
		branches = append(branches, Branch{
			Name:    e.Name(),
			Head:    head,
			Current: e.Name() == current,
		})
	}
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}
