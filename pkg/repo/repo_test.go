package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// Fixture ids. No hash recomputation happens anywhere, so the tests
// pick ids that are easy to read in failure output.
const (
	fixCommitA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	fixCommitB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	fixCommitC = "cccccccccccccccccccccccccccccccccccccccc"
	fixCommitD = "dddddddddddddddddddddddddddddddddddddddd"
	fixTree1   = "1111111111111111111111111111111111111111"
	fixTree2   = "2222222222222222222222222222222222222222"
	fixBlob1   = "3333333333333333333333333333333333333333"
	fixBlob2   = "4444444444444444444444444444444444444444"
)

// newFixtureRepo creates a directory with an empty .git skeleton and
// opens it.
func newFixtureRepo(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()
	for _, d := range []string{
		filepath.Join(dir, ".git", "objects"),
		filepath.Join(dir, ".git", "refs", "heads"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", d, err)
		}
	}
	writeHead(t, dir, "ref: refs/heads/main")

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r
}

func writeHead(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte(content+"\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func writeRef(t *testing.T, r *Repo, branch string, id object.ObjectID) {
	t.Helper()
	path := filepath.Join(r.GitDir, "refs", "heads", branch)
	if err := os.WriteFile(path, []byte(string(id)+"\n"), 0o644); err != nil {
		t.Fatalf("write ref %q: %v", branch, err)
	}
}

// putObject zlib-compresses a "<type> <size>\0<body>" envelope into
// the fixture store.
func putObject(t *testing.T, r *Repo, id object.ObjectID, typ object.Kind, body []byte) {
	t.Helper()

	envelope := fmt.Sprintf("%s %d\x00", typ, len(body))
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(append([]byte(envelope), body...)); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	dir := filepath.Join(r.GitDir, "objects", string(id[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, string(id[2:])), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// putCommit stores a synthetic commit object under id.
func putCommit(t *testing.T, r *Repo, id, tree object.ObjectID, parents []object.ObjectID, message string) {
	t.Helper()

	var b bytes.Buffer
	fmt.Fprintf(&b, "tree %s\n", tree)
	for _, p := range parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "author Tester <tester@example.com> 1700000000 +0000\n")
	fmt.Fprintf(&b, "committer Tester <tester@example.com> 1700000000 +0000\n")
	fmt.Fprintf(&b, "\n%s", message)
	putObject(t, r, id, object.KindCommit, b.Bytes())
}

// putTree stores a binary tree object with the given records, in order.
func putTree(t *testing.T, r *Repo, id object.ObjectID, entries []object.TreeEntry) {
	t.Helper()

	var b bytes.Buffer
	for _, e := range entries {
		b.WriteString(e.Mode + " " + e.Name)
		b.WriteByte(0)
		raw := make([]byte, 20)
		for i := 0; i < 20; i++ {
			hi := hexNibble(t, e.ID[2*i])
			lo := hexNibble(t, e.ID[2*i+1])
			raw[i] = hi<<4 | lo
		}
		b.Write(raw)
	}
	putObject(t, r, id, object.KindTree, b.Bytes())
}

func hexNibble(t *testing.T, c byte) byte {
	t.Helper()
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	t.Fatalf("bad hex digit %q in fixture id", c)
	return 0
}

func TestOpenFindsGitDirUpward(t *testing.T) {
	r := newFixtureRepo(t)

	nested := filepath.Join(r.RootDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	fromNested, err := Open(nested)
	if err != nil {
		t.Fatalf("Open from nested dir: %v", err)
	}
	if fromNested.GitDir != r.GitDir {
		t.Errorf("GitDir: got %q, want %q", fromNested.GitDir, r.GitDir)
	}
}

func TestOpenOutsideRepository(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("Open outside a repository should fail")
	}
}

func TestHeadAndCurrentBranch(t *testing.T) {
	r := newFixtureRepo(t)

	head, err := r.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if head != "refs/heads/main" {
		t.Errorf("Head: got %q", head)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "main" {
		t.Errorf("CurrentBranch: got %q, want main", branch)
	}
}

func TestHeadDetached(t *testing.T) {
	r := newFixtureRepo(t)
	writeHead(t, r.RootDir, fixCommitA)

	head, err := r.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	if head != fixCommitA {
		t.Errorf("detached Head: got %q", head)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "" {
		t.Errorf("CurrentBranch on detached HEAD: got %q, want empty", branch)
	}

	id, err := r.ResolveRef("HEAD")
	if err != nil {
		t.Fatalf("ResolveRef(HEAD): %v", err)
	}
	if id != fixCommitA {
		t.Errorf("ResolveRef(HEAD): got %s", id)
	}
}

func TestResolveRefShortName(t *testing.T) {
	r := newFixtureRepo(t)
	writeRef(t, r, "feature", fixCommitB)

	id, err := r.ResolveRef("feature")
	if err != nil {
		t.Fatalf("ResolveRef: %v", err)
	}
	if id != fixCommitB {
		t.Errorf("ResolveRef: got %s, want %s", id, fixCommitB)
	}

	if _, err := r.ResolveRef("missing"); err == nil {
		t.Error("ResolveRef on missing branch should fail")
	}
}

func TestResolveRefInvalidContent(t *testing.T) {
	r := newFixtureRepo(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "single char", content: "a"},
		{name: "truncated id", content: fixCommitA[:17]},
		{name: "not hex", content: strings.Repeat("z", 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(r.GitDir, "refs", "heads", "broken")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			if _, err := r.ResolveRef("broken"); err == nil {
				t.Fatalf("ResolveRef with content %q: expected error", tc.content)
			}
		})
	}
}

func TestLogFromEmptyRefFails(t *testing.T) {
	r := newFixtureRepo(t)

	path := filepath.Join(r.GitDir, "refs", "heads", "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// The bad content must be rejected during resolution; it must
	// never reach the store's path derivation.
	id, err := r.ResolveRef("empty")
	if err == nil {
		t.Fatalf("ResolveRef on empty ref: expected error, got id %q", id)
	}
}

func TestResolveRefDetachedHeadInvalid(t *testing.T) {
	r := newFixtureRepo(t)
	writeHead(t, r.RootDir, "not-a-hash")

	if _, err := r.ResolveRef("HEAD"); err == nil {
		t.Fatal("ResolveRef on malformed detached HEAD: expected error")
	}
}

func TestListBranches(t *testing.T) {
	r := newFixtureRepo(t)
	writeRef(t, r, "main", fixCommitA)
	writeRef(t, r, "zeta", fixCommitB)
	writeRef(t, r, "alpha", fixCommitC)

	branches, err := r.ListBranches()
	if err != nil {
		t.Fatalf("ListBranches: %v", err)
	}

	want := []Branch{
		{Name: "alpha", Head: fixCommitC},
		{Name: "main", Head: fixCommitA, Current: true},
		{Name: "zeta", Head: fixCommitB},
	}
	if len(branches) != len(want) {
		t.Fatalf("ListBranches: got %d branches, want %d", len(branches), len(want))
	}
	for i := range want {
		if branches[i] != want[i] {
			t.Errorf("branch[%d]: got %+v, want %+v", i, branches[i], want[i])
		}
	}
}

func TestListBranchesEmpty(t *testing.T) {
	r := newFixtureRepo(t)
	branches, err := r.ListBranches()
	if err != nil {
		t.Fatalf("ListBranches: %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("expected no branches, got %+v", branches)
	}
}
