package object

import "fmt"

// ObjectID is a 40-character lowercase hex digest naming a loose object.
type ObjectID string

// Kind identifies the kind of object stored.
type Kind string

const (
	KindCommit Kind = "commit"
	KindTree   Kind = "tree"
	KindBlob   Kind = "blob"
)

const (
	// Tree mode tokens as Git stores them. Any mode other than
	// TreeModeDir refers to a blob.
	TreeModeDir        = "40000"
	TreeModeFile       = "100644"
	TreeModeExecutable = "100755"
)

// ParseID validates a user-supplied object id. The decode paths trust
// their callers; this is the boundary check for ids arriving from the
// command line.
func ParseID(s string) (ObjectID, error) {
	if len(s) != 40 {
		return "", fmt.Errorf("object id %q: want 40 hex characters, got %d", s, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("object id %q: invalid character %q at offset %d", s, c, i)
		}
	}
	return ObjectID(s), nil
}

// Short returns the first n characters of the id for compact display.
func (id ObjectID) Short(n int) string {
	if n <= 0 || n >= len(id) {
		return string(id)
	}
	return string(id[:n])
}

// DecodedObject is a decompressed object payload with the header
// already stripped. It is produced per Store.Read call and consumed
// immediately by the matching decoder; nothing caches it.
type DecodedObject struct {
	Kind Kind
	Body []byte
}

// PersonStamp is one author or committer record. OffsetMinutes carries
// the UTC offset recorded in the object, independent of the host's
// local zone.
type PersonStamp struct {
	Name          string
	Email         string
	Unix          int64
	OffsetMinutes int
}

// Commit is the decoded form of a commit object. ParentIDs order is
// significant: index 0 is the mainline parent, index 1 (if present)
// the merged-in parent.
type Commit struct {
	TreeID    ObjectID
	ParentIDs []ObjectID
	Author    PersonStamp
	Committer PersonStamp
	Message   string
}

// TreeEntry is one record of a tree object, in on-disk order.
type TreeEntry struct {
	Mode string
	ID   ObjectID
	Name string
}

// IsDir reports whether the entry names a subtree.
func (e TreeEntry) IsDir() bool {
	return e.Mode == TreeModeDir
}
