package object

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Store is a read-only view over a Git object directory with the
// 2-character fan-out layout: objects/ab/cdef0123...
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory (the one
// containing objects/, typically .git).
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a given id.
func (s *Store) objectPath(id ObjectID) string {
	return filepath.Join(s.root, "objects", string(id[:2]), string(id[2:]))
}

// Has reports whether the store contains an object with the given id.
func (s *Store) Has(id ObjectID) bool {
	_, err := os.Stat(s.objectPath(id))
	return err == nil
}

// Read loads the object named by id: it reads the compressed file,
// inflates it, and splits the "type size\0body" envelope. Every call
// re-reads and re-inflates; objects are immutable, so repeated reads
// within one traversal are merely redundant, not wrong.
func (s *Store) Read(id ObjectID) (*DecodedObject, error) {
	raw, err := os.ReadFile(s.objectPath(id))
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w: %v", id, ErrObjectNotFound, err)
	}

	inflated, err := inflate(raw)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w: %v", id, ErrCorruptObject, err)
	}
	if len(inflated) == 0 {
		return nil, fmt.Errorf("read object %s: %w: empty after decompression", id, ErrCorruptObject)
	}

	kind, body, err := splitHeader(inflated)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", id, err)
	}
	return &DecodedObject{Kind: kind, Body: body}, nil
}

// inflate decompresses a zlib-framed loose object. io.ReadAll grows
// the output buffer as needed, so oversized objects are never
// silently truncated.
func inflate(raw []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// splitHeader separates an inflated object into its kind and body.
// The header is everything before the first NUL, of the form
// "<type> <size>". The size is advisory and not re-validated against
// the actual body length.
func splitHeader(data []byte) (Kind, []byte, error) {
	nul := bytes.IndexByte(data, 0)
	if nul < 0 {
		return "", nil, fmt.Errorf("%w: no NUL after header", ErrMalformedObject)
	}
	header := string(data[:nul])
	body := data[nul+1:]

	typ, _, _ := strings.Cut(header, " ")
	switch kind := Kind(strings.ToLower(typ)); kind {
	case KindCommit, KindTree, KindBlob:
		return kind, body, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown type %q", ErrMalformedObject, typ)
	}
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// ReadCommit reads and decodes a commit object.
func (s *Store) ReadCommit(id ObjectID) (*Commit, error) {
	obj, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindCommit {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", id, obj.Kind, KindCommit)
	}
	return DecodeCommit(obj.Body)
}

// ReadTree reads and decodes a tree object.
func (s *Store) ReadTree(id ObjectID) ([]TreeEntry, error) {
	obj, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindTree {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", id, obj.Kind, KindTree)
	}
	return DecodeTree(obj.Body), nil
}

// ReadBlob reads a blob object and returns its raw content.
func (s *Store) ReadBlob(id ObjectID) ([]byte, error) {
	obj, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if obj.Kind != KindBlob {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", id, obj.Kind, KindBlob)
	}
	return obj.Body, nil
}
