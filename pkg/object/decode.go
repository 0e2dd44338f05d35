package object

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// DecodeCommit parses a commit body's line-oriented text:
//
//	tree H
//	parent H     (zero, one, or two, in order)
//	author N <E> epoch ±HHMM
//	committer N <E> epoch ±HHMM
//
//	message
//
// Unrecognized header lines (gpgsig, encoding, ...) are skipped.
func DecodeCommit(body []byte) (*Commit, error) {
	lines := strings.Split(string(body), "\n")

	c := &Commit{}
	var haveAuthor, haveCommitter bool

	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			i++
			break
		}
		key, val, _ := strings.Cut(line, " ")
		switch key {
		case "tree":
			c.TreeID = ObjectID(val)
		case "parent":
			c.ParentIDs = append(c.ParentIDs, ObjectID(val))
		case "author":
			stamp, err := parsePerson(line)
			if err != nil {
				return nil, fmt.Errorf("decode commit: author: %w", err)
			}
			c.Author = stamp
			haveAuthor = true
		case "committer":
			stamp, err := parsePerson(line)
			if err != nil {
				return nil, fmt.Errorf("decode commit: committer: %w", err)
			}
			c.Committer = stamp
			haveCommitter = true
		}
	}

	if c.TreeID == "" {
		return nil, fmt.Errorf("decode commit: %w: missing tree line", ErrMalformedObject)
	}
	if !haveAuthor {
		return nil, fmt.Errorf("decode commit: %w: missing author line", ErrMalformedObject)
	}
	if !haveCommitter {
		return nil, fmt.Errorf("decode commit: %w: missing committer line", ErrMalformedObject)
	}

	if i < len(lines) {
		c.Message = strings.Join(lines[i:], "\n")
	}
	return c, nil
}

// parsePerson parses "author|committer <name> <email> <epoch> <±HHMM>".
// The name may contain spaces, so the fixed fields are taken from the
// right. The email arrives wrapped in angle brackets; both are
// stripped.
func parsePerson(line string) (PersonStamp, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return PersonStamp{}, fmt.Errorf("%w: want at least 5 fields in %q, got %d", ErrMalformedObject, line, len(fields))
	}

	offset, err := parseOffset(fields[len(fields)-1])
	if err != nil {
		return PersonStamp{}, err
	}
	epoch, err := strconv.ParseInt(fields[len(fields)-2], 10, 64)
	if err != nil {
		return PersonStamp{}, fmt.Errorf("%w: bad epoch %q: %v", ErrMalformedObject, fields[len(fields)-2], err)
	}

	email := fields[len(fields)-3]
	email = strings.TrimPrefix(email, "<")
	email = strings.TrimSuffix(email, ">")

	return PersonStamp{
		Name:          strings.Join(fields[1:len(fields)-3], " "),
		Email:         email,
		Unix:          epoch,
		OffsetMinutes: offset,
	}, nil
}

// parseOffset converts a "±HHMM" zone token into signed minutes. The
// four tail characters must be digits; strconv would also accept an
// inner sign, which is not a valid zone.
func parseOffset(token string) (int, error) {
	if len(token) != 5 || (token[0] != '+' && token[0] != '-') {
		return 0, fmt.Errorf("%w: bad zone offset %q", ErrMalformedObject, token)
	}
	for i := 1; i < 5; i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, fmt.Errorf("%w: bad zone offset %q", ErrMalformedObject, token)
		}
	}
	hours := int(token[1]-'0')*10 + int(token[2]-'0')
	minutes := int(token[3]-'0')*10 + int(token[4]-'0')
	total := hours*60 + minutes
	if token[0] == '-' {
		total = -total
	}
	return total, nil
}

// DecodeTree parses a tree body's packed binary records:
//
//	<mode> SP <name> NUL <20-byte id>
//
// Entries come back in on-disk order; no sorting happens here. A
// truncated trailing record is dropped rather than reported, matching
// the behavior of the store this models.
func DecodeTree(body []byte) []TreeEntry {
	var entries []TreeEntry
	cursor := 0
	for cursor < len(body) {
		sp := indexFrom(body, cursor, ' ')
		if sp < 0 {
			break
		}
		nul := indexFrom(body, sp+1, 0)
		if nul < 0 {
			break
		}
		if len(body)-(nul+1) < 20 {
			break
		}
		entries = append(entries, TreeEntry{
			Mode: string(body[cursor:sp]),
			Name: string(body[sp+1 : nul]),
			ID:   ObjectID(hex.EncodeToString(body[nul+1 : nul+21])),
		})
		cursor = nul + 21
	}
	return entries
}

// indexFrom returns the absolute index of the first occurrence of c at
// or after from, or -1 if the buffer is exhausted first.
func indexFrom(buf []byte, from int, c byte) int {
	if from >= len(buf) {
		return -1
	}
	i := bytes.IndexByte(buf[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}
