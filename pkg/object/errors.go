package object

import "errors"

// Failure kinds surfaced by the store and decoders. Callers pick a
// user-facing message with errors.Is; every returned error wraps
// exactly one of these.
var (
	// ErrObjectNotFound: the resolved path for an id does not exist or
	// cannot be opened.
	ErrObjectNotFound = errors.New("object not found")

	// ErrCorruptObject: decompression failed or produced no output.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrMalformedObject: decompressed bytes do not match the expected
	// header/body shape for the declared type.
	ErrMalformedObject = errors.New("malformed object")
)
