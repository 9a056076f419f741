package codec

import "fmt"

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ICodec is the interface for all typed byte codecs. A codec converts a value
// of one fixed type to and from a raw byte buffer with a deterministic,
// big-endian encoding.
//
// The encoding is not self-describing: the codec used to decode must be the
// one whose type was used to encode. Decoding with a different codec whose
// byte width happens to coincide succeeds by accident and yields the
// reinterpreted bit pattern - this is an accepted contract of the byte store,
// not a bug.
type ICodec[V any] interface {
	// Encode converts a value into its byte representation.
	// It returns the encoded byte buffer and an error if any.
	Encode(v V) ([]byte, error)
	// Decode converts a byte buffer back into a value.
	// It returns the decoded value and an error if any.
	Decode(data []byte) (V, error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by all codecs. It names the type whose
// contract was violated and describes the expected versus actual shape.
type Error struct {
	Type string // The codec type name (e.g. "uint32")
	Msg  string // Description of the violated invariant
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("codec (%s): %s", e.Type, e.Msg)
}

// newLengthError reports a buffer whose length does not match the exact byte
// width required by a fixed-width type.
func newLengthError(typeName string, want, got int) *Error {
	return &Error{
		Type: typeName,
		Msg:  fmt.Sprintf("invalid length: expected %d bytes, got %d", want, got),
	}
}
