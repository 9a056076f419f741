package codec

import (
	"encoding/binary"
	"math"
	"reflect"
	"unicode/utf8"
)

// --------------------------------------------------------------------------
// Provided Codecs
// --------------------------------------------------------------------------

var (
	// Bool encodes to exactly one byte: 0x00 for false, 0x01 for true.
	Bool ICodec[bool] = boolCodec{}

	// Rune encodes a single Unicode scalar value as its UTF-8 bytes (1-4).
	Rune ICodec[rune] = runeCodec{}

	// String encodes to the raw UTF-8 bytes with no length prefix; the
	// backend's key/value boundary supplies the length.
	String ICodec[string] = stringCodec{}

	// Bytes passes byte sequences through unchanged.
	Bytes ICodec[[]byte] = bytesCodec{}

	// Fixed-width integers encode as big-endian two's complement at the
	// type's exact width. Int and Uint are pointer-sized.
	Int8    ICodec[int8]    = newIntCodec[int8]("int8")
	Int16   ICodec[int16]   = newIntCodec[int16]("int16")
	Int32   ICodec[int32]   = newIntCodec[int32]("int32")
	Int64   ICodec[int64]   = newIntCodec[int64]("int64")
	Int     ICodec[int]     = newIntCodec[int]("int")
	Uint8   ICodec[uint8]   = newIntCodec[uint8]("uint8")
	Uint16  ICodec[uint16]  = newIntCodec[uint16]("uint16")
	Uint32  ICodec[uint32]  = newIntCodec[uint32]("uint32")
	Uint64  ICodec[uint64]  = newIntCodec[uint64]("uint64")
	Uint    ICodec[uint]    = newIntCodec[uint]("uint")
	Uintptr ICodec[uintptr] = newIntCodec[uintptr]("uintptr")

	// IEEE-754 floats encode as the big-endian bit pattern of matching
	// width. NaN bit patterns round-trip verbatim.
	Float32 ICodec[float32] = float32Codec{}
	Float64 ICodec[float64] = float64Codec{}
)

// FixedBytes returns a codec for byte sequences of exactly size bytes.
// Encoding and decoding both fail if the length differs.
func FixedBytes(size int) ICodec[[]byte] {
	return fixedBytesCodec{size: size}
}

// --------------------------------------------------------------------------
// Boolean
// --------------------------------------------------------------------------

type boolCodec struct{}

func (boolCodec) Encode(v bool) ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (boolCodec) Decode(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, newLengthError("bool", 1, len(data))
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &Error{Type: "bool", Msg: "invalid boolean byte (must be 0x00 or 0x01)"}
	}
}

// --------------------------------------------------------------------------
// Character
// --------------------------------------------------------------------------

type runeCodec struct{}

func (runeCodec) Encode(v rune) ([]byte, error) {
	// A Go rune may hold surrogates or out-of-range values that are not
	// Unicode scalar values; reject them instead of emitting U+FFFD.
	if !utf8.ValidRune(v) {
		return nil, &Error{Type: "rune", Msg: "not a Unicode scalar value"}
	}
	return utf8.AppendRune(nil, v), nil
}

func (runeCodec) Decode(data []byte) (rune, error) {
	if len(data) == 0 {
		return 0, &Error{Type: "rune", Msg: "empty buffer"}
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		return 0, &Error{Type: "rune", Msg: "invalid UTF-8"}
	}
	if size != len(data) {
		return 0, &Error{Type: "rune", Msg: "more than one scalar value"}
	}
	return r, nil
}

// --------------------------------------------------------------------------
// String
// --------------------------------------------------------------------------

type stringCodec struct{}

func (stringCodec) Encode(v string) ([]byte, error) {
	// Go strings may hold arbitrary bytes; enforce valid UTF-8 here so
	// every stored string value stays decodable.
	if !utf8.ValidString(v) {
		return nil, &Error{Type: "string", Msg: "invalid UTF-8"}
	}
	return []byte(v), nil
}

func (stringCodec) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &Error{Type: "string", Msg: "invalid UTF-8"}
	}
	return string(data), nil
}

// --------------------------------------------------------------------------
// Byte Sequences
// --------------------------------------------------------------------------

type bytesCodec struct{}

func (bytesCodec) Encode(v []byte) ([]byte, error) {
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (bytesCodec) Decode(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

type fixedBytesCodec struct {
	size int
}

func (c fixedBytesCodec) Encode(v []byte) ([]byte, error) {
	if len(v) != c.size {
		return nil, newLengthError("fixed bytes", c.size, len(v))
	}
	out := make([]byte, c.size)
	copy(out, v)
	return out, nil
}

func (c fixedBytesCodec) Decode(data []byte) ([]byte, error) {
	if len(data) != c.size {
		return nil, newLengthError("fixed bytes", c.size, len(data))
	}
	out := make([]byte, c.size)
	copy(out, data)
	return out, nil
}

// --------------------------------------------------------------------------
// Fixed-Width Integers
// --------------------------------------------------------------------------

// integer covers every fixed-width integer type the codec supports. rune is
// an alias of int32 and therefore satisfies this constraint too; the Rune
// codec exists separately because characters encode as UTF-8, not two's
// complement.
type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type intCodec[T integer] struct {
	name string
	size int
}

func newIntCodec[T integer](name string) intCodec[T] {
	var zero T
	return intCodec[T]{name: name, size: int(reflect.TypeOf(zero).Size())}
}

func (c intCodec[T]) Encode(v T) ([]byte, error) {
	buf := make([]byte, c.size)
	// uint64(v) sign-extends negative values, so the low c.size bytes are
	// the big-endian two's complement representation at the exact width.
	u := uint64(v)
	for i := c.size - 1; i >= 0; i-- {
		buf[i] = byte(u)
		u >>= 8
	}
	return buf, nil
}

func (c intCodec[T]) Decode(data []byte) (T, error) {
	if len(data) != c.size {
		var zero T
		return zero, newLengthError(c.name, c.size, len(data))
	}
	var u uint64
	for _, b := range data {
		u = u<<8 | uint64(b)
	}
	// The conversion truncates to the type's width, which restores the
	// sign for signed types narrower than 64 bits.
	return T(u), nil
}

// --------------------------------------------------------------------------
// IEEE-754 Floats
// --------------------------------------------------------------------------

type float32Codec struct{}

func (float32Codec) Encode(v float32) ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(v))
	return buf, nil
}

func (float32Codec) Decode(data []byte) (float32, error) {
	if len(data) != 4 {
		return 0, newLengthError("float32", 4, len(data))
	}
	return math.Float32frombits(binary.BigEndian.Uint32(data)), nil
}

type float64Codec struct{}

func (float64Codec) Encode(v float64) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	return buf, nil
}

func (float64Codec) Decode(data []byte) (float64, error) {
	if len(data) != 8 {
		return 0, newLengthError("float64", 8, len(data))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
}
