package codec

import "encoding/binary"

// --------------------------------------------------------------------------
// 128-Bit Integers
// --------------------------------------------------------------------------

// Go has no native 128-bit integer types, so the codec provides value types
// holding the two 64-bit halves. The byte layout matches the other integer
// codecs: 16 bytes, big-endian two's complement.

// Uint128 is an unsigned 128-bit integer composed of two 64-bit halves.
type Uint128 struct {
	Hi uint64 // most significant 64 bits
	Lo uint64 // least significant 64 bits
}

// Int128 is a signed 128-bit integer in two's complement representation.
// The sign lives in the high half.
type Int128 struct {
	Hi int64  // most significant 64 bits, carries the sign
	Lo uint64 // least significant 64 bits
}

var (
	// Uint128C encodes Uint128 values as 16 big-endian bytes.
	Uint128C ICodec[Uint128] = uint128Codec{}
	// Int128C encodes Int128 values as 16 big-endian two's complement bytes.
	Int128C ICodec[Int128] = int128Codec{}
)

type uint128Codec struct{}

func (uint128Codec) Encode(v Uint128) ([]byte, error) {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], v.Hi)
	binary.BigEndian.PutUint64(buf[8:16], v.Lo)
	return buf, nil
}

func (uint128Codec) Decode(data []byte) (Uint128, error) {
	if len(data) != 16 {
		return Uint128{}, newLengthError("uint128", 16, len(data))
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(data[0:8]),
		Lo: binary.BigEndian.Uint64(data[8:16]),
	}, nil
}

type int128Codec struct{}

func (int128Codec) Encode(v Int128) ([]byte, error) {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], uint64(v.Hi))
	binary.BigEndian.PutUint64(buf[8:16], v.Lo)
	return buf, nil
}

func (int128Codec) Decode(data []byte) (Int128, error) {
	if len(data) != 16 {
		return Int128{}, newLengthError("int128", 16, len(data))
	}
	return Int128{
		Hi: int64(binary.BigEndian.Uint64(data[0:8])),
		Lo: binary.BigEndian.Uint64(data[8:16]),
	}, nil
}
