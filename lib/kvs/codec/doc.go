// Package codec provides deterministic, bidirectional conversion between a
// fixed catalog of value types and raw byte buffers, letting typed values
// cross the byte-oriented storage boundary of the kvs backends safely.
//
// The package focuses on:
//   - A single generic interface (ICodec) shared by every value type
//   - Exact, reproducible byte layouts for interoperability
//   - Decode errors that name the violated invariant (expected vs. actual
//     length, encoding validity)
//
// Encoding Rules:
//
//   - Bool: exactly one byte, 0x00 for false and 0x01 for true. Any other
//     byte or buffer length is a decode error.
//
//   - Rune: the UTF-8 encoding of one Unicode scalar value (1-4 bytes).
//     Decoding requires the buffer to contain exactly one scalar value.
//
//   - Integers (Int8..Int64, Int, Uint8..Uint64, Uint, Uintptr, plus the
//     Int128/Uint128 value types): big-endian two's complement at the type's
//     exact byte width. Decoding a buffer of any other length fails - no
//     zero-padding, no truncation.
//
//   - Floats (Float32, Float64): the big-endian IEEE-754 bit pattern of
//     matching width. NaN payloads round-trip bit-exactly.
//
//   - String: the raw UTF-8 bytes with no length prefix; the backend's own
//     key/value boundary supplies the length. Both directions validate UTF-8.
//
//   - Bytes / FixedBytes(n): identity encoding. FixedBytes additionally
//     enforces the exact length in both directions.
//
// No Type Tagging:
//
//	The encoding carries no type information. Decoding bytes with a codec
//	other than the one that produced them either fails on a length or
//	validity check or, if the widths coincide, silently reinterprets the bit
//	pattern. The store is a byte store; the codec is a typed convenience
//	layer, not a self-describing format.
//
// Thread Safety:
//
//	All codecs are stateless and safe for concurrent use.
package codec
