// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  COBS rewrites an arbitrary byte sequence into one that
// contains no zero bytes, at a cost of at most one byte per 254 bytes of input
// (and at least one byte overall).  A zero byte can then be used to delimit
// encoded records on a byte stream.
//
// The core functions (MaxEncodedLen, Encode, Decode and DecodeInPlace) never
// allocate: you provide every buffer.  Size the encoding buffer with
// MaxEncodedLen; a decoding buffer one byte shorter than the encoded input is
// always large enough.
//
// Decoding does not validate its input.  A corrupted stream never causes an
// out-of-bounds access, but it can decode to the wrong bytes.  If you need
// integrity checking, add a checksum to your payload.
package cobs
