package cobs

import (
	"bytes"
	"errors"
	"slices"
)

// Delimiter is the byte value that never appears inside an encoded record.
// Use it to separate records on a byte stream.
const Delimiter = 0x00

// maxRun is the longest run of literal bytes that a single code byte can
// describe.
const maxRun = 0xfe
const maxCode = maxRun + 1

var (
	// ErrInsufficientBuffer is returned when the output buffer that you
	// provide is too small to hold the worst-case result.  Nothing is written
	// to the buffer in this case.
	ErrInsufficientBuffer = errors.New("cobs: output buffer too small")

	// ErrShortFrame is returned when decoding an encoded record that is
	// shorter than two bytes.  Apart from ErrInsufficientBuffer, this is the
	// only error that Encode and Decode can return.
	ErrShortFrame = errors.New("cobs: encoded frame shorter than two bytes")
)

// MaxEncodedLen returns the largest number of bytes that Encode can produce
// for an input of n bytes.  Encoding always adds at least one byte, and at
// most one byte for every 254 bytes (or part thereof) of input.  If delimited
// is true, the result includes room for the trailing delimiter.
func MaxEncodedLen(n int, delimited bool) int {
	size := n + (n+maxRun-1)/maxRun
	if n == 0 {
		size = 1
	}
	if delimited {
		size++
	}
	return size
}

// Encode writes the COBS encoding of src into dst, and returns the number of
// bytes written.  If delimited is true, we append a trailing delimiter after
// the encoded data.  dst must be at least MaxEncodedLen(len(src), delimited)
// bytes long, even if the actual encoding would be shorter; otherwise we
// return ErrInsufficientBuffer without touching dst.
func Encode(dst, src []byte, delimited bool) (int, error) {
	if len(dst) < MaxEncodedLen(len(src), delimited) {
		return 0, ErrInsufficientBuffer
	}

	codeIndex := 0
	written := 1
	code := byte(1)
	finishBlock := func() {
		dst[codeIndex] = code
		codeIndex = written
		written++
		code = 1
	}

	for i, c := range src {
		if c == Delimiter {
			finishBlock()
			continue
		}
		dst[written] = c
		written++
		code++
		// A full run that ends the input is closed below, with no empty
		// block after it.
		if code == maxCode && i < len(src)-1 {
			finishBlock()
		}
	}
	dst[codeIndex] = code

	if delimited {
		dst[written] = Delimiter
		written++
	}
	return written, nil
}

// Decode writes the decoding of an encoded record into dst, and returns the
// number of bytes written.  The record ends at the first delimiter in src, or
// at the end of src if it doesn't contain one.  dst must be at least
// len(src)-1 bytes long.
//
// We don't verify that src is a valid encoding.  A code byte that points past
// the end of the record is clamped, so a corrupted record can't cause an
// out-of-bounds access, but it will probably decode to the wrong bytes.
func Decode(dst, src []byte) (int, error) {
	if len(src) < 2 {
		return 0, ErrShortFrame
	}
	if len(dst) < len(src)-1 {
		return 0, ErrInsufficientBuffer
	}
	return decode(dst, src), nil
}

// DecodeInPlace decodes an encoded record, overwriting buf with the result.
// It returns the number of decoded bytes, which are stored at the start of
// buf.  Otherwise it behaves exactly like Decode.
func DecodeInPlace(buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, ErrShortFrame
	}
	return decode(buf, buf), nil
}

// decode implements Decode and DecodeInPlace.  dst and src may be the same
// slice: each block reads code bytes and writes at most code bytes, so the
// write cursor never overtakes the read cursor.  The final block writes one
// byte fewer than it reads, which is why len(dst) >= len(src)-1 is enough.
func decode(dst, src []byte) int {
	end := FindDelimiter(src)
	if end < 0 {
		end = len(src)
	}

	read, written := 0, 0
	for read < end {
		// Every byte before end is nonzero, so code >= 1.
		code := int(src[read])
		if read+code > end {
			code = end - read
		}
		read++
		written += copy(dst[written:], src[read:read+code-1])
		read += code - 1
		if read >= end {
			break
		}
		if code < maxCode {
			dst[written] = Delimiter
			written++
		}
	}
	return written
}

// AppendEncode appends the COBS encoding of src to dst and returns the
// extended slice.  We only allocate if dst doesn't have room for
// MaxEncodedLen(len(src), delimited) more bytes.
func AppendEncode(dst, src []byte, delimited bool) []byte {
	size := MaxEncodedLen(len(src), delimited)
	dst = slices.Grow(dst, size)
	start := len(dst)
	// dst has exactly MaxEncodedLen bytes of room, so Encode can't fail.
	n, _ := Encode(dst[start:start+size], src, delimited)
	return dst[:start+n]
}

// AppendDecode appends the decoding of an encoded record to dst and returns
// the extended slice.  It returns the same errors as Decode.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) < 2 {
		return dst, ErrShortFrame
	}
	size := len(src) - 1
	dst = slices.Grow(dst, size)
	start := len(dst)
	n, err := Decode(dst[start:start+size], src)
	if err != nil {
		return dst, err
	}
	return dst[:start+n], nil
}

// FindDelimiter returns the index of the first delimiter in encoded, or -1 if
// it doesn't occur.
func FindDelimiter(encoded []byte) int {
	return bytes.IndexByte(encoded, Delimiter)
}
