package cobs

import (
	"bytes"
)

// EncodedHasPrefix reports whether an encoded record decodes to something that
// starts with prefix.  We compare block by block against the encoded bytes,
// so you can filter records without decoding them first.  As with Decode, the
// record ends at its first delimiter.
func EncodedHasPrefix(encoded, prefix []byte) bool {
	end := FindDelimiter(encoded)
	if end < 0 {
		end = len(encoded)
	}

	read := 0
	for len(prefix) > 0 {
		if read >= end {
			return false
		}
		code := int(encoded[read])
		if read+code > end {
			code = end - read
		}
		read++
		literal := encoded[read : read+code-1]
		read += code - 1

		if len(prefix) <= len(literal) {
			return bytes.HasPrefix(literal, prefix)
		}
		if !bytes.Equal(literal, prefix[:len(literal)]) {
			return false
		}
		prefix = prefix[len(literal):]

		// The decoded record ends here.
		if read >= end {
			return false
		}
		if code < maxCode {
			if prefix[0] != Delimiter {
				return false
			}
			prefix = prefix[1:]
		}
	}
	return true
}
