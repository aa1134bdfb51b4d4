package cobs

// Scanner walks through a buffer of delimited COBS records.  Runs of
// consecutive delimiters are skipped, so you can separate records with more
// than one delimiter.  The last record in the buffer doesn't need a trailing
// delimiter.
//
//	var s cobs.Scanner
//	s.Reset(buf)
//	for s.Next() {
//	    n, err := s.Decode(out)
//	    ...
//	}
//
// A Scanner never copies the buffer you give it.
type Scanner struct {
	buf     []byte
	current []byte
}

// Reset prepares the scanner to walk through the records in buf.
func (s *Scanner) Reset(buf []byte) {
	s.buf = buf
	s.current = nil
}

// Next advances to the next record in the buffer.  It returns false once
// there are no records left.
func (s *Scanner) Next() bool {
	for len(s.buf) > 0 {
		end := FindDelimiter(s.buf)
		if end < 0 {
			s.current = s.buf
			s.buf = nil
			return true
		}
		record := s.buf[:end+1]
		s.buf = s.buf[end+1:]
		if end > 0 {
			s.current = record
			return true
		}
	}
	s.current = nil
	return false
}

// Encoded returns the current encoded record, including its trailing
// delimiter if it has one.  The result aliases the scanned buffer.
func (s *Scanner) Encoded() []byte {
	return s.current
}

// Decode decodes the current record into dst, which must be at least
// len(s.Encoded())-1 bytes long.
func (s *Scanner) Decode(dst []byte) (int, error) {
	return Decode(dst, s.current)
}

// DecodeInPlace decodes the current record, overwriting its encoded form in
// the scanned buffer, and returns the decoded content.  Records that you
// haven't reached yet are left intact.
func (s *Scanner) DecodeInPlace() ([]byte, error) {
	n, err := DecodeInPlace(s.current)
	if err != nil {
		return nil, err
	}
	return s.current[:n], nil
}
