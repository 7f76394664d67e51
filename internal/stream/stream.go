package stream

import "io"

// Stream yields completion text fragments in delivery order. Next reports
// whether another fragment is available; after Next returns false the caller
// must check Err to distinguish normal completion from a transport failure.
//
// Concatenating every fragment in order yields the full answer text.
type Stream interface {
	Next() bool
	Current() string
	Err() error
}

// FromReader adapts a byte stream (typically an HTTP response body) into a
// Stream. Fragment boundaries follow whatever the reader returns per Read
// call; consumers must not depend on them.
func FromReader(r io.Reader) Stream {
	return &readerStream{r: r, buf: make([]byte, 4096)}
}

type readerStream struct {
	r       io.Reader
	buf     []byte
	current string
	err     error
}

func (s *readerStream) Next() bool {
	if s.err != nil {
		return false
	}
	n, err := s.r.Read(s.buf)
	if err != nil && err != io.EOF {
		s.err = err
	}
	if n > 0 {
		s.current = string(s.buf[:n])
		return true
	}
	return false
}

func (s *readerStream) Current() string { return s.current }

func (s *readerStream) Err() error { return s.err }
