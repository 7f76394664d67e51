package stream

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// chunkedReader returns at most n bytes per Read call.
type chunkedReader struct {
	r io.Reader
	n int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

func TestFromReader(t *testing.T) {
	const text = "streamed answer text"

	for _, chunkSize := range []int{1, 3, 4096} {
		s := FromReader(&chunkedReader{r: strings.NewReader(text), n: chunkSize})

		var rebuilt strings.Builder
		for s.Next() {
			rebuilt.WriteString(s.Current())
		}

		if err := s.Err(); err != nil {
			t.Fatalf("chunk size %d: unexpected error: %v", chunkSize, err)
		}
		if rebuilt.String() != text {
			t.Errorf("chunk size %d: got %q, want %q", chunkSize, rebuilt.String(), text)
		}
	}
}

func TestFromReader_Empty(t *testing.T) {
	s := FromReader(strings.NewReader(""))

	if s.Next() {
		t.Error("expected no fragments from empty reader")
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type failingReader struct {
	data []byte
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.done {
		f.done = true
		return copy(p, f.data), nil
	}
	return 0, errors.New("connection reset")
}

func TestFromReader_TransportError(t *testing.T) {
	s := FromReader(&failingReader{data: []byte("partial")})

	var rebuilt strings.Builder
	for s.Next() {
		rebuilt.WriteString(s.Current())
	}

	if rebuilt.String() != "partial" {
		t.Errorf("got %q before failure", rebuilt.String())
	}
	if s.Err() == nil {
		t.Error("expected transport error")
	}
}
