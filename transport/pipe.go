package transport

import "io"

// RWTransport adapts any io.Reader+io.Writer pair (e.g. net.Pipe, or two
// ends of an in-memory buffer) to the Transport interface. This module's
// own unit tests use it over in-memory bytes.Buffer values.
type RWTransport struct {
	R io.Reader
	W io.Writer
}

// NewRWTransport wraps r and w as a single Transport.
func NewRWTransport(r io.Reader, w io.Writer) *RWTransport {
	return &RWTransport{R: r, W: w}
}

func (t *RWTransport) ReadExact(dst []byte) error { return ReadExact(t.R, dst) }
func (t *RWTransport) WriteAll(src []byte) error  { return WriteAll(t.W, src) }

// ReadableNonblocking is conservative: plain io.Reader exposes no portable
// non-blocking peek.
func (t *RWTransport) ReadableNonblocking() bool { return false }
