// Package transport provides the abstract byte-stream boundary the framing
// codec reads and writes through. It owns nothing above the byte level: no
// framing state, no buffering obligations beyond what the OS (or the
// in-memory adapter) already provides.
package transport

import (
	"io"

	"github.com/pkg/errors"
)

// Transport is any reliable, ordered byte stream. A session owns its
// transport exclusively for the duration of its lifetime; callers must not
// invoke methods on the same Transport from two goroutines concurrently.
type Transport interface {
	// ReadExact blocks until exactly len(dst) bytes have been delivered, or
	// the stream ends. Implementations must retry partial reads internally.
	ReadExact(dst []byte) error

	// WriteAll blocks until every byte of src has been accepted by the
	// stream. Implementations must retry partial writes internally.
	WriteAll(src []byte) error

	// ReadableNonblocking is a best-effort hint that a subsequent ReadExact
	// would not block. A conservative false is always an acceptable answer;
	// callers must not rely on it for correctness, only for opportunistic
	// polling.
	ReadableNonblocking() bool
}

// ReadExact is a helper that drives an io.Reader to fill dst completely,
// translating io.EOF and io.ErrUnexpectedEOF into ErrClosed and any other
// read error into ErrIO. It is exported so adapters embedding a
// plain io.Reader can implement Transport.ReadExact with one line.
func ReadExact(r io.Reader, dst []byte) error {
	_, err := io.ReadFull(r, dst)
	if err == nil {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrClosed, err.Error())
	}
	return errors.Wrap(ErrIO, err.Error())
}

// WriteAll is the write-side counterpart of ReadExact.
func WriteAll(w io.Writer, src []byte) error {
	n, err := w.Write(src)
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	if n != len(src) {
		return errors.Wrapf(ErrIO, "short write: wrote %d of %d bytes", n, len(src))
	}
	return nil
}

var (
	// ErrClosed reports that the peer closed the stream cleanly or
	// mid-message. Callers should map this to fahrpult.ErrTransportClosed.
	ErrClosed = errors.New("transport: closed")

	// ErrIO reports any other I/O failure. Callers should map this to
	// fahrpult.ErrTransportError.
	ErrIO = errors.New("transport: io error")
)
