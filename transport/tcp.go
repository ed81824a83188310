package transport

import (
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultPort is the Zusi 3 Fahrpult TCP control port.
const DefaultPort = 1436

// TCPTransport adapts a net.Conn to the Transport interface.
type TCPTransport struct {
	conn net.Conn
	log  *logrus.Entry
}

// Dial connects to addr (host:port) and wraps the resulting connection. If
// addr has no port, DefaultPort is appended.
func Dial(addr string, timeout time.Duration) (*TCPTransport, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, portString())
	}
	d := net.Dialer{Timeout: timeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "dial %s: %v", addr, err)
	}
	return NewTCPTransport(conn), nil
}

// NewTCPTransport wraps an already-established net.Conn.
func NewTCPTransport(conn net.Conn) *TCPTransport {
	return &TCPTransport{
		conn: conn,
		log:  logrus.WithField("component", "transport.tcp"),
	}
}

func portString() string {
	return "1436"
}

// Conn returns the underlying net.Conn, e.g. for setting deadlines.
func (t *TCPTransport) Conn() net.Conn { return t.conn }

func (t *TCPTransport) ReadExact(dst []byte) error {
	if err := ReadExact(t.conn, dst); err != nil {
		t.log.WithField("remote", t.conn.RemoteAddr()).Debug("read failed")
		return err
	}
	return nil
}

func (t *TCPTransport) WriteAll(src []byte) error {
	if err := WriteAll(t.conn, src); err != nil {
		t.log.WithField("remote", t.conn.RemoteAddr()).Debug("write failed")
		return err
	}
	return nil
}

// ReadableNonblocking is conservative: net.Conn exposes no portable
// non-blocking peek, so this always reports false per the interface's
// documented fallback.
func (t *TCPTransport) ReadableNonblocking() bool { return false }

// Close closes the underlying connection.
func (t *TCPTransport) Close() error {
	t.log.WithField("remote", t.conn.RemoteAddr()).Debug("closing")
	return t.conn.Close()
}
