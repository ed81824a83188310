package session

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// discardLogger is the default logger: a dedicated logrus instance with
// output discarded, so embedding applications get silence until they wire
// one in via WithLogger/WithServerLogger.
func discardLogger(component string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", component)
}

// clientConfig holds the values a ClientOption mutates. Defaults match the
// most recent values seen in the Zusi 3 TCP reference client (spec.md §9).
type clientConfig struct {
	clientID      string
	clientVersion string
	log           *logrus.Entry
	fsSubscribe   []uint16
	progSubscribe []uint16
	bedienung     bool
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		clientID:      uuid.NewString(),
		clientVersion: "2.0",
		log:           discardLogger("session.client"),
	}
}

// ClientOption configures a ClientSession at Connect time, the same
// functional-option shape the teacher uses to configure a framer.
type ClientOption func(*clientConfig)

// WithClientID sets the client-id string sent in HELLO. If not supplied, a
// random one is generated via github.com/google/uuid.
func WithClientID(id string) ClientOption {
	return func(c *clientConfig) { c.clientID = id }
}

// WithClientVersion sets the client-version string sent in HELLO. Defaults
// to "2.0".
func WithClientVersion(v string) ClientOption {
	return func(c *clientConfig) { c.clientVersion = v }
}

// WithLogger overrides the logrus entry used for handshake/runtime logging.
func WithLogger(log *logrus.Entry) ClientOption {
	return func(c *clientConfig) { c.log = log }
}

// WithFuehrerstandData subscribes to the given fuehrerstand-data ids.
func WithFuehrerstandData(ids ...uint16) ClientOption {
	return func(c *clientConfig) { c.fsSubscribe = append(c.fsSubscribe, ids...) }
}

// WithProgData subscribes to the given program-data ids.
func WithProgData(ids ...uint16) ClientOption {
	return func(c *clientConfig) { c.progSubscribe = append(c.progSubscribe, ids...) }
}

// WithBedienung requests input-event feedback (sub-node 0xB in
// NEEDED_DATA).
func WithBedienung() ClientOption {
	return func(c *clientConfig) { c.bedienung = true }
}

// serverConfig holds the values a ServerOption mutates.
type serverConfig struct {
	zusiVersion string
	connInfo    string
	log         *logrus.Entry
}

func defaultServerConfig() *serverConfig {
	return &serverConfig{
		zusiVersion: "3.1.2.0",
		connInfo:    "0",
		log:         discardLogger("session.server"),
	}
}

// ServerOption configures a ServerSession at Accept time.
type ServerOption func(*serverConfig)

// WithZusiVersion overrides the zusi-version string sent in ACK_HELLO.
// Defaults to "3.1.2.0".
func WithZusiVersion(v string) ServerOption {
	return func(c *serverConfig) { c.zusiVersion = v }
}

// WithConnectionInfo overrides the connection-info string sent in
// ACK_HELLO. Defaults to "0".
func WithConnectionInfo(v string) ServerOption {
	return func(c *serverConfig) { c.connInfo = v }
}

// WithServerLogger overrides the logrus entry used for handshake/runtime
// logging on the server side.
func WithServerLogger(log *logrus.Entry) ServerOption {
	return func(c *serverConfig) { c.log = log }
}
