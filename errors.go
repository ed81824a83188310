package fahrpult

import "errors"

var (
	// ErrTransportClosed reports that the peer closed the byte stream. The
	// session is terminal; there is no recovery.
	ErrTransportClosed = errors.New("fahrpult: transport closed")

	// ErrTransportError reports an underlying I/O failure. Terminal.
	ErrTransportError = errors.New("fahrpult: transport error")

	// ErrProtocol reports a byte-level framing impossibility: a length word
	// below 2, a missing sentinel, a wrong top-level message id, or an
	// unknown command id. Terminal; the stream position is undefined after
	// this error.
	ErrProtocol = errors.New("fahrpult: protocol error")

	// ErrSchema reports that a typed extraction asked for an attribute whose
	// declared width does not match the bytes present, or that a required
	// attribute of a composite node is missing. Non-terminal: the raw
	// message is still available, and producing this error never advances
	// the reader.
	ErrSchema = errors.New("fahrpult: schema error")

	// ErrHandshakeRejected reports that the peer sent a non-zero ACK_HELLO
	// result byte. Terminal for the session; the transport is still usable
	// for shutdown.
	ErrHandshakeRejected = errors.New("fahrpult: handshake rejected")

	// ErrSubscriptionRejected reports that the peer sent a non-zero
	// ACK_NEEDED_DATA result byte. Terminal for the session.
	ErrSubscriptionRejected = errors.New("fahrpult: subscription rejected")
)
