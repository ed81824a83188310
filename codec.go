package fahrpult

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult/transport"
)

// Wire sentinels (spec.md §6). All integers on the wire are little-endian.
const (
	nodeStart uint32 = 0x00000000
	nodeEnd   uint32 = 0xFFFFFFFF
)

// ReadMessage reads one framed top-level node from t: a single NODE_START
// header word followed by a node body terminated by NODE_END.
func ReadMessage(t transport.Transport) (*Node, error) {
	var hdr [4]byte
	if err := t.ReadExact(hdr[:]); err != nil {
		return nil, wrapTransportErr(err)
	}
	if binary.LittleEndian.Uint32(hdr[:]) != nodeStart {
		return nil, errors.Wrap(ErrProtocol, "message does not begin with NODE_START")
	}
	return readNodeBody(t)
}

// readNodeBody reads a 16-bit node id followed by an interleaved sequence of
// nested nodes and attributes, terminated by NODE_END.
func readNodeBody(t transport.Transport) (*Node, error) {
	var idBuf [2]byte
	if err := t.ReadExact(idBuf[:]); err != nil {
		return nil, wrapTransportErr(err)
	}
	n := NewNode(binary.LittleEndian.Uint16(idBuf[:]))

	for {
		var wBuf [4]byte
		if err := t.ReadExact(wBuf[:]); err != nil {
			return nil, wrapTransportErr(err)
		}
		w := binary.LittleEndian.Uint32(wBuf[:])

		switch {
		case w == nodeStart:
			child, err := readNodeBody(t)
			if err != nil {
				return nil, err
			}
			n.Nodes = append(n.Nodes, *child)
		case w == nodeEnd:
			return n, nil
		case w >= 2:
			var attrIDBuf [2]byte
			if err := t.ReadExact(attrIDBuf[:]); err != nil {
				return nil, wrapTransportErr(err)
			}
			payload := make([]byte, w-2)
			if len(payload) > 0 {
				if err := t.ReadExact(payload); err != nil {
					return nil, wrapTransportErr(err)
				}
			}
			n.Attributes = append(n.Attributes, Attribute{
				ID:      binary.LittleEndian.Uint16(attrIDBuf[:]),
				Payload: payload,
			})
		default:
			return nil, errors.Wrapf(ErrProtocol, "invalid attribute length %d", w)
		}
	}
}

// WriteMessage writes n as a framed top-level message: a single NODE_START
// header word followed by the node body and its closing NODE_END.
func WriteMessage(t transport.Transport, n *Node) error {
	if err := writeUint32(t, nodeStart); err != nil {
		return err
	}
	return writeNodeBody(t, n)
}

// writeNodeBody writes the node id, then every attribute, then every child
// node (each preceded by its own NODE_START sentinel), then NODE_END. The
// leading NODE_START for this node itself is the caller's responsibility:
// WriteMessage writes it once for the top-level message, and writeNodeBody
// writes it once per child before recursing.
func writeNodeBody(t transport.Transport, n *Node) error {
	if err := writeUint16(t, n.ID); err != nil {
		return err
	}
	for _, a := range n.Attributes {
		if err := writeUint32(t, uint32(len(a.Payload))+2); err != nil {
			return err
		}
		if err := writeUint16(t, a.ID); err != nil {
			return err
		}
		if len(a.Payload) > 0 {
			if err := t.WriteAll(a.Payload); err != nil {
				return wrapTransportErr(err)
			}
		}
	}
	for i := range n.Nodes {
		if err := writeUint32(t, nodeStart); err != nil {
			return err
		}
		if err := writeNodeBody(t, &n.Nodes[i]); err != nil {
			return err
		}
	}
	return writeUint32(t, nodeEnd)
}

func writeUint32(t transport.Transport, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if err := t.WriteAll(buf[:]); err != nil {
		return wrapTransportErr(err)
	}
	return nil
}

func writeUint16(t transport.Transport, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if err := t.WriteAll(buf[:]); err != nil {
		return wrapTransportErr(err)
	}
	return nil
}

// wrapTransportErr maps the transport package's sentinels onto this
// package's ErrTransportClosed/ErrTransportError taxonomy without losing
// the wrapped message, so callers can use errors.Is against either layer.
func wrapTransportErr(err error) error {
	if errors.Is(err, transport.ErrClosed) {
		return errors.Wrap(ErrTransportClosed, err.Error())
	}
	return errors.Wrap(ErrTransportError, err.Error())
}
