// Package schema maps 16-bit attribute identifiers, scoped by their
// enclosing node's identifier, onto strongly-typed values. It is the only
// layer that knows about fixed-width integers, little-endian floats, and
// length-delimited strings; the framing codec below it is schema-blind.
package schema

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult"
)

// width-mismatch and missing-attribute errors are reported as
// fahrpult.ErrSchema so callers can test with errors.Is regardless of which
// typed accessor produced them.

func schemaErrf(format string, args ...any) error {
	return errors.Wrapf(fahrpult.ErrSchema, format, args...)
}

// Uint8 reads a 1-byte unsigned integer attribute.
func Uint8(n *fahrpult.Node, id uint16) (uint8, bool, error) {
	a, ok := n.Attr(id)
	if !ok {
		return 0, false, nil
	}
	if len(a.Payload) != 1 {
		return 0, true, schemaErrf("attribute %d: want 1 byte, got %d", id, len(a.Payload))
	}
	return a.Payload[0], true, nil
}

// Uint16 reads a 2-byte little-endian unsigned integer attribute.
func Uint16(n *fahrpult.Node, id uint16) (uint16, bool, error) {
	a, ok := n.Attr(id)
	if !ok {
		return 0, false, nil
	}
	if len(a.Payload) != 2 {
		return 0, true, schemaErrf("attribute %d: want 2 bytes, got %d", id, len(a.Payload))
	}
	return binary.LittleEndian.Uint16(a.Payload), true, nil
}

// Uint32 reads a 4-byte little-endian unsigned integer attribute.
func Uint32(n *fahrpult.Node, id uint16) (uint32, bool, error) {
	a, ok := n.Attr(id)
	if !ok {
		return 0, false, nil
	}
	if len(a.Payload) != 4 {
		return 0, true, schemaErrf("attribute %d: want 4 bytes, got %d", id, len(a.Payload))
	}
	return binary.LittleEndian.Uint32(a.Payload), true, nil
}

// Float32 reads an IEEE-754 single-precision little-endian float attribute.
func Float32(n *fahrpult.Node, id uint16) (float32, bool, error) {
	bits, ok, err := Uint32(n, id)
	if err != nil || !ok {
		return 0, ok, err
	}
	return math.Float32frombits(bits), true, nil
}

// String reads a UTF-8 (no terminator) string attribute of any length.
func String(n *fahrpult.Node, id uint16) (string, bool, error) {
	a, ok := n.Attr(id)
	if !ok {
		return "", false, nil
	}
	return string(a.Payload), true, nil
}

// Bool reads a float attribute and interprets it as a boolean (nonzero is
// true), matching the wire table's "float bool" logical types (e.g.
// LuftpresserLaeuft, Hauptschalter, LMSchleudern).
func Bool(n *fahrpult.Node, id uint16) (bool, bool, error) {
	v, ok, err := Float32(n, id)
	if err != nil || !ok {
		return false, ok, err
	}
	return v != 0, true, nil
}

// PutUint8 appends a 1-byte unsigned integer attribute.
func PutUint8(n *fahrpult.Node, id uint16, v uint8) {
	n.AddAttribute(fahrpult.Attribute{ID: id, Payload: []byte{v}})
}

// PutUint16 appends a 2-byte little-endian unsigned integer attribute.
func PutUint16(n *fahrpult.Node, id uint16, v uint16) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	n.AddAttribute(fahrpult.Attribute{ID: id, Payload: buf})
}

// PutUint32 appends a 4-byte little-endian unsigned integer attribute.
func PutUint32(n *fahrpult.Node, id uint16, v uint32) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	n.AddAttribute(fahrpult.Attribute{ID: id, Payload: buf})
}

// PutFloat32 appends an IEEE-754 single-precision little-endian float
// attribute.
func PutFloat32(n *fahrpult.Node, id uint16, v float32) {
	PutUint32(n, id, math.Float32bits(v))
}

// PutString appends a UTF-8 string attribute, bytes only, no terminator.
func PutString(n *fahrpult.Node, id uint16, v string) {
	n.AddAttribute(fahrpult.Attribute{ID: id, Payload: []byte(v)})
}
