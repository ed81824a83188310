package fahrpult_test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
	"go.zusi3.dev/fahrpult/transport"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

// Scenario 1 (spec.md §8): decoding the encoded empty single node.
func TestReadMessage_EmptySingleNode(t *testing.T) {
	buf := bytes.NewBuffer(mustHex(t, "00000000 0100 FFFFFFFF"))
	tr := transport.NewRWTransport(buf, buf)

	n, err := fahrpult.ReadMessage(tr)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), n.ID)
	assert.Empty(t, n.Attributes)
	assert.Empty(t, n.Nodes)
}

// Scenario 2 (spec.md §8): nested child.
func TestReadMessage_NestedChild(t *testing.T) {
	buf := bytes.NewBuffer(mustHex(t, "00000000 0100 00000000 0200 FFFFFFFF FFFFFFFF"))
	tr := transport.NewRWTransport(buf, buf)

	n, err := fahrpult.ReadMessage(tr)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), n.ID)
	require.Len(t, n.Nodes, 1)
	assert.Equal(t, uint16(2), n.Nodes[0].ID)
}

// Scenario 3 (spec.md §8): telemetry parse from the Zusi manual example.
func TestReadMessage_TelemetryParse(t *testing.T) {
	buf := bytes.NewBuffer(mustHex(t,
		"00000000 0200 00000000 0A00 06000000 0100 AE473D41 06000000 1B00 00000000 FFFFFFFF FFFFFFFF"))
	tr := transport.NewRWTransport(buf, buf)

	n, err := fahrpult.ReadMessage(tr)
	require.NoError(t, err)
	require.Equal(t, schema.MsgTypeFahrpult, n.ID)
	require.Len(t, n.Nodes, 1)

	ftd := schema.NewFtdView(&n.Nodes[0])
	speed, ok, err := ftd.Geschwindigkeit()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 11.83, speed, 0.01)

	schleudern, ok, err := ftd.LMSchleudern()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, schleudern)
}

func writeThenRead(t *testing.T, n *fahrpult.Node) *fahrpult.Node {
	t.Helper()
	buf := &bytes.Buffer{}
	tr := transport.NewRWTransport(buf, buf)
	require.NoError(t, fahrpult.WriteMessage(tr, n))
	got, err := fahrpult.ReadMessage(tr)
	require.NoError(t, err)
	return got
}

// Codec round-trip property (spec.md §8).
func TestWriteMessage_RoundTrip(t *testing.T) {
	n := fahrpult.NewNode(2)
	n.AddAttribute(fahrpult.NewAttribute(1, []byte{0xAE, 0x47, 0x3D, 0x41}))
	child := fahrpult.NewNode(7)
	child.AddAttribute(fahrpult.NewAttribute(9, nil))
	n.AddChild(*child)

	got := writeThenRead(t, n)
	assert.Equal(t, n.ID, got.ID)
	require.Len(t, got.Attributes, 1)
	assert.Equal(t, n.Attributes[0].ID, got.Attributes[0].ID)
	assert.Equal(t, n.Attributes[0].Payload, got.Attributes[0].Payload)
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, uint16(7), got.Nodes[0].ID)
	require.Len(t, got.Nodes[0].Attributes, 1)
	assert.Equal(t, uint16(9), got.Nodes[0].Attributes[0].ID)
	assert.Empty(t, got.Nodes[0].Attributes[0].Payload)
}

// Framing law (spec.md §8): every message begins with four zero bytes and
// ends with four 0xFF bytes.
func TestWriteMessage_FramingLaw(t *testing.T) {
	n := fahrpult.NewNode(3)
	n.AddAttribute(fahrpult.NewAttribute(1, []byte("hi")))

	buf := &bytes.Buffer{}
	tr := transport.NewRWTransport(buf, buf)
	require.NoError(t, fahrpult.WriteMessage(tr, n))

	out := buf.Bytes()
	require.True(t, len(out) >= 8)
	assert.Equal(t, []byte{0, 0, 0, 0}, out[:4])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, out[len(out)-4:])
}

// Length invariant (spec.md §8): declared 32-bit length equals
// payload-length + 2.
func TestWriteMessage_LengthInvariant(t *testing.T) {
	n := fahrpult.NewNode(3)
	n.AddAttribute(fahrpult.NewAttribute(5, []byte("hello world")))

	buf := &bytes.Buffer{}
	tr := transport.NewRWTransport(buf, buf)
	require.NoError(t, fahrpult.WriteMessage(tr, n))

	out := buf.Bytes()
	// header(4) + node id(2) + attribute length word at offset 6.
	lenWord := binary.LittleEndian.Uint32(out[6:10])
	assert.EqualValues(t, len("hello world")+2, lenWord)
}

func TestReadMessage_InvalidLengthIsProtocolError(t *testing.T) {
	// A length word of 1 is a structural impossibility (< 2).
	buf := bytes.NewBuffer(mustHex(t, "00000000 0100 01000000 FFFFFFFF"))
	tr := transport.NewRWTransport(buf, buf)

	_, err := fahrpult.ReadMessage(tr)
	require.ErrorIs(t, err, fahrpult.ErrProtocol)
}

func TestReadMessage_WrongHeaderIsProtocolError(t *testing.T) {
	buf := bytes.NewBuffer(mustHex(t, "01000000 0100 FFFFFFFF"))
	tr := transport.NewRWTransport(buf, buf)

	_, err := fahrpult.ReadMessage(tr)
	require.ErrorIs(t, err, fahrpult.ErrProtocol)
}

func TestReadMessage_ShortStreamIsTransportClosed(t *testing.T) {
	buf := bytes.NewBuffer(mustHex(t, "0000"))
	tr := transport.NewRWTransport(buf, buf)

	_, err := fahrpult.ReadMessage(tr)
	require.ErrorIs(t, err, fahrpult.ErrTransportClosed)
}
