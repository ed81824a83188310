package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
)

// Schema idempotence (spec.md §8): decode(encode(v)) == v for every typed
// tag.
func TestSchemaIdempotence(t *testing.T) {
	n := fahrpult.NewNode(0)
	schema.PutUint8(n, 1, 42)
	schema.PutUint16(n, 2, 4242)
	schema.PutUint32(n, 3, 424242)
	schema.PutFloat32(n, 4, 11.83)
	schema.PutString(n, 5, "hello")

	u8, ok, err := schema.Uint8(n, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint8(42), u8)

	u16, ok, err := schema.Uint16(n, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(4242), u16)

	u32, ok, err := schema.Uint32(n, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 424242, u32)

	f, ok, err := schema.Float32(n, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 11.83, f, 0.0001)

	s, ok, err := schema.String(n, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestSchemaWidthMismatchIsSchemaError(t *testing.T) {
	n := fahrpult.NewNode(0)
	n.AddAttribute(fahrpult.NewAttribute(1, []byte{1, 2, 3}))

	_, _, err := schema.Uint16(n, 1)
	require.ErrorIs(t, err, fahrpult.ErrSchema)
}

func TestSchemaMissingAttributeIsAbsentNotError(t *testing.T) {
	n := fahrpult.NewNode(0)
	v, ok, err := schema.Uint16(n, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSifa_RoundTrip(t *testing.T) {
	s := &schema.Sifa{
		Bauart:          "PZB90",
		Leuchtmelder:    1,
		Hupe:            0,
		Hauptschalter:   1,
		Stoerschalter:   0,
		Luftabsperrhahn: 1,
	}
	node := s.ToNode()
	got, err := schema.NewSifa(&node)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSifa_MissingRequiredAttributeIsSchemaError(t *testing.T) {
	n := fahrpult.NewNode(schema.FtdSifa)
	schema.PutString(n, schema.SifaBauart, "PZB90")
	// Missing the rest of the required attributes.
	_, err := schema.NewSifa(n)
	require.ErrorIs(t, err, fahrpult.ErrSchema)
}

func TestSifa_WrongNodeIDIsSchemaError(t *testing.T) {
	n := fahrpult.NewNode(999)
	_, err := schema.NewSifa(n)
	require.ErrorIs(t, err, fahrpult.ErrSchema)
}

func TestAction_MissingSpezialIsSchemaError(t *testing.T) {
	n := fahrpult.NewNode(schema.ActionNodeID)
	schema.PutUint16(n, schema.ActionTaster, 1)
	schema.PutUint16(n, schema.ActionKommando, 0)
	schema.PutUint16(n, schema.ActionAktion, 7)
	schema.PutUint16(n, schema.ActionPosition, 10)

	_, err := schema.NewAction(n)
	require.ErrorIs(t, err, fahrpult.ErrSchema)
}

func TestAction_RoundTrip(t *testing.T) {
	a := &schema.Action{Taster: schema.TasterFahrschalter, Kommando: schema.KommandoUnbestimmt, Aktion: schema.AktionAbsolut, Position: 10, Spezial: 0}
	node := a.ToNode()
	got, err := schema.NewAction(&node)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}
