package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
	"go.zusi3.dev/fahrpult/session"
)

func operationRoot(children ...fahrpult.Node) *fahrpult.Node {
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	op := fahrpult.NewNode(schema.CmdDataOperation)
	for _, c := range children {
		op.AddChild(c)
	}
	root.AddChild(*op)
	return root
}

func actionChild(taster uint16) fahrpult.Node {
	a := &schema.Action{Taster: taster, Kommando: 0, Aktion: 0, Position: 0, Spezial: 0}
	return a.ToNode()
}

// spec.md §8: InputOperationMessage yields exactly the child nodes with id
// ActionNodeID in wire order; Kombischalter (id 0x02) children are skipped.
func TestInputOperationMessage_ActionsSkipsKombischalter(t *testing.T) {
	kombi := *fahrpult.NewNode(schema.KombischalterNodeID)
	root := operationRoot(actionChild(1), kombi, actionChild(2))

	msg, err := decodeMessage(t, root)
	require.NoError(t, err)
	op, ok := msg.(*session.InputOperationMessage)
	require.True(t, ok, "expected InputOperationMessage, got %T", msg)

	actions, err := op.Actions()
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, uint16(1), actions[0].Taster)
	assert.Equal(t, uint16(2), actions[1].Taster)

	// The Kombischalter child is skipped by the iterator but still reachable
	// via Raw.
	require.Len(t, op.Raw().Nodes, 3)
	assert.Equal(t, schema.KombischalterNodeID, op.Raw().Nodes[1].ID)
}

// decodeMessage drives a ready client against a canned transport that serves
// the handshake followed by root, then calls ReceiveMessage to exercise the
// real dispatch path.
func decodeMessage(t *testing.T, root *fahrpult.Node) (session.Message, error) {
	t.Helper()
	tr, _ := canned(t, ackHello("3.0.1.0", 0), ackNeededData(0), root)
	cs, err := session.Connect(tr)
	require.NoError(t, err)
	return cs.ReceiveMessage()
}
