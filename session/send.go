package session

import (
	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
)

// FtdValue is one (fuehrerstand-data id, value) pair for SendData.
type FtdValue struct {
	ID    uint16
	Value float32
}

// SendData filters pairs against the frozen fuehrerstand-data subscription
// and writes a single DATA_FTD message containing only the subscribed ids.
// If the filtered set is empty, SendData is a no-op and returns nil without
// writing to the wire (spec.md §4.4.3, §8 scenario 6) — this is a
// bandwidth-saving invariant: the client only sees what it asked for.
func (ss *ServerSession) SendData(pairs []FtdValue) error {
	data := fahrpult.NewNode(schema.CmdDataFTD)
	for _, p := range pairs {
		if !ss.sub.HasFsData(p.ID) {
			continue
		}
		schema.PutFloat32(data, p.ID, p.Value)
	}
	if len(data.Attributes) == 0 {
		return nil
	}
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	root.AddChild(*data)
	return fahrpult.WriteMessage(ss.t, root)
}

// ProgValue is one program-data attribute (id plus encoded payload) for
// SendProg. Callers build it with ProgString or ProgFloat below.
type ProgValue struct {
	attr fahrpult.Attribute
}

// ProgString builds a string-valued DATA_PROG field (Zugdatei, Zugnummer,
// BuchfahrplanDatei).
func ProgString(id uint16, v string) ProgValue {
	return ProgValue{attr: fahrpult.NewAttribute(id, []byte(v))}
}

// ProgFloat builds a float-valued DATA_PROG field (SimStart).
func ProgFloat(id uint16, v float32) ProgValue {
	tmp := fahrpult.NewNode(0)
	schema.PutFloat32(tmp, id, v)
	return ProgValue{attr: tmp.Attributes[0]}
}

// SendProg filters values against the frozen program-data subscription and
// writes a single DATA_PROG message containing only the subscribed ids. If
// the filtered set is empty, SendProg is a no-op, mirroring SendData's
// bandwidth-saving behavior for the symmetric subscription group (spec.md
// §3's prog_data set; the wire table for DATA_PROG is in spec.md §6).
func (ss *ServerSession) SendProg(values []ProgValue) error {
	data := fahrpult.NewNode(schema.CmdDataProg)
	for _, v := range values {
		if !ss.sub.HasProgData(v.attr.ID) {
			continue
		}
		data.AddAttribute(v.attr)
	}
	if len(data.Attributes) == 0 {
		return nil
	}
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	root.AddChild(*data)
	return fahrpult.WriteMessage(ss.t, root)
}

// SendOperation reports input-event actions to the client as a single
// DATA_OPERATION message, gated on the client having subscribed to
// input-event feedback (sub-node 0xB in NEEDED_DATA). If the client did not
// subscribe, SendOperation is a no-op.
func (ss *ServerSession) SendOperation(actions []schema.Action) error {
	if !ss.sub.Bedienung() {
		return nil
	}
	if len(actions) == 0 {
		return nil
	}
	data := fahrpult.NewNode(schema.CmdDataOperation)
	for i := range actions {
		data.AddChild(actions[i].ToNode())
	}
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	root.AddChild(*data)
	return fahrpult.WriteMessage(ss.t, root)
}

// ReceiveInput reads one framed fahrpult-phase INPUT message from the
// client and decodes its action record. This is the server-side mirror of
// ClientSession.SendInput (spec.md §4.5).
func (ss *ServerSession) ReceiveInput() (*schema.Action, error) {
	if ss.state != serverReady {
		return nil, ErrNotReady
	}
	root, err := fahrpult.ReadMessage(ss.t)
	if err != nil {
		return nil, err
	}
	if root.ID != schema.MsgTypeFahrpult || len(root.Nodes) != 1 {
		return nil, errors.Wrap(fahrpult.ErrProtocol, "malformed fahrpult-phase message")
	}
	input := &root.Nodes[0]
	if input.ID != schema.CmdInput || len(input.Nodes) != 1 {
		return nil, errors.Wrapf(fahrpult.ErrProtocol, "expected INPUT, got command 0x%04X", input.ID)
	}
	return schema.NewAction(&input.Nodes[0])
}
