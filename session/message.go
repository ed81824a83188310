package session

import (
	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
)

// Message is the closed set of typed variants ReceiveMessage can return.
// Re-architected as a tagged interface rather than a runtime-downcast
// hierarchy (spec.md §9): new item kinds are added here, not by
// subclassing.
type Message interface {
	isMessage()
	// Raw returns the untouched command node, so a caller can recover
	// anything the typed view does not expose.
	Raw() *fahrpult.Node
}

// TelemetryMessage wraps a DATA_FTD command node.
type TelemetryMessage struct {
	*schema.FtdView
	raw *fahrpult.Node
}

func (*TelemetryMessage) isMessage()            {}
func (m *TelemetryMessage) Raw() *fahrpult.Node { return m.raw }

// ProgramStatusMessage wraps a DATA_PROG command node.
type ProgramStatusMessage struct {
	node *fahrpult.Node
}

func (*ProgramStatusMessage) isMessage()            {}
func (m *ProgramStatusMessage) Raw() *fahrpult.Node { return m.node }

func (m *ProgramStatusMessage) Zugdatei() (string, bool, error) {
	return schema.String(m.node, schema.ProgZugdatei)
}
func (m *ProgramStatusMessage) Zugnummer() (string, bool, error) {
	return schema.String(m.node, schema.ProgZugnummer)
}
func (m *ProgramStatusMessage) SimStart() (float32, bool, error) {
	return schema.Float32(m.node, schema.ProgSimStart)
}
func (m *ProgramStatusMessage) BuchfahrplanDatei() (string, bool, error) {
	return schema.String(m.node, schema.ProgBuchfahrplanDatei)
}

// InputOperationMessage wraps a DATA_OPERATION command node. Actions yields
// every id-0x01 child in wire order; id-0x02 ("Kombischalter") children are
// skipped by the iterator but remain reachable via Raw (spec.md §4.4.4, §9).
type InputOperationMessage struct {
	node *fahrpult.Node
}

func (*InputOperationMessage) isMessage()            {}
func (m *InputOperationMessage) Raw() *fahrpult.Node { return m.node }

// Actions decodes every id-0x01 child node into a typed Action, in wire
// order, skipping id-0x02 Kombischalter children.
func (m *InputOperationMessage) Actions() ([]*schema.Action, error) {
	var out []*schema.Action
	for i := range m.node.Nodes {
		child := &m.node.Nodes[i]
		if child.ID != schema.ActionNodeID {
			continue
		}
		a, err := schema.NewAction(child)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// dispatchMessage reads the single command child of a fahrpult-phase root
// node and wraps it in the corresponding typed variant (spec.md §4.4.4).
func dispatchMessage(root *fahrpult.Node) (Message, error) {
	if root.ID != schema.MsgTypeFahrpult {
		return nil, errors.Wrapf(fahrpult.ErrProtocol, "message root id %d, want fahrpult-phase %d", root.ID, schema.MsgTypeFahrpult)
	}
	if len(root.Nodes) != 1 {
		return nil, errors.Wrapf(fahrpult.ErrProtocol, "fahrpult message must have exactly one command child, got %d", len(root.Nodes))
	}
	cmd := &root.Nodes[0]
	switch cmd.ID {
	case schema.CmdDataFTD:
		return &TelemetryMessage{FtdView: schema.NewFtdView(cmd), raw: cmd}, nil
	case schema.CmdDataOperation:
		return &InputOperationMessage{node: cmd}, nil
	case schema.CmdDataProg:
		return &ProgramStatusMessage{node: cmd}, nil
	default:
		return nil, errors.Wrapf(fahrpult.ErrProtocol, "unknown command id 0x%04X", cmd.ID)
	}
}
