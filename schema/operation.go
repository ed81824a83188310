package schema

import "go.zusi3.dev/fahrpult"

// DATA_OPERATION (command 0x000B) carries child nodes reporting driver
// input events. A child with id ActionNodeID is a reportable action record;
// a child with id KombischalterNodeID is a combined-lever ("Kombischalter")
// event the typed iterator skips (spec.md §4.4.4, §9) but which remains
// reachable from the raw node.
const (
	ActionNodeID        uint16 = 0x01
	KombischalterNodeID uint16 = 0x02
)

// Action attribute ids (same ids as the INPUT command's sub-node, spec.md §6).
const (
	ActionTaster   uint16 = 1
	ActionKommando uint16 = 2
	ActionAktion   uint16 = 3
	ActionPosition uint16 = 4
	ActionSpezial  uint16 = 5
)

// Action is a typed view over an id-0x01 child of DATA_OPERATION (or of the
// INPUT command sent by the client).
type Action struct {
	Taster   uint16
	Kommando uint16
	Aktion   uint16
	Position uint16
	Spezial  float32
}

// NewAction validates n.ID == ActionNodeID and extracts every attribute.
func NewAction(n *fahrpult.Node) (*Action, error) {
	if n.ID != ActionNodeID {
		return nil, schemaErrf("Action: wrong node id %d, want %d", n.ID, ActionNodeID)
	}
	a := &Action{}
	var ok bool
	var err error
	if a.Taster, ok, err = Uint16(n, ActionTaster); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Action: missing required attribute Taster")
	}
	if a.Kommando, ok, err = Uint16(n, ActionKommando); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Action: missing required attribute Kommando")
	}
	if a.Aktion, ok, err = Uint16(n, ActionAktion); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Action: missing required attribute Aktion")
	}
	if a.Position, ok, err = Uint16(n, ActionPosition); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Action: missing required attribute Position")
	}
	if a.Spezial, ok, err = Float32(n, ActionSpezial); err != nil {
		return nil, err
	} else if !ok {
		return nil, schemaErrf("Action: missing required attribute Spezial")
	}
	return a, nil
}

// ToNode renders the Action view back into its wire sub-node shape.
func (a *Action) ToNode() fahrpult.Node {
	n := fahrpult.NewNode(ActionNodeID)
	PutUint16(n, ActionTaster, a.Taster)
	PutUint16(n, ActionKommando, a.Kommando)
	PutUint16(n, ActionAktion, a.Aktion)
	PutUint16(n, ActionPosition, a.Position)
	PutFloat32(n, ActionSpezial, a.Spezial)
	return *n
}
