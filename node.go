package fahrpult

// Attribute is a leaf payload: a 16-bit identifier, meaningful only within
// the enclosing node's identifier context, and an opaque byte payload. The
// payload's interpretation (signed/unsigned integer of width 1/2/4, IEEE-754
// single, or raw bytes/UTF-8 string) is determined by the schema layer keyed
// on (parent-node-id, attribute-id); this type never widens or narrows the
// payload it was constructed with.
type Attribute struct {
	ID      uint16
	Payload []byte
}

// NewAttribute constructs an attribute with a copy of payload so the caller
// may reuse or mutate the slice they passed in.
func NewAttribute(id uint16, payload []byte) Attribute {
	p := make([]byte, len(payload))
	copy(p, payload)
	return Attribute{ID: id, Payload: p}
}

// Node is a named, ordered container: a 16-bit identifier, an ordered
// sequence of child attributes, and an ordered sequence of child nodes. A
// node owns its attributes and child nodes by value; there are no
// back-pointers and no shared references.
type Node struct {
	ID         uint16
	Attributes []Attribute
	Nodes      []Node
}

// NewNode constructs an empty node with the given identifier.
func NewNode(id uint16) *Node {
	return &Node{ID: id}
}

// AddAttribute appends an attribute to the node's attribute list, preserving
// wire order. Attribute order within a node carries no semantic meaning to
// the schema layer; callers may add attributes in any order.
func (n *Node) AddAttribute(a Attribute) *Node {
	n.Attributes = append(n.Attributes, a)
	return n
}

// AddChild appends a child node, preserving wire order. Child nodes of the
// same id may repeat meaningfully (e.g. one input event per repetition).
func (n *Node) AddChild(c Node) *Node {
	n.Nodes = append(n.Nodes, c)
	return n
}

// Attr returns the first attribute with the given id, or false if absent.
// Since attribute order within a node is not semantically meaningful, a
// caller asking for a single attribute always gets the first match in wire
// order.
func (n *Node) Attr(id uint16) (*Attribute, bool) {
	for i := range n.Attributes {
		if n.Attributes[i].ID == id {
			return &n.Attributes[i], true
		}
	}
	return nil, false
}

// Attrs returns every attribute with the given id, in wire order. Used for
// the rare case where a schema exposes a repeated attribute as an ordered
// sequence rather than relying on nesting in a child node.
func (n *Node) Attrs(id uint16) []Attribute {
	var out []Attribute
	for _, a := range n.Attributes {
		if a.ID == id {
			out = append(out, a)
		}
	}
	return out
}

// Child returns the first child node with the given id, or false if absent.
func (n *Node) Child(id uint16) (*Node, bool) {
	for i := range n.Nodes {
		if n.Nodes[i].ID == id {
			return &n.Nodes[i], true
		}
	}
	return nil, false
}

// Children returns every child node with the given id, in wire order.
func (n *Node) Children(id uint16) []Node {
	var out []Node
	for _, c := range n.Nodes {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out
}
