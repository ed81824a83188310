package session

import (
	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
	"go.zusi3.dev/fahrpult/transport"
)

type serverState int

const (
	serverFresh serverState = iota
	serverHelloReceived
	serverNeededReceived
	serverReady
	serverClosed
)

// ServerSession is the simulator-side half of the handshake, symmetric to
// ClientSession: Fresh -> HelloReceived -> NeededReceived -> Ready ->
// Closed. It exists for emulators and tests (spec.md §1).
type ServerSession struct {
	t     transport.Transport
	cfg   *serverConfig
	state serverState
	sub   *SubscriptionSet

	clientName    string
	clientVersion string
}

// Accept drives the full server handshake (receive HELLO, send ACK_HELLO,
// receive NEEDED_DATA, send ACK_NEEDED_DATA) over t and returns a
// ready-to-use ServerSession.
func Accept(t transport.Transport, opts ...ServerOption) (*ServerSession, error) {
	cfg := defaultServerConfig()
	for _, o := range opts {
		o(cfg)
	}

	ss := &ServerSession{t: t, cfg: cfg, state: serverFresh, sub: newSubscriptionSet()}

	if err := ss.recvHello(); err != nil {
		return nil, err
	}
	ss.state = serverHelloReceived

	if err := ss.sendAckHello(); err != nil {
		return nil, err
	}

	if err := ss.recvNeededData(); err != nil {
		return nil, err
	}
	ss.state = serverNeededReceived
	ss.sub.freeze()

	if err := ss.sendAckNeededData(); err != nil {
		return nil, err
	}
	ss.state = serverReady

	ss.cfg.log.WithField("client_name", ss.clientName).Debug("handshake complete")
	return ss, nil
}

func (ss *ServerSession) recvHello() error {
	root, err := fahrpult.ReadMessage(ss.t)
	if err != nil {
		return err
	}
	if root.ID != schema.MsgTypeConnecting || len(root.Nodes) != 1 {
		return errors.Wrap(fahrpult.ErrProtocol, "malformed connecting-phase message")
	}
	hello := &root.Nodes[0]
	if hello.ID != schema.CmdHello {
		return errors.Wrapf(fahrpult.ErrProtocol, "expected HELLO, got command 0x%04X", hello.ID)
	}
	clientName, _, err := schema.String(hello, schema.HelloClientID)
	if err != nil {
		return err
	}
	clientVersion, _, err := schema.String(hello, schema.HelloClientVersion)
	if err != nil {
		return err
	}
	ss.clientName = clientName
	ss.clientVersion = clientVersion
	return nil
}

func (ss *ServerSession) sendAckHello() error {
	root := fahrpult.NewNode(schema.MsgTypeConnecting)
	ack := fahrpult.NewNode(schema.CmdAckHello)
	schema.PutString(ack, schema.AckHelloZusiVersion, ss.cfg.zusiVersion)
	schema.PutString(ack, schema.AckHelloConnInfo, ss.cfg.connInfo)
	schema.PutUint8(ack, schema.AckHelloResult, 0)
	root.AddChild(*ack)
	ss.cfg.log.Debug("sending ACK_HELLO")
	return fahrpult.WriteMessage(ss.t, root)
}

func (ss *ServerSession) recvNeededData() error {
	root, err := fahrpult.ReadMessage(ss.t)
	if err != nil {
		return err
	}
	if root.ID != schema.MsgTypeFahrpult || len(root.Nodes) != 1 {
		return errors.Wrap(fahrpult.ErrProtocol, "malformed fahrpult-phase message")
	}
	needed := &root.Nodes[0]
	if needed.ID != schema.CmdNeededData {
		return errors.Wrapf(fahrpult.ErrProtocol, "expected NEEDED_DATA, got command 0x%04X", needed.ID)
	}

	for i := range needed.Nodes {
		group := &needed.Nodes[i]
		if group.ID == schema.GroupBedienung {
			ss.sub.setBedienung(true)
			continue
		}
		ids, err := uint16AttrValues(group, schema.NeededDataVarID)
		if err != nil {
			return err
		}
		switch group.ID {
		case schema.GroupFuehrerstandData:
			for _, id := range ids {
				ss.sub.addFsData(id)
			}
		case schema.GroupProgData:
			for _, id := range ids {
				ss.sub.addProgData(id)
			}
		}
	}
	return nil
}

// uint16AttrValues decodes every repeated attribute with the given id
// within n as a 2-byte little-endian uint16, in wire order.
func uint16AttrValues(n *fahrpult.Node, id uint16) ([]uint16, error) {
	var out []uint16
	for _, a := range n.Attrs(id) {
		if len(a.Payload) != 2 {
			return nil, errors.Wrapf(fahrpult.ErrSchema, "attribute %d: want 2 bytes, got %d", id, len(a.Payload))
		}
		out = append(out, uint16(a.Payload[0])|uint16(a.Payload[1])<<8)
	}
	return out, nil
}

func (ss *ServerSession) sendAckNeededData() error {
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	ack := fahrpult.NewNode(schema.CmdAckNeededData)
	schema.PutUint8(ack, schema.AckNeededDataResult, 0)
	root.AddChild(*ack)
	ss.cfg.log.Debug("sending ACK_NEEDED_DATA")
	return fahrpult.WriteMessage(ss.t, root)
}

// ClientName returns the client-id the client declared in HELLO.
func (ss *ServerSession) ClientName() string { return ss.clientName }

// ClientVersion returns the client-version the client declared in HELLO.
func (ss *ServerSession) ClientVersion() string { return ss.clientVersion }

// Subscriptions returns the frozen subscription set negotiated during
// Accept.
func (ss *ServerSession) Subscriptions() *SubscriptionSet { return ss.sub }

// Close marks the session terminal. It does not close the underlying
// transport; the caller owns that lifecycle.
func (ss *ServerSession) Close() {
	ss.state = serverClosed
}
