package session

import (
	"github.com/pkg/errors"

	"go.zusi3.dev/fahrpult"
	"go.zusi3.dev/fahrpult/schema"
	"go.zusi3.dev/fahrpult/transport"
)

type clientState int

const (
	clientFresh clientState = iota
	clientHelloSent
	clientNeededSent
	clientReady
	clientClosed
)

// ErrNotReady reports a programming error: a caller invoked SendInput or
// ReceiveMessage before the handshake reached the Ready state (spec.md
// §4.4.1's invariant). It is not a protocol error — the session and
// transport are untouched.
var ErrNotReady = errors.New("fahrpult/session: session is not ready")

// ClientSession is the driver's-desk ("Fahrpult") client half of the
// handshake: Fresh -> HelloSent -> NeededSent -> Ready -> Closed.
type ClientSession struct {
	t     transport.Transport
	cfg   *clientConfig
	state clientState

	zusiVersion string
	connInfo    string
}

// Connect drives the full client handshake (HELLO / ACK_HELLO / NEEDED_DATA
// / ACK_NEEDED_DATA) over t and returns a ready-to-use ClientSession, or a
// wrapped fahrpult.ErrHandshakeRejected / fahrpult.ErrSubscriptionRejected
// / fahrpult.ErrProtocol / transport error.
func Connect(t transport.Transport, opts ...ClientOption) (*ClientSession, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o(cfg)
	}

	cs := &ClientSession{t: t, cfg: cfg, state: clientFresh}

	if err := cs.sendHello(); err != nil {
		return nil, err
	}
	cs.state = clientHelloSent

	if err := cs.recvAckHello(); err != nil {
		return nil, err
	}

	if err := cs.sendNeededData(); err != nil {
		return nil, err
	}
	cs.state = clientNeededSent

	if err := cs.recvAckNeededData(); err != nil {
		return nil, err
	}
	cs.state = clientReady

	cs.cfg.log.WithFields(loggingFields(cs)).Debug("handshake complete")
	return cs, nil
}

func loggingFields(cs *ClientSession) map[string]any {
	return map[string]any{
		"client_id":    cs.cfg.clientID,
		"zusi_version": cs.zusiVersion,
	}
}

func (cs *ClientSession) sendHello() error {
	root := fahrpult.NewNode(schema.MsgTypeConnecting)
	hello := fahrpult.NewNode(schema.CmdHello)
	schema.PutUint16(hello, schema.HelloProtocolVersion, schema.ProtocolVersion)
	schema.PutUint16(hello, schema.HelloClientType, schema.ClientTypeFahrpult)
	schema.PutString(hello, schema.HelloClientID, cs.cfg.clientID)
	schema.PutString(hello, schema.HelloClientVersion, cs.cfg.clientVersion)
	root.AddChild(*hello)

	cs.cfg.log.Debug("sending HELLO")
	return fahrpult.WriteMessage(cs.t, root)
}

func (cs *ClientSession) recvAckHello() error {
	root, err := fahrpult.ReadMessage(cs.t)
	if err != nil {
		return err
	}
	if root.ID != schema.MsgTypeConnecting || len(root.Nodes) != 1 {
		return errors.Wrap(fahrpult.ErrProtocol, "malformed connecting-phase message")
	}
	ack := &root.Nodes[0]
	if ack.ID != schema.CmdAckHello {
		return errors.Wrapf(fahrpult.ErrProtocol, "expected ACK_HELLO, got command 0x%04X", ack.ID)
	}

	zusiVersion, _, err := schema.String(ack, schema.AckHelloZusiVersion)
	if err != nil {
		return err
	}
	connInfo, _, err := schema.String(ack, schema.AckHelloConnInfo)
	if err != nil {
		return err
	}
	result, _, err := schema.Uint8(ack, schema.AckHelloResult)
	if err != nil {
		return err
	}
	cs.zusiVersion = zusiVersion
	cs.connInfo = connInfo

	if result != 0 {
		cs.cfg.log.WithField("result", result).Warn("HELLO rejected by server")
		return errors.Wrapf(fahrpult.ErrHandshakeRejected, "server result=%d", result)
	}
	return nil
}

func (cs *ClientSession) sendNeededData() error {
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	needed := fahrpult.NewNode(schema.CmdNeededData)

	if len(cs.cfg.fsSubscribe) > 0 {
		fs := fahrpult.NewNode(schema.GroupFuehrerstandData)
		for _, id := range cs.cfg.fsSubscribe {
			schema.PutUint16(fs, schema.NeededDataVarID, id)
		}
		needed.AddChild(*fs)
	}
	if cs.cfg.bedienung {
		needed.AddChild(*fahrpult.NewNode(schema.GroupBedienung))
	}
	if len(cs.cfg.progSubscribe) > 0 {
		prog := fahrpult.NewNode(schema.GroupProgData)
		for _, id := range cs.cfg.progSubscribe {
			schema.PutUint16(prog, schema.NeededDataVarID, id)
		}
		needed.AddChild(*prog)
	}

	root.AddChild(*needed)
	cs.cfg.log.Debug("sending NEEDED_DATA")
	return fahrpult.WriteMessage(cs.t, root)
}

func (cs *ClientSession) recvAckNeededData() error {
	root, err := fahrpult.ReadMessage(cs.t)
	if err != nil {
		return err
	}
	if root.ID != schema.MsgTypeFahrpult || len(root.Nodes) != 1 {
		return errors.Wrap(fahrpult.ErrProtocol, "malformed fahrpult-phase message")
	}
	ack := &root.Nodes[0]
	if ack.ID != schema.CmdAckNeededData {
		return errors.Wrapf(fahrpult.ErrProtocol, "expected ACK_NEEDED_DATA, got command 0x%04X", ack.ID)
	}
	result, _, err := schema.Uint8(ack, schema.AckNeededDataResult)
	if err != nil {
		return err
	}
	if result != 0 {
		cs.cfg.log.WithField("result", result).Warn("NEEDED_DATA rejected by server")
		return errors.Wrapf(fahrpult.ErrSubscriptionRejected, "server result=%d", result)
	}
	return nil
}

// ZusiVersion returns the server's declared version from ACK_HELLO.
func (cs *ClientSession) ZusiVersion() string { return cs.zusiVersion }

// ConnectionInfo returns the server's connection-info string from
// ACK_HELLO.
func (cs *ClientSession) ConnectionInfo() string { return cs.connInfo }

// ReceiveMessage reads one framed fahrpult-phase message and dispatches it
// into a TelemetryMessage, InputOperationMessage, or ProgramStatusMessage
// (spec.md §4.4.4). Calling this before Connect has reached Ready is a
// programming error (ErrNotReady), not a protocol error.
func (cs *ClientSession) ReceiveMessage() (Message, error) {
	if cs.state != clientReady {
		return nil, ErrNotReady
	}
	root, err := fahrpult.ReadMessage(cs.t)
	if err != nil {
		return nil, err
	}
	return dispatchMessage(root)
}

// SendInput sends an INPUT action record to the server (spec.md §4.5).
// Spezial defaults to 0.0 unless overridden with SendInputSpezial
// (spec.md §9).
func (cs *ClientSession) SendInput(taster, kommando, aktion, position uint16) error {
	return cs.SendInputSpezial(taster, kommando, aktion, position, 0)
}

// SendInputSpezial is SendInput with an explicit Spezial value.
func (cs *ClientSession) SendInputSpezial(taster, kommando, aktion, position uint16, spezial float32) error {
	if cs.state != clientReady {
		return ErrNotReady
	}
	root := fahrpult.NewNode(schema.MsgTypeFahrpult)
	input := fahrpult.NewNode(schema.CmdInput)
	action := schema.Action{Taster: taster, Kommando: kommando, Aktion: aktion, Position: position, Spezial: spezial}
	actionNode := action.ToNode()
	input.AddChild(actionNode)
	root.AddChild(*input)
	return fahrpult.WriteMessage(cs.t, root)
}

// Close marks the session terminal. It does not close the underlying
// transport; the caller owns that lifecycle.
func (cs *ClientSession) Close() {
	cs.state = clientClosed
}
