package schema

// Top-level message type ids (spec.md §6).
const (
	MsgTypeConnecting uint16 = 1 // handshake-phase root id
	MsgTypeFahrpult   uint16 = 2 // session-phase root id
)

// Command ids: child-of-root node identifiers that select the command kind
// carried by a message (spec.md §6).
const (
	CmdHello          uint16 = 0x0001
	CmdAckHello       uint16 = 0x0002
	CmdNeededData     uint16 = 0x0003
	CmdAckNeededData  uint16 = 0x0004
	CmdDataFTD        uint16 = 0x000A
	CmdDataOperation  uint16 = 0x000B
	CmdDataProg       uint16 = 0x000C
	CmdInput          uint16 = 0x010A
)

// NEEDED_DATA/subscription sub-node group ids.
const (
	GroupFuehrerstandData uint16 = 0xA
	GroupBedienung        uint16 = 0xB
	GroupProgData         uint16 = 0xC
)
