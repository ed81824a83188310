package schema

// HELLO attribute ids (command 0x0001).
const (
	HelloProtocolVersion uint16 = 1
	HelloClientType      uint16 = 2
	HelloClientID        uint16 = 3
	HelloClientVersion   uint16 = 4
)

// Client-type values for HelloClientType.
const (
	ClientTypeZusi     uint16 = 1
	ClientTypeFahrpult uint16 = 2
)

// ACK_HELLO attribute ids (command 0x0002).
const (
	AckHelloZusiVersion uint16 = 1
	AckHelloConnInfo    uint16 = 2
	AckHelloResult      uint16 = 3
)

// ACK_NEEDED_DATA attribute ids (command 0x0004).
const (
	AckNeededDataResult uint16 = 1
)

// NEEDED_DATA subscription attribute id, repeated once per subscribed id
// within sub-node 0xA or 0xC (spec.md §4.4.1, §6).
const (
	NeededDataVarID uint16 = 1
)

// ProtocolVersion is the single protocol version this module declares in
// HELLO; negotiating any other version is out of scope (spec.md §1).
const ProtocolVersion uint16 = 2
