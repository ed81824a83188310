// Package fahrpult implements the Zusi 3 train-simulator "Fahrpult" control
// protocol: a length-prefixed, recursively-nested binary message format
// carried over a stream-oriented TCP connection on port 1436.
//
// Semantics and design:
//   - Framing: the wire format is a recursive node/attribute tree (see
//     ReadMessage and WriteMessage) bounded by NODE_START (0x00000000) and NODE_END
//     (0xFFFFFFFF) 32-bit sentinels. There is no configurable byte order or
//     transport protocol variant; every integer and float on the wire is
//     little-endian, and the transport is always a reliable ordered byte
//     stream (see package transport).
//   - Schema: 16-bit attribute identifiers are scoped by their enclosing
//     node identifier and mapped to typed values by package schema. The
//     framing layer (this package's Node type and codec) carries no schema
//     knowledge.
//   - Sessions: package session implements the client and server halves of
//     the HELLO/NEEDED_DATA handshake, the server's subscription-driven send
//     filter, and the post-handshake receive dispatch into typed message
//     variants.
package fahrpult
