// Package session implements the client and server halves of the Zusi 3
// Fahrpult handshake (HELLO / ACK_HELLO / NEEDED_DATA / ACK_NEEDED_DATA),
// the server's subscription-driven send filter, and the post-handshake
// receive dispatch into typed message variants. This is the module's
// public surface, used together with package transport; its API also
// carries types and constants of package schema (schema.Action, schema.Sifa,
// attribute and command ids) and of the root package (raw *fahrpult.Node).
package session
