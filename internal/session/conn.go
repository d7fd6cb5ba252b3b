package session

// Conn is a transport-level connection handle. The session only ever writes
// to it; reads are driven by the transport, which feeds inbound data through
// Room.HandleMessage. Implementations must not block the caller.
type Conn interface {
	ID() string
	SendText(payload []byte)
	SendBinary(payload []byte)
}
