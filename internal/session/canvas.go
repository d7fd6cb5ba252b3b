package session

import "sync"

// Canvas relays collaborative drawing frames between the connections of one
// room. Connections arriving with the drawing flag are handed off here and
// bypass the game protocol entirely; frames are forwarded verbatim (text or
// binary) to every other canvas connection. No state is kept or persisted.
type Canvas struct {
	mu    sync.RWMutex
	conns map[Conn]struct{}
}

func NewCanvas() *Canvas {
	return &Canvas{
		conns: make(map[Conn]struct{}),
	}
}

func (that *Canvas) Join(conn Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.conns[conn] = struct{}{}
}

func (that *Canvas) Leave(conn Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.conns, conn)
}

// Relay forwards one frame from sender to every other canvas connection.
func (that *Canvas) Relay(sender Conn, binary bool, data []byte) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for conn := range that.conns {
		if conn == sender {
			continue
		}

		if binary {
			conn.SendBinary(data)
		} else {
			conn.SendText(data)
		}
	}
}

// Len reports the number of connected canvas clients.
func (that *Canvas) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.conns)
}
