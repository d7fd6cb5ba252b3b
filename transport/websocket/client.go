package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size. Canvas frames can carry document
	// updates, game frames are tiny.
	maxMessageSize = 1 << 20

	sendBuffer = 256
)

type frame struct {
	messageType int
	data        []byte
}

// client wraps one gorilla connection behind the session.Conn interface.
// Writes go through a buffered channel drained by writePump, so the room
// goroutine never blocks on a slow peer.
type client struct {
	id   string
	conn *websocket.Conn
	send chan frame
	once sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan frame, sendBuffer),
	}
}

func (that *client) ID() string {
	return that.id
}

func (that *client) SendText(payload []byte) {
	that.enqueue(frame{messageType: websocket.TextMessage, data: payload})
}

func (that *client) SendBinary(payload []byte) {
	that.enqueue(frame{messageType: websocket.BinaryMessage, data: payload})
}

func (that *client) enqueue(f frame) {
	defer func() {
		// Sending on the closed channel of a departed client is a no-op.
		_ = recover()
	}()

	select {
	case that.send <- f:
	default:
		// Slow consumer; the next full-state sync makes up for the drop.
	}
}

func (that *client) close() {
	that.once.Do(func() {
		close(that.send)
	})
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with periodic pings.
func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case f, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(f.messageType, f.data); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
