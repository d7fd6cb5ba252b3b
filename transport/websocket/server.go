package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hangdraw/hangdraw-backend/internal/session"
)

// Server accepts room-scoped WebSocket connections and hands them to the
// session layer. Connections flagged with yjs=true belong to the
// collaborative drawing sub-protocol and bypass the game entirely.
type Server struct {
	logger   *slog.Logger
	registry *session.Registry
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, registry *session.Registry) *Server {
	return &Server{
		logger:   logger.With("component", "websocket"),
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				// Room codes are the only admission control.
				return true
			},
		},
	}
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/{room}", func(w http.ResponseWriter, r *http.Request) {
		that.serveRoom(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveRoom(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveRoom")

	roomID := r.PathValue("room")
	if roomID == "" {
		http.Error(w, "room id is required", http.StatusNotFound)
		return
	}

	isCanvas := r.URL.Query().Get("yjs") == "true"

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn)
	go c.writePump()

	room := that.registry.GetOrCreate(ctx, roomID)

	if isCanvas {
		that.readCanvas(room.Canvas(), c)
		return
	}

	log.Info("connection established", "roomID", roomID, "connID", c.ID())

	room.Connect(c)
	that.readGame(room, c)
}

// readGame pumps inbound game frames into the room until the connection
// drops. Binary frames are reserved for the drawing sub-channel and ignored.
func (that *Server) readGame(room *session.Room, c *client) {
	defer func() {
		room.Disconnect(c)
		c.close()
	}()

	that.prepareRead(c)

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		room.HandleMessage(c, data)
	}
}

// readCanvas relays drawing frames verbatim between the room's canvas peers.
func (that *Server) readCanvas(canvas *session.Canvas, c *client) {
	canvas.Join(c)
	defer func() {
		canvas.Leave(c)
		c.close()
	}()

	that.prepareRead(c)

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		canvas.Relay(c, messageType == websocket.BinaryMessage, data)
	}
}

func (that *Server) prepareRead(c *client) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
}
