package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hangdraw/hangdraw-backend/internal/entity"
	"github.com/hangdraw/hangdraw-backend/internal/hangdraw"
)

const (
	eventBuffer      = 64
	recordWinTimeout = 5 * time.Second
)

// WinRecorder persists round results outside the room lifecycle.
type WinRecorder interface {
	RecordWin(ctx context.Context, playerName string) error
}

type eventKind int

const (
	eventConnect eventKind = iota
	eventMessage
	eventClose
)

type event struct {
	kind eventKind
	conn Conn
	data []byte
}

// Room owns the authoritative game state of one room. All connection
// lifecycle events and inbound messages are funneled through a single
// channel and applied by one goroutine, so actions are strictly serialized.
type Room struct {
	logger   *slog.Logger
	game     *entity.Game
	recorder WinRecorder

	// conns maps every live connection to a player id, empty until the
	// connection joins. playerConns is the reverse index: a player is gone
	// only once their last connection closed.
	conns       map[Conn]string
	playerConns map[string]map[Conn]struct{}

	events chan event
	canvas *Canvas
}

func newRoom(logger *slog.Logger, roomID string, recorder WinRecorder) *Room {
	return &Room{
		logger:      logger.With("component", "room", "roomID", roomID),
		game:        entity.NewGame(roomID),
		recorder:    recorder,
		conns:       make(map[Conn]string),
		playerConns: make(map[string]map[Conn]struct{}),
		events:      make(chan event, eventBuffer),
		canvas:      NewCanvas(),
	}
}

// Run processes the room's events until the context is canceled. It must be
// the only goroutine touching the game state.
func (that *Room) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-that.events:
			that.handleEvent(ctx, ev)
		}
	}
}

// Canvas returns the room's collaborative drawing relay. It is an
// independent data channel and never touches the game state.
func (that *Room) Canvas() *Canvas {
	return that.canvas
}

// Connect registers a brand-new connection. The current state is sent to it
// right away so a client can render a game already in progress.
func (that *Room) Connect(conn Conn) {
	that.events <- event{kind: eventConnect, conn: conn}
}

// HandleMessage feeds one raw inbound text frame into the room.
func (that *Room) HandleMessage(conn Conn, data []byte) {
	that.events <- event{kind: eventMessage, conn: conn, data: data}
}

// Disconnect removes a closed connection.
func (that *Room) Disconnect(conn Conn) {
	that.events <- event{kind: eventClose, conn: conn}
}

func (that *Room) handleEvent(ctx context.Context, ev event) {
	switch ev.kind {
	case eventConnect:
		that.conns[ev.conn] = ""
		that.sendStateTo(ev.conn)
	case eventMessage:
		that.handleMessage(ctx, ev.conn, ev.data)
	case eventClose:
		that.handleClose(ev.conn)
	}
}

func (that *Room) handleMessage(ctx context.Context, conn Conn, data []byte) {
	log := that.logger.With("method", "handleMessage")

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		// Malformed frames are dropped; the connection stays open.
		log.Debug("dropping malformed message", "error", err)
		return
	}

	switch msg.Type {
	case MessageJoin:
		that.handleJoin(conn, &msg)
	case MessageStartGame:
		if hangdraw.StartGame(that.game) == hangdraw.OutcomeStarted {
			that.broadcastState()
		}
	case MessageSetWord:
		outcome, err := hangdraw.SetWord(that.game, msg.Word)
		if err != nil {
			log.Warn("rejected word", "error", err)
			return
		}
		if outcome == hangdraw.OutcomeWordSet {
			that.broadcastState()
		}
	case MessageGuess:
		outcome := hangdraw.Guess(that.game, msg.Letter)
		if outcome == hangdraw.OutcomeIgnored {
			// Stale guesses from racy clients are harmless; drop them.
			return
		}
		that.recordRoundResult(ctx, outcome)
		that.broadcastState()
	case MessageDrawingDone:
		if hangdraw.DrawingDone(that.game) == hangdraw.OutcomeResumed {
			that.broadcastState()
		}
	case MessagePlayAgain:
		if hangdraw.PlayAgain(that.game) == hangdraw.OutcomeRematch {
			that.broadcastState()
		}
	case MessageSyncRequest:
		that.sendStateTo(conn)
	default:
		log.Debug("dropping message of unknown type", "type", msg.Type)
	}
}

func (that *Room) handleJoin(conn Conn, msg *Message) {
	log := that.logger.With("method", "handleJoin", "playerID", msg.PlayerID)

	if msg.PlayerID == "" {
		log.Debug("dropping join without player id")
		return
	}

	switch hangdraw.AddPlayer(that.game, msg.PlayerID, msg.PlayerName) {
	case hangdraw.OutcomeJoined:
		that.bindConn(conn, msg.PlayerID)
		log.Info("player joined", "playerName", msg.PlayerName)
		that.broadcastState()
	case hangdraw.OutcomeReconnected:
		that.bindConn(conn, msg.PlayerID)
		log.Info("player reconnected")
		that.sendStateTo(conn)
	default:
		// Room already has two players; the join is ignored.
		log.Info("room is full, join ignored")
	}
}

func (that *Room) handleClose(conn Conn) {
	log := that.logger.With("method", "handleClose")

	playerID, ok := that.conns[conn]
	if !ok {
		return
	}
	delete(that.conns, conn)

	if playerID == "" {
		return
	}

	tabs := that.playerConns[playerID]
	delete(tabs, conn)
	if len(tabs) > 0 {
		// Another tab of the same player is still connected.
		return
	}
	delete(that.playerConns, playerID)

	playerName, outcome := hangdraw.RemovePlayer(that.game, playerID)
	if outcome != hangdraw.OutcomeLeft {
		return
	}

	log.Info("player left", "playerID", playerID, "playerName", playerName)

	payload, err := encodePlayerLeft(playerName, that.game)
	if err != nil {
		log.Error("failed to encode player-left message", "error", err)
		return
	}

	for other := range that.conns {
		other.SendText(payload)
	}
}

func (that *Room) bindConn(conn Conn, playerID string) {
	if previous := that.conns[conn]; previous != "" && previous != playerID {
		delete(that.playerConns[previous], conn)
	}

	that.conns[conn] = playerID

	tabs, ok := that.playerConns[playerID]
	if !ok {
		tabs = make(map[Conn]struct{})
		that.playerConns[playerID] = tabs
	}
	tabs[conn] = struct{}{}
}

// recordRoundResult pushes the winner of a finished round to the leaderboard.
// The write happens off the room goroutine so that no action handler blocks
// on external I/O.
func (that *Room) recordRoundResult(ctx context.Context, outcome hangdraw.Outcome) {
	if that.recorder == nil {
		return
	}

	var winner *entity.Player
	switch outcome {
	case hangdraw.OutcomeWin:
		winner = that.game.PlayerByRole(entity.RoleGuesser)
	case hangdraw.OutcomeLoss:
		winner = that.game.PlayerByRole(entity.RoleSetter)
	default:
		return
	}

	if winner == nil {
		return
	}

	log := that.logger.With("method", "recordRoundResult")
	playerName := winner.Name

	go func() {
		recordCtx, cancel := context.WithTimeout(ctx, recordWinTimeout)
		defer cancel()

		if err := that.recorder.RecordWin(recordCtx, playerName); err != nil {
			log.Error("failed to record win", "playerName", playerName, "error", err)
		}
	}()
}

// broadcastState sends the full game state to every connection in the room.
// Always a full state replace, never a diff.
func (that *Room) broadcastState() {
	payload, err := encodeSync(that.game)
	if err != nil {
		that.logger.Error("failed to encode state", "error", err)
		return
	}

	for conn := range that.conns {
		conn.SendText(payload)
	}
}

func (that *Room) sendStateTo(conn Conn) {
	payload, err := encodeSync(that.game)
	if err != nil {
		that.logger.Error("failed to encode state", "error", err)
		return
	}

	conn.SendText(payload)
}
