package session

import (
	"encoding/json"
	"fmt"

	"github.com/hangdraw/hangdraw-backend/internal/entity"
)

const (
	MessageJoin        = "join"
	MessageStartGame   = "start-game"
	MessageSetWord     = "set-word"
	MessageGuess       = "guess"
	MessageDrawingDone = "drawing-done"
	MessagePlayAgain   = "play-again"
	MessageSyncRequest = "sync-request"

	MessageSync       = "sync"
	MessagePlayerLeft = "player-left"
)

// Message is the inbound wire envelope. All action payloads are flat, so a
// single struct covers every message type; unused fields stay empty.
type Message struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Word       string `json:"word,omitempty"`
	Letter     string `json:"letter,omitempty"`
}

type syncMessage struct {
	Type  string       `json:"type"`
	State *entity.Game `json:"state"`
}

type playerLeftMessage struct {
	Type       string       `json:"type"`
	PlayerName string       `json:"playerName"`
	State      *entity.Game `json:"state"`
}

func encodeSync(game *entity.Game) ([]byte, error) {
	payload, err := json.Marshal(syncMessage{Type: MessageSync, State: game})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync message: %w", err)
	}

	return payload, nil
}

func encodePlayerLeft(playerName string, game *entity.Game) ([]byte, error) {
	payload, err := json.Marshal(playerLeftMessage{Type: MessagePlayerLeft, PlayerName: playerName, State: game})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player-left message: %w", err)
	}

	return payload, nil
}
