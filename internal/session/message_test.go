package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangdraw/hangdraw-backend/internal/entity"
)

func TestEncodeSync(t *testing.T) {
	// Given: a fresh room state
	game := entity.NewGame("ROOM")

	// When: the sync frame is encoded
	payload, err := encodeSync(game)
	require.NoError(t, err)

	// Then: it carries the contract field names
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.JSONEq(t, `"sync"`, string(decoded["type"]))
	assert.Contains(t, string(decoded["state"]), `"roomId":"ROOM"`)
	assert.Contains(t, string(decoded["state"]), `"maxWrongGuesses":6`)
}

func TestEncodePlayerLeft(t *testing.T) {
	// Given: a state after a departure
	game := entity.NewGame("ROOM")

	// When: the notification is encoded
	payload, err := encodePlayerLeft("Alice", game)
	require.NoError(t, err)

	// Then: it names the departed player next to the new state
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.JSONEq(t, `"player-left"`, string(decoded["type"]))
	assert.JSONEq(t, `"Alice"`, string(decoded["playerName"]))
	require.Contains(t, decoded, "state")
}
