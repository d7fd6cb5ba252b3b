package session

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := NewRegistry(logger, nil)

	// When: the same room id is requested twice
	first := registry.GetOrCreate(ctx, "ROOM1")
	second := registry.GetOrCreate(ctx, "ROOM1")

	// Then: both calls return the same room instance
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, registry.Len())

	// When: a different room id is requested
	other := registry.GetOrCreate(ctx, "ROOM2")

	// Then: an independent room is created
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.Len())
}

func TestCanvas_Relay(t *testing.T) {
	// Given: three canvas connections
	canvas := NewCanvas()
	sender := &fakeConn{id: "c1"}
	peer1 := &fakeConn{id: "c2"}
	peer2 := &fakeConn{id: "c3"}
	canvas.Join(sender)
	canvas.Join(peer1)
	canvas.Join(peer2)

	// When: the sender relays a text frame
	canvas.Relay(sender, false, []byte("stroke"))

	// Then: only the peers receive it
	assert.Equal(t, 0, sender.sent())
	assert.Equal(t, 1, peer1.sent())
	assert.Equal(t, 1, peer2.sent())

	// When: a peer leaves
	canvas.Leave(peer2)
	canvas.Relay(sender, false, []byte("stroke"))

	// Then: it no longer receives frames
	assert.Equal(t, 2, peer1.sent())
	assert.Equal(t, 1, peer2.sent())
	assert.Equal(t, 2, canvas.Len())
}
