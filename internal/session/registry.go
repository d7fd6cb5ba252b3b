package session

import (
	"context"
	"log/slog"
	"sync"
)

// Registry keeps one Room per room id, created lazily on first touch. Rooms
// live in memory for the lifetime of the process.
type Registry struct {
	logger   *slog.Logger
	recorder WinRecorder

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry(logger *slog.Logger, recorder WinRecorder) *Registry {
	return &Registry{
		logger:   logger,
		recorder: recorder,
		rooms:    make(map[string]*Room),
	}
}

// GetOrCreate returns the room for the given id, starting its event loop on
// first use. The loop runs until ctx is canceled.
func (that *Registry) GetOrCreate(ctx context.Context, roomID string) *Room {
	that.mu.RLock()
	room, ok := that.rooms[roomID]
	that.mu.RUnlock()

	if ok {
		return room
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if room, ok = that.rooms[roomID]; ok {
		return room
	}

	room = newRoom(that.logger, roomID, that.recorder)
	that.rooms[roomID] = room

	go room.Run(ctx)

	that.logger.Info("room created", "roomID", roomID)

	return room
}

// Len reports the number of live rooms.
func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}
