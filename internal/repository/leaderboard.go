package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hangdraw/hangdraw-backend/internal/entity"
)

const leaderboardKey = "leaderboard:wins"

// LeaderboardRepository accumulates round wins per player name. The room
// session stays purely in-memory; this is a side statistic that survives
// restarts without ever reconstructing room state.
type LeaderboardRepository interface {
	RecordWin(ctx context.Context, playerName string) error
	TopPlayers(ctx context.Context, limit int64) ([]entity.LeaderboardEntry, error)
}

type dbLeaderboard struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
	}
}

func (that *dbLeaderboard) RecordWin(ctx context.Context, playerName string) error {
	if err := that.client.ZIncrBy(ctx, leaderboardKey, 1, playerName).Err(); err != nil {
		return fmt.Errorf("failed to increment wins: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) TopPlayers(ctx context.Context, limit int64) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		return []entity.LeaderboardEntry{}, nil
	}

	scores, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top players: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		name, ok := score.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, entity.LeaderboardEntry{
			PlayerName: name,
			Wins:       int64(score.Score),
		})
	}

	return entries, nil
}
