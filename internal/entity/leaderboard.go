package entity

// LeaderboardEntry is one row of the cumulative win leaderboard.
type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Wins       int64  `json:"wins"`
}
