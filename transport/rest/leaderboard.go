package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

func (that *Server) leaderboardHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "leaderboardHandler")

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := int64(defaultLeaderboardLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxLeaderboardLimit)
	}

	entries, err := that.leaderboard.TopPlayers(r.Context(), limit)
	if err != nil {
		log.Error("failed to get top players", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(entries); err != nil {
		log.Error("failed to encode leaderboard", "error", err)
	}
}
