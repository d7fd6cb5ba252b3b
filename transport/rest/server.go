package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hangdraw/hangdraw-backend/internal/entity"
)

type leaderboard interface {
	TopPlayers(ctx context.Context, limit int64) ([]entity.LeaderboardEntry, error)
}

type Server struct {
	logger      *slog.Logger
	leaderboard leaderboard
}

func New(logger *slog.Logger, leaderboard leaderboard) *Server {
	return &Server{
		logger:      logger.With("component", "rest"),
		leaderboard: leaderboard,
	}
}

func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/leaderboard", that.leaderboardHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
