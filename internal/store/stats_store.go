package store

import (
	"context"
	"time"

	"example.com/mastermind/internal/game"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameStats aggregates every recorded game.
type GameStats struct {
	Games       int
	Wins        int
	Losses      int
	AvgAttempts float64       // over won games
	BestTime    time.Duration // fastest win, 0 if none
	LastPlayed  time.Time
}

type StatsStore struct {
	db *pgxpool.Pool
}

func NewStatsStore(db *pgxpool.Pool) *StatsStore {
	return &StatsStore{db: db}
}

// Record stores one finished session. Recording the same session twice is a no-op.
func (s *StatsStore) Record(ctx context.Context, res game.Result) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO game_results (session_id, secret, phase, won, attempts, elapsed_ms, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO NOTHING
	`, res.SessionID, res.Secret.String(), string(res.Phase), res.Won, res.Attempts,
		res.Elapsed.Milliseconds(), res.FinishedAt)
	return err
}

func (s *StatsStore) Summary(ctx context.Context) (GameStats, error) {
	var (
		st         GameStats
		bestMs     int64
		lastPlayed *time.Time
	)
	err := s.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE won),
			coalesce(avg(attempts) FILTER (WHERE won), 0)::float8,
			coalesce(min(elapsed_ms) FILTER (WHERE won), 0),
			max(finished_at)
		FROM game_results
	`).Scan(&st.Games, &st.Wins, &st.AvgAttempts, &bestMs, &lastPlayed)
	if err != nil {
		return GameStats{}, err
	}

	st.Losses = st.Games - st.Wins
	st.BestTime = time.Duration(bestMs) * time.Millisecond
	if lastPlayed != nil {
		st.LastPlayed = *lastPlayed
	}
	return st, nil
}
