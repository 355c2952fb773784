//go:build integration

package game

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rdb.Ping(ctx).Err(), "redis is not reachable")
	return rdb
}

func TestRedisResultStore_RecordLoad(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	require.NoError(t, rdb.FlushDB(ctx).Err())

	store := NewRedisResultStore(rdb, time.Hour)

	// play a real session and record it through the finish hook
	s := NewSession(roygSecret, Config{}, identityRand{}, quietLogger())
	s.OnFinish = func(r Result) { require.NoError(t, store.Record(ctx, r)) }

	res, err := s.Play(ctx, &scriptedPrompter{answers: guesses(miss, roygSecret)}, &recordingPresenter{})
	require.NoError(t, err)

	got, ok, err := store.Load(ctx, res.SessionID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, PhaseWon, got.Phase)
	require.Equal(t, 2, got.Attempts)
	require.Equal(t, roygSecret, got.Secret)

	_, ok, err = store.Load(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisResultStore_Fastest(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	require.NoError(t, rdb.FlushDB(ctx).Err())

	store := NewRedisResultStore(rdb, time.Hour)

	require.NoError(t, store.Record(ctx, Result{SessionID: "slow", Won: true, Elapsed: 90 * time.Second}))
	require.NoError(t, store.Record(ctx, Result{SessionID: "fast", Won: true, Elapsed: 12 * time.Second}))
	require.NoError(t, store.Record(ctx, Result{SessionID: "lost", Won: false, Elapsed: time.Second}))

	// leaderboard entry without snapshot is pruned
	require.NoError(t, rdb.ZAdd(ctx, leaderboardKey, redis.Z{Score: 1, Member: "expired"}).Err())

	top, err := store.Fastest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "fast", top[0].SessionID)
	require.Equal(t, "slow", top[1].SessionID)

	n, err := rdb.ZCard(ctx, leaderboardKey).Result()
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestRedisResultStore_FastestSkipsExpired(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	require.NoError(t, rdb.FlushDB(ctx).Err())

	store := NewRedisResultStore(rdb, time.Hour)

	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("live-%d", i)
		require.NoError(t, store.Record(ctx, Result{SessionID: id, Won: true, Elapsed: time.Duration(i) * 10 * time.Second}))
	}
	// the quickest ranks point at snapshots that are gone
	for i := 1; i <= 3; i++ {
		require.NoError(t, rdb.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(i), Member: fmt.Sprintf("gone-%d", i)}).Err())
	}

	top, err := store.Fastest(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "live-1", top[0].SessionID)
	require.Equal(t, "live-2", top[1].SessionID)
	require.Equal(t, "live-3", top[2].SessionID)

	n, err := rdb.ZCard(ctx, leaderboardKey).Result()
	require.NoError(t, err)
	require.Equal(t, int64(4), n)

	top, err = store.Fastest(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestRedisResultStore_LeaderboardCapped(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	require.NoError(t, rdb.FlushDB(ctx).Err())

	store := NewRedisResultStore(rdb, time.Hour)
	store.maxRank = 3

	for i := 5; i >= 1; i-- {
		id := fmt.Sprintf("win-%d", i)
		require.NoError(t, store.Record(ctx, Result{SessionID: id, Won: true, Elapsed: time.Duration(i) * time.Second}))
	}

	ids, err := rdb.ZRange(ctx, leaderboardKey, 0, -1).Result()
	require.NoError(t, err)
	require.Equal(t, []string{"win-1", "win-2", "win-3"}, ids)
}
