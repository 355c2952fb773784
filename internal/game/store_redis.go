package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultStore keeps finished sessions and ranks the fastest wins.
type ResultStore interface {
	ResultRecorder
	Load(ctx context.Context, sessionID string) (Result, bool, error)
	Fastest(ctx context.Context, n int) ([]Result, error)
}

const (
	leaderboardKey = "leaderboard:fastest"

	// slower wins beyond this rank are trimmed on every recorded win
	leaderboardCap = 1000
)

// RedisResultStore stores a JSON snapshot per session (with TTL) and a
// sorted set of won sessions scored by elapsed milliseconds.
type RedisResultStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	maxRank int64
}

func NewRedisResultStore(rdb *redis.Client, ttl time.Duration) *RedisResultStore {
	return &RedisResultStore{rdb: rdb, ttl: ttl, maxRank: leaderboardCap}
}

func (s *RedisResultStore) key(sessionID string) string {
	return fmt.Sprintf("result:%s:snapshot", sessionID)
}

func (s *RedisResultStore) Record(ctx context.Context, res Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(res.SessionID), b, s.ttl)
		if res.Won {
			pipe.ZAdd(ctx, leaderboardKey, redis.Z{
				Score:  float64(res.Elapsed.Milliseconds()),
				Member: res.SessionID,
			})
			pipe.ZRemRangeByRank(ctx, leaderboardKey, s.maxRank, -1)
		}
		return nil
	})
	return err
}

func (s *RedisResultStore) Load(ctx context.Context, sessionID string) (Result, bool, error) {
	val, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}

	var res Result
	if err := json.Unmarshal(val, &res); err != nil {
		return Result{}, false, err
	}
	return res, true, nil
}

// Fastest returns up to n won sessions, quickest first. Leaderboard entries
// whose snapshot expired are skipped and then dropped from the set, so a
// full page is returned whenever enough live entries exist.
func (s *RedisResultStore) Fastest(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}

	out := make([]Result, 0, n)
	var stale []any
	for start := int64(0); len(out) < n; {
		stop := start + int64(n-len(out)) - 1
		ids, err := s.rdb.ZRange(ctx, leaderboardKey, start, stop).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			res, ok, err := s.Load(ctx, id)
			if err != nil {
				return nil, err
			}
			if !ok {
				stale = append(stale, id)
				continue
			}
			out = append(out, res)
		}
		start += int64(len(ids))
	}

	if len(stale) > 0 {
		_ = s.rdb.ZRem(ctx, leaderboardKey, stale...).Err()
	}
	return out, nil
}
