package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryResultStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryResultStore()

	results := []Result{
		{SessionID: "a", Won: true, Elapsed: 40 * time.Second, Phase: PhaseWon},
		{SessionID: "b", Won: false, Elapsed: 5 * time.Second, Phase: PhaseExhausted},
		{SessionID: "c", Won: true, Elapsed: 10 * time.Second, Phase: PhaseWon},
		{SessionID: "d", Won: true, Elapsed: 20 * time.Second, Phase: PhaseWon},
	}
	for _, r := range results {
		require.NoError(t, s.Record(ctx, r))
	}
	require.Equal(t, 4, s.Len())

	got, ok, err := s.Load(ctx, "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, PhaseExhausted, got.Phase)

	_, ok, err = s.Load(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	fastest, err := s.Fastest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, fastest, 2)
	require.Equal(t, "c", fastest[0].SessionID)
	require.Equal(t, "d", fastest[1].SessionID)
}

func TestInMemoryResultStore_FastestNonPositive(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryResultStore()
	require.NoError(t, s.Record(ctx, Result{SessionID: "a", Won: true, Elapsed: time.Second, Phase: PhaseWon}))

	for _, n := range []int{0, -1} {
		got, err := s.Fastest(ctx, n)
		require.NoError(t, err)
		require.Empty(t, got, "n=%d", n)
	}

	got, err := s.Fastest(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
