package game

import (
	"context"
	"sort"
	"sync"
)

// InMemoryResultStore is a process-local ResultStore.
type InMemoryResultStore struct {
	mu sync.Mutex
	m  map[string]Result
}

func NewInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{
		m: make(map[string]Result),
	}
}

func (s *InMemoryResultStore) Record(_ context.Context, res Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[res.SessionID] = res
	return nil
}

func (s *InMemoryResultStore) Load(_ context.Context, sessionID string) (Result, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.m[sessionID]
	return res, ok, nil
}

func (s *InMemoryResultStore) Fastest(_ context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var won []Result
	for _, r := range s.m {
		if r.Won {
			won = append(won, r)
		}
	}
	sort.Slice(won, func(i, j int) bool { return won[i].Elapsed < won[j].Elapsed })
	if len(won) > n {
		won = won[:n]
	}
	return won, nil
}

// Len reports how many results are held.
func (s *InMemoryResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
