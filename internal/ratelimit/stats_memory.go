package ratelimit

import (
	"context"
	"sync"
)

type Counters struct {
	Admitted int64
	Rejected int64
}

// MemoryStatsStore counts admission decisions in memory. It never expires
// anything, so it is meant for tests and single-node development setups.
type MemoryStatsStore struct {
	mu          sync.Mutex
	total       Counters
	byOperation map[string]Counters
	byUser      map[string]Counters
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{
		byOperation: make(map[string]Counters),
		byUser:      make(map[string]Counters),
	}
}

func (s *MemoryStatsStore) Record(_ context.Context, ev StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Allowed {
		s.total.Admitted++
	} else {
		s.total.Rejected++
	}

	op := s.byOperation[ev.Operation]
	user := s.byUser[ev.Username]
	if ev.Allowed {
		op.Admitted++
		user.Admitted++
	} else {
		op.Rejected++
		user.Rejected++
	}
	s.byOperation[ev.Operation] = op
	s.byUser[ev.Username] = user

	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) ByOperation() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byOperation))
	for k, v := range s.byOperation {
		out[k] = v
	}
	return out
}

func (s *MemoryStatsStore) ByUser() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byUser))
	for k, v := range s.byUser {
		out[k] = v
	}
	return out
}
