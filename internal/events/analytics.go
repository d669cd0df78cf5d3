package events

import (
	"context"
	"sync"
)

// CounterSink is the analytics subscriber: it keeps in-memory per-event
// counters. The real aggregation jobs live outside this service; the sink is
// the contract point where they would consume the stream.
type CounterSink struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewCounterSink() *CounterSink {
	return &CounterSink{counts: make(map[string]int64)}
}

func (s *CounterSink) Handle(_ context.Context, e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[e.Name()]++
}

// Snapshot returns a copy of the counters.
func (s *CounterSink) Snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}
