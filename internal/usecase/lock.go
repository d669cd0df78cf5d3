package usecase

import "sync"

// keyedMutex provides per-key mutual exclusion. Payment and booking
// read-modify-write cycles run under the key of the aggregate they mutate;
// distinct keys never contend. Entries are never evicted: the key space is
// bounded by live aggregates touched by this process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
