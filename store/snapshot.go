// Package store holds the latest fully-resolved snapshot of each fetched
// collection. Responses land here wholesale; nothing merges incrementally.
package store

import "sync"

// Snapshot guards one logical query's state against the stale-response
// race: every fetch takes a tag from Begin before issuing the request, and
// Commit discards any response whose tag is older than the latest tag
// issued. A superseded request that resolves late can therefore never
// overwrite newer data.
type Snapshot[T any] struct {
	mu     sync.Mutex
	issued uint64
	value  T
	loaded bool
}

// Begin registers a new fetch and returns its tag.
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit installs value if tag still belongs to the latest issued fetch.
// It reports whether the value was applied.
func (s *Snapshot[T]) Commit(tag uint64, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag < s.issued {
		return false
	}
	s.value = value
	s.loaded = true
	return true
}

// Get returns the latest applied value and whether any fetch has completed.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.loaded
}
