package state

import "sync"

// Store is the single cross-task shared resource: a reader-writer cell
// holding one State. Readers get a whole snapshot; writers replace the whole
// value. A reader can never observe fields from two different writes.
type Store struct {
	mu  sync.RWMutex
	cur State
}

// NewStore returns a store seeded with the default state.
func NewStore() *Store {
	return &Store{cur: Default()}
}

// Read returns a snapshot copy. It does not block other readers.
func (s *Store) Read() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Write atomically replaces the whole state.
func (s *Store) Write(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = st
}

// Update applies the read-modify-conditionally-write pattern: mutate reads a
// snapshot into a private copy outside the write lock, and the result is
// written back only if it differs from the current state at write time. It
// reports whether a write happened.
func (s *Store) Update(mutate func(*State)) bool {
	working := s.Read()
	mutate(&working)

	s.mu.Lock()
	defer s.mu.Unlock()
	if working == s.cur {
		return false
	}
	s.cur = working
	return true
}
