package state

import (
	"sync"

	"github.com/gitter-badger/talk-5/domain"
)

// Store serializes Reduce calls so there is a single writer.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (s *Store) Apply(e domain.Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, e)
	return s.state
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
