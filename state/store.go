package state

import "sync"

// Listener observes accepted transitions. Listeners run synchronously
// on the dispatching goroutine, after the new snapshot is installed.
type Listener func(next State, action Action)

// Store is the single holder of the canonical snapshot. There is
// exactly one logical mutator (user actions plus the clock ticker),
// the mutex only serializes those two entry points.
type Store struct {
	mu        sync.RWMutex
	state     State
	revision  uint64
	listeners []Listener
}

func NewStore(initial State) *Store {
	return &Store{state: initial.Clone()}
}

// State returns a deep copy of the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Revision is bumped on every accepted dispatch.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Dispatch applies the action through the reducer and notifies
// listeners with the resulting snapshot.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Apply(s.state, action)
	s.revision++
	next := s.state.Clone()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(next, action)
	}
	return next
}
