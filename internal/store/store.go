// Package store owns the in-memory budget state and every mutation of it.
//
// The store is the only writer of the state. Reads go through Snapshot,
// which returns a deep copy safe to derive from without holding any
// lock. Every mutation schedules a debounced write of the full snapshot
// through the configured Persister; only the last state of a mutation
// burst is written.
package store

import (
	"sync"
	"time"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// WriteDelay is the quiescence window after the last mutation before
// the snapshot is persisted.
const WriteDelay = 150 * time.Millisecond

// A Persister writes the full state snapshot to durable storage.
type Persister interface {
	Save(models.State) error
}

// Store guards the budget state. The zero value is not usable, use New.
type Store struct {
	mu        sync.Mutex
	state     models.State
	persister Persister
	timer     *time.Timer
}

// New returns a store over the given initial state. persister may be
// nil, in which case nothing is ever written.
func New(state models.State, persister Persister) *Store {
	return &Store{
		state:     state,
		persister: persister,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// scheduleSave arranges for the state to be persisted once the write
// delay elapses without another mutation. A pending write is superseded.
// Callers must hold s.mu.
func (s *Store) scheduleSave() {
	if s.persister == nil {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(WriteDelay, s.save)
}

func (s *Store) save() {
	s.mu.Lock()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.persister.Save(snapshot); err != nil {
		log.Error().Err(err).Msg("persisting state snapshot failed")
	}
}

// Flush writes any pending snapshot immediately. It is called on
// shutdown so the debounce window cannot lose the last mutations.
func (s *Store) Flush() {
	s.mu.Lock()
	pending := s.timer != nil && s.timer.Stop()
	s.timer = nil
	s.mu.Unlock()

	if pending && s.persister != nil {
		s.save()
	}
}
