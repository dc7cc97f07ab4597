package panel

import (
	"sync"

	"github.com/google/uuid"
)

// Registry keeps one state value per page session.
type Registry[S any] struct {
	mu     sync.Mutex
	states map[uuid.UUID]S
	create func(id uuid.UUID) S
}

// NewRegistry calls create the first time a session's state is needed.
func NewRegistry[S any](create func(id uuid.UUID) S) *Registry[S] {
	return &Registry[S]{
		states: make(map[uuid.UUID]S),
		create: create,
	}
}

// Get returns the session's state, creating it on first use.
func (r *Registry[S]) Get(id uuid.UUID) S {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[id]
	if !ok {
		s = r.create(id)
		r.states[id] = s
	}
	return s
}

// Lookup returns the session's state without creating it.
func (r *Registry[S]) Lookup(id uuid.UUID) (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[id]
	return s, ok
}

// Remove drops the session's state and returns it.
func (r *Registry[S]) Remove(id uuid.UUID) (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[id]
	delete(r.states, id)
	return s, ok
}

// IDs lists the sessions holding state.
func (r *Registry[S]) IDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	return ids
}
