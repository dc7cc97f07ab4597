// Package session keeps page sessions: the id handed to the browser and the
// language selected on that page.
package session

//go:generate mockgen -destination=./store_mock_test.go -package=session -source=store.go Store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
)

// Session is one open page.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Language  domain.Language `json:"language"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store is the contract for session persistence. Lookups of unknown or
// expired ids return domain.ErrSessionNotFound.
type Store interface {
	// Create assigns an id and timestamps and saves the session.
	Create(ctx context.Context, s *Session) error
	// Get loads the session and counts as activity: the ttl restarts.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	SetLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Exists reports whether the session is live without refreshing it.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Reap removes expired sessions and returns how many went.
	Reap(ctx context.Context) (int, error)
}

// memoryStore keeps sessions in process memory. Entries expire after ttl
// of inactivity; a zero ttl never expires.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Session
	ttl      time.Duration
	now      func() time.Time
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryStore)

// WithClock replaces time.Now as the store's time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *memoryStore) { m.now = now }
}

func NewMemoryStore(ttl time.Duration, opts ...MemoryOption) Store {
	m := &memoryStore{
		sessions: make(map[uuid.UUID]Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *memoryStore) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = uuid.New()
	s.CreatedAt = m.now().UTC()
	s.UpdatedAt = s.CreatedAt
	m.sessions[s.ID] = *s
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.live(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	s.UpdatedAt = m.now().UTC()
	m.sessions[id] = s
	return &s, nil
}

func (m *memoryStore) SetLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.live(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Language = lang
	s.UpdatedAt = m.now().UTC()
	m.sessions[id] = s
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.live(id); !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memoryStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.live(id)
	return ok, nil
}

func (m *memoryStore) Reap(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id := range m.sessions {
		if _, ok := m.live(id); !ok {
			n++
		}
	}
	return n, nil
}

// live returns the session unless it is missing or expired. Expired
// entries are dropped. Callers hold m.mu.
func (m *memoryStore) live(id uuid.UUID) (Session, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	if m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		return Session{}, false
	}
	return s, true
}
