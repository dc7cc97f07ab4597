// Package notify fans panel events out to the WebSocket clients of a page
// session.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/logger"
)

const defaultBuffer = 16

type subscriber struct {
	events chan domain.Event
}

// Hub delivers events to every subscriber of a session. Publishing never
// blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*subscriber]struct{}
	buffer int
	now    func() time.Time
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[uuid.UUID]map[*subscriber]struct{}),
		buffer: buffer,
		now:    time.Now,
	}
}

// Subscribe registers a listener for sessionID. The returned func
// unsubscribes and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(sessionID uuid.UUID) (<-chan domain.Event, func()) {
	sub := &subscriber{events: make(chan domain.Event, h.buffer)}

	h.mu.Lock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[*subscriber]struct{})
	}
	h.subs[sessionID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return sub.events, func() {
		once.Do(func() { h.remove(sessionID, sub) })
	}
}

// Publish stamps ev with the session id and time and delivers it.
func (h *Hub) Publish(sessionID uuid.UUID, ev domain.Event) {
	ev.SessionID = sessionID
	if ev.At.IsZero() {
		ev.At = h.now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[sessionID] {
		select {
		case sub.events <- ev:
		default:
			logger.Debug("dropping event for slow subscriber",
				zap.String("session_id", sessionID.String()),
				zap.String("type", string(ev.Type)),
			)
		}
	}
}

// CloseSession disconnects every subscriber of sessionID.
func (h *Hub) CloseSession(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[sessionID] {
		close(sub.events)
	}
	delete(h.subs, sessionID)
}

// Subscribers counts the listeners of sessionID.
func (h *Hub) Subscribers(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

func (h *Hub) remove(sessionID uuid.UUID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[sessionID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		// already closed by CloseSession
		return
	}
	delete(set, sub)
	close(sub.events)
	if len(set) == 0 {
		delete(h.subs, sessionID)
	}
}
