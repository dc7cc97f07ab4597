package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
)

// Message is one chat turn.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	Role      domain.Role `json:"role"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

// Log is the ordered, append-only conversation of one page session. It lives
// in memory only and dies with the session.
type Log struct {
	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// Append adds a message and returns it.
func (l *Log) Append(role domain.Role, text string) Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := Message{ID: uuid.New(), Role: role, Text: text, CreatedAt: l.now().UTC()}
	l.messages = append(l.messages, m)
	return m
}

// Messages returns a copy of the log in order.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Message(nil), l.messages...)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
