package inference

//go:generate mockgen -destination=./clients_mock_test.go -package=inference -source=clients.go Responder

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
)

// Responder is the contract for whatever produces assistant answers and
// service analyses: the canned selector today, a real inference backend later.
type Responder interface {
	// Chat answers a farming question in lang.
	Chat(ctx context.Context, lang domain.Language, question string) (string, error)
	// Analyze runs the agricultural service kind over the query.
	Analyze(ctx context.Context, lang domain.Language, kind domain.ServiceKind, q Query) (string, error)
}

// Query is what the services panel submits for analysis.
type Query struct {
	Text      string `json:"text,omitempty"`
	ImageName string `json:"image_name,omitempty"`
}

// cannedResponder picks pre-authored answers after an artificial delay.
// Chat is uniform random per language; Analyze is a direct lookup.
type cannedResponder struct {
	mu           sync.Mutex
	rnd          *rand.Rand
	chatDelay    time.Duration
	serviceDelay time.Duration
}

// Option configures the canned responder.
type Option func(*cannedResponder)

// WithRand replaces the random source used for chat selection.
func WithRand(r *rand.Rand) Option {
	return func(c *cannedResponder) { c.rnd = r }
}

// WithDelays sets the artificial latency of chat and service answers.
func WithDelays(chat, services time.Duration) Option {
	return func(c *cannedResponder) {
		c.chatDelay = chat
		c.serviceDelay = services
	}
}

// NewCannedResponder creates the simulated responder.
func NewCannedResponder(opts ...Option) Responder {
	c := &cannedResponder{
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		chatDelay:    1500 * time.Millisecond,
		serviceDelay: 2000 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cannedResponder) Chat(ctx context.Context, lang domain.Language, question string) (string, error) {
	candidates := i18n.ChatResponses(lang)

	c.mu.Lock()
	answer := candidates[c.rnd.Intn(len(candidates))]
	c.mu.Unlock()

	if err := wait(ctx, c.chatDelay); err != nil {
		return "", fmt.Errorf("%w: chat interrupted: %v", domain.ErrRequestFailed, err)
	}
	return answer, nil
}

func (c *cannedResponder) Analyze(ctx context.Context, lang domain.Language, kind domain.ServiceKind, q Query) (string, error) {
	result, err := i18n.ServiceResult(kind, lang)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}

	if err := wait(ctx, c.serviceDelay); err != nil {
		return "", fmt.Errorf("%w: analysis interrupted: %v", domain.ErrRequestFailed, err)
	}
	return result, nil
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
