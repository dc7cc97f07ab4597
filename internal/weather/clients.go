package weather

//go:generate mockgen -destination=./clients_mock_test.go -package=weather -source=clients.go

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
)

// Provider defines the contract for a source of current weather.
type Provider interface {
	// Current returns a reading for place. Failures wrap domain.ErrRequestFailed.
	Current(ctx context.Context, place string) (Snapshot, error)
}

// EventPublisher pushes notifications to the page session.
type EventPublisher interface {
	Publish(sessionID uuid.UUID, ev domain.Event)
}

// simulatedProvider invents a plausible reading after a fixed delay.
type simulatedProvider struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
	now   func() time.Time
}

type ProviderOption func(*simulatedProvider)

func WithRand(r *rand.Rand) ProviderOption {
	return func(p *simulatedProvider) { p.rng = r }
}

func WithDelay(d time.Duration) ProviderOption {
	return func(p *simulatedProvider) { p.delay = d }
}

// NewSimulatedProvider is the constructor for the fake provider. Readings
// stay within 15..34 °C, 40..79 % humidity and 5..19 km/h wind.
func NewSimulatedProvider(opts ...ProviderOption) Provider {
	p := &simulatedProvider{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		delay: 1000 * time.Millisecond,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *simulatedProvider) Current(ctx context.Context, place string) (Snapshot, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Snapshot{}, fmt.Errorf("%w: %v", domain.ErrRequestFailed, ctx.Err())
	case <-timer.C:
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Place:        place,
		TemperatureC: 15 + p.rng.Intn(20),
		Condition:    Conditions[p.rng.Intn(len(Conditions))],
		HumidityPct:  40 + p.rng.Intn(40),
		WindKph:      5 + p.rng.Intn(15),
		ObservedAt:   p.now().UTC(),
	}, nil
}
