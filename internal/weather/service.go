package weather

//go:generate mockgen -destination=./service_mock_test.go -package=weather -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/panel"
)

const panelName = "weather"

// Service defines the business logic of the weather panel.
type Service interface {
	// Lookup fetches the weather for city. Empty input fails with
	// domain.ErrValidation before the provider is called.
	Lookup(ctx context.Context, sessionID uuid.UUID, lang domain.Language, city string) (*Report, error)
	// State is the panel's current view for the session.
	State(sessionID uuid.UUID, lang domain.Language) View
	// Discard drops the session's panel state.
	Discard(sessionID uuid.UUID)
	// Sessions lists the sessions with panel state.
	Sessions() []uuid.UUID
}

// Report is a successful lookup.
type Report struct {
	Snapshot     Snapshot            `json:"snapshot"`
	Condition    string              `json:"condition_label"`
	Notification domain.Notification `json:"notification"`
}

// Labels are the panel's resolved captions.
type Labels struct {
	Title       string `json:"title"`
	CityLabel   string `json:"city_label"`
	Placeholder string `json:"placeholder"`
	Submit      string `json:"submit"`
	Loading     string `json:"loading"`
	Temperature string `json:"temperature"`
	Status      string `json:"status"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
}

func LabelsFor(lang domain.Language) Labels {
	return Labels{
		Title:       i18n.T("weather.title", lang),
		CityLabel:   i18n.T("weather.city_label", lang),
		Placeholder: i18n.T("weather.placeholder", lang),
		Submit:      i18n.T("weather.submit", lang),
		Loading:     i18n.T("weather.loading", lang),
		Temperature: i18n.T("weather.temperature", lang),
		Status:      i18n.T("weather.status", lang),
		Humidity:    i18n.T("weather.humidity", lang),
		WindSpeed:   i18n.T("weather.wind_speed", lang),
	}
}

// View is the panel as the page renders it.
type View struct {
	Labels    Labels    `json:"labels"`
	City      string    `json:"city"`
	Loading   bool      `json:"loading"`
	Snapshot  *Snapshot `json:"snapshot,omitempty"`
	Condition string    `json:"condition_label,omitempty"`
}

type panelState struct {
	gate *panel.Gate

	mu       sync.Mutex
	city     string
	snapshot *Snapshot
}

// service is the concrete implementation of the Service interface.
type service struct {
	provider Provider
	events   EventPublisher
	states   *panel.Registry[*panelState]
}

// NewService is the constructor for the weather panel.
func NewService(provider Provider, events EventPublisher) Service {
	return &service{
		provider: provider,
		events:   events,
		states: panel.NewRegistry(func(uuid.UUID) *panelState {
			return &panelState{gate: panel.NewGate()}
		}),
	}
}

func (s *service) Lookup(ctx context.Context, sessionID uuid.UUID, lang domain.Language, city string) (report *Report, err error) {
	defer func() { panel.Record(panelName, err) }()

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("city is required: %w", domain.ErrValidation),
			i18n.Notice(domain.LevelError, lang, "weather.notice.empty_city", ""))
	}

	st := s.states.Get(sessionID)
	if !st.gate.TryEnter() {
		return nil, panel.Fail(s.events, sessionID, domain.ErrPending,
			i18n.Notice(domain.LevelInfo, lang, "common.notice.pending.title", "common.notice.pending.description"))
	}
	defer st.gate.Leave()

	st.mu.Lock()
	st.city = city
	st.mu.Unlock()

	snap, err := s.provider.Current(ctx, city)
	if err != nil {
		if !errors.Is(err, domain.ErrRequestFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
		}
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("could not fetch weather for %q: %w", city, err),
			i18n.Notice(domain.LevelError, lang, "weather.notice.failed", ""))
	}

	st.mu.Lock()
	st.snapshot = &snap
	st.mu.Unlock()

	n := domain.Notification{Level: domain.LevelSuccess, Title: i18n.T("weather.notice.fetched", lang, city)}
	panel.Announce(s.events, sessionID, n)
	return &Report{Snapshot: snap, Condition: snap.Condition.Label(lang), Notification: n}, nil
}

func (s *service) State(sessionID uuid.UUID, lang domain.Language) View {
	v := View{Labels: LabelsFor(lang)}
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return v
	}

	v.Loading = st.gate.Pending()
	st.mu.Lock()
	defer st.mu.Unlock()
	v.City = st.city
	if st.snapshot != nil {
		snap := *st.snapshot
		v.Snapshot = &snap
		v.Condition = snap.Condition.Label(lang)
	}
	return v
}

func (s *service) Discard(sessionID uuid.UUID) {
	s.states.Remove(sessionID)
}

func (s *service) Sessions() []uuid.UUID {
	return s.states.IDs()
}
