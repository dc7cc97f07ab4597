package page

//go:generate mockgen -destination=./clients_mock_test.go -package=page -source=clients.go

import (
	"github.com/google/uuid"

	"kisanmitra/internal/advisory"
	"kisanmitra/internal/assistant"
	"kisanmitra/internal/domain"
	"kisanmitra/internal/weather"
)

// WeatherPanel is what the page needs from the weather panel.
type WeatherPanel interface {
	State(sessionID uuid.UUID, lang domain.Language) weather.View
	Discard(sessionID uuid.UUID)
	Sessions() []uuid.UUID
}

// AssistantPanel is what the page needs from the chat assistant.
type AssistantPanel interface {
	Open(sessionID uuid.UUID, lang domain.Language) []assistant.Message
	State(sessionID uuid.UUID, lang domain.Language) assistant.View
	Discard(sessionID uuid.UUID)
	Sessions() []uuid.UUID
}

// ServicesPanel is what the page needs from the agricultural services panel.
type ServicesPanel interface {
	State(sessionID uuid.UUID, lang domain.Language) advisory.View
	Discard(sessionID uuid.UUID)
	Sessions() []uuid.UUID
}

// EventStream ends the live event subscriptions of a closed page.
type EventStream interface {
	CloseSession(sessionID uuid.UUID)
}
