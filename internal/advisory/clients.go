package advisory

//go:generate mockgen -destination=./clients_mock_test.go -package=advisory -source=clients.go

import (
	"context"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/inference"
)

// Analyzer runs one agricultural analysis. inference.Responder satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, lang domain.Language, kind domain.ServiceKind, q inference.Query) (string, error)
}

// EventPublisher pushes notifications to the page session.
type EventPublisher interface {
	Publish(sessionID uuid.UUID, ev domain.Event)
}
