package assistant

//go:generate mockgen -destination=./clients_mock_test.go -package=assistant -source=clients.go

import (
	"context"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/voice"
)

// ChatResponder produces the assistant's answer to one question.
type ChatResponder interface {
	Chat(ctx context.Context, lang domain.Language, question string) (string, error)
}

// EventPublisher pushes events to the page session.
type EventPublisher interface {
	Publish(sessionID uuid.UUID, ev domain.Event)
}

// Voice is the per-session speech bridge, see voice.Bridge.
type Voice interface {
	CanCapture() bool
	CanSpeak() bool
	StartCapture(lang domain.Language) (<-chan voice.Capture, error)
	StopCapture() bool
	Speak(lang domain.Language, text string) (<-chan struct{}, error)
	CancelSpeech() bool
	CaptureState() voice.CaptureState
	PlaybackState() voice.PlaybackState
	Close()
}

// VoiceFactory builds a session's bridge. observe receives its transitions.
type VoiceFactory func(observe func(voice.Change)) Voice

// BridgeFactory builds voice.Bridge instances over caps.
func BridgeFactory(caps voice.Capabilities, rate float64) VoiceFactory {
	return func(observe func(voice.Change)) Voice {
		return voice.NewBridge(caps, rate, observe)
	}
}
