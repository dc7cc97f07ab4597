package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is one of the closed set of interface languages.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Telugu  Language = "telugu"
)

// SupportedLanguages lists every language in selector order.
var SupportedLanguages = []Language{English, Hindi, Telugu}

// ParseLanguage accepts only the exact language ids.
func ParseLanguage(s string) (Language, bool) {
	for _, l := range SupportedLanguages {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// ServiceKind selects one of the agricultural analyses.
type ServiceKind string

const (
	Crop       ServiceKind = "crop"
	Fertilizer ServiceKind = "fertilizer"
	Disease    ServiceKind = "disease"
)

var ServiceKinds = []ServiceKind{Crop, Fertilizer, Disease}

func ParseServiceKind(s string) (ServiceKind, bool) {
	for _, k := range ServiceKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient, already localized message for the user.
type Notification struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type EventType string

const (
	EventNotification EventType = "notification"
	EventCapture      EventType = "capture"
	EventPlayback     EventType = "playback"
	EventDraft        EventType = "draft"
	EventMessage      EventType = "message"
)

// Event is pushed to the page session's event stream.
type Event struct {
	Type         EventType     `json:"type"`
	SessionID    uuid.UUID     `json:"session_id"`
	Notification *Notification `json:"notification,omitempty"`
	State        string        `json:"state,omitempty"`
	Text         string        `json:"text,omitempty"`
	At           time.Time     `json:"at"`
}
