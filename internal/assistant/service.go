package assistant

//go:generate mockgen -destination=./service_mock_test.go -package=assistant -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/panel"
	"kisanmitra/internal/voice"
)

const panelName = "assistant"

// Service defines the business logic of the assistant panel.
type Service interface {
	// Open greets the user the first time the panel is shown.
	Open(sessionID uuid.UUID, lang domain.Language) []Message
	// Ask sends a question and waits for the answer.
	Ask(ctx context.Context, sessionID uuid.UUID, lang domain.Language, question string) (*Answer, error)
	// StartVoice begins a capture whose transcript becomes the draft.
	StartVoice(sessionID uuid.UUID, lang domain.Language) error
	StopVoice(sessionID uuid.UUID) bool
	StopSpeaking(sessionID uuid.UUID) bool
	History(sessionID uuid.UUID) []Message
	State(sessionID uuid.UUID, lang domain.Language) View
	// Discard stops any speech activity and drops the conversation.
	Discard(sessionID uuid.UUID)
	Sessions() []uuid.UUID
}

// Answer is one completed turn.
type Answer struct {
	Question     Message             `json:"question"`
	Reply        Message             `json:"reply"`
	Notification domain.Notification `json:"notification"`
}

type Labels struct {
	Title         string `json:"title"`
	QuestionLabel string `json:"question_label"`
	Placeholder   string `json:"placeholder"`
	Submit        string `json:"submit"`
	VoiceStart    string `json:"voice_start"`
	VoiceStop     string `json:"voice_stop"`
	Listening     string `json:"listening"`
	Speaking      string `json:"speaking"`
	Thinking      string `json:"thinking"`
}

func LabelsFor(lang domain.Language) Labels {
	return Labels{
		Title:         i18n.T("assistant.title", lang),
		QuestionLabel: i18n.T("assistant.question_label", lang),
		Placeholder:   i18n.T("assistant.placeholder", lang),
		Submit:        i18n.T("assistant.submit", lang),
		VoiceStart:    i18n.T("assistant.voice_start", lang),
		VoiceStop:     i18n.T("assistant.voice_stop", lang),
		Listening:     i18n.T("assistant.listening", lang),
		Speaking:      i18n.T("assistant.speaking", lang),
		Thinking:      i18n.T("assistant.thinking", lang),
	}
}

// View is the panel as the page renders it.
type View struct {
	Labels          Labels    `json:"labels"`
	Messages        []Message `json:"messages"`
	Draft           string    `json:"draft"`
	Thinking        bool      `json:"thinking"`
	Listening       bool      `json:"listening"`
	Speaking        bool      `json:"speaking"`
	VoiceSupported  bool      `json:"voice_supported"`
	SpeechSupported bool      `json:"speech_supported"`
}

type panelState struct {
	gate  *panel.Gate
	log   *Log
	voice Voice

	mu    sync.Mutex
	draft string
}

func (st *panelState) setDraft(text string) {
	st.mu.Lock()
	st.draft = text
	st.mu.Unlock()
}

// service is the concrete implementation of the Service interface.
type service struct {
	responder ChatResponder
	events    EventPublisher
	states    *panel.Registry[*panelState]
}

// NewService is the constructor for the assistant panel.
func NewService(responder ChatResponder, newVoice VoiceFactory, events EventPublisher) Service {
	s := &service{
		responder: responder,
		events:    events,
	}
	s.states = panel.NewRegistry(func(sessionID uuid.UUID) *panelState {
		return &panelState{
			gate: panel.NewGate(),
			log:  NewLog(),
			voice: newVoice(func(c voice.Change) {
				events.Publish(sessionID, domain.Event{Type: c.Channel, State: c.State})
			}),
		}
	})
	return s
}

func (s *service) Open(sessionID uuid.UUID, lang domain.Language) []Message {
	st := s.states.Get(sessionID)
	st.mu.Lock()
	if st.log.Len() == 0 {
		st.log.Append(domain.RoleAssistant, i18n.T("assistant.greeting", lang))
	}
	st.mu.Unlock()
	return st.log.Messages()
}

func (s *service) Ask(ctx context.Context, sessionID uuid.UUID, lang domain.Language, question string) (answer *Answer, err error) {
	defer func() { panel.Record(panelName, err) }()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("question is required: %w", domain.ErrValidation),
			i18n.Notice(domain.LevelError, lang, "assistant.notice.empty_question", ""))
	}

	st := s.states.Get(sessionID)
	if !st.gate.TryEnter() {
		return nil, panel.Fail(s.events, sessionID, domain.ErrPending,
			i18n.Notice(domain.LevelInfo, lang, "common.notice.pending.title", "common.notice.pending.description"))
	}
	defer st.gate.Leave()

	asked := st.log.Append(domain.RoleUser, question)
	s.publishMessage(sessionID, asked)

	text, err := s.responder.Chat(ctx, lang, question)
	if err != nil {
		if !errors.Is(err, domain.ErrRequestFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
		}
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("could not answer question: %w", err),
			i18n.Notice(domain.LevelError, lang, "assistant.notice.failed", ""))
	}

	reply := st.log.Append(domain.RoleAssistant, text)
	s.publishMessage(sessionID, reply)
	st.setDraft("")
	s.speak(st, lang, text)

	n := i18n.Notice(domain.LevelSuccess, lang, "assistant.notice.answered", "")
	panel.Announce(s.events, sessionID, n)
	return &Answer{Question: asked, Reply: reply, Notification: n}, nil
}

// speak reads the reply aloud when the runtime can. Playback problems never
// fail the turn.
func (s *service) speak(st *panelState, lang domain.Language, text string) {
	if !st.voice.CanSpeak() {
		return
	}
	if _, err := st.voice.Speak(lang, text); err != nil {
		logger.Debug("reply not spoken", zap.Error(err))
	}
}

func (s *service) StartVoice(sessionID uuid.UUID, lang domain.Language) error {
	st := s.states.Get(sessionID)

	captures, err := st.voice.StartCapture(lang)
	switch {
	case errors.Is(err, domain.ErrCapabilityUnavailable):
		return panel.Fail(s.events, sessionID, err,
			i18n.Notice(domain.LevelError, lang, "assistant.notice.voice_unsupported", ""))
	case errors.Is(err, domain.ErrBusy):
		return panel.Fail(s.events, sessionID, err,
			i18n.Notice(domain.LevelInfo, lang, "assistant.notice.voice_busy", ""))
	case err != nil:
		return fmt.Errorf("could not start capture: %w", err)
	}

	go func() {
		for c := range captures {
			if c.Err != nil {
				logger.Debug("voice capture failed", zap.String("session_id", sessionID.String()), zap.Error(c.Err))
				panel.Announce(s.events, sessionID,
					i18n.Notice(domain.LevelError, lang, "assistant.notice.voice_failed", ""))
				continue
			}
			// the transcript fills the input; it is never submitted here
			st.setDraft(c.Text)
			s.events.Publish(sessionID, domain.Event{Type: domain.EventDraft, Text: c.Text})
		}
	}()
	return nil
}

func (s *service) StopVoice(sessionID uuid.UUID) bool {
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return false
	}
	return st.voice.StopCapture()
}

func (s *service) StopSpeaking(sessionID uuid.UUID) bool {
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return false
	}
	return st.voice.CancelSpeech()
}

func (s *service) History(sessionID uuid.UUID) []Message {
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return []Message{}
	}
	return st.log.Messages()
}

func (s *service) State(sessionID uuid.UUID, lang domain.Language) View {
	v := View{Labels: LabelsFor(lang), Messages: []Message{}}
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return v
	}

	v.Messages = st.log.Messages()
	v.Thinking = st.gate.Pending()
	v.Listening = st.voice.CaptureState() == voice.Listening
	v.Speaking = st.voice.PlaybackState() == voice.Speaking
	v.VoiceSupported = st.voice.CanCapture()
	v.SpeechSupported = st.voice.CanSpeak()
	st.mu.Lock()
	v.Draft = st.draft
	st.mu.Unlock()
	return v
}

func (s *service) Discard(sessionID uuid.UUID) {
	if st, ok := s.states.Remove(sessionID); ok {
		st.voice.Close()
	}
}

func (s *service) Sessions() []uuid.UUID {
	return s.states.IDs()
}

func (s *service) publishMessage(sessionID uuid.UUID, m Message) {
	s.events.Publish(sessionID, domain.Event{
		Type:  domain.EventMessage,
		State: string(m.Role),
		Text:  m.Text,
		At:    m.CreatedAt,
	})
}
