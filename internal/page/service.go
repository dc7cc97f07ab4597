// Package page composes the panels into one page bound to a session.
package page

//go:generate mockgen -destination=./service_mock_test.go -package=page -source=service.go Service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisanmitra/internal/advisory"
	"kisanmitra/internal/assistant"
	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/session"
	"kisanmitra/internal/weather"
)

// Service defines the page lifecycle.
type Service interface {
	// Open starts a page in lang. An empty lang means english.
	Open(ctx context.Context, lang domain.Language) (*View, error)
	View(ctx context.Context, sessionID uuid.UUID) (*View, error)
	// SetLanguage switches the page language. Anything outside the
	// supported set fails with domain.ErrUnsupportedLanguage.
	SetLanguage(ctx context.Context, sessionID uuid.UUID, lang domain.Language) (*View, error)
	// Close drops every panel's state and the session itself.
	Close(ctx context.Context, sessionID uuid.UUID) error
	// Sweep drops the panel state of sessions that expired without being
	// closed and reaps the store. It returns how many sessions it dropped.
	Sweep(ctx context.Context) (int, error)
}

// Header is the page heading.
type Header struct {
	Title         string `json:"title"`
	Tagline       string `json:"tagline"`
	LanguageLabel string `json:"language_label"`
	Footer        string `json:"footer"`
}

// LanguageOption is one entry of the selector with the current choice marked.
type LanguageOption struct {
	i18n.Option
	Selected bool `json:"selected"`
}

// View is the whole page as the browser renders it.
type View struct {
	SessionID uuid.UUID        `json:"session_id"`
	Language  domain.Language  `json:"language"`
	Header    Header           `json:"header"`
	Languages []LanguageOption `json:"languages"`
	Weather   weather.View     `json:"weather"`
	Assistant assistant.View   `json:"assistant"`
	Services  advisory.View    `json:"services"`
}

type service struct {
	store     session.Store
	weather   WeatherPanel
	assistant AssistantPanel
	services  ServicesPanel
	events    EventStream
}

// NewService is the constructor for the page composer.
func NewService(store session.Store, w WeatherPanel, a AssistantPanel, s ServicesPanel, events EventStream) Service {
	return &service{
		store:     store,
		weather:   w,
		assistant: a,
		services:  s,
		events:    events,
	}
}

func parseLanguage(lang domain.Language) (domain.Language, error) {
	if lang == "" {
		return i18n.DefaultLanguage, nil
	}
	l, ok := domain.ParseLanguage(string(lang))
	if !ok {
		return "", fmt.Errorf("language %q: %w", lang, domain.ErrUnsupportedLanguage)
	}
	return l, nil
}

func (s *service) Open(ctx context.Context, lang domain.Language) (*View, error) {
	lang, err := parseLanguage(lang)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{Language: lang}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.assistant.Open(sess.ID, lang)

	logger.WithContext(ctx).Info("page opened",
		zap.String("session_id", sess.ID.String()),
		zap.String("language", string(lang)))
	return s.compose(sess), nil
}

func (s *service) View(ctx context.Context, sessionID uuid.UUID) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return s.compose(sess), nil
}

func (s *service) SetLanguage(ctx context.Context, sessionID uuid.UUID, lang domain.Language) (*View, error) {
	l, ok := domain.ParseLanguage(string(lang))
	if !ok {
		return nil, fmt.Errorf("language %q: %w", lang, domain.ErrUnsupportedLanguage)
	}
	if err := s.store.SetLanguage(ctx, sessionID, l); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	return s.View(ctx, sessionID)
}

func (s *service) Close(ctx context.Context, sessionID uuid.UUID) error {
	s.discard(sessionID)

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}

	logger.WithContext(ctx).Info("page closed", zap.String("session_id", sessionID.String()))
	return nil
}

func (s *service) Sweep(ctx context.Context) (int, error) {
	held := make(map[uuid.UUID]struct{})
	for _, ids := range [][]uuid.UUID{s.weather.Sessions(), s.assistant.Sessions(), s.services.Sessions()} {
		for _, id := range ids {
			held[id] = struct{}{}
		}
	}

	swept := 0
	for id := range held {
		live, err := s.store.Exists(ctx, id)
		if err != nil {
			return swept, fmt.Errorf("failed to check session %s: %w", id, err)
		}
		if live {
			continue
		}
		s.discard(id)
		swept++
	}

	reaped, err := s.store.Reap(ctx)
	if err != nil {
		return swept, fmt.Errorf("failed to reap sessions: %w", err)
	}
	if swept > 0 || reaped > 0 {
		logger.Info("expired sessions swept", zap.Int("panels", swept), zap.Int("reaped", reaped))
	}
	return swept, nil
}

// RunSweeper calls Sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, s Service, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("session sweep failed", zap.Error(err))
			}
		}
	}
}

func (s *service) discard(sessionID uuid.UUID) {
	s.weather.Discard(sessionID)
	s.assistant.Discard(sessionID)
	s.services.Discard(sessionID)
	s.events.CloseSession(sessionID)
}

func (s *service) compose(sess *session.Session) *View {
	lang := sess.Language
	options := i18n.Languages()
	langs := make([]LanguageOption, 0, len(options))
	for _, o := range options {
		langs = append(langs, LanguageOption{Option: o, Selected: o.ID == lang})
	}

	return &View{
		SessionID: sess.ID,
		Language:  lang,
		Header: Header{
			Title:         i18n.T("page.title", lang),
			Tagline:       i18n.T("page.tagline", lang),
			LanguageLabel: i18n.T("page.language_label", lang),
			Footer:        i18n.T("page.footer", lang),
		},
		Languages: langs,
		Weather:   s.weather.State(sess.ID, lang),
		Assistant: s.assistant.State(sess.ID, lang),
		Services:  s.services.State(sess.ID, lang),
	}
}
