package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kisanmitra/internal/domain"
)

// Helpers for passing the loaded page session from the middleware to the
// panel handlers.

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

const sessionKey = contextKey("page_session")

// URLParam is the chi route parameter carrying the session id.
const URLParam = "sessionID"

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session stored by Middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}

// IDFromContext retrieves the session id from the context.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	s, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return s.ID, true
}

// LanguageFromContext is the session's current language, english when no
// session is loaded.
func LanguageFromContext(ctx context.Context) domain.Language {
	s, ok := FromContext(ctx)
	if !ok || s.Language == "" {
		return domain.English
	}
	return s.Language
}

// Middleware loads the session named by the {sessionID} route parameter.
// Unknown ids get 404, malformed ones 400.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, URLParam))
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid session ID")
				return
			}

			s, err := store.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					writeError(w, http.StatusNotFound, "Session not found")
					return
				}
				writeError(w, http.StatusInternalServerError, "Could not load session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
