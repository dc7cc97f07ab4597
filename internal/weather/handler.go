package weather

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"kisanmitra/internal/logger"
	"kisanmitra/internal/panel"
	"kisanmitra/internal/session"
)

var validate = validator.New()

// Handler is the http layer of the weather panel. Routes are relative to
// the page session and must run behind session.Middleware.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/weather", h.handleState)
	r.Post("/weather", h.handleLookup)
}

type lookupRequest struct {
	// Emptiness is the service's check so that it gets a notification.
	City string `json:"city" validate:"max=200"`
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := session.IDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.service.Lookup(r.Context(), sessionID, session.LanguageFromContext(r.Context()), req.City)
	if err != nil {
		status, body := panel.ErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.WithContext(r.Context()).Error("weather lookup failed", zap.Error(err))
		}
		writeJSON(w, status, body)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := session.IDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, h.service.State(sessionID, session.LanguageFromContext(r.Context())))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
