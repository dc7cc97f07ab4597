package assistant

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

// Handler is the http layer of the assistant panel. It must run behind
// session.Middleware.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assistant", func(r chi.Router) {
		r.Get("/", h.handleState)
		r.Get("/messages", h.handleHistory)
		r.Post("/questions", h.handleAsk)
		r.Post("/voice/start", h.handleStartVoice)
		r.Post("/voice/stop", h.handleStopVoice)
		r.Post("/speech/cancel", h.handleCancelSpeech)
	})
}

// --- DTOs ---

type askRequest struct {
	Question string `json:"question" validate:"max=4000"`
}

type stoppedResponse struct {
	Stopped bool `json:"stopped"`
}

// --- Handlers ---

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.service.Ask(r.Context(), sess.ID, session.LanguageFromContext(r.Context()), req.Question)
	if err != nil {
		h.fail(w, r, "ask", err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, h.service.History(sess.ID))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, h.service.State(sess.ID, session.LanguageFromContext(r.Context())))
}

// handleStartVoice answers 202; the transcript arrives on the event stream.
func (h *Handler) handleStartVoice(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	if err := h.service.StartVoice(sess.ID, session.LanguageFromContext(r.Context())); err != nil {
		h.fail(w, r, "voice_start", err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"state": "listening"})
}

func (h *Handler) handleStopVoice(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, stoppedResponse{Stopped: h.service.StopVoice(sess.ID)})
}

func (h *Handler) handleCancelSpeech(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, stoppedResponse{Stopped: h.service.StopSpeaking(sess.ID)})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := panel.ErrorResponse(err)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		logger.WithContext(r.Context()).Error("assistant request failed", zap.String("op", op), zap.Error(err))
	}
	writeJSON(w, status, body)
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
