package inference

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/logger"
)

var validate = validator.New()

// Handler is the http api layer for the inference service.
type Handler struct {
	responder Responder
}

// NewHandler creates a new handler injecting the responder.
func NewHandler(r Responder) *Handler {
	return &Handler{
		responder: r,
	}
}

// RegisterRoutes attaches the inference endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/inference/chat", h.handleChat)
	r.Post("/inference/analyze", h.handleAnalyze)
}

// --- DTOs ---

// chatRequest is also what httpResponder sends.
type chatRequest struct {
	Language string `json:"language" validate:"max=32"`
	Question string `json:"question" validate:"required,max=4000"`
}

type analyzeRequest struct {
	Language  string `json:"language" validate:"max=32"`
	Kind      string `json:"kind" validate:"required,oneof=crop fertilizer disease"`
	Text      string `json:"text,omitempty" validate:"max=4000"`
	ImageName string `json:"image_name,omitempty" validate:"max=255"`
}

type answerResponse struct {
	Response string `json:"response"`
}

// --- Handlers ---

// handleChat answers a single question. Unknown languages fall back to english.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.responder.Chat(r.Context(), domain.Language(req.Language), req.Question)
	if err != nil {
		h.fail(w, r, "chat", err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Response: answer})
}

// handleAnalyze runs one service analysis.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" && req.ImageName == "" {
		writeError(w, http.StatusBadRequest, "Either text or image_name is required")
		return
	}

	q := Query{Text: req.Text, ImageName: req.ImageName}
	answer, err := h.responder.Analyze(r.Context(), domain.Language(req.Language), domain.ServiceKind(req.Kind), q)
	if err != nil {
		h.fail(w, r, "analyze", err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Response: answer})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.WithContext(r.Context()).Error("inference failed", zap.String("op", op), zap.Error(err))
	if errors.Is(err, domain.ErrRequestFailed) {
		writeError(w, http.StatusBadGateway, "Could not produce a response")
		return
	}
	writeError(w, http.StatusInternalServerError, "Could not produce a response")
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
