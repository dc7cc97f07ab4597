package page

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/panel"
	"kisanmitra/internal/session"
)

var validate = validator.New()

// RouteRegistrar is any handler that mounts routes under a page session.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// Handler serves the page lifecycle and mounts every panel under
// /sessions/{sessionID}.
type Handler struct {
	service Service
	store   session.Store
	panels  []RouteRegistrar
}

func NewHandler(s Service, store session.Store, panels ...RouteRegistrar) *Handler {
	return &Handler{service: s, store: store, panels: panels}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.handleOpen)

	r.Route("/sessions/{"+session.URLParam+"}", func(r chi.Router) {
		r.Use(session.Middleware(h.store))

		r.Get("/", h.handleView)
		r.Delete("/", h.handleClose)
		r.Put("/language", h.handleSetLanguage)

		for _, p := range h.panels {
			p.RegisterRoutes(r)
		}
	})
}

// --- DTOs ---

type languageRequest struct {
	Language string `json:"language" validate:"required,oneof=english hindi telugu"`
}

type openRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=english hindi telugu"`
}

// --- Handlers ---

func (h *Handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported language")
		return
	}

	view, err := h.service.Open(r.Context(), domain.Language(req.Language))
	if err != nil {
		h.fail(w, r, "open", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	id, ok := session.IDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	view, err := h.service.View(r.Context(), id)
	if err != nil {
		h.fail(w, r, "view", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := session.IDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}

	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported language")
		return
	}

	view, err := h.service.SetLanguage(r.Context(), id, domain.Language(req.Language))
	if err != nil {
		h.fail(w, r, "set_language", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	id, ok := session.IDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	if err := h.service.Close(r.Context(), id); err != nil {
		h.fail(w, r, "close", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := panel.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("page request failed", zap.String("op", op), zap.Error(err))
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
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
