package advisory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/panel"
	"kisanmitra/internal/session"
)

const (
	// maxUpload bounds a request body carrying an image.
	maxUpload = 10 << 20
	// maxField fits the longest accepted text, 4000 runes of up to 4 bytes.
	maxField = 4 * 4000
)

var validate = validator.New()

// Handler is the http layer of the services panel. It must run behind
// session.Middleware.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.handleState)
		r.Post("/back", h.handleBack)
		r.Post("/image", h.handleAttach)
		r.Post("/analyze", h.handleAnalyze)
		r.Post("/{kind}", h.handleSelect)
	})
}

// --- DTOs ---

type analyzeRequest struct {
	Kind  string      `json:"kind" validate:"omitempty,oneof=crop fertilizer disease"`
	Text  string      `json:"text" validate:"max=4000"`
	Image *Attachment `json:"image,omitempty"`
}

// --- Handlers ---

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	writeJSON(w, http.StatusOK, h.service.State(sess.ID, session.LanguageFromContext(r.Context())))
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	kind := domain.ServiceKind(chi.URLParam(r, "kind"))
	if err := h.service.Select(sess.ID, kind); err != nil {
		h.fail(w, r, "select", err)
		return
	}
	writeJSON(w, http.StatusOK, h.service.State(sess.ID, session.LanguageFromContext(r.Context())))
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}
	h.service.Back(sess.ID)
	writeJSON(w, http.StatusOK, h.service.State(sess.ID, session.LanguageFromContext(r.Context())))
}

func (h *Handler) handleAttach(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}

	_, image, err := readMultipart(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if image == nil {
		writeError(w, http.StatusBadRequest, "Missing image field")
		return
	}

	n, err := h.service.Attach(sess.ID, session.LanguageFromContext(r.Context()), *image)
	if err != nil {
		h.fail(w, r, "attach", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"image": image, "notification": n})
}

// handleAnalyze accepts either a json body or a multipart form with the
// fields kind, text and image.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No page session")
		return
	}

	var req analyzeRequest
	if isMultipart(r) {
		fields, image, err := readMultipart(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req = analyzeRequest{Kind: fields["kind"], Text: fields["text"], Image: image}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := Query{Kind: domain.ServiceKind(req.Kind), Text: req.Text, Image: req.Image}
	result, err := h.service.Submit(r.Context(), sess.ID, session.LanguageFromContext(r.Context()), q)
	if err != nil {
		h.fail(w, r, "analyze", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readMultipart streams the form. Text parts are returned as fields; the
// image part is drained and only its name, size and type are kept.
func readMultipart(w http.ResponseWriter, r *http.Request) (map[string]string, *Attachment, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	fields := make(map[string]string)
	var image *Attachment
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
		}

		switch name := part.FormName(); {
		case name == "image" && part.FileName() != "":
			size, err := io.Copy(io.Discard, part)
			if err != nil {
				part.Close()
				return nil, nil, fmt.Errorf("could not read image: %w", err)
			}
			image = &Attachment{Name: part.FileName(), Size: size, ContentType: part.Header.Get("Content-Type")}
		case name != "":
			value, err := readField(part, name)
			if err != nil {
				part.Close()
				return nil, nil, err
			}
			fields[name] = value
		}
		part.Close()
	}
	return fields, image, nil
}

// readField reads a text part whole. Oversized or malformed text is rejected
// rather than cut, so a multi-byte character is never split.
func readField(part io.Reader, name string) (string, error) {
	value, err := io.ReadAll(io.LimitReader(part, maxField+1))
	if err != nil {
		return "", fmt.Errorf("could not read field %q: %w", name, err)
	}
	if len(value) > maxField {
		return "", fmt.Errorf("field %q exceeds %d bytes", name, maxField)
	}
	if !utf8.Valid(value) {
		return "", fmt.Errorf("field %q is not valid UTF-8", name)
	}
	return strings.TrimSpace(string(value)), nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := panel.ErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("services request failed", zap.String("op", op), zap.Error(err))
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
