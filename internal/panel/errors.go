package panel

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
)

// Publisher is what every panel needs from the event stream.
type Publisher interface {
	Publish(sessionID uuid.UUID, ev domain.Event)
}

// Announce publishes n as a notification event.
func Announce(pub Publisher, sessionID uuid.UUID, n domain.Notification) {
	pub.Publish(sessionID, domain.Event{Type: domain.EventNotification, Notification: &n})
}

// Fail publishes the notice and returns err wrapped with it.
func Fail(pub Publisher, sessionID uuid.UUID, err error, n domain.Notification) error {
	Announce(pub, sessionID, n)
	return domain.WithNotice(err, n)
}

// ErrorBody is the json error shape of the panel endpoints.
type ErrorBody struct {
	Error        string               `json:"error"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

// HTTPStatus maps the error taxonomy onto status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPending), errors.Is(err, domain.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCapabilityUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, domain.ErrRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse builds the status and body for err. Internal errors keep
// their message out of the body.
func ErrorResponse(err error) (int, ErrorBody) {
	status := HTTPStatus(err)
	body := ErrorBody{Error: http.StatusText(status)}
	if n, ok := domain.NoticeOf(err); ok {
		body.Notification = &n
		body.Error = n.Title
	}
	return status, body
}
