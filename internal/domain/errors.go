package domain

import "errors"

var (
	// ErrValidation means a required input was empty. Never reaches a responder.
	ErrValidation = errors.New("validation failed")
	// ErrCapabilityUnavailable means the runtime has no speech engine for the request.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
	ErrRecognitionFailed     = errors.New("recognition failed")
	// ErrRequestFailed is the channel for responder and provider failures.
	ErrRequestFailed = errors.New("request failed")

	// ErrPending rejects a submission while the same panel has one in flight.
	ErrPending = errors.New("submission already pending")
	ErrBusy    = errors.New("voice bridge busy")

	ErrSessionNotFound     = errors.New("session not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// NoticeError carries the localized notification for a panel failure.
type NoticeError struct {
	Err    error
	Notice Notification
}

func (e *NoticeError) Error() string {
	return e.Err.Error()
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

// WithNotice wraps err with the notification shown to the user.
func WithNotice(err error, n Notification) error {
	return &NoticeError{Err: err, Notice: n}
}

// NoticeOf extracts the notification attached anywhere in err's chain.
func NoticeOf(err error) (Notification, bool) {
	var ne *NoticeError
	if errors.As(err, &ne) {
		return ne.Notice, true
	}
	return Notification{}, false
}
