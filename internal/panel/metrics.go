package panel

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"kisanmitra/internal/domain"
)

var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kisanmitra_panel_submissions_total",
	Help: "Panel submissions by panel and outcome",
}, []string{"panel", "outcome"})

// Record counts one submission of panel with the outcome derived from err.
func Record(panel string, err error) {
	submissionsTotal.WithLabelValues(panel, Outcome(err)).Inc()
}

// Outcome names the error class used as metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrPending):
		return "rejected"
	case errors.Is(err, domain.ErrRequestFailed):
		return "failed"
	default:
		return "error"
	}
}
