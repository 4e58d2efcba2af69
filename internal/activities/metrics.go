package activities

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// unknownActivity replaces client-supplied names that are not in the registry
// so label cardinality stays bounded by the seed.
const unknownActivity = "unknown"

// Metrics holds the registry's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Signups         *prometheus.CounterVec
	Unregistrations *prometheus.CounterVec
	Participants    *prometheus.GaugeVec
}

// NewMetrics creates the registry collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of signup attempts by activity and outcome",
			},
			[]string{"activity", "outcome"},
		),
		Unregistrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_unregistrations_total",
				Help: "Total number of unregister attempts by activity and outcome",
			},
			[]string{"activity", "outcome"},
		),
		Participants: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "activity_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}

	reg.MustRegister(m.Signups, m.Unregistrations, m.Participants)
	return m
}

func (m *Metrics) signup(activity string, err error) {
	if m == nil {
		return
	}
	activity, outcome := labels(activity, err)
	m.Signups.WithLabelValues(activity, outcome).Inc()
}

func (m *Metrics) unregister(activity string, err error) {
	if m == nil {
		return
	}
	activity, outcome := labels(activity, err)
	m.Unregistrations.WithLabelValues(activity, outcome).Inc()
}

func (m *Metrics) setParticipants(activity string, n int) {
	if m == nil {
		return
	}
	m.Participants.WithLabelValues(activity).Set(float64(n))
}

func labels(activity string, err error) (string, string) {
	switch {
	case err == nil:
		return activity, OutcomeOK
	case errors.Is(err, ErrNotFound):
		return unknownActivity, OutcomeNotFound
	case errors.Is(err, ErrConflict):
		return activity, OutcomeConflict
	case errors.Is(err, ErrEmailRequired):
		return activity, OutcomeInvalid
	default:
		return unknownActivity, OutcomeError
	}
}
