package metrics

import (
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// PrometheusRecorder keeps the client's counters on a private registry so the
// CLI can dump them to a textfile on exit.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	WorkflowOutcomes  *prometheus.CounterVec
	TransportDuration *prometheus.HistogramVec
	TriageRefreshes   *prometheus.CounterVec
}

func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	reg := prometheus.NewRegistry()

	r := &PrometheusRecorder{
		registry: reg,
		WorkflowOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emergency",
			Name:      "workflow_outcomes_total",
			Help:      "Emergency request submission attempts by outcome",
		}, []string{"outcome"}),
		TransportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "emergency",
			Name:      "transport_duration_seconds",
			Help:      "Duration of emergency request calls to the backend in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		TriageRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triage",
			Name:      "refresh_total",
			Help:      "Doctor emergency queue refreshes by result",
		}, []string{"result"}),
	}

	reg.MustRegister(r.WorkflowOutcomes)
	reg.MustRegister(r.TransportDuration)
	reg.MustRegister(r.TriageRefreshes)
	return r
}

func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

func (r *PrometheusRecorder) ObserveOutcome(kind models.OutcomeKind) {
	r.WorkflowOutcomes.WithLabelValues(string(kind)).Inc()
}

func (r *PrometheusRecorder) ObserveTransport(result string, duration time.Duration) {
	r.TransportDuration.WithLabelValues(result).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveTriageRefresh(result string) {
	r.TriageRefreshes.WithLabelValues(result).Inc()
}

type nopRecorder struct{}

// NewNopRecorder returns a recorder that drops every observation.
func NewNopRecorder() contracts.MetricsRecorder {
	return nopRecorder{}
}

func (nopRecorder) ObserveOutcome(models.OutcomeKind) {}
func (nopRecorder) ObserveTransport(string, time.Duration) {}
func (nopRecorder) ObserveTriageRefresh(string) {}
