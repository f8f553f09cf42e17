package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cnpj-toolkit/internal/domain"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	Generated           *prometheus.CounterVec
	Validations         *prometheus.CounterVec
	GenerationExhausted prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cnpj_generated_total",
			Help: "Total number of identifiers generated",
		}, []string{"mode"}),
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cnpj_validations_total",
			Help: "Total number of validations by outcome",
		}, []string{"result"}),
		GenerationExhausted: factory.NewCounter(prometheus.CounterOpts{
			Name: "cnpj_generation_exhausted_total",
			Help: "Total number of generate calls that ran out of attempts",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cnpj_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

func (m *Metrics) IncrementGenerated(mode domain.Mode) {
	m.Generated.WithLabelValues(mode.String()).Inc()
}

// IncrementValidations counts one validation under result "valid" or "invalid".
func (m *Metrics) IncrementValidations(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.Validations.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementGenerationExhausted() {
	m.GenerationExhausted.Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
