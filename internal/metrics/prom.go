package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records schedule requests in Prometheus metrics.
type PromRecorder struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	combinations prometheus.Counter
	accepted     prometheus.Counter
}

// NewPromRecorder registers the metrics on the default Prometheus registerer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
// Collectors already registered under the same names are reused.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_requests_total",
		Help: "Total number of schedule requests",
	}, []string{"strategy", "outcome"}))
	if err != nil {
		return nil, err
	}
	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_generation_seconds",
		Help:    "Time spent resolving and generating schedules",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"}))
	if err != nil {
		return nil, err
	}
	combinations, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_combinations_total",
		Help: "Number of candidate combinations in the requested cross products",
	}))
	if err != nil {
		return nil, err
	}
	accepted, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_accepted_total",
		Help: "Number of conflict-free schedules returned",
	}))
	if err != nil {
		return nil, err
	}

	return &PromRecorder{requests: requests, latency: latency, combinations: combinations, accepted: accepted}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}

func (r *PromRecorder) RecordPlan(event PlanEvent) {
	r.requests.WithLabelValues(event.Strategy, event.Outcome).Inc()
	if event.Outcome != OutcomeSuccess {
		return
	}
	r.latency.WithLabelValues(event.Strategy).Observe(event.Duration.Seconds())
	r.combinations.Add(float64(event.Combinations))
	r.accepted.Add(float64(event.Accepted))
}
