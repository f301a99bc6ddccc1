package utils

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exports simulation progress to Prometheus
type Metrics struct {
	generations  prometheus.Counter
	population   prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewMetrics creates the game collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gol_generations_total",
			Help: "Total number of generations computed",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gol_population",
			Help: "Number of live cells in the current generation",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gol_step_duration_seconds",
			Help:    "Time taken to compute one generation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
	reg.MustRegister(m.generations, m.population, m.stepDuration)
	return m
}

// Observe records one computed generation
func (m *Metrics) Observe(population int, stepDuration time.Duration) {
	m.generations.Inc()
	m.population.Set(float64(population))
	m.stepDuration.Observe(stepDuration.Seconds())
}

// MetricsHandler serves the collectors gathered by g
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}
