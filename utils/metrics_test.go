package utils

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Observe(120, 2*time.Millisecond)
	m.Observe(97, 3*time.Millisecond)

	if got := testutil.ToFloat64(m.generations); got != 2 {
		t.Fatalf("generations = %v, expected 2", got)
	}
	if got := testutil.ToFloat64(m.population); got != 97 {
		t.Fatalf("population = %v, expected 97", got)
	}
	if n := testutil.CollectAndCount(m.stepDuration); n != 1 {
		t.Fatalf("step duration collected %d metrics", n)
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg).Observe(42, time.Millisecond)

	srv := httptest.NewServer(MetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	for _, want := range []string{"gol_generations_total 1", "gol_population 42", "gol_step_duration_seconds_count 1"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	s.Update(2, 200, 50*time.Millisecond)

	if s.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-20) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, expected 20", s.GenerationsPerSecond)
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, expected 110", s.AveragePopulation)
	}
}
