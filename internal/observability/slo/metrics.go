// Package slo tracks service level objective metrics: availability and
// error rate computed from a rolling window of request outcomes.
package slo

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets the service commits to.
const (
	// AvailabilitySLO is the target uptime ratio (99.9%).
	AvailabilitySLO = 0.999

	// ErrorRateSLO is the maximum acceptable 5xx ratio (0.1%).
	ErrorRateSLO = 0.001
)

var (
	sloAvailability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Availability ratio over the last window (0-1), target: 0.999",
	})
	sloErrorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "5xx error ratio over the last window (0-1), target: 0.001",
	})
)

// Tracker accumulates request outcomes and periodically publishes the
// window's availability and error rate as gauges.
type Tracker struct {
	mu     sync.Mutex
	total  int64
	errors int64
}

var defaultTracker Tracker

// RecordRequest feeds one request outcome into the default tracker.
func RecordRequest(status int) {
	defaultTracker.Record(status)
}

// Run flushes the default tracker on the given interval until the
// context is canceled. Call it once from main.
func Run(ctx context.Context, interval time.Duration) {
	defaultTracker.Run(ctx, interval)
}

// Record adds one request outcome to the current window.
func (t *Tracker) Record(status int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total++
	if status >= 500 {
		t.errors++
	}
}

// Run publishes and resets the window every interval until ctx ends.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.flush()
		case <-ctx.Done():
			return
		}
	}
}

func (t *Tracker) flush() {
	t.mu.Lock()
	total, errors := t.total, t.errors
	t.total, t.errors = 0, 0
	t.mu.Unlock()

	if total == 0 {
		// No traffic means no SLO violation.
		sloAvailability.Set(1)
		sloErrorRate.Set(0)
		return
	}
	sloAvailability.Set(float64(total-errors) / float64(total))
	sloErrorRate.Set(float64(errors) / float64(total))
}

// Snapshot returns the current window's counters, primarily for tests.
func (t *Tracker) Snapshot() (total, errors int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total, t.errors
}
