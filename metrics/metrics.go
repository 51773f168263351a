// Package metrics provides optional Prometheus instrumentation for the
// engine: per-operation counters and a calibration timing histogram,
// exposed through a package-owned registry. Collection is disabled by
// default; Enable turns the counters on so that uninstrumented users pay
// nothing but an atomic load per dispatched operation.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var enabled atomic.Bool

var (
	mulOps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biguint",
		Name:      "multiplications_total",
		Help:      "Number of multiplication dispatches.",
	})
	divOps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biguint",
		Name:      "divisions_total",
		Help:      "Number of division/modulus dispatches.",
	})
	parseOps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biguint",
		Name:      "parses_total",
		Help:      "Number of string/byte parses.",
	})
	formatOps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biguint",
		Name:      "formats_total",
		Help:      "Number of text/byte formats.",
	})
	calibrationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "biguint",
		Name:      "calibration_round_seconds",
		Help:      "Wall time of individual calibration measurements.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(mulOps, divOps, parseOps, formatOps, calibrationSeconds)
}

// Enable turns metric collection on.
func Enable() { enabled.Store(true) }

// Disable turns metric collection off.
func Disable() { enabled.Store(false) }

// Enabled reports whether metric collection is on.
func Enabled() bool { return enabled.Load() }

// Handler returns an HTTP handler serving the engine's metrics in
// Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Register registers the engine's collectors with an external registerer,
// for callers that scrape a registry of their own.
func Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{mulOps, divOps, parseOps, formatOps, calibrationSeconds} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncMul counts one multiplication dispatch.
func IncMul() {
	if enabled.Load() {
		mulOps.Inc()
	}
}

// IncDiv counts one division dispatch.
func IncDiv() {
	if enabled.Load() {
		divOps.Inc()
	}
}

// IncParse counts one parse.
func IncParse() {
	if enabled.Load() {
		parseOps.Inc()
	}
}

// IncFormat counts one format.
func IncFormat() {
	if enabled.Load() {
		formatOps.Inc()
	}
}

// ObserveCalibration records the wall time of one calibration
// measurement.
func ObserveCalibration(d time.Duration) {
	if enabled.Load() {
		calibrationSeconds.Observe(d.Seconds())
	}
}
