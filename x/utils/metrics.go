package utils

import (
	"sync"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "handler",
			Name:      "calls_total",
			Help:      "Total handler calls by message path and outcome.",
		},
		[]string{"call", "path", "outcome"},
	)
	callDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vault",
			Subsystem: "handler",
			Name:      "call_duration_seconds",
			Help:      "Handler call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"call", "path", "outcome"},
	)
)

// RegisterMetrics registers all handler collectors with the default
// prometheus registry. It is safe to call many times.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(callsTotal, callDuration)
	})
}

// Metrics is a decorator that counts every call and measures its duration.
// The outcome label is "ok" or the class of the returned error.
type Metrics struct{}

var _ vault.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator
func NewMetrics() Metrics {
	RegisterMetrics()
	return Metrics{}
}

// Check records the check call
func (Metrics) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	recordCall("check", vault.GetPath(tx), err, time.Since(start))
	return res, err
}

// Deliver records the deliver call
func (Metrics) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	recordCall("deliver", vault.GetPath(tx), err, time.Since(start))
	return res, err
}

func recordCall(call, path string, err error, d time.Duration) {
	outcome := Outcome(err)
	callsTotal.WithLabelValues(call, path, outcome).Inc()
	callDuration.WithLabelValues(call, path, outcome).Observe(d.Seconds())
}

// Outcome returns the metrics label describing the result of a call.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return errors.ClassOf(err).String()
}
