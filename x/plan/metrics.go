package plan

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	withdrawals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "plan",
			Name:      "withdrawals_total",
			Help:      "Total withdrawals by whether a penalty was paid.",
		},
		[]string{"early"},
	)
	penaltiesPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "plan",
			Name:      "penalties_paid_total",
			Help:      "Total value paid to the treasury as early withdrawal penalty.",
		},
	)
)

// RegisterMetrics registers the plan collectors with the default prometheus
// registry. It is safe to call many times.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(withdrawals, penaltiesPaid)
	})
}

func recordWithdrawal(penalty uint64) {
	if penalty == 0 {
		withdrawals.WithLabelValues("false").Inc()
		return
	}
	withdrawals.WithLabelValues("true").Inc()
	penaltiesPaid.Add(float64(penalty))
}
