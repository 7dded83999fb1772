package bridge

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	submitted    *prometheus.CounterVec
	settled      *prometheus.CounterVec
	pending      *prometheus.GaugeVec
	readDuration *prometheus.HistogramVec
}

// newMetrics registers the bridge collectors on reg; a nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		submitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ugpt_staking",
				Subsystem: "bridge",
				Name:      "tx_submitted_total",
				Help:      "The total number of writes that entered pending",
			},
			[]string{"op"},
		),
		settled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ugpt_staking",
				Subsystem: "bridge",
				Name:      "tx_settled_total",
				Help:      "The total number of settled writes by final state",
			},
			[]string{"op", "state"},
		),
		pending: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ugpt_staking",
				Subsystem: "bridge",
				Name:      "tx_pending",
				Help:      "The number of writes waiting for confirmation",
			},
			[]string{"op"},
		),
		readDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ugpt_staking",
				Subsystem: "bridge",
				Name:      "read_duration_seconds",
				Help:      "The latency of contract view calls",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"method"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.submitted, m.settled, m.pending, m.readDuration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register bridge metrics failed")
		}
	}
	return m, nil
}
