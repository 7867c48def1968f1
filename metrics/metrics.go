package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashfut",
		Name:      "actions_dispatched_total",
		Help:      "Accepted state transitions, labeled by action kind.",
	}, []string{"kind"})

	MirrorFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashfut",
		Name:      "mirror_failures_total",
		Help:      "Background persistence attempts that returned an error.",
	})

	SnapshotWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashfut",
		Name:      "snapshot_writes_total",
		Help:      "Snapshot serializations written to the configured stores.",
	})

	RunningClocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dashfut",
		Name:      "running_clocks",
		Help:      "Matches whose clock is currently counting down.",
	})
)
