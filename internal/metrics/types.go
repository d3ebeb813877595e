package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors for the application.
type Service struct {
	RefreshRuns        prometheus.Counter
	RefreshFailures    *prometheus.CounterVec
	RefreshDuration    prometheus.Histogram
	PlayersTracked     prometheus.Gauge
	LastRefreshTime    prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
}
