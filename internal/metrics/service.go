package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smash_refresh_runs_total",
			Help: "The total number of leaderboard refresh cycles started.",
		}),
		RefreshFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smash_refresh_failures_total",
			Help: "The total number of failed fetches, by data source.",
		}, []string{"source"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "smash_refresh_duration_seconds",
			Help:    "The duration of a full fetch-and-recompute cycle.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PlayersTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smash_players_tracked",
			Help: "The number of players in the current snapshot.",
		}),
		LastRefreshTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smash_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful refresh.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smash_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smash_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smash_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
	}

	reg.MustRegister(
		s.RefreshRuns,
		s.RefreshFailures,
		s.RefreshDuration,
		s.PlayersTracked,
		s.LastRefreshTime,
		s.StartupTimeSeconds,
		s.NotifSent,
		s.NotifFailed,
	)

	return s
}

func (s *Service) IncRefreshRuns() {
	s.RefreshRuns.Inc()
}

func (s *Service) IncRefreshFailure(source string) {
	s.RefreshFailures.WithLabelValues(source).Inc()
}

func (s *Service) ObserveRefreshDuration(seconds float64) {
	s.RefreshDuration.Observe(seconds)
}

func (s *Service) SetPlayersTracked(count int) {
	s.PlayersTracked.Set(float64(count))
}

func (s *Service) SetLastRefreshTime(unixSeconds float64) {
	s.LastRefreshTime.Set(unixSeconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}
