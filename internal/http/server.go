package http

import (
	"net/http"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/config"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/refresher"
)

func NewServer(scheduler *refresher.Scheduler, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notif notifier.Notifier) *Server {
	server := &Server{
		Scheduler:      scheduler,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notif,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/refresh", Chain(s.RefreshHandler(), paramsMiddleware))
	s.Router.Handle("/api/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/api/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/api/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/api/status", Chain(s.StatusHandler(), paramsMiddleware))
	s.Router.Handle("/api/dismiss-error", Chain(s.DismissErrorHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
