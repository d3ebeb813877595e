package http

import (
	"net/http"
	"time"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/config"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/refresher"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

type Server struct {
	Scheduler      *refresher.Scheduler
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}

// StatusResponse mirrors the refresh state the presentation layer needs to
// render loading/refreshing indicators and the staleness countdown.
type StatusResponse struct {
	LastUpdated time.Time `json:"last_updated"`
	Loading     bool      `json:"loading"`
	Refreshing  bool      `json:"refreshing"`
	Error       string    `json:"error,omitempty"`
	Countdown   int       `json:"countdown"`
}

// LeaderboardResponse is the full presentation model for the leaderboard page.
type LeaderboardResponse struct {
	Ranked     []stats.DerivedPlayer               `json:"ranked"`
	Buckets    map[tier.Tier][]stats.DerivedPlayer `json:"buckets"`
	TierOrder  []tier.Tier                         `json:"tier_order"`
	Thresholds tier.Thresholds                     `json:"thresholds"`
	Status     StatusResponse                      `json:"status"`
}

// MatchesResponse is the match history view, participants winners-first.
type MatchesResponse struct {
	Matches []smash.Match  `json:"matches"`
	Status  StatusResponse `json:"status"`
}
