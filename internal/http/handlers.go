package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/refresher"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// RefreshHandler triggers a fetch-and-recompute cycle outside the normal
// schedule, e.g. right after a match is recorded.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Manual refresh requested")
		s.Scheduler.Refresh(r.Context())

		snap := s.Scheduler.Snapshot()
		if snap.Err != "" {
			http.Error(w, snap.Err, http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Refresh completed.")
	}
}

// LeaderboardHandler serves the full presentation model: ranked players,
// tier buckets, thresholds and refresh status.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.Scheduler.Snapshot()
		resp := LeaderboardResponse{
			Ranked:     snap.Ranked,
			Buckets:    snap.Buckets,
			TierOrder:  tier.Order,
			Thresholds: snap.Thresholds,
			Status:     statusFromSnapshot(snap),
		}
		writeJSON(w, resp)
	}
}

// ListPlayersHandler serves just the ranked player list.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.Scheduler.Snapshot()
		writeJSON(w, snap.Ranked)
	}
}

// ListMatchesHandler serves the match history, participants winners-first.
func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.Scheduler.Snapshot()
		resp := MatchesResponse{
			Matches: snap.Matches,
			Status:  statusFromSnapshot(snap),
		}
		writeJSON(w, resp)
	}
}

// StatusHandler serves only the refresh state block.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, statusFromSnapshot(s.Scheduler.Snapshot()))
	}
}

// DismissErrorHandler clears the current error banner.
func (s *Server) DismissErrorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.Scheduler.ClearError()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Error dismissed.")
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// LeaderboardCommandHandler returns a handler for the /smash-leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.Scheduler.Snapshot()

		msg, err := s.Notifier.FormatLeaderboardResponse(snap.Ranked)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

func statusFromSnapshot(snap refresher.Snapshot) StatusResponse {
	return StatusResponse{
		LastUpdated: snap.LastUpdated,
		Loading:     snap.Loading,
		Refreshing:  snap.Refreshing,
		Error:       snap.Err,
		Countdown:   snap.Countdown,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
