package refresher

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/cache"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/leaderboard"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

// New creates a Scheduler and pre-loads the last cached snapshot, so a
// restarted process has data to show before its first fetch completes.
func New(client smash.Client, store cache.SnapshotStore, metricsSvc metrics.Metrics, notif notifier.Notifier, interval time.Duration) *Scheduler {
	s := &Scheduler{
		client:   client,
		store:    store,
		metrics:  metricsSvc,
		notifier: notif,
		interval: interval,
		snap: Snapshot{
			Loading:    true,
			Thresholds: tier.DefaultThresholds(),
			Buckets:    leaderboard.BucketByTier(nil, tier.DefaultThresholds()),
			Countdown:  int(interval / time.Second),
		},
	}

	players, err := store.LoadPlayers()
	if err != nil {
		log.Warn("Failed to load cached players", "error", err)
	}
	matches, err := store.LoadMatches()
	if err != nil {
		log.Warn("Failed to load cached matches", "error", err)
	}
	if len(players) > 0 {
		ranked, buckets, thresholds := compute(players)
		s.snap.Ranked = ranked
		s.snap.Buckets = buckets
		s.snap.Thresholds = thresholds
		s.snap.Matches = orderParticipants(matches)
		s.snap.Loading = false
		log.Info("Loaded cached snapshot", "players", len(players), "matches", len(matches))
	}

	return s
}

// Start launches the fetch and countdown timers. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.running {
		log.Warn("Refresh scheduler already running")
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.run()
	log.Info("Refresh scheduler started", "interval", s.interval)
}

// Stop tears down both timers and waits for the loop to exit. It is
// idempotent; stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
	log.Info("Refresh scheduler stopped")
}

func (s *Scheduler) run() {
	defer close(s.done)

	fetchTicker := time.NewTicker(s.interval)
	defer fetchTicker.Stop()
	countdownTicker := time.NewTicker(time.Second)
	defer countdownTicker.Stop()

	// Fetch immediately on start; the tickers only fire after a full period.
	s.Refresh(context.Background())

	for {
		select {
		case <-s.stop:
			return
		case <-fetchTicker.C:
			s.Refresh(context.Background())
		case <-countdownTicker.C:
			s.tickCountdown()
		}
	}
}

// Refresh runs one fetch-and-recompute cycle. Concurrent calls are safe and
// apply last-write-wins: whichever response lands last owns the snapshot.
func (s *Scheduler) Refresh(ctx context.Context) {
	cycleID := uuid.NewString()
	start := time.Now()
	s.metrics.IncRefreshRuns()
	defer func() {
		s.metrics.ObserveRefreshDuration(time.Since(start).Seconds())
	}()

	s.mu.Lock()
	hasData := len(s.snap.Ranked) > 0
	s.snap.Loading = !hasData
	s.snap.Refreshing = hasData
	prevTop := topPlayer(s.snap.Ranked)
	s.mu.Unlock()

	log.Info("Refreshing leaderboard", "cycle", cycleID)

	players, err := s.client.GetPlayers(ctx)
	if err != nil {
		// Primary source failure: the previous snapshot stays on screen, the
		// countdown is not reset, and we retry on the next tick.
		s.metrics.IncRefreshFailure("players")
		log.Error("Failed to fetch players", "cycle", cycleID, "error", err)
		s.mu.Lock()
		s.snap.Loading = false
		s.snap.Refreshing = false
		s.snap.Err = "failed to refresh leaderboard: " + err.Error()
		s.mu.Unlock()
		return
	}

	matches, err := s.client.GetMatches(ctx)
	if err != nil {
		// Match history is secondary; keep the previous list and retry silently.
		s.metrics.IncRefreshFailure("matches")
		log.Warn("Failed to fetch matches, keeping previous history", "cycle", cycleID, "error", err)
		s.mu.RLock()
		matches = s.snap.Matches
		s.mu.RUnlock()
	} else {
		matches = orderParticipants(matches)
	}

	ranked, buckets, thresholds := compute(players)

	s.mu.Lock()
	s.snap = Snapshot{
		Ranked:      ranked,
		Buckets:     buckets,
		Thresholds:  thresholds,
		Matches:     matches,
		LastUpdated: time.Now(),
		Countdown:   int(s.interval / time.Second),
	}
	s.mu.Unlock()

	s.metrics.SetPlayersTracked(len(ranked))
	s.metrics.SetLastRefreshTime(float64(time.Now().Unix()))

	if err := s.store.SavePlayers(players); err != nil {
		log.Error("Failed to cache players", "cycle", cycleID, "error", err)
	}
	if err := s.store.SaveMatches(matches); err != nil {
		log.Error("Failed to cache matches", "cycle", cycleID, "error", err)
	}

	if newTop := topPlayer(ranked); prevTop != nil && newTop != nil && prevTop.ID != newTop.ID {
		if err := s.notifier.SendTopPlayerChange(*prevTop, *newTop, false); err != nil {
			log.Error("Failed to announce top player change", "cycle", cycleID, "error", err)
		}
	}

	log.Info("Leaderboard refreshed", "cycle", cycleID, "players", len(ranked), "matches", len(matches), "duration_ms", time.Since(start).Milliseconds())
}

// Snapshot returns a copy of the live model. The slices and maps inside are
// never mutated after a swap, so sharing them with readers is safe.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// ClearError dismisses the current error banner.
func (s *Scheduler) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Err = ""
}

func (s *Scheduler) tickCountdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Countdown > 0 {
		s.snap.Countdown--
	}
}

// compute derives the full presentation model from one atomic view of the
// player list.
func compute(players []smash.Player) ([]stats.DerivedPlayer, map[tier.Tier][]stats.DerivedPlayer, tier.Thresholds) {
	thresholds := tier.ComputeThresholds(players)
	ranked := leaderboard.Rank(stats.AttachDerivedAll(players), thresholds)
	buckets := leaderboard.BucketByTier(ranked, thresholds)
	return ranked, buckets, thresholds
}

func orderParticipants(matches []smash.Match) []smash.Match {
	ordered := make([]smash.Match, len(matches))
	copy(ordered, matches)
	for i := range ordered {
		ordered[i].Participants = leaderboard.WinnersFirst(ordered[i].Participants)
	}
	return ordered
}

func topPlayer(ranked []stats.DerivedPlayer) *stats.DerivedPlayer {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]
	return &top
}
