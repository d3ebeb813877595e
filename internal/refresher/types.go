package refresher

import (
	"sync"
	"time"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/cache"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/tier"
)

// Snapshot is the live model served to the presentation layer. It is
// replaced wholesale on every successful refresh: thresholds, ranks and
// buckets always come from the same atomic view of the player list.
type Snapshot struct {
	Ranked      []stats.DerivedPlayer
	Buckets     map[tier.Tier][]stats.DerivedPlayer
	Thresholds  tier.Thresholds
	Matches     []smash.Match
	LastUpdated time.Time
	Loading     bool
	Refreshing  bool
	Err         string
	Countdown   int
}

// Scheduler owns the two refresh timers and the live snapshot. Downstream
// components only ever read copies; all mutation happens here.
type Scheduler struct {
	client   smash.Client
	store    cache.SnapshotStore
	metrics  metrics.Metrics
	notifier notifier.Notifier
	interval time.Duration

	mu   sync.RWMutex
	snap Snapshot

	lifecycle sync.Mutex
	running   bool
	stop      chan struct{}
	done      chan struct{}
}
