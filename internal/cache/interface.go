package cache

import "github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"

// SnapshotStore persists the last successfully fetched roster and match
// history so a restarted process can show data before its first fetch
// completes. Each save replaces the cached set wholesale; the cache is never
// mutated incrementally.
type SnapshotStore interface {
	SavePlayers(players []smash.Player) error
	SaveMatches(matches []smash.Match) error
	LoadPlayers() ([]smash.Player, error)
	LoadMatches() ([]smash.Match, error)
	Clear() error
}
