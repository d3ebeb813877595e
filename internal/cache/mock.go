package cache

import (
	"sync"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

// MockStore is a mock implementation of the SnapshotStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	SavePlayersFunc func(players []smash.Player) error
	SaveMatchesFunc func(matches []smash.Match) error
	LoadPlayersFunc func() ([]smash.Player, error)
	LoadMatchesFunc func() ([]smash.Match, error)
	ClearFunc       func() error

	SavePlayersCalls [][]smash.Player
	SaveMatchesCalls [][]smash.Match
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SavePlayers(players []smash.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SavePlayersCalls = append(m.SavePlayersCalls, players)
	if m.SavePlayersFunc != nil {
		return m.SavePlayersFunc(players)
	}
	return nil
}

func (m *MockStore) SaveMatches(matches []smash.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveMatchesCalls = append(m.SaveMatchesCalls, matches)
	if m.SaveMatchesFunc != nil {
		return m.SaveMatchesFunc(matches)
	}
	return nil
}

func (m *MockStore) LoadPlayers() ([]smash.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadPlayersFunc != nil {
		return m.LoadPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) LoadMatches() ([]smash.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadMatchesFunc != nil {
		return m.LoadMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
