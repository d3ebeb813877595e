package notifier

import (
	"sync"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	mu sync.Mutex

	SendTopPlayerChangeFunc       func(previous, current stats.DerivedPlayer, dryRun bool) error
	SendLeaderboardFunc           func(ranked []stats.DerivedPlayer, dryRun bool) error
	FormatLeaderboardResponseFunc func(ranked []stats.DerivedPlayer) (any, error)

	SendTopPlayerChangeCalls []struct {
		Previous stats.DerivedPlayer
		Current  stats.DerivedPlayer
	}
	SendLeaderboardCalls [][]stats.DerivedPlayer
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendTopPlayerChange(previous, current stats.DerivedPlayer, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTopPlayerChangeCalls = append(m.SendTopPlayerChangeCalls, struct {
		Previous stats.DerivedPlayer
		Current  stats.DerivedPlayer
	}{previous, current})
	if m.SendTopPlayerChangeFunc != nil {
		return m.SendTopPlayerChangeFunc(previous, current, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendLeaderboard(ranked []stats.DerivedPlayer, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, ranked)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(ranked, dryRun)
	}
	return nil
}

func (m *MockNotifier) FormatLeaderboardResponse(ranked []stats.DerivedPlayer) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(ranked)
	}
	return nil, nil
}
