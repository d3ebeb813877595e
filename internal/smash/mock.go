package smash

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	GetPlayersFunc func(ctx context.Context) ([]Player, error)
	GetMatchesFunc func(ctx context.Context) ([]Match, error)

	GetPlayersCalls int
	GetMatchesCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	m.GetPlayersCalls++
	fn := m.GetPlayersFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, nil
}

func (m *MockClient) GetMatches(ctx context.Context) ([]Match, error) {
	m.mu.Lock()
	m.GetMatchesCalls++
	fn := m.GetMatchesFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, nil
}
