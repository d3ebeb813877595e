package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for testing.
type MockMetrics struct {
	mu sync.Mutex

	RefreshRunsCount     int
	RefreshFailureCalls  []string
	RefreshDurations     []float64
	PlayersTrackedValues []int
	LastRefreshTimes     []float64
	StartupTimes         []float64
	NotifSentCount       int
	NotifFailedCount     int
}

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncRefreshRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshRunsCount++
}

func (m *MockMetrics) IncRefreshFailure(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshFailureCalls = append(m.RefreshFailureCalls, source)
}

func (m *MockMetrics) ObserveRefreshDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshDurations = append(m.RefreshDurations, seconds)
}

func (m *MockMetrics) SetPlayersTracked(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersTrackedValues = append(m.PlayersTrackedValues, count)
}

func (m *MockMetrics) SetLastRefreshTime(unixSeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRefreshTimes = append(m.LastRefreshTimes, unixSeconds)
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, seconds)
}

func (m *MockMetrics) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *MockMetrics) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}
