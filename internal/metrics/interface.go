package metrics

// Metrics defines the instrumentation points used by the refresher and server.
type Metrics interface {
	IncRefreshRuns()
	IncRefreshFailure(source string)
	ObserveRefreshDuration(seconds float64)
	SetPlayersTracked(count int)
	SetLastRefreshTime(unixSeconds float64)
	SetStartupTime(seconds float64)
	IncNotifSent()
	IncNotifFailed()
}
